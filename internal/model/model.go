package model

import (
	"regexp"
	"slices"
	"sort"
)

// Role selects the read channel for Data.
type Role int

const (
	// RoleDisplay prefers the image payload and falls back to the
	// highlight markup for text entries.
	RoleDisplay Role = iota
	// RoleEdit always returns the raw text, even when an image payload
	// is present.
	RoleEdit
)

// Direction names the batch reorder directions understood by MoveItems.
type Direction int

const (
	MoveDown Direction = iota
	MoveUp
	MoveToEnd
	MoveToHome
)

// Value is the result of a Data read. Exactly one of Text or Image is
// meaningful; the zero Value signals an invalid row.
type Value struct {
	Text  string
	Image []byte
}

// IsImage reports whether the value carries an image payload.
func (v Value) IsImage() bool { return v.Image != nil }

// Model is the ordered clipboard history store. Row position is the only
// identity an entry has: after any insert, remove or move, consumers must
// re-address entries by their current row.
type Model struct {
	notifier Notifier
	entries  []*Entry
	re       *regexp.Regexp
}

// New builds a model over the initial raw strings, highlight-off. A nil
// notifier is replaced with a no-op implementation.
func New(notifier Notifier, initial []string) *Model {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	entries := make([]*Entry, 0, len(initial))
	for _, text := range initial {
		entries = append(entries, newEntry(text))
	}
	return &Model{notifier: notifier, entries: entries}
}

// RowCount returns the number of entries.
func (m *Model) RowCount() int { return len(m.entries) }

// Data reads the entry at row through the given role. Out-of-range rows
// yield the zero Value.
func (m *Model) Data(row int, role Role) Value {
	if row < 0 || row >= len(m.entries) {
		return Value{}
	}
	e := m.entries[row]
	if role == RoleEdit {
		return Value{Text: e.text}
	}
	if e.image != nil {
		return Value{Image: e.image}
	}
	return Value{Text: e.display()}
}

// Raw returns the entry's raw text and image payload for persistence.
// ok is false for out-of-range rows.
func (m *Model) Raw(row int) (text string, image []byte, ok bool) {
	if row < 0 || row >= len(m.entries) {
		return "", nil, false
	}
	e := m.entries[row]
	return e.text, e.image, true
}

// SetText replaces the content at row with plain text, re-applies the
// active search to that row and announces the change.
func (m *Model) SetText(row int, text string) bool {
	if row < 0 || row >= len(m.entries) {
		return false
	}
	m.entries[row].setText(text)
	m.applySearch(row, m.re)
	m.notifier.DataChanged(row, row)
	return true
}

// SetImage attaches an image payload at row, re-applies the active search
// to that row and announces the change.
func (m *Model) SetImage(row int, image []byte) bool {
	if row < 0 || row >= len(m.entries) {
		return false
	}
	m.entries[row].setImage(image)
	m.applySearch(row, m.re)
	m.notifier.DataChanged(row, row)
	return true
}

// IsFiltered reports whether the entry at row failed the active search and
// should be hidden. Out-of-range rows report false.
func (m *Model) IsFiltered(row int) bool {
	if row < 0 || row >= len(m.entries) {
		return false
	}
	return m.entries[row].filtered
}

// InsertRows inserts count default-empty entries at position. Valid
// positions run 0..RowCount inclusive; anything else fails without
// mutation. The inserted range is announced exactly.
func (m *Model) InsertRows(position, count int) bool {
	if position < 0 || position > len(m.entries) || count <= 0 {
		return false
	}
	m.notifier.BeginInsertRows(position, position+count-1)
	fresh := make([]*Entry, count)
	for i := range fresh {
		fresh[i] = newEntry("")
	}
	m.entries = slices.Insert(m.entries, position, fresh...)
	m.notifier.EndInsertRows()
	return true
}

// RemoveRows deletes count entries starting at position. The caller must
// supply a valid range; no re-validation happens here. The removed range
// is announced exactly.
func (m *Model) RemoveRows(position, count int) bool {
	m.notifier.BeginRemoveRows(position, position+count-1)
	m.entries = slices.Delete(m.entries, position, position+count)
	m.notifier.EndRemoveRows()
	return true
}

// resolveRow maps an arbitrary integer row request onto a valid store
// position. With cycle, out-of-range requests wrap around the ends;
// without it they clamp. ok is false only when the store is empty.
func (m *Model) resolveRow(row int, cycle bool) (resolved int, ok bool) {
	n := len(m.entries)
	switch {
	case n == 0:
		return 0, false
	case row >= n:
		if cycle {
			return 0, true
		}
		return n - 1, true
	case row < 0:
		if cycle {
			return n - 1, true
		}
		return 0, true
	default:
		return row, true
	}
}

// Move relocates the entry at from so it ends up at row to. Both endpoints
// resolve cyclically, so out-of-range requests wrap instead of failing.
// The notifier sees the destination as to+1 when moving toward the end,
// because the removal at from shifts the intermediate rows down by one.
// A notifier refusal aborts with no mutation.
func (m *Model) Move(from, to int) bool {
	src, ok := m.resolveRow(from, true)
	if !ok {
		return false
	}
	dst, _ := m.resolveRow(to, true)

	dest := dst
	if src < dst {
		dest = dst + 1
	}
	if !m.notifier.BeginMoveRows(src, src, dest) {
		return false
	}
	e := m.entries[src]
	m.entries = slices.Delete(m.entries, src, src+1)
	m.entries = slices.Insert(m.entries, dst, e)
	m.notifier.EndMoveRows()
	return true
}

// MoveItems moves every selected row one step (MoveDown, MoveUp) or all
// the way (MoveToEnd, MoveToHome). Rows are processed last-first when
// moving toward the end and first-first when moving toward the front, so
// steps already taken never shift the rows still waiting.
//
// The batch is not atomic: the first failing step aborts it with ok false,
// but moves from earlier steps stay applied. promoted reports whether any
// step landed a row at position 0.
func (m *Model) MoveItems(rows []int, dir Direction) (promoted, ok bool) {
	sorted := append([]int(nil), rows...)
	sort.Ints(sorted)

	for i := range sorted {
		var from int
		if dir == MoveDown || dir == MoveToEnd {
			from = sorted[len(sorted)-1-i]
		} else {
			from = sorted[i]
		}

		var to int
		switch dir {
		case MoveDown:
			to = from + 1
		case MoveUp:
			to = from - 1
		case MoveToEnd:
			to = len(m.entries) - 1 - i
		default:
			to = i
		}

		if !m.Move(from, to) {
			return promoted, false
		}
		if !promoted {
			promoted = to == 0
		}
	}
	return promoted, true
}
