// Package model implements the ordered clipboard history collection.
// It keeps row order, mutation and search/highlight state consistent
// while announcing every structural change through an injected Notifier.
//
// The model is single-threaded by contract: one logical consumer owns it
// and every operation runs to completion before the next begins. Callers
// with multiple goroutines must serialize access themselves.
package model

// Entry is one history record: raw text, an optional image payload, and
// the filter/highlight state derived from the last applied search.
type Entry struct {
	text        string
	image       []byte
	highlighted string
	filtered    bool
}

func newEntry(text string) *Entry {
	return &Entry{text: text}
}

// setText replaces the entry's content with plain text, dropping any
// image payload and stale highlight markup.
func (e *Entry) setText(text string) {
	e.text = text
	e.image = nil
	e.highlighted = ""
}

// setImage attaches an image payload. The raw text is kept so the edit
// channel stays meaningful.
func (e *Entry) setImage(image []byte) {
	e.image = image
}

// display returns the highlight markup when one is set, else the raw text.
func (e *Entry) display() string {
	if e.highlighted != "" {
		return e.highlighted
	}
	return e.text
}
