package model

import (
	"regexp"
	"strings"
)

const (
	emphasisOpen  = `<span class="em">`
	emphasisClose = `</span>`
)

// escaper maps literal text into display markup. Built once at package
// init; strings.Replacer replaces all pairs in a single pass, so already
// escaped output is never escaped twice.
var escaper = strings.NewReplacer(
	" ", "&nbsp;",
	"\t", "&nbsp;&nbsp;",
	"\n", "<br />",
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
)

func escape(s string) string { return escaper.Replace(s) }

// patternNone reports whether re means "no active search".
func patternNone(re *regexp.Regexp) bool {
	return re == nil || re.String() == ""
}

// SetSearch replaces the active search pattern and recomputes every row's
// filter and highlight state. Setting the pattern it already has (with nil
// and the empty expression both counting as none) is a no-op. A real
// change announces one data change spanning the full row range.
func (m *Model) SetSearch(re *regexp.Regexp) {
	if patternNone(re) {
		if patternNone(m.re) {
			return
		}
		m.re = nil
	} else if !patternNone(m.re) && m.re.String() == re.String() {
		return
	} else {
		m.re = re
	}

	for i := range m.entries {
		m.applySearch(i, m.re)
	}
	if n := len(m.entries); n > 0 {
		m.notifier.DataChanged(0, n-1)
	}
}

// applySearch recomputes one row's filter and highlight state against re.
//
// A none pattern, or one that matches the empty string, leaves the row
// visible and unscanned; that is distinct from "scanned, no match", which
// hides the row. Matches are scanned non-overlapping from the front; a
// zero-length match mid-scan stops the scan with whatever markup has
// accumulated so far.
func (m *Model) applySearch(row int, re *regexp.Regexp) {
	e := m.entries[row]
	if patternNone(re) || re.MatchString("") {
		e.filtered = false
		e.highlighted = ""
		return
	}

	var highlight strings.Builder
	text := e.text
	a := 0
	for {
		loc := re.FindStringIndex(text[a:])
		if loc == nil || loc[1] == loc[0] {
			break
		}
		b, end := a+loc[0], a+loc[1]
		highlight.WriteString(escape(text[a:b]))
		highlight.WriteString(emphasisOpen)
		highlight.WriteString(escape(text[b:end]))
		highlight.WriteString(emphasisClose)
		a = end
	}

	if highlight.Len() == 0 {
		e.filtered = true
		e.highlighted = ""
		return
	}
	if a != len(text) {
		highlight.WriteString(escape(text[a:]))
	}
	e.filtered = false
	e.highlighted = highlight.String()
}
