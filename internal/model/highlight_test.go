package model

import (
	"reflect"
	"regexp"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"space", "a b", "a&nbsp;b"},
		{"tab", "a\tb", "a&nbsp;&nbsp;b"},
		{"newline", "a\nb", "a<br />b"},
		{"angle brackets", "<tag>", "&lt;tag&gt;"},
		{"ampersand", "a&b", "a&amp;b"},
		{"mixed", " <a>&b\n", "&nbsp;&lt;a&gt;&amp;b<br />"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escape(tt.input); got != tt.want {
				t.Errorf("escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestModel_SetSearch_Highlights(t *testing.T) {
	m := New(nil, []string{"banana"})

	m.SetSearch(regexp.MustCompile("a"))

	if m.IsFiltered(0) {
		t.Fatal("IsFiltered(0) = true, want false for a matching row")
	}
	want := `b<span class="em">a</span>n<span class="em">a</span>n<span class="em">a</span>`
	if got := m.Data(0, RoleDisplay).Text; got != want {
		t.Errorf("display = %q, want %q", got, want)
	}
	// The edit channel never sees markup.
	if got := m.Data(0, RoleEdit).Text; got != "banana" {
		t.Errorf("edit = %q, want %q", got, "banana")
	}
}

func TestModel_SetSearch_TrailingRemainder(t *testing.T) {
	m := New(nil, []string{"banana"})

	m.SetSearch(regexp.MustCompile("an"))

	want := `b<span class="em">an</span><span class="em">an</span>a`
	if got := m.Data(0, RoleDisplay).Text; got != want {
		t.Errorf("display = %q, want %q", got, want)
	}
}

func TestModel_SetSearch_EscapesLiteralAndMatch(t *testing.T) {
	m := New(nil, []string{"a <b> a"})

	m.SetSearch(regexp.MustCompile("<b>"))

	want := `a&nbsp;<span class="em">&lt;b&gt;</span>&nbsp;a`
	if got := m.Data(0, RoleDisplay).Text; got != want {
		t.Errorf("display = %q, want %q", got, want)
	}
}

func TestModel_SetSearch_NoMatchFilters(t *testing.T) {
	m := New(nil, []string{"banana", "zebra"})

	m.SetSearch(regexp.MustCompile("z"))

	if !m.IsFiltered(0) {
		t.Error("IsFiltered(0) = false, want true for a non-matching row")
	}
	if m.IsFiltered(1) {
		t.Error("IsFiltered(1) = true, want false for a matching row")
	}
}

func TestModel_SetSearch_None(t *testing.T) {
	rec := newRecorder()
	m := New(rec, []string{"banana", "apple"})

	m.SetSearch(regexp.MustCompile("z"))
	if !m.IsFiltered(0) || !m.IsFiltered(1) {
		t.Fatal("expected both rows filtered after non-matching search")
	}

	rec.events = nil
	m.SetSearch(nil)

	for i := 0; i < 2; i++ {
		if m.IsFiltered(i) {
			t.Errorf("IsFiltered(%d) = true, want false after clearing search", i)
		}
	}
	want := []recorded{{kind: "dataChanged", first: 0, last: 1}}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %v, want one full-range data change %v", rec.events, want)
	}
}

func TestModel_SetSearch_SamePatternNoop(t *testing.T) {
	rec := newRecorder()
	m := New(rec, []string{"banana"})

	m.SetSearch(regexp.MustCompile("an"))
	rec.events = nil

	m.SetSearch(regexp.MustCompile("an"))
	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none for an identical pattern", rec.events)
	}

	// Both-none is also a no-op.
	m2 := New(rec, []string{"banana"})
	rec.events = nil
	m2.SetSearch(nil)
	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none when clearing an empty search", rec.events)
	}
}

func TestModel_SetSearch_EmptyMatchingPattern(t *testing.T) {
	m := New(nil, []string{"banana"})

	// A pattern that matches the empty string leaves rows visible and
	// unscanned instead of looping on zero-width matches.
	m.SetSearch(regexp.MustCompile("x*"))

	if m.IsFiltered(0) {
		t.Error("IsFiltered(0) = true, want false for an empty-matching pattern")
	}
	if got := m.Data(0, RoleDisplay).Text; got != "banana" {
		t.Errorf("display = %q, want raw %q", got, "banana")
	}
}

func TestModel_SetSearch_FullRangeNotification(t *testing.T) {
	rec := newRecorder()
	m := New(rec, []string{"a", "b", "c"})

	m.SetSearch(regexp.MustCompile("a"))

	want := []recorded{{kind: "dataChanged", first: 0, last: 2}}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestModel_SetText_ReappliesSearch(t *testing.T) {
	m := New(nil, []string{"banana"})
	m.SetSearch(regexp.MustCompile("z"))

	if !m.IsFiltered(0) {
		t.Fatal("expected row filtered before content change")
	}

	// New content matches the active pattern, so the row resurfaces.
	m.SetText(0, "zebra")
	if m.IsFiltered(0) {
		t.Error("IsFiltered(0) = true, want false after matching content set")
	}
	want := `<span class="em">z</span>ebra`
	if got := m.Data(0, RoleDisplay).Text; got != want {
		t.Errorf("display = %q, want %q", got, want)
	}
}

func TestModel_SetSearch_EmptyStore(t *testing.T) {
	rec := newRecorder()
	m := New(rec, nil)

	// No rows means nothing to recompute and nothing to announce.
	m.SetSearch(regexp.MustCompile("a"))
	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none on an empty store", rec.events)
	}
}
