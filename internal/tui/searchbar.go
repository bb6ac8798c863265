package tui

import (
	"regexp"
)

// SearchMsg represents messages that the search component handles
type SearchMsg interface {
	isSearchMsg()
}

// Search message implementations
type StartSearchMsg struct{}

func (StartSearchMsg) isSearchMsg() {}

type UpdateSearchInputMsg struct {
	Input string
}

func (UpdateSearchInputMsg) isSearchMsg() {}

type ExecuteSearchMsg struct{}

func (ExecuteSearchMsg) isSearchMsg() {}

type CancelSearchMsg struct{}

func (CancelSearchMsg) isSearchMsg() {}

type ClearSearchMsg struct{}

func (ClearSearchMsg) isSearchMsg() {}

// SearchModel holds the state for search functionality
type SearchModel struct {
	Active  bool   // true when in search input mode
	Input   string // current search input
	Pattern string // executed search pattern
	Error   string // search error message

	re *regexp.Regexp // compiled executed pattern, nil when none
}

// NewSearchModel creates a new search model with default values
func NewSearchModel() SearchModel {
	return SearchModel{}
}

// Update handles search messages
func (s *SearchModel) Update(msg SearchMsg) error {
	switch m := msg.(type) {
	case StartSearchMsg:
		s.Active = true
		s.Input = ""
		s.Error = ""
	case UpdateSearchInputMsg:
		s.Input = m.Input
	case ExecuteSearchMsg:
		if s.Input == "" {
			s.Pattern = ""
			s.re = nil
			s.Error = ""
			s.Active = false
			return nil
		}
		// Compile case-insensitive; keep search mode open on error so the
		// user can correct the pattern.
		re, err := regexp.Compile("(?i)" + s.Input)
		if err != nil {
			s.Error = err.Error()
			return nil
		}
		s.Pattern = s.Input
		s.re = re
		s.Error = ""
		s.Active = false
	case CancelSearchMsg:
		s.Active = false
		s.Input = ""
		s.Error = ""
	case ClearSearchMsg:
		s.Pattern = ""
		s.re = nil
		s.Input = ""
		s.Error = ""
	}
	return nil
}

// Regexp returns the compiled executed pattern, or nil when no search is
// active.
func (s *SearchModel) Regexp() *regexp.Regexp {
	return s.re
}

// IsActive returns whether search input mode is currently active
func (s *SearchModel) IsActive() bool {
	return s.Active
}

// HasPattern returns whether an executed pattern is in effect
func (s *SearchModel) HasPattern() bool {
	return s.Pattern != ""
}
