package rowza

import "fmt"

// Default DataTable labels.
const (
	DefaultSearchPlaceholder = "Search..."
	DefaultResetFilters      = "Reset Filters"
	DefaultNoResults         = "No results found"
	DefaultFilterPlaceholder = "All"
)

// Labels holds the user-facing strings of a DataTable. Zero fields fall
// back to the defaults.
type Labels struct {
	SearchPlaceholder string
	ResetFilters      string
	NoResults         string

	// PageLabel formats the pagination label from the 1-based page number
	// and the page count.
	PageLabel func(page, pageCount int) string
}

// DefaultPageLabel renders "Page 1 of 3".
func DefaultPageLabel(page, pageCount int) string {
	return fmt.Sprintf("Page %d of %d", page, pageCount)
}

func (l Labels) withDefaults() Labels {
	if l.SearchPlaceholder == "" {
		l.SearchPlaceholder = DefaultSearchPlaceholder
	}
	if l.ResetFilters == "" {
		l.ResetFilters = DefaultResetFilters
	}
	if l.NoResults == "" {
		l.NoResults = DefaultNoResults
	}
	if l.PageLabel == nil {
		l.PageLabel = DefaultPageLabel
	}
	return l
}

// FilterOption is one choice of a column filter select.
type FilterOption struct {
	Label string
	Value string
}

// FilterConfig declares a select filter for one column. An empty
// DefaultValue means the column starts unfiltered.
type FilterConfig struct {
	ColumnID     string
	Placeholder  string // first entry of the select, clears the filter
	Options      []FilterOption
	DefaultValue string
}

func (f FilterConfig) selectOptions() []SelectOption {
	out := make([]SelectOption, len(f.Options))
	for i, o := range f.Options {
		out[i] = SelectOption(o)
	}
	return out
}

func (f FilterConfig) placeholder() string {
	if f.Placeholder == "" {
		return DefaultFilterPlaceholder
	}
	return f.Placeholder
}
