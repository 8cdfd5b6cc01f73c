package table

import (
	"strings"

	"golang.org/x/exp/slices"
)

// DefaultPageSize is used when a Pagination carries a non-positive page size.
const DefaultPageSize = 25

// Pagination is the page cursor. PageIndex is zero-based.
type Pagination struct {
	PageIndex int
	PageSize  int
}

// size returns the effective page size.
func (p Pagination) size() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}

// ColumnFilter is the active filter value of one column.
type ColumnFilter struct {
	ID    string
	Value string
}

// ColumnFilters holds at most one entry per column ID, in the order the
// columns were first filtered.
type ColumnFilters []ColumnFilter

// Get returns the filter value for id, or "" when the column is unfiltered.
func (f ColumnFilters) Get(id string) string {
	if i := f.index(id); i >= 0 {
		return f[i].Value
	}
	return ""
}

// With returns a copy of f with id set to value. An empty (or all-space)
// value removes the entry. The receiver is never modified.
func (f ColumnFilters) With(id, value string) ColumnFilters {
	out := slices.Clone(f)
	i := out.index(id)
	if strings.TrimSpace(value) == "" {
		if i >= 0 {
			out = slices.Delete(out, i, i+1)
		}
		return out
	}
	if i >= 0 {
		out[i].Value = value
		return out
	}
	return append(out, ColumnFilter{ID: id, Value: value})
}

// Active reports whether any entry carries a non-blank value.
func (f ColumnFilters) Active() bool {
	return slices.ContainsFunc(f, func(c ColumnFilter) bool {
		return strings.TrimSpace(c.Value) != ""
	})
}

func (f ColumnFilters) index(id string) int {
	return slices.IndexFunc(f, func(c ColumnFilter) bool { return c.ID == id })
}

// State is the controlled state the engine reads on construction.
type State struct {
	GlobalFilter  string
	ColumnFilters ColumnFilters
	Pagination    Pagination
}
