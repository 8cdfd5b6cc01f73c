package rowza

import (
	"strings"

	"github.com/go-theft-auto/rowza/table"
)

// DataTableState is the canonical state of one DataTable: search text,
// per-column filter values and the page cursor. The table engine reads a
// snapshot of it every frame and writes changes back through callbacks.
type DataTableState struct {
	Search        string
	ColumnFilters table.ColumnFilters
	Pagination    table.Pagination

	// defaults is what Reset restores the column filters to.
	defaults table.ColumnFilters
}

// NewDataTableState returns the mount-time state for the given filter
// configuration: every configured default applied, no search, first page.
func NewDataTableState(filters []FilterConfig, pageSize int) DataTableState {
	defaults := defaultFilters(filters)
	if pageSize <= 0 {
		pageSize = table.DefaultPageSize
	}
	return DataTableState{
		ColumnFilters: defaults,
		Pagination:    table.Pagination{PageSize: pageSize},
		defaults:      defaults,
	}
}

func defaultFilters(filters []FilterConfig) table.ColumnFilters {
	var out table.ColumnFilters
	for _, f := range filters {
		out = out.With(f.ColumnID, f.DefaultValue)
	}
	return out
}

// SetSearch replaces the search text.
func (s *DataTableState) SetSearch(text string) {
	s.Search = text
}

// SetColumnFilter sets the filter of one column. A blank value clears it.
// At most one value per column is ever kept.
func (s *DataTableState) SetColumnFilter(columnID, value string) {
	s.ColumnFilters = s.ColumnFilters.With(columnID, value)
}

// SetColumnFilters replaces every column filter.
func (s *DataTableState) SetColumnFilters(filters table.ColumnFilters) {
	var out table.ColumnFilters
	for _, f := range filters {
		out = out.With(f.ID, f.Value)
	}
	s.ColumnFilters = out
}

// SetPagination replaces the page cursor. The engine clamps it to the
// filtered row count.
func (s *DataTableState) SetPagination(pageIndex, pageSize int) {
	s.Pagination = table.Pagination{PageIndex: pageIndex, PageSize: pageSize}
}

// Reset clears the search and restores the configured default filters.
// The page cursor is left alone; DataTable moves back to the first page
// through the engine.
func (s *DataTableState) Reset() {
	s.Search = ""
	s.ColumnFilters = s.Defaults()
}

// Defaults returns the filter set Reset restores.
func (s *DataTableState) Defaults() table.ColumnFilters {
	return append(table.ColumnFilters(nil), s.defaults...)
}

// HasActiveFilters reports whether the search or any column filter holds
// non-blank text.
func (s *DataTableState) HasActiveFilters() bool {
	return strings.TrimSpace(s.Search) != "" || s.ColumnFilters.Active()
}

// TableState returns the snapshot handed to the table engine.
func (s *DataTableState) TableState() table.State {
	return table.State{
		GlobalFilter:  s.Search,
		ColumnFilters: append(table.ColumnFilters(nil), s.ColumnFilters...),
		Pagination:    s.Pagination,
	}
}
