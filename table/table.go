package table

import (
	"strconv"
)

// Options configures a Table. State is read once by New; changes the engine
// makes are reported through the On*Change callbacks, and the caller is
// expected to feed the new value back on the next New.
type Options[T any] struct {
	Data    []T
	Columns []ColumnDef[T]
	State   State

	// GetRowID derives a stable row ID. Defaults to the row index.
	GetRowID func(row T, index int) string

	OnGlobalFilterChange  func(filter string)
	OnColumnFiltersChange func(filters ColumnFilters)
	OnPaginationChange    func(p Pagination)

	// KeepPageIndex stops filter changes from sending the table back to the
	// first page.
	KeepPageIndex bool
}

// Table is the computed view over Options. It is cheap to build and meant to
// be rebuilt whenever data or state changes.
type Table[T any] struct {
	opts    Options[T]
	columns []*Column[T]
	flat    []*Column[T]
	leaves  []*Column[T]
	byID    map[string]*Column[T]

	core     *RowModel[T]
	filtered *RowModel[T]
}

// New builds a table from opts.
func New[T any](opts Options[T]) *Table[T] {
	t := &Table[T]{
		opts: opts,
		byID: make(map[string]*Column[T]),
	}
	t.opts.State.ColumnFilters = normalizeFilters(opts.State.ColumnFilters)
	t.columns = t.buildColumns(opts.Columns, nil, 0)
	t.core = t.buildCoreRowModel()
	return t
}

func (t *Table[T]) buildColumns(defs []ColumnDef[T], parent *Column[T], depth int) []*Column[T] {
	cols := make([]*Column[T], 0, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			def.ID = def.Header
		}
		if def.ID == "" {
			def.ID = "col_" + strconv.Itoa(depth) + "_" + strconv.Itoa(i)
		}
		col := &Column[T]{def: def, table: t, parent: parent, depth: depth}
		t.flat = append(t.flat, col)
		if _, dup := t.byID[def.ID]; !dup {
			t.byID[def.ID] = col
		}
		if len(def.Columns) > 0 {
			col.kids = t.buildColumns(def.Columns, col, depth+1)
			for _, kid := range col.kids {
				col.leaves = append(col.leaves, kid.leaves...)
			}
		} else {
			col.leaves = []*Column[T]{col}
			t.leaves = append(t.leaves, col)
		}
		cols = append(cols, col)
	}
	return cols
}

// State returns the state snapshot the table currently computes from.
func (t *Table[T]) State() State {
	return t.opts.State
}

// Columns returns the top-level columns.
func (t *Table[T]) Columns() []*Column[T] {
	return t.columns
}

// AllColumns returns every column, groups included, depth first.
func (t *Table[T]) AllColumns() []*Column[T] {
	return t.flat
}

// LeafColumns returns the columns that produce cells, left to right.
func (t *Table[T]) LeafColumns() []*Column[T] {
	return t.leaves
}

// Column looks up a column by ID. It returns nil for unknown IDs.
func (t *Table[T]) Column(id string) *Column[T] {
	return t.byID[id]
}

// SetGlobalFilter replaces the global filter.
func (t *Table[T]) SetGlobalFilter(filter string) {
	if filter == t.opts.State.GlobalFilter {
		return
	}
	t.opts.State.GlobalFilter = filter
	t.filtered = nil
	if t.opts.OnGlobalFilterChange != nil {
		t.opts.OnGlobalFilterChange(filter)
	}
	t.autoResetPageIndex()
}

// ResetGlobalFilter clears the global filter.
func (t *Table[T]) ResetGlobalFilter() {
	t.SetGlobalFilter("")
}

// SetColumnFilters replaces every column filter at once.
func (t *Table[T]) SetColumnFilters(filters ColumnFilters) {
	filters = normalizeFilters(filters)
	if equalFilters(filters, t.opts.State.ColumnFilters) {
		return
	}
	t.opts.State.ColumnFilters = filters
	t.filtered = nil
	if t.opts.OnColumnFiltersChange != nil {
		t.opts.OnColumnFiltersChange(filters)
	}
	t.autoResetPageIndex()
}

// ResetColumnFilters removes every column filter.
func (t *Table[T]) ResetColumnFilters() {
	t.SetColumnFilters(nil)
}

func (t *Table[T]) autoResetPageIndex() {
	if t.opts.KeepPageIndex {
		return
	}
	t.ResetPageIndex()
}

// normalizeFilters drops blank values and keeps the last value per column.
func normalizeFilters(in ColumnFilters) ColumnFilters {
	var out ColumnFilters
	for _, f := range in {
		out = out.With(f.ID, f.Value)
	}
	return out
}

func equalFilters(a, b ColumnFilters) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
