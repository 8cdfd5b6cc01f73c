package table

import "strconv"

// Row wraps one record of the data slice.
type Row[T any] struct {
	ID       string
	Index    int
	Original T

	table *Table[T]
}

// Value returns the accessor value of the named column, or nil.
func (r *Row[T]) Value(columnID string) any {
	col := r.table.Column(columnID)
	if col == nil {
		return nil
	}
	return col.value(r.Original)
}

// VisibleCells returns one cell per leaf column.
func (r *Row[T]) VisibleCells() []Cell[T] {
	cells := make([]Cell[T], len(r.table.leaves))
	for i, col := range r.table.leaves {
		cells[i] = Cell[T]{ID: r.ID + "_" + col.ID(), Row: r, Column: col}
	}
	return cells
}

// Cell is the intersection of a row and a leaf column.
type Cell[T any] struct {
	ID     string
	Row    *Row[T]
	Column *Column[T]
}

// CellContext is passed to ColumnDef.Cell.
type CellContext[T any] struct {
	Row    *Row[T]
	Column *Column[T]
	Value  any
}

// Value returns the raw accessor value.
func (c Cell[T]) Value() any {
	return c.Column.value(c.Row.Original)
}

// Render formats the cell with the column's Cell func, or Stringify.
func (c Cell[T]) Render() string {
	v := c.Value()
	if fn := c.Column.def.Cell; fn != nil {
		return fn(CellContext[T]{Row: c.Row, Column: c.Column, Value: v})
	}
	return Stringify(v)
}

// RowModel is an ordered set of rows.
type RowModel[T any] struct {
	Rows []*Row[T]
}

// Len returns the number of rows.
func (m *RowModel[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Rows)
}

func (t *Table[T]) buildCoreRowModel() *RowModel[T] {
	rows := make([]*Row[T], len(t.opts.Data))
	for i, rec := range t.opts.Data {
		id := strconv.Itoa(i)
		if t.opts.GetRowID != nil {
			id = t.opts.GetRowID(rec, i)
		}
		rows[i] = &Row[T]{ID: id, Index: i, Original: rec, table: t}
	}
	return &RowModel[T]{Rows: rows}
}

// CoreRowModel returns every row, unfiltered.
func (t *Table[T]) CoreRowModel() *RowModel[T] {
	return t.core
}

// FilteredRowModel returns the rows passing both the column filters and the
// global filter, before pagination.
func (t *Table[T]) FilteredRowModel() *RowModel[T] {
	if t.filtered != nil {
		return t.filtered
	}

	var filters []activeFilter[T]
	for _, f := range t.opts.State.ColumnFilters {
		col := t.Column(f.ID)
		if col == nil || !col.CanFilter() {
			continue
		}
		filters = append(filters, activeFilter[T]{col: col, fn: col.filterFn(), value: f.Value})
	}

	global := Fold(t.opts.State.GlobalFilter)
	var searchable []*Column[T]
	if global != "" {
		for _, col := range t.leaves {
			if col.CanGlobalFilter() {
				searchable = append(searchable, col)
			}
		}
	}

	if len(filters) == 0 && global == "" {
		t.filtered = t.core
		return t.filtered
	}

	rows := make([]*Row[T], 0, len(t.core.Rows))
	for _, row := range t.core.Rows {
		if passes(row, filters, global, searchable) {
			rows = append(rows, row)
		}
	}
	t.filtered = &RowModel[T]{Rows: rows}
	return t.filtered
}

type activeFilter[T any] struct {
	col   *Column[T]
	fn    FilterFn
	value string
}

func passes[T any](row *Row[T], filters []activeFilter[T], global string, searchable []*Column[T]) bool {
	for _, f := range filters {
		if !f.fn(f.col.value(row.Original), f.value) {
			return false
		}
	}
	if global == "" {
		return true
	}
	for _, col := range searchable {
		if IncludesString(col.value(row.Original), global) {
			return true
		}
	}
	return false
}

// RowModel returns the rows of the current page.
func (t *Table[T]) RowModel() *RowModel[T] {
	filtered := t.FilteredRowModel()
	p := t.opts.State.Pagination
	size := p.size()
	start := t.pageIndex() * size
	if start >= len(filtered.Rows) {
		return &RowModel[T]{}
	}
	end := min(start+size, len(filtered.Rows))
	return &RowModel[T]{Rows: filtered.Rows[start:end]}
}
