package table

// ColumnDef describes how one column of T is read, shown and filtered.
// A definition with child Columns is a group: it only contributes a header
// spanning its leaves.
type ColumnDef[T any] struct {
	ID     string
	Header string

	// Accessor reads the cell value. Columns without one cannot be filtered.
	Accessor func(row T) any

	// Cell formats the cell. Defaults to Stringify of the accessor value.
	Cell func(c CellContext[T]) string

	// FilterFn matches the column filter. Nil picks one from the value type:
	// ArrIncludes for slices, EqualsString otherwise.
	FilterFn FilterFn

	DisableGlobalFilter bool
	DisableColumnFilter bool

	Columns []ColumnDef[T]
}

// Column is a resolved column definition bound to a Table.
type Column[T any] struct {
	def    ColumnDef[T]
	table  *Table[T]
	parent *Column[T]
	depth  int
	leaves []*Column[T]
	kids   []*Column[T]
}

// ID returns the column identifier.
func (c *Column[T]) ID() string { return c.def.ID }

// Def returns the definition the column was built from.
func (c *Column[T]) Def() ColumnDef[T] { return c.def }

// Depth is 0 for top-level columns and grows by one per group level.
func (c *Column[T]) Depth() int { return c.depth }

// Parent returns the enclosing group column, or nil.
func (c *Column[T]) Parent() *Column[T] { return c.parent }

// Columns returns the direct children of a group column.
func (c *Column[T]) Columns() []*Column[T] { return c.kids }

// IsGroup reports whether the column has children.
func (c *Column[T]) IsGroup() bool { return len(c.kids) > 0 }

// LeafColumns returns the leaves under c, or c itself for a leaf.
func (c *Column[T]) LeafColumns() []*Column[T] { return c.leaves }

// CanFilter reports whether a column filter can apply to this column.
func (c *Column[T]) CanFilter() bool {
	return c.def.Accessor != nil && !c.def.DisableColumnFilter
}

// CanGlobalFilter reports whether the global filter searches this column.
// Only leaf columns whose first row holds a string or number take part.
func (c *Column[T]) CanGlobalFilter() bool {
	if c.IsGroup() || c.def.Accessor == nil || c.def.DisableGlobalFilter {
		return false
	}
	data := c.table.opts.Data
	if len(data) == 0 {
		return false
	}
	return globalFilterable(c.def.Accessor(data[0]))
}

// FilterValue returns the column's current filter value.
func (c *Column[T]) FilterValue() string {
	return c.table.opts.State.ColumnFilters.Get(c.def.ID)
}

// IsFiltered reports whether the column has a filter value.
func (c *Column[T]) IsFiltered() bool {
	return c.FilterValue() != ""
}

// SetFilterValue sets or clears (empty value) the column filter.
func (c *Column[T]) SetFilterValue(value string) {
	c.table.SetColumnFilters(c.table.opts.State.ColumnFilters.With(c.def.ID, value))
}

func (c *Column[T]) value(row T) any {
	if c.def.Accessor == nil {
		return nil
	}
	return c.def.Accessor(row)
}

func (c *Column[T]) filterFn() FilterFn {
	if c.def.FilterFn != nil {
		return c.def.FilterFn
	}
	var sample any
	if data := c.table.opts.Data; len(data) > 0 {
		sample = c.value(data[0])
	}
	return autoFilterFn(sample)
}
