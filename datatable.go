package rowza

import (
	"github.com/go-theft-auto/rowza/table"
)

// dataTableStore holds the state of every mounted DataTable. An entry is
// created the first frame a table ID is drawn and dropped the frame after
// it stops being drawn.
var dataTableStore = NewFrameStore[DataTableState]().OnEvict(func(id ID, s DataTableState) {
	logger.Debug("DataTable: unmount", "id", id, "search", s.Search, "filters", len(s.ColumnFilters))
})

// DefaultDataTableFlags is the table chrome used when DataTableProps.Flags
// is zero.
const DefaultDataTableFlags = TableFlagsBorders | TableFlagsRowBg | TableFlagsHighlightHover

// DataTableProps configures a DataTable. Zero fields take defaults.
type DataTableProps[T any] struct {
	Columns []table.ColumnDef[T]
	Data    []T
	// Filters draws one select per column; only the first entry for a
	// ColumnID is used.
	Filters []FilterConfig
	Labels  Labels

	PageSize int // 0 = table.DefaultPageSize

	// GetRowID derives row IDs. Defaults to the row index.
	GetRowID func(row T, index int) string

	Flags       TableFlags
	SearchWidth float32 // 0 = 240
}

// DataTableResult describes what DataTable drew this frame.
type DataTableResult struct {
	ID ID

	// BodyRows holds the rendered cells of each data row drawn, in order.
	// It is empty when NoResults is set.
	BodyRows  [][]string
	NoResults bool
	// EmptyLabel is the text of the full-width row drawn in place of data
	// rows, or "" when rows were drawn.
	EmptyLabel string

	PageLabel   string
	PageCount   int
	CanPrevious bool
	CanNext     bool

	ResetVisible bool

	// Controls locates the interactive parts as drawn.
	Controls DataTableControls

	// State is the table state after this frame's interaction.
	State table.State
}

// DataTableControls holds the screen bounds of a DataTable's controls.
// Reset is zero while the reset button is hidden.
type DataTableControls struct {
	Search   Rect
	Filters  []Rect // one per filtered column, in configuration order
	Reset    Rect
	Previous Rect
	Next     Rect
}

// DataTable draws a searchable, filterable, paginated table over
// props.Data: a filter bar (search input, one select per FilterConfig and a
// reset button while any filter is active), the grid, and the page
// controls. State lives in a frame store keyed by id under the current ID
// scope.
//
//	res := rowza.DataTable(ctx, "users", rowza.DataTableProps[User]{
//	    Columns: columns,
//	    Data:    users,
//	    Filters: []rowza.FilterConfig{{ColumnID: "role", Options: roles}},
//	})
func DataTable[T any](ctx *Context, id string, props DataTableProps[T]) DataTableResult {
	if props.PageSize <= 0 {
		props.PageSize = table.DefaultPageSize
	}
	if props.Flags == 0 {
		props.Flags = DefaultDataTableFlags
	}
	if props.SearchWidth <= 0 {
		props.SearchWidth = 240
	}
	props.Filters = uniqueFilters(id, props.Filters)

	ctx.PushID(id)
	defer ctx.PopID()

	v := &dataTableView[T]{
		ctx:    ctx,
		id:     ctx.CurrentID(),
		name:   id,
		props:  props,
		labels: props.Labels.withDefaults(),
	}
	v.state = dataTableStore.Get(v.id, func() DataTableState {
		logger.Debug("DataTable: mount", "id", id, "filters", len(props.Filters), "pageSize", props.PageSize)
		return NewDataTableState(props.Filters, props.PageSize)
	})
	v.state.defaults = defaultFilters(props.Filters)
	v.build()

	res := DataTableResult{ID: v.id}
	ctx.VStack(Gap(SpaceMD))(func() {
		res.ResetVisible = v.filterBar(&res.Controls)
		v.tbl.ClampPagination()

		res.BodyRows, res.EmptyLabel = v.grid()
		res.NoResults = res.EmptyLabel != ""

		p := v.tbl.Pagination()
		res.PageCount = v.tbl.PageCount()
		res.PageLabel = v.labels.PageLabel(p.PageIndex+1, res.PageCount)
		res.CanPrevious = v.tbl.CanPreviousPage()
		res.CanNext = v.tbl.CanNextPage()
		v.pager(res.PageLabel, &res.Controls)
	})

	res.State = v.state.TableState()
	return res
}

// dataTableView binds one frame of a DataTable: its props, its state and
// the engine computed from them.
type dataTableView[T any] struct {
	ctx    *Context
	id     ID
	name   string
	props  DataTableProps[T]
	labels Labels
	state  *DataTableState
	tbl    *table.Table[T]
}

// build (re)creates the engine from the current state. Engine changes are
// written back to the state through the callbacks.
func (v *dataTableView[T]) build() {
	state, name := v.state, v.name
	v.tbl = table.New(table.Options[T]{
		Data:     v.props.Data,
		Columns:  v.props.Columns,
		State:    state.TableState(),
		GetRowID: v.props.GetRowID,
		OnGlobalFilterChange: func(filter string) {
			logger.Debug("DataTable: search", "id", name, "search", filter)
			state.SetSearch(filter)
		},
		OnColumnFiltersChange: func(filters table.ColumnFilters) {
			logger.Debug("DataTable: filters", "id", name, "filters", filters)
			state.SetColumnFilters(filters)
		},
		OnPaginationChange: func(p table.Pagination) {
			logger.Debug("DataTable: page", "id", name, "pageIndex", p.PageIndex, "pageSize", p.PageSize)
			state.SetPagination(p.PageIndex, p.PageSize)
		},
	})
}

// setColumnFilter routes a select change through the engine. A filter for a
// column the engine doesn't know is still stored; it matches nothing and is
// ignored by the row model.
func (v *dataTableView[T]) setColumnFilter(columnID, value string) {
	if col := v.tbl.Column(columnID); col != nil {
		col.SetFilterValue(value)
		return
	}
	v.tbl.SetColumnFilters(v.tbl.State().ColumnFilters.With(columnID, value))
}

// filterBar draws the search input, the column selects and, while a filter
// is active, the reset button. It reports whether the reset button was
// drawn.
func (v *dataTableView[T]) filterBar(controls *DataTableControls) bool {
	ctx := v.ctx
	resetVisible := false
	ctx.HStack(Gap(SpaceMD))(func() {
		search := v.state.Search
		if ctx.InputText("", &search,
			WithID("search"),
			WithPlaceholder(v.labels.SearchPlaceholder),
			WithWidth(v.props.SearchWidth)) {
			v.tbl.SetGlobalFilter(search)
		}
		controls.Search = ctx.LastItemRect()

		for _, f := range v.props.Filters {
			value := v.state.ColumnFilters.Get(f.ColumnID)
			if ctx.Select("", &value, f.selectOptions(),
				WithID("filter:"+f.ColumnID),
				WithPlaceholder(f.placeholder())) {
				v.setColumnFilter(f.ColumnID, value)
			}
			controls.Filters = append(controls.Filters, ctx.LastItemRect())
		}

		if !v.state.HasActiveFilters() {
			return
		}
		resetVisible = true
		clicked := ctx.Button(v.labels.ResetFilters, WithID("reset"))
		controls.Reset = ctx.LastItemRect()
		if clicked {
			logger.Debug("DataTable: reset", "id", v.name, "defaults", v.state.Defaults())
			v.state.Reset()
			v.build()
			v.tbl.ResetPageIndex()
		}
	})
	return resetVisible
}

// grid draws the header groups and the current page. With no matching rows
// it draws one full-width row with the no-results label and returns that
// label instead of rows.
func (v *dataTableView[T]) grid() ([][]string, string) {
	leaves := v.tbl.LeafColumns()
	cols := make([]TableColumn, len(leaves))
	for i, leaf := range leaves {
		cols[i] = TableColumn{Label: headerLabel(leaf), Flags: TableColumnFlagsWidthStretch}
	}

	t := v.ctx.BeginTable("grid", cols, v.props.Flags, 0)
	for _, group := range v.tbl.HeaderGroups() {
		cells := make([]HeaderCell, len(group.Headers))
		for i, h := range group.Headers {
			cells[i] = HeaderCell{Label: h.Render(), Span: h.ColSpan}
		}
		t.HeaderRow(cells...)
	}

	if v.tbl.FilteredRowModel().Len() == 0 {
		t.NextRow()
		t.SpanCell(v.labels.NoResults, 0)
		t.End()
		return nil, v.labels.NoResults
	}

	rows := v.tbl.RowModel().Rows
	drawn := make([][]string, 0, len(rows))
	for _, row := range rows {
		t.NextRow()
		cells := row.VisibleCells()
		texts := make([]string, len(cells))
		for i, cell := range cells {
			texts[i] = cell.Render()
			t.Cell(texts[i])
		}
		drawn = append(drawn, texts)
	}
	t.End()
	return drawn, ""
}

// uniqueFilters keeps the first FilterConfig of each column. Selects are
// keyed by column, so a second entry would share the first one's dropdown.
func uniqueFilters(name string, filters []FilterConfig) []FilterConfig {
	seen := make(map[string]bool, len(filters))
	out := filters[:0:0]
	for _, f := range filters {
		if seen[f.ColumnID] {
			logger.Debug("DataTable: duplicate filter ignored", "id", name, "column", f.ColumnID)
			continue
		}
		seen[f.ColumnID] = true
		out = append(out, f)
	}
	return out
}

func headerLabel[T any](col *table.Column[T]) string {
	if h := col.Def().Header; h != "" {
		return h
	}
	return col.ID()
}

// pager draws the page label and the previous/next buttons, right-aligned.
// Buttons at a bound are drawn disabled.
func (v *dataTableView[T]) pager(label string, controls *DataTableControls) {
	ctx := v.ctx
	side := ctx.lineHeight() + ctx.style.ButtonPadding*2
	width := ctx.MeasureText(label).X + side*2 + SpaceMD*2
	offset := maxf(ctx.currentLayoutWidth()-width, 0)

	var prev, next bool
	ctx.HStack(Gap(SpaceMD))(func() {
		ctx.Spacing(offset)
		ctx.labelBox(label, side)
		prev = ctx.IconButton("prev", IconChevronLeft,
			WithDisabled(!v.tbl.CanPreviousPage()),
			WithTooltip("Previous page"))
		controls.Previous = ctx.LastItemRect()
		next = ctx.IconButton("next", IconChevronRight,
			WithDisabled(!v.tbl.CanNextPage()),
			WithTooltip("Next page"))
		controls.Next = ctx.LastItemRect()
	})

	if prev {
		v.tbl.PreviousPage()
	}
	if next {
		v.tbl.NextPage()
	}
}

// labelBox draws text vertically centered in a box of the given height, so
// it lines up with buttons in a row.
func (ctx *Context) labelBox(text string, height float32) {
	pos := ctx.ItemPos()
	size := ctx.MeasureText(text)
	ctx.addText(pos.X, pos.Y+(height-size.Y)/2, text, ctx.style.TextColor)
	ctx.AdvanceCursor(Vec2{X: size.X, Y: height})
}
