package rowza

// tableStore keeps per-table column measurements between frames.
var tableStore = NewFrameStore[TableState]()

// TableFlags control table behavior and appearance.
type TableFlags uint32

const (
	TableFlagsNone TableFlags = 0

	TableFlagsAutoSizeColumns TableFlags = 1 << 5 // Auto-size columns to fit content

	// Borders
	TableFlagsBordersInnerH TableFlags = 1 << 8  // Horizontal borders between rows
	TableFlagsBordersInnerV TableFlags = 1 << 9  // Vertical borders between columns
	TableFlagsBordersOuterH TableFlags = 1 << 10 // Horizontal border on top/bottom
	TableFlagsBordersOuterV TableFlags = 1 << 11 // Vertical border on left/right

	TableFlagsBordersInner TableFlags = TableFlagsBordersInnerH | TableFlagsBordersInnerV
	TableFlagsBordersOuter TableFlags = TableFlagsBordersOuterH | TableFlagsBordersOuterV
	TableFlagsBorders      TableFlags = TableFlagsBordersInner | TableFlagsBordersOuter

	// Row appearance
	TableFlagsRowBg          TableFlags = 1 << 16 // Alternate row background colors
	TableFlagsHighlightHover TableFlags = 1 << 17 // Highlight hovered row
)

// TableColumnFlags control individual column sizing.
type TableColumnFlags uint32

const (
	TableColumnFlagsNone         TableColumnFlags = 0
	TableColumnFlagsWidthFixed   TableColumnFlags = 1 << 0 // Fixed width column
	TableColumnFlagsWidthStretch TableColumnFlags = 1 << 1 // Stretch to fill available space
	TableColumnFlagsWidthAuto    TableColumnFlags = 1 << 2 // Auto-size to content (default)
)

// TableColumn defines a table column.
type TableColumn struct {
	Label     string
	Flags     TableColumnFlags
	InitWidth float32 // Fixed width, or stretch weight (0 = 1)
	MinWidth  float32
	MaxWidth  float32 // 0 = unlimited

	width float32 // computed this frame
}

// HeaderCell is one cell of a header row. Span is the number of leaf
// columns it covers (0 = 1). An empty label draws a blank cell.
type HeaderCell struct {
	Label string
	Span  int
}

// TableState persists table measurements between frames.
type TableState struct {
	MaxContentWidths []float32 // widest cell per column, last frame
}

// Table draws one table for the current frame.
//
//	t := ctx.BeginTable("users", cols, rowza.TableFlagsBorders|rowza.TableFlagsRowBg)
//	t.HeaderRow()
//	for _, u := range users {
//	    t.NextRow()
//	    t.Cell(u.Name)
//	    t.Cell(u.Email)
//	}
//	t.End()
type Table struct {
	id      ID
	ctx     *Context
	flags   TableFlags
	columns []TableColumn

	startX, startY float32
	width          float32
	rowHeight      float32

	// y is the top of the next row.
	y             float32
	rowY          float32
	currentRow    int // data rows only
	currentColumn int

	state          *TableState
	frameMaxWidths []float32
}

// BeginTable starts a table at the cursor. width 0 uses the layout width.
func (ctx *Context) BeginTable(id string, columns []TableColumn, flags TableFlags, width float32) *Table {
	tableID := ctx.StableID(id)
	state := tableStore.Get(tableID, func() TableState {
		return TableState{MaxContentWidths: make([]float32, len(columns))}
	})
	if len(state.MaxContentWidths) != len(columns) {
		state.MaxContentWidths = make([]float32, len(columns))
	}

	pos := ctx.ItemPos()
	if width <= 0 {
		width = ctx.currentLayoutWidth()
	}

	return &Table{
		id:             tableID,
		ctx:            ctx,
		flags:          flags,
		columns:        computeColumnWidths(ctx, columns, state.MaxContentWidths, width, flags&TableFlagsAutoSizeColumns != 0),
		startX:         pos.X,
		startY:         pos.Y,
		width:          width,
		rowHeight:      ctx.lineHeight() + ctx.style.CellPadding*2,
		y:              pos.Y,
		currentRow:     -1,
		currentColumn:  -1,
		state:          state,
		frameMaxWidths: make([]float32, len(columns)),
	}
}

// computeColumnWidths resolves column widths. Fixed and auto columns are
// sized first; stretch columns share what is left by weight.
func computeColumnWidths(ctx *Context, columns []TableColumn, maxContentWidths []float32, totalWidth float32, autoSize bool) []TableColumn {
	result := make([]TableColumn, len(columns))
	copy(result, columns)

	pad := ctx.style.CellPadding * 2
	used := float32(0)
	stretchWeight := float32(0)

	for i := range result {
		col := &result[i]
		switch {
		case col.Flags&TableColumnFlagsWidthFixed != 0 && col.InitWidth > 0:
			col.width = col.InitWidth
		case col.Flags&TableColumnFlagsWidthStretch != 0:
			stretchWeight += stretchWeightOf(*col)
			continue
		default:
			col.width = ctx.MeasureText(col.Label).X + pad
			if autoSize || col.Flags&TableColumnFlagsWidthAuto != 0 {
				col.width = maxf(col.width, maxContentWidths[i]+pad)
			}
			col.width = maxf(col.width, col.InitWidth)
		}
		col.width = constrainWidth(*col, col.width)
		used += col.width
	}

	if stretchWeight > 0 {
		remaining := maxf(totalWidth-used, 0)
		for i := range result {
			col := &result[i]
			if col.Flags&TableColumnFlagsWidthStretch != 0 {
				col.width = constrainWidth(*col, remaining*stretchWeightOf(*col)/stretchWeight)
			}
		}
	}

	return result
}

func stretchWeightOf(col TableColumn) float32 {
	if col.InitWidth <= 0 {
		return 1
	}
	return col.InitWidth
}

func constrainWidth(col TableColumn, w float32) float32 {
	if col.MinWidth > 0 && w < col.MinWidth {
		w = col.MinWidth
	}
	if col.MaxWidth > 0 && w > col.MaxWidth {
		w = col.MaxWidth
	}
	return w
}

// HeaderRow draws a header row. Without cells it labels every column with
// its TableColumn.Label; with cells it draws grouped headers spanning
// several columns. Call it once per header level, top level first.
func (t *Table) HeaderRow(cells ...HeaderCell) {
	ctx := t.ctx
	if len(cells) == 0 {
		cells = make([]HeaderCell, len(t.columns))
		for i, col := range t.columns {
			cells[i] = HeaderCell{Label: col.Label, Span: 1}
		}
	}

	y := t.y
	ctx.DrawList.AddRect(t.startX, y, t.width, t.rowHeight, ctx.style.HeaderBgColor)

	textColor := ctx.style.HeaderTextColor
	if textColor == 0 {
		textColor = ctx.style.TextColor
	}

	col := 0
	for i, cell := range cells {
		if col >= len(t.columns) {
			break
		}
		span := max(cell.Span, 1)
		x := t.columnX(col)
		w := t.spanWidth(col, span)
		if cell.Label != "" {
			ctx.addText(x+ctx.style.CellPadding, y+ctx.style.CellPadding, t.truncateText(cell.Label, w-ctx.style.CellPadding*2), textColor)
		}
		col += span
		if t.flags&TableFlagsBordersInnerV != 0 && i < len(cells)-1 {
			ctx.DrawList.AddLine(x+w, y, x+w, y+t.rowHeight, ctx.style.BorderColor, 1)
		}
	}

	if t.flags&TableFlagsBordersInnerH != 0 {
		ctx.DrawList.AddLine(t.startX, y+t.rowHeight, t.startX+t.width, y+t.rowHeight, ctx.style.BorderColor, 1)
	}
	t.y += t.rowHeight
}

// NextRow starts a new data row.
func (t *Table) NextRow() {
	ctx := t.ctx
	t.currentRow++
	t.currentColumn = -1
	t.rowY = t.y
	t.y += t.rowHeight

	rowRect := Rect{X: t.startX, Y: t.rowY, W: t.width, H: t.rowHeight}
	switch {
	case t.flags&TableFlagsHighlightHover != 0 && !ctx.HasActivePopup() && ctx.isHovered(rowRect):
		ctx.DrawList.AddRect(t.startX, t.rowY, t.width, t.rowHeight, ctx.style.RowHoveredColor)
	case t.flags&TableFlagsRowBg != 0 && t.currentRow%2 == 1:
		ctx.DrawList.AddRect(t.startX, t.rowY, t.width, t.rowHeight, ctx.style.RowBgAltColor)
	}

	if t.flags&TableFlagsBordersInnerH != 0 && t.currentRow > 0 {
		ctx.DrawList.AddLine(t.startX, t.rowY, t.startX+t.width, t.rowY, ctx.style.BorderColor, 1)
	}
}

// Cell draws text in the next column of the current row.
func (t *Table) Cell(text string) {
	t.CellColored(text, t.ctx.style.TextColor)
}

// CellColored draws colored text in the next column of the current row.
func (t *Table) CellColored(text string, color uint32) {
	t.currentColumn++
	if t.currentColumn >= len(t.columns) {
		return
	}
	t.trackContentWidth(text)
	t.drawCell(t.currentColumn, 1, text, color, false)
}

// SpanCell draws text centered across span columns starting at the next
// column, for rows such as an empty-state message. span <= 0 spans the
// remaining columns.
func (t *Table) SpanCell(text string, span int) {
	start := t.currentColumn + 1
	if start >= len(t.columns) {
		return
	}
	if span <= 0 || start+span > len(t.columns) {
		span = len(t.columns) - start
	}
	t.currentColumn = start + span - 1
	t.drawCell(start, span, text, t.ctx.style.TextDisabledColor, true)
}

func (t *Table) drawCell(col, span int, text string, color uint32, center bool) {
	ctx := t.ctx
	x := t.columnX(col)
	w := t.spanWidth(col, span)
	pad := ctx.style.CellPadding
	display := t.truncateText(text, w-pad*2)

	tx := x + pad
	if center {
		tx = x + (w-ctx.MeasureText(display).X)/2
	}
	ctx.addText(tx, t.rowY+pad, display, color)

	if span == 1 && t.flags&TableFlagsBordersInnerV != 0 && col < len(t.columns)-1 {
		ctx.DrawList.AddLine(x+w, t.rowY, x+w, t.rowY+t.rowHeight, ctx.style.BorderColor, 1)
	}
}

func (t *Table) columnX(col int) float32 {
	x := t.startX
	for i := 0; i < col && i < len(t.columns); i++ {
		x += t.columns[i].width
	}
	return x
}

func (t *Table) spanWidth(col, span int) float32 {
	w := float32(0)
	for i := col; i < col+span && i < len(t.columns); i++ {
		w += t.columns[i].width
	}
	return w
}

func (t *Table) trackContentWidth(text string) {
	if t.currentColumn >= 0 && t.currentColumn < len(t.frameMaxWidths) {
		t.frameMaxWidths[t.currentColumn] = maxf(t.frameMaxWidths[t.currentColumn], t.ctx.MeasureText(text).X)
	}
}

// truncateText shortens text with a trailing ".." until it fits maxWidth.
func (t *Table) truncateText(text string, maxWidth float32) string {
	if t.ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	const ellipsis = ".."
	runes := []rune(text)
	for len(runes) > 0 {
		truncated := string(runes) + ellipsis
		if t.ctx.MeasureText(truncated).X <= maxWidth {
			return truncated
		}
		runes = runes[:len(runes)-1]
	}
	return ellipsis
}

// IsRowHovered returns true if the current row is under the mouse.
func (t *Table) IsRowHovered() bool {
	return t.currentRow >= 0 && t.ctx.isHovered(Rect{X: t.startX, Y: t.rowY, W: t.width, H: t.rowHeight})
}

// RowCount returns the number of data rows started so far.
func (t *Table) RowCount() int {
	return t.currentRow + 1
}

// Columns returns the columns with this frame's computed widths.
func (t *Table) Columns() []TableColumn {
	return t.columns
}

// ColumnWidth returns the computed width of column i.
func (t *Table) ColumnWidth(i int) float32 {
	if i < 0 || i >= len(t.columns) {
		return 0
	}
	return t.columns[i].width
}

// End finishes the table and advances the cursor.
func (t *Table) End() {
	ctx := t.ctx
	height := t.y - t.startY

	if t.flags&TableFlagsBordersOuterH != 0 {
		ctx.DrawList.AddLine(t.startX, t.startY, t.startX+t.width, t.startY, ctx.style.BorderColor, 1)
		ctx.DrawList.AddLine(t.startX, t.y, t.startX+t.width, t.y, ctx.style.BorderColor, 1)
	}
	if t.flags&TableFlagsBordersOuterV != 0 {
		ctx.DrawList.AddLine(t.startX, t.startY, t.startX, t.y, ctx.style.BorderColor, 1)
		ctx.DrawList.AddLine(t.startX+t.width, t.startY, t.startX+t.width, t.y, ctx.style.BorderColor, 1)
	}

	t.state.MaxContentWidths = t.frameMaxWidths
	ctx.AdvanceCursor(Vec2{X: t.width, Y: height})
}
