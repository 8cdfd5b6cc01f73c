package rowza

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the state of one layout container.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	Width               float32 // Available width
	MaxWidth, MaxHeight float32 // Accumulated content size

	Gap      float32 // Space between children
	GapX     float32 // Horizontal gap override
	GapY     float32 // Vertical gap override
	Padding  float32 // Panel only
	PaddingX float32
	PaddingY float32

	ItemCount int
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets a panel's inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets a panel's horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout and reports its content bounds to
// the parent as a single item.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}

	parent := ctx.currentLayout()
	if parent == nil {
		ctx.cursor.X = layout.StartX
		ctx.cursor.Y = layout.StartY + layout.MaxHeight + ctx.style.ItemSpacing
		return bounds
	}

	if parent.Type == LayoutVertical {
		ctx.cursor.X = layout.StartX
		ctx.cursor.Y = layout.StartY + layout.MaxHeight
		parent.MaxWidth = maxf(parent.MaxWidth, layout.MaxWidth)
		parent.MaxHeight = ctx.cursor.Y - parent.StartY
	} else {
		ctx.cursor.X = layout.StartX + layout.MaxWidth
		ctx.cursor.Y = layout.StartY
		parent.MaxWidth = ctx.cursor.X - parent.StartX
		parent.MaxHeight = maxf(parent.MaxHeight, layout.MaxHeight)
	}
	parent.ItemCount++

	return bounds
}

// stack runs contents inside a new layout of the given type. The gap before
// the stack itself is applied first, so a stack is one item to its parent.
func (ctx *Context) stack(layout *Layout, contents func()) Rect {
	ctx.beginItem()
	ctx.pushLayoutWith(layout)
	contents()
	return ctx.popLayout()
}

// Panel draws a panel with an optional title and content.
// Returns a function that should be called with the content closure.
//
// Usage:
//
//	ctx.Panel("Users", Padding(12))(func() {
//	    rowza.DataTable(ctx, "users", props)
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}

		padX := layout.PaddingX
		if padX == 0 {
			padX = layout.Padding
		}
		padY := layout.PaddingY
		if padY == 0 {
			padY = layout.Padding
		}
		userWidth := layout.Width

		ctx.beginItem()
		startX, startY := ctx.cursor.X, ctx.cursor.Y
		bg := ctx.DrawList.ReserveRect()
		header := ctx.DrawList.ReserveRect()

		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + padY*2
		}

		ctx.cursor.X += padX
		ctx.cursor.Y += padY + headerH
		if userWidth > 0 {
			layout.Width = userWidth - padX*2
		} else {
			layout.Width = ctx.currentLayoutWidth() - padX*2
		}

		outer := ctx.currentLayout()
		ctx.layoutStack = append(ctx.layoutStack, layout)
		layout.StartX, layout.StartY = ctx.cursor.X, ctx.cursor.Y
		contents()
		ctx.layoutStack = ctx.layoutStack[:len(ctx.layoutStack)-1]

		panelW := maxf(layout.MaxWidth+padX*2, userWidth)
		panelH := layout.MaxHeight + padY*2 + headerH

		ctx.DrawList.FillRect(bg, startX, startY, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			ctx.DrawList.FillRect(header, startX, startY, panelW, headerH, ctx.style.HeaderBgColor)
			ctx.addText(startX+padX, startY+(headerH-ctx.lineHeight())/2, title, ctx.style.TextColor)
		}
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if ctx.isHovered(Rect{X: startX, Y: startY, W: panelW, H: panelH}) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor = Vec2{X: startX, Y: startY}
		if outer == nil {
			ctx.lastItem = Rect{X: startX, Y: startY, W: panelW, H: panelH}
			ctx.cursor.Y += panelH + ctx.style.ItemSpacing
			return
		}
		ctx.AdvanceCursor(Vec2{X: panelW, Y: panelH})
		if outer.Type == LayoutVertical {
			ctx.cursor.X = startX
		} else {
			ctx.cursor.Y = startY
		}
	}
}

// VStack creates a vertical layout container.
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.stack(layout, contents)
	}
}

// HStack creates a horizontal layout container.
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Text("Label:")
//	    ctx.InputText("name", &value)
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.stack(layout, contents)
	}
}

// Spacing adds space along the current layout's main axis.
func (ctx *Context) Spacing(pixels float32) {
	if l := ctx.currentLayout(); l != nil && l.Type == LayoutHorizontal {
		ctx.cursor.X += pixels
		return
	}
	ctx.cursor.Y += pixels
}
