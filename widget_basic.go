package rowza

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// widgetID returns the label-derived ID, or the WithID override.
func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.StableID(optID)
	}
	return ctx.StableID(label)
}

// buttonColor picks the background for a button in the given state.
func (ctx *Context) buttonColor(rect Rect, disabled bool) uint32 {
	switch {
	case disabled:
		return ctx.style.ButtonDisabledColor
	case ctx.isPressed(rect):
		return ctx.style.ButtonActiveColor
	case ctx.isHovered(rect):
		return ctx.style.ButtonHoveredColor
	}
	return ctx.style.ButtonColor
}

// Button draws a button and returns true if clicked.
// A button drawn WithDisabled(true) is greyed out and never reports a click.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	disabled := GetOpt(o, OptDisabled)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, ctx.buttonColor(rect, disabled))

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	if clicked {
		logger.Debug("Button: clicked", "label", label, "id", id)
	}
	ctx.AdvanceCursor(size)
	return clicked
}

// Icon is a glyph drawn from primitives rather than the font.
type Icon uint8

const (
	IconChevronLeft Icon = iota
	IconChevronRight
	IconChevronDown
	IconChevronUp
)

// drawIcon draws icon centered in a square of side size at (x, y).
func drawIcon(dl *DrawList, icon Icon, x, y, size float32, color uint32) {
	c := size / 2
	r := size / 4
	cx, cy := x+c, y+c
	switch icon {
	case IconChevronLeft:
		dl.AddTriangle(cx+r/2, cy-r, cx+r/2, cy+r, cx-r/2, cy, color)
	case IconChevronRight:
		dl.AddTriangle(cx-r/2, cy-r, cx+r/2, cy, cx-r/2, cy+r, color)
	case IconChevronDown:
		dl.AddTriangle(cx-r, cy-r/2, cx+r, cy-r/2, cx, cy+r/2, color)
	case IconChevronUp:
		dl.AddTriangle(cx-r, cy+r/2, cx, cy-r/2, cx+r, cy+r/2, color)
	}
}

// IconButton draws a square button showing icon and returns true if clicked.
// id names the button; WithTooltip gives it a description shown on hover.
func (ctx *Context) IconButton(id string, icon Icon, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	wid := ctx.widgetID(id, o)
	disabled := GetOpt(o, OptDisabled)

	side := ctx.lineHeight() + ctx.style.ButtonPadding*2
	rect := Rect{X: pos.X, Y: pos.Y, W: side, H: side}

	ctx.DrawList.AddRect(pos.X, pos.Y, side, side, ctx.buttonColor(rect, disabled))

	color := ctx.style.ArrowColor
	if disabled {
		color = ctx.style.TextDisabledColor
	}
	drawIcon(ctx.DrawList, icon, pos.X, pos.Y, side, color)

	if tip := GetOpt(o, OptTooltip); tip != "" && ctx.isHovered(rect) && !ctx.HasActivePopup() {
		ctx.tooltip(Vec2{X: pos.X, Y: pos.Y + side + SpaceXS}, tip)
	}

	clicked := !disabled && ctx.isClicked(wid, rect)
	if clicked {
		logger.Debug("IconButton: clicked", "id", id)
	}
	ctx.AdvanceCursor(Vec2{X: side, Y: side})
	return clicked
}

// tooltip draws text in a box on the foreground layer, kept on screen.
func (ctx *Context) tooltip(at Vec2, text string) {
	dl := ctx.ForegroundDrawList
	if dl == nil {
		return
	}
	size := ctx.MeasureText(text)
	pad := ctx.style.InputPadding
	w, h := size.X+pad*2, size.Y+pad*2
	if ctx.DisplaySize.X > 0 && at.X+w > ctx.DisplaySize.X {
		at.X = maxf(0, ctx.DisplaySize.X-w)
	}
	dl.AddRect(at.X, at.Y, w, h, ctx.style.DropdownBgColor)
	dl.AddRectOutline(at.X, at.Y, w, h, ctx.style.BorderColor, 1)
	ctx.AddTextTo(dl, at.X+pad, at.Y+pad, text, ctx.style.TextColor)
}
