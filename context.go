package rowza

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for widget debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for widgets.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// logger is shared by the context and every widget.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // For dropdowns (drawn on top)

	// Styling
	style      Style
	styleStack []Style

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// focusedID is the text input in edit mode, if any.
	focusedID ID

	// Font texture ID (set by renderer)
	FontTextureID uint32

	// Input capture flags (output from GUI to application)
	WantCaptureMouse    bool // True if a dropdown or input consumed the mouse
	WantCaptureKeyboard bool // True if a text input has focus

	// Text measurement cache, valid for one frame.
	textMeasureCache map[string]Vec2

	// activePopupID is the open dropdown. Dropdowns reclaim it every frame;
	// one that stops drawing is closed by Reset.
	activePopupID ID
	popupClaimed  bool

	// clickConsumed is set once a dropdown has used this frame's click.
	clickConsumed bool

	lastItem Rect
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()
	ctx.FrameCount++

	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	clear(ctx.textMeasureCache)
	ctx.clickConsumed = false

	if ctx.activePopupID != 0 && !ctx.popupClaimed {
		logger.Debug("Reset: closing orphaned popup", "id", ctx.activePopupID)
		ctx.activePopupID = 0
	}
	ctx.popupClaimed = false
}

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// isClicked returns true if the widget was clicked this frame. Clicks under
// another widget's open dropdown, or already used by a dropdown, don't count.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil || ctx.clickConsumed || ctx.blockedByPopup(id) {
		return false
	}
	hovered := ctx.isHovered(rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && verbose() {
		logger.Debug("click",
			"id", id,
			"hit", hovered,
			"rect", rect,
			"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
	}

	return hovered && clicked
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// blockedByPopup reports whether a click at rect should be ignored because an
// open dropdown (other than owner) is drawn over it.
func (ctx *Context) blockedByPopup(owner ID) bool {
	return ctx.activePopupID != 0 && ctx.activePopupID != owner
}

// consumeClick stops later widgets in this frame from seeing the click.
func (ctx *Context) consumeClick() {
	ctx.clickConsumed = true
}

// SetFocused sets the focused widget.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused returns true if the widget has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return ctx.focusedID == id
}

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// SetActivePopup marks a dropdown as open. Call with id=0 to close it.
func (ctx *Context) SetActivePopup(id ID) {
	ctx.activePopupID = id
	ctx.popupClaimed = id != 0
	if id != 0 {
		ctx.WantCaptureMouse = true
	}
}

// HasActivePopup returns true if a dropdown is currently open.
func (ctx *Context) HasActivePopup() bool {
	return ctx.activePopupID != 0
}

// ActivePopupID returns the ID of the open dropdown, or 0 if none.
func (ctx *Context) ActivePopupID() ID {
	return ctx.activePopupID
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text in the built-in monospace
// font. Results are cached per frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	charH := ctx.style.CharHeight * ctx.style.FontScale
	result := Vec2{X: float32(glyphCount(text)) * charW, Y: charH}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}
	return result
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1].Width
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

// CurrentLayoutWidth returns the available width in the current layout (public API).
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// addText draws text on the main draw list.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text to a specific DrawList (public API).
// This is useful for drawing to the foreground layer.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}

	if layout.Type == LayoutVertical {
		gap := layout.GapY
		if gap == 0 {
			gap = layout.Gap
		}
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		ctx.cursor.Y += gap
	} else {
		gap := layout.GapX
		if gap == 0 {
			gap = layout.Gap
		}
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		ctx.cursor.X += gap
	}
}

// LastItemRect returns the bounds of the most recent item.
func (ctx *Context) LastItemRect() Rect {
	return ctx.lastItem
}

// ItemPos returns the position for the next widget with gap applied.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves the cursor after drawing an item at the cursor.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.lastItem = Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: size.X, H: size.Y}
	layout := ctx.currentLayout()
	if layout == nil {
		// No layout, just advance vertically
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}
