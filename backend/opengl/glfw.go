package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/rowza"
)

// GLFWInputAdapter collects GLFW window events into a rowza.InputState.
//
//	for !window.ShouldClose() {
//	    glfw.PollEvents()
//	    input := adapter.Update(dt)
//	    ctx := ui.Begin(input, size, dt)
//	    ...
//	    ui.End()
//	    adapter.EndFrame()
//	}
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *rowza.InputState
}

// NewGLFWInputAdapter installs the window callbacks.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  rowza.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Update refreshes the polled state for a frame. Call it after
// glfw.PollEvents so this frame's clicks and key presses are kept.
func (a *GLFWInputAdapter) Update(dt float32) *rowza.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	down := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if a.window.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	a.input.ModCtrl = down(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = down(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = down(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = down(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// EndFrame clears the frame's events. Call it after GUI.End.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the input state.
func (a *GLFWInputAdapter) Input() *rowza.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keyMap[key]
	if !ok {
		return
	}
	// glfw.Repeat is ignored; InputState.KeyRepeated times repeats itself.
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mouseButtonMap[button]
	if !ok {
		return
	}
	a.input.SetMouseButton(b, action == glfw.Press)
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, _, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelY + float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

var keyMap = map[glfw.Key]rowza.Key{
	glfw.KeyTab:       rowza.KeyTab,
	glfw.KeyLeft:      rowza.KeyLeft,
	glfw.KeyRight:     rowza.KeyRight,
	glfw.KeyUp:        rowza.KeyUp,
	glfw.KeyDown:      rowza.KeyDown,
	glfw.KeyPageUp:    rowza.KeyPageUp,
	glfw.KeyPageDown:  rowza.KeyPageDown,
	glfw.KeyHome:      rowza.KeyHome,
	glfw.KeyEnd:       rowza.KeyEnd,
	glfw.KeyDelete:    rowza.KeyDelete,
	glfw.KeyBackspace: rowza.KeyBackspace,
	glfw.KeyEnter:     rowza.KeyEnter,
	glfw.KeyKPEnter:   rowza.KeyEnter,
	glfw.KeyEscape:    rowza.KeyEscape,
	glfw.KeyA:         rowza.KeyA,
	glfw.KeyC:         rowza.KeyC,
	glfw.KeyV:         rowza.KeyV,
	glfw.KeyX:         rowza.KeyX,
}

var mouseButtonMap = map[glfw.MouseButton]rowza.MouseButton{
	glfw.MouseButtonLeft:   rowza.MouseButtonLeft,
	glfw.MouseButtonRight:  rowza.MouseButtonRight,
	glfw.MouseButtonMiddle: rowza.MouseButtonMiddle,
}

// GLFWClipboard is a rowza.ClipboardProvider backed by the system clipboard.
// Use it from the main thread only.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard returns a clipboard provider for window.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// GetText implements rowza.ClipboardProvider. Non-text contents read as "".
func (c *GLFWClipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText implements rowza.ClipboardProvider.
func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
