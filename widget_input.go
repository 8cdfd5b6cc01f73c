package rowza

import "unicode"

// InputText draws a single-line text input bound to value, with label drawn
// to its left when non-empty.
// WithPlaceholder shows hint text while the value is empty. Clicking the
// box starts editing; Enter, Escape or a click elsewhere stops it.
// Editing supports selection, clipboard (Ctrl+A/C/V/X) and Home/End.
// Returns true if the value changed.
func (ctx *Context) InputText(label string, value *string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	disabled := GetOpt(o, OptDisabled)

	state := inputTextStore.Get(id, newInputTextState)
	if state.Editing && !ctx.IsFocused(id) {
		state.Editing = false
		state.ClearSelection()
	}

	drawX := pos.X
	startX := pos.X
	if label != "" {
		ctx.addText(drawX, pos.Y+ctx.style.InputPadding, label, ctx.style.TextColor)
		drawX += ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}

	w := float32(200)
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		w = optWidth
	}
	h := ctx.lineHeight() + ctx.style.InputPadding*2
	rect := Rect{X: drawX, Y: pos.Y, W: w, H: h}

	runes := []rune(*value)
	textX := drawX + ctx.style.InputPadding
	textY := pos.Y + ctx.style.InputPadding
	maxWidth := w - ctx.style.InputPadding*2

	// Mouse: enter edit mode on click, leave it on a click elsewhere.
	if !disabled && ctx.isClicked(id, rect) {
		if !state.Editing {
			logger.Debug("InputText: editing", "id", id)
		}
		state.Editing = true
		ctx.SetFocused(id)
		state.CursorPos = ctx.runeAt(runes, ctx.Input.MouseX-textX+state.ScrollOffset)
		state.ClearSelection()
	} else if state.Editing && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) && !ctx.isHovered(rect) {
		ctx.stopEditing(id, state)
	}

	changed := false
	if state.Editing && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		changed = ctx.editText(id, value, state, &runes, GetOpt(o, OptMaxLength))
	}

	state.CursorPos = min(max(state.CursorPos, 0), len(runes))

	// Keep the cursor inside the box.
	cursorTextWidth := ctx.MeasureText(string(runes[:state.CursorPos])).X
	if cursorTextWidth-state.ScrollOffset > maxWidth {
		state.ScrollOffset = cursorTextWidth - maxWidth + ctx.style.CharWidth
	}
	if cursorTextWidth < state.ScrollOffset {
		state.ScrollOffset = cursorTextWidth
	}
	state.ScrollOffset = max(state.ScrollOffset, 0)

	bgColor := ctx.style.InputBgColor
	if state.Editing {
		bgColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(drawX, pos.Y, w, h, bgColor)
	ctx.DrawList.AddRectOutline(drawX, pos.Y, w, h, ctx.style.InputBorderColor, 1)

	ctx.DrawList.PushClipRect(textX, pos.Y, textX+maxWidth, pos.Y+h)
	if state.Editing && state.HasSelection() {
		selStart, selEnd := state.SelectedRange()
		x0 := ctx.MeasureText(string(runes[:selStart])).X - state.ScrollOffset
		x1 := ctx.MeasureText(string(runes[:selEnd])).X - state.ScrollOffset
		ctx.DrawList.AddRect(textX+x0, pos.Y+2, x1-x0, h-4, ctx.style.SelectionColor)
	}
	switch {
	case len(runes) > 0:
		color := ctx.style.TextColor
		if disabled {
			color = ctx.style.TextDisabledColor
		}
		ctx.addText(textX-state.ScrollOffset, textY, *value, color)
	case GetOpt(o, OptPlaceholder) != "":
		ctx.addText(textX, textY, GetOpt(o, OptPlaceholder), ctx.style.TextDisabledColor)
	}
	ctx.DrawList.PopClipRect()

	if state.Editing {
		cursorX := textX + cursorTextWidth - state.ScrollOffset
		ctx.DrawList.AddLine(cursorX, pos.Y+2, cursorX, pos.Y+h-2, ctx.style.CursorColor, 1)
	}

	ctx.cursor.X = startX
	ctx.AdvanceCursor(Vec2{w + (drawX - startX), h})

	return changed
}

// runeAt returns the rune boundary closest to x pixels into runes.
func (ctx *Context) runeAt(runes []rune, x float32) int {
	cw := ctx.style.CharWidth * ctx.style.FontScale
	if cw <= 0 {
		return len(runes)
	}
	i := int(x/cw + 0.5)
	return min(max(i, 0), len(runes))
}

func (ctx *Context) stopEditing(id ID, state *InputTextState) {
	state.Editing = false
	state.ClearSelection()
	if ctx.IsFocused(id) {
		ctx.ClearFocus()
	}
	logger.Debug("InputText: done editing", "id", id)
}

// editText applies this frame's keyboard input to value. maxLen caps the
// length in runes when positive. Returns true if the value changed.
func (ctx *Context) editText(id ID, value *string, state *InputTextState, runes *[]rune, maxLen int) bool {
	input := ctx.Input
	textLen := len(*runes)
	changed := false

	set := func(r []rune) {
		*runes = r
		*value = string(r)
		changed = true
	}
	deleteSelection := func() {
		if !state.HasSelection() {
			return
		}
		start, end := state.SelectedRange()
		set(append((*runes)[:start:start], (*runes)[end:]...))
		state.CursorPos = start
		state.ClearSelection()
	}
	insert := func(in []rune) {
		deleteSelection()
		if maxLen > 0 {
			in = in[:min(len(in), max(maxLen-len(*runes), 0))]
		}
		if len(in) == 0 {
			return
		}
		pos := state.CursorPos
		out := make([]rune, 0, len(*runes)+len(in))
		out = append(out, (*runes)[:pos]...)
		out = append(out, in...)
		out = append(out, (*runes)[pos:]...)
		set(out)
		state.CursorPos = pos + len(in)
	}
	move := func(to int) {
		from := state.CursorPos
		state.CursorPos = min(max(to, 0), len(*runes))
		if !input.ModShift {
			state.ClearSelection()
			return
		}
		if state.SelectionStart < 0 {
			state.SelectionStart = from
		}
		state.SelectionEnd = state.CursorPos
	}

	if input.ModCtrl {
		switch {
		case input.KeyPressed(KeyA):
			state.SelectAll(textLen)
			return false
		case input.KeyPressed(KeyC):
			if state.HasSelection() {
				start, end := state.SelectedRange()
				ClipboardSetText(string((*runes)[start:end]))
			}
			return false
		case input.KeyPressed(KeyX):
			if state.HasSelection() {
				start, end := state.SelectedRange()
				ClipboardSetText(string((*runes)[start:end]))
				deleteSelection()
			}
			return changed
		case input.KeyPressed(KeyV):
			if text := ClipboardGetText(); text != "" {
				insert(singleLine(text))
			}
			return changed
		}
	}

	if input.KeyRepeated(KeyLeft) {
		if input.ModCtrl {
			move(wordBoundaryLeft(*runes, state.CursorPos))
		} else {
			move(state.CursorPos - 1)
		}
	}
	if input.KeyRepeated(KeyRight) {
		if input.ModCtrl {
			move(wordBoundaryRight(*runes, state.CursorPos))
		} else {
			move(state.CursorPos + 1)
		}
	}
	if input.KeyPressed(KeyHome) {
		move(0)
	}
	if input.KeyPressed(KeyEnd) {
		move(len(*runes))
	}

	if input.KeyRepeated(KeyBackspace) {
		if state.HasSelection() {
			deleteSelection()
		} else if state.CursorPos > 0 {
			pos := state.CursorPos
			set(append((*runes)[:pos-1:pos-1], (*runes)[pos:]...))
			state.CursorPos = pos - 1
		}
	}
	if input.KeyRepeated(KeyDelete) {
		if state.HasSelection() {
			deleteSelection()
		} else if state.CursorPos < len(*runes) {
			pos := state.CursorPos
			set(append((*runes)[:pos:pos], (*runes)[pos+1:]...))
		}
	}

	if input.KeyPressed(KeyEscape) || input.KeyPressed(KeyEnter) {
		ctx.stopEditing(id, state)
		return changed
	}

	var typed []rune
	for _, ch := range input.InputChars {
		if unicode.IsPrint(ch) {
			typed = append(typed, ch)
		}
	}
	if len(typed) > 0 {
		insert(typed)
		input.ConsumeInputChars()
	}

	return changed
}

// singleLine drops line breaks and other control characters from pasted text.
func singleLine(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			out = append(out, ' ')
		case unicode.IsPrint(r):
			out = append(out, r)
		}
	}
	return out
}

// wordBoundaryLeft finds the start of the word to the left of pos.
func wordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && unicode.IsSpace(runes[pos]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	return pos
}

// wordBoundaryRight finds the end of the word to the right of pos.
func wordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	for pos < n && !unicode.IsSpace(runes[pos]) {
		pos++
	}
	for pos < n && unicode.IsSpace(runes[pos]) {
		pos++
	}
	return pos
}
