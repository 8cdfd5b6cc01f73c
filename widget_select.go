package rowza

// SelectOption is one choice of a Select.
type SelectOption struct {
	Label string
	Value string
}

// Select draws a dropdown bound to value and returns true if the selection
// changed.
//
// With WithPlaceholder the header shows the placeholder while value matches
// no option, and the list starts with a placeholder entry that sets value
// to "".
//
//	roles := []rowza.SelectOption{{Label: "Admin", Value: "admin"}, {Label: "User", Value: "user"}}
//	if ctx.Select("Role", &role, roles, rowza.WithPlaceholder("All roles")) {
//	    applyRole(role)
//	}
func (ctx *Context) Select(label string, value *string, options []SelectOption, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	disabled := GetOpt(o, OptDisabled)
	placeholder := GetOpt(o, OptPlaceholder)

	state := selectStore.Get(id, newSelectState)

	items := options
	if placeholder != "" {
		items = make([]SelectOption, 0, len(options)+1)
		items = append(items, SelectOption{Label: placeholder})
		items = append(items, options...)
	}
	selected := -1
	for i, item := range items {
		if item.Value == *value && (item.Value != "" || placeholder != "") {
			selected = i
			break
		}
	}

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}

	h := ctx.lineHeight() + ctx.style.ButtonPadding*2
	arrowSize := h
	width := GetOpt(o, OptWidth)
	if width <= 0 {
		width = 120
		for _, item := range items {
			width = maxf(width, ctx.MeasureText(item.Label).X+ctx.style.ButtonPadding*2+arrowSize)
		}
	}

	if label != "" {
		ctx.addText(pos.X, pos.Y+(h-ctx.lineHeight())/2, label, ctx.style.TextColor)
	}

	headerX := pos.X + labelWidth
	headerY := pos.Y
	headerRect := Rect{X: headerX, Y: headerY, W: width, H: h}

	if disabled && state.Open {
		state.Open = false
	}

	bgColor := ctx.buttonColor(headerRect, disabled)
	if state.Open {
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(headerX, headerY, width, h, bgColor)
	ctx.DrawList.AddRectOutline(headerX, headerY, width, h, ctx.style.InputBorderColor, 1)

	headerText, headerColor := placeholder, ctx.style.TextDisabledColor
	if selected >= 0 && items[selected].Value != "" {
		headerText, headerColor = items[selected].Label, ctx.style.TextColor
	}
	if disabled {
		headerColor = ctx.style.TextDisabledColor
	}
	textX := headerX + ctx.style.ButtonPadding
	ctx.DrawList.PushClipRect(textX, headerY, headerX+width-arrowSize, headerY+h)
	ctx.addText(textX, headerY+(h-ctx.lineHeight())/2, headerText, headerColor)
	ctx.DrawList.PopClipRect()

	arrow := IconChevronDown
	if state.Open {
		arrow = IconChevronUp
	}
	drawIcon(ctx.DrawList, arrow, headerX+width-arrowSize, headerY, arrowSize, ctx.style.ArrowColor)

	if !disabled && ctx.isClicked(id, headerRect) {
		state.Open = !state.Open
		state.HoveredIndex = selected
		state.ScrollY = 0
		ctx.consumeClick()
		logger.Debug("Select: toggled", "label", label, "id", id, "open", state.Open)
	}

	changed := false
	if state.Open {
		ctx.SetActivePopup(id)
		ctx.WantCaptureKeyboard = true
		changed = ctx.selectDropdown(id, state, items, selected, value, Rect{X: headerX, Y: headerY, W: width, H: h}, GetOpt(o, OptMaxDropdownHeight))
	}
	if !state.Open && ctx.ActivePopupID() == id {
		ctx.SetActivePopup(0)
	}

	ctx.AdvanceCursor(Vec2{labelWidth + width, h})
	return changed
}

// selectDropdown draws the open list of a Select on the foreground layer and
// handles picking an entry. It closes the dropdown on a pick, on Escape, or
// on a click outside.
func (ctx *Context) selectDropdown(id ID, state *SelectState, items []SelectOption, selected int, value *string, header Rect, maxHeight float32) bool {
	dl := ctx.ForegroundDrawList
	if dl == nil {
		dl = ctx.DrawList
	}

	itemHeight := ctx.lineHeight() + ctx.style.ItemSpacing*2
	contentHeight := float32(len(items)) * itemHeight
	if maxHeight <= 0 {
		maxHeight = contentHeight
	}
	listHeight := min(contentHeight, maxHeight)

	listY := header.Y + header.H
	if ctx.DisplaySize.Y > 0 && listY+listHeight > ctx.DisplaySize.Y && header.Y-listHeight >= 0 {
		listY = header.Y - listHeight
	}
	list := Rect{X: header.X, Y: listY, W: header.W, H: listHeight}

	dl.AddRect(list.X, list.Y, list.W, list.H, ctx.style.DropdownBgColor)
	dl.AddRectOutline(list.X, list.Y, list.W, list.H, ctx.style.InputBorderColor, 1)

	input := ctx.Input
	if input != nil && ctx.isHovered(list) && input.MouseWheelY != 0 {
		state.ScrollY -= input.MouseWheelY * itemHeight
	}
	state.ScrollY = min(max(state.ScrollY, 0), contentHeight-listHeight)

	pick := -1
	dl.PushClipRect(list.X, list.Y, list.X+list.W, list.Y+list.H)
	for i, item := range items {
		y := list.Y + float32(i)*itemHeight - state.ScrollY
		if y+itemHeight < list.Y || y > list.Y+list.H {
			continue
		}
		row := Rect{X: list.X, Y: y, W: list.W, H: itemHeight}
		visible := Rect{X: list.X, Y: max(y, list.Y), W: list.W, H: min(y+itemHeight, list.Y+list.H) - max(y, list.Y)}
		if ctx.isHovered(visible) {
			state.HoveredIndex = i
			if input.MouseClicked(MouseButtonLeft) {
				pick = i
			}
		}

		switch {
		case i == selected:
			dl.AddRect(row.X+1, row.Y, row.W-2, row.H, ctx.style.SelectedBgColor)
		case i == state.HoveredIndex:
			dl.AddRect(row.X+1, row.Y, row.W-2, row.H, ctx.style.HoveredBgColor)
		}
		color := ctx.style.TextColor
		if item.Value == "" {
			color = ctx.style.TextDisabledColor
		}
		ctx.AddTextTo(dl, row.X+ctx.style.ButtonPadding, y+ctx.style.ItemSpacing, item.Label, color)
	}
	dl.PopClipRect()

	if input != nil && pick < 0 {
		switch {
		case input.KeyRepeated(KeyDown):
			state.HoveredIndex = min(state.HoveredIndex+1, len(items)-1)
		case input.KeyRepeated(KeyUp):
			state.HoveredIndex = max(state.HoveredIndex-1, 0)
		case input.KeyPressed(KeyEnter) && state.HoveredIndex >= 0 && state.HoveredIndex < len(items):
			pick = state.HoveredIndex
		case input.KeyPressed(KeyEscape):
			state.Open = false
		case input.MouseClicked(MouseButtonLeft) && !ctx.isHovered(header):
			state.Open = false
			ctx.consumeClick()
		}
	}

	if pick < 0 {
		return false
	}
	state.Open = false
	ctx.consumeClick()
	if items[pick].Value == *value {
		return false
	}
	logger.Debug("Select: picked", "id", id, "value", items[pick].Value)
	*value = items[pick].Value
	return true
}
