package rowza_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/rowza"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *rowza.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

// harness drives frames against a mock renderer and carries input between
// them the way a backend would.
type harness struct {
	t        *testing.T
	renderer *mockRenderer
	ui       *rowza.GUI
	input    *rowza.InputState
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	r := &mockRenderer{}
	return &harness{
		t:        t,
		renderer: r,
		ui:       rowza.New(r),
		input:    rowza.NewInputState(),
	}
}

// frame runs one frame, then clears per-frame input and releases the mouse.
func (h *harness) frame(draw func(ctx *rowza.Context)) {
	h.t.Helper()
	h.input.UpdateKeyRepeat(0.016)
	ctx := h.ui.Begin(h.input, rowza.Vec2{X: 800, Y: 600}, 0.016)
	draw(ctx)
	if err := h.ui.End(); err != nil {
		h.t.Fatalf("End() returned error: %v", err)
	}
	h.input.Reset()
	h.input.SetMouseButton(rowza.MouseButtonLeft, false)
	for k := rowza.KeyNone + 1; k < rowza.KeyCount; k++ {
		h.input.SetKey(k, false)
	}
}

// click presses the left button over the centre of r for the next frame.
func (h *harness) click(r rowza.Rect) {
	h.clickAt(r.Center())
}

func (h *harness) clickAt(p rowza.Vec2) {
	h.input.SetMousePos(p.X, p.Y)
	h.input.SetMouseButton(rowza.MouseButtonLeft, true)
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.input.AddInputChar(r)
	}
}

func (h *harness) press(k rowza.Key) {
	h.input.SetKey(k, true)
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := rowza.New(renderer, rowza.WithStyle(rowza.DarkStyle()))

	input := rowza.NewInputState()
	displaySize := rowza.Vec2{X: 1920, Y: 1080}

	ctx := ui.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	ctx.Text("Hello World")
	ctx.TextColored("Colored", rowza.ColorWhite)
	ctx.TextDisabled("Muted")

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	// The foreground list is empty and skipped.
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestButton(t *testing.T) {
	h := newHarness(t)

	var clicked bool
	var rect rowza.Rect
	h.frame(func(ctx *rowza.Context) {
		clicked = ctx.Button("Test Button")
		rect = ctx.LastItemRect()
	})
	if clicked {
		t.Error("button should not be clicked without mouse input")
	}
	if rect.W == 0 || rect.H == 0 {
		t.Fatalf("LastItemRect() = %+v, want a sized rect", rect)
	}

	h.click(rect)
	h.frame(func(ctx *rowza.Context) {
		clicked = ctx.Button("Test Button")
	})
	if !clicked {
		t.Error("button should report the click over it")
	}
}

func TestButtonDisabled(t *testing.T) {
	h := newHarness(t)

	var rect rowza.Rect
	h.frame(func(ctx *rowza.Context) {
		ctx.Button("Save", rowza.WithDisabled(true))
		rect = ctx.LastItemRect()
	})

	h.click(rect)
	var clicked bool
	h.frame(func(ctx *rowza.Context) {
		clicked = ctx.Button("Save", rowza.WithDisabled(true))
	})
	if clicked {
		t.Error("disabled button reported a click")
	}
}

func TestIconButton(t *testing.T) {
	h := newHarness(t)

	var rect rowza.Rect
	h.frame(func(ctx *rowza.Context) {
		ctx.IconButton("next", rowza.IconChevronRight, rowza.WithTooltip("Next page"))
		rect = ctx.LastItemRect()
	})
	if rect.W != rect.H {
		t.Errorf("icon button is %vx%v, want a square", rect.W, rect.H)
	}

	h.click(rect)
	var clicked bool
	h.frame(func(ctx *rowza.Context) {
		clicked = ctx.IconButton("next", rowza.IconChevronRight)
	})
	if !clicked {
		t.Error("icon button should report the click over it")
	}
}

func TestPanel(t *testing.T) {
	h := newHarness(t)

	var inner, outer rowza.Rect
	h.frame(func(ctx *rowza.Context) {
		ctx.Panel("Test Panel", rowza.Gap(8), rowza.Padding(12))(func() {
			ctx.Text("Line 1")
			ctx.Text("Line 2")
			inner = ctx.LastItemRect()
		})
		outer = ctx.LastItemRect()
	})

	if inner.X != outer.X+12 {
		t.Errorf("content x = %v, want panel x + padding (%v)", inner.X, outer.X+12)
	}
	if inner.Y+inner.H > outer.Y+outer.H {
		t.Errorf("content %+v overflows panel %+v", inner, outer)
	}
}

func TestVStackHStack(t *testing.T) {
	h := newHarness(t)

	var label, value, below rowza.Rect
	h.frame(func(ctx *rowza.Context) {
		ctx.VStack(rowza.Gap(10))(func() {
			ctx.HStack(rowza.Gap(5))(func() {
				ctx.Text("Label:")
				label = ctx.LastItemRect()
				ctx.Text("Value")
				value = ctx.LastItemRect()
			})
			ctx.Text("Below")
			below = ctx.LastItemRect()
		})
	})

	if value.Y != label.Y || value.X != label.X+label.W+5 {
		t.Errorf("HStack placed %+v after %+v", value, label)
	}
	if below.X != label.X || below.Y != label.Y+label.H+10 {
		t.Errorf("VStack placed %+v under %+v", below, label)
	}
}

func TestInputTextTyping(t *testing.T) {
	h := newHarness(t)

	value := ""
	var rect rowza.Rect
	draw := func(ctx *rowza.Context) bool {
		changed := ctx.InputText("Name", &value)
		rect = ctx.LastItemRect()
		return changed
	}

	// Typing without focus does nothing.
	h.typeText("ignored")
	h.frame(func(ctx *rowza.Context) { draw(ctx) })
	if value != "" {
		t.Fatalf("unfocused input took text: %q", value)
	}

	// The rect covers the label too; click the right end, inside the box.
	h.clickAt(rowza.Vec2{X: rect.X + rect.W - 4, Y: rect.Y + rect.H/2})
	h.frame(func(ctx *rowza.Context) { draw(ctx) })

	h.typeText("Hi")
	var changed bool
	h.frame(func(ctx *rowza.Context) { changed = draw(ctx) })
	if !changed || value != "Hi" {
		t.Fatalf("after typing: changed=%v value=%q", changed, value)
	}

	h.press(rowza.KeyBackspace)
	h.frame(func(ctx *rowza.Context) { draw(ctx) })
	if value != "H" {
		t.Errorf("after backspace: value=%q, want %q", value, "H")
	}

	h.press(rowza.KeyEscape)
	h.frame(func(ctx *rowza.Context) { draw(ctx) })
	h.typeText("x")
	h.frame(func(ctx *rowza.Context) { draw(ctx) })
	if value != "H" {
		t.Errorf("typing after Escape changed value to %q", value)
	}
}

func TestInputTextClipboard(t *testing.T) {
	clip := &rowza.MemoryClipboard{}
	rowza.SetClipboardProvider(clip)
	defer rowza.SetClipboardProvider(nil)

	h := newHarness(t)
	value := "hello"
	var rect rowza.Rect
	draw := func(ctx *rowza.Context) {
		ctx.InputText("", &value, rowza.WithID("clip"))
		rect = ctx.LastItemRect()
	}

	h.frame(draw)
	h.click(rect)
	h.frame(draw)

	h.input.ModCtrl = true
	h.press(rowza.KeyA)
	h.frame(draw)
	h.press(rowza.KeyX)
	h.frame(draw)
	if value != "" || clip.GetText() != "hello" {
		t.Fatalf("after cut: value=%q clipboard=%q", value, clip.GetText())
	}

	h.press(rowza.KeyV)
	h.frame(draw)
	h.press(rowza.KeyV)
	h.frame(draw)
	if value != "hellohello" {
		t.Errorf("after two pastes: value=%q", value)
	}
}

func TestSelectPick(t *testing.T) {
	h := newHarness(t)

	options := []rowza.SelectOption{{Label: "Admin", Value: "admin"}, {Label: "User", Value: "user"}}
	value := ""
	var header rowza.Rect
	var changed bool
	draw := func(ctx *rowza.Context) {
		changed = ctx.Select("", &value, options, rowza.WithID("role"), rowza.WithPlaceholder("All"))
		header = ctx.LastItemRect()
	}

	h.frame(draw)
	h.click(header)
	h.frame(draw)

	// Entries sit under the header: All, Admin, User.
	itemHeight := float32(16)
	h.clickAt(rowza.Vec2{X: header.X + 10, Y: header.Y + header.H + 2*itemHeight + itemHeight/2})
	h.frame(draw)
	if !changed || value != "user" {
		t.Fatalf("after picking: changed=%v value=%q", changed, value)
	}

	// Keyboard: open, move up one, pick.
	h.click(header)
	h.frame(draw)
	h.press(rowza.KeyUp)
	h.frame(draw)
	h.press(rowza.KeyEnter)
	h.frame(draw)
	if value != "admin" {
		t.Errorf("after keyboard pick: value=%q, want admin", value)
	}
}

func TestSelectBlocksClicksBehindDropdown(t *testing.T) {
	h := newHarness(t)

	options := []rowza.SelectOption{{Label: "One", Value: "1"}, {Label: "Two", Value: "2"}, {Label: "Three", Value: "3"}}
	value := ""
	var header, button rowza.Rect
	var clicked bool
	draw := func(ctx *rowza.Context) {
		ctx.Select("", &value, options, rowza.WithID("pick"))
		header = ctx.LastItemRect()
		clicked = ctx.Button("Under", rowza.WithWidth(header.W))
		button = ctx.LastItemRect()
	}

	h.frame(draw)
	h.click(header)
	h.frame(draw)

	// The open list covers the button; the click picks an entry instead.
	h.click(button)
	h.frame(draw)
	if clicked {
		t.Error("button under an open dropdown saw the click")
	}
	if value == "" {
		t.Error("click on the open list did not pick an entry")
	}
}

func TestDrawListPool(t *testing.T) {
	dl1 := rowza.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, rowza.ColorWhite)
	rowza.ReleaseDrawList(dl1)

	dl2 := rowza.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	rowza.ReleaseDrawList(dl2)
}

func TestReserveRect(t *testing.T) {
	dl := rowza.AcquireDrawList()
	defer rowza.ReleaseDrawList(dl)

	slot := dl.ReserveRect()
	dl.AddRect(10, 10, 5, 5, rowza.ColorBlack)
	dl.FillRect(slot, 0, 0, 100, 50, rowza.ColorWhite)

	// The reserved quad keeps its place ahead of later shapes.
	if got := dl.VtxBuffer[0].Color; got != rowza.ColorWhite {
		t.Errorf("first vertex color = %#x, want %#x", got, rowza.ColorWhite)
	}
	if got := dl.VtxBuffer[2].Pos; got != [2]float32{100, 50} {
		t.Errorf("reserved quad corner = %v, want [100 50]", got)
	}
}

func TestIDGeneration(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *rowza.Context) {
		if ctx.GetID("button") == ctx.GetID("button") {
			t.Error("same label should generate different IDs due to auto-increment")
		}
		if ctx.StableID("button") != ctx.StableID("button") {
			t.Error("StableID should not depend on call order")
		}
	})
}

func TestPushPopID(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *rowza.Context) {
		ctx.PushID("section1")
		id1 := ctx.StableID("item")
		ctx.PopID()

		ctx.PushID("section2")
		id2 := ctx.StableID("item")
		ctx.PopID()

		if id1 == id2 {
			t.Error("same label in different sections should have different IDs")
		}
	})
}

func TestFrameStore(t *testing.T) {
	store := rowza.NewFrameStore[int]()
	var evicted []rowza.ID
	store.OnEvict(func(id rowza.ID, _ int) { evicted = append(evicted, id) })

	h := newHarness(t)
	var id rowza.ID
	h.frame(func(ctx *rowza.Context) {
		id = ctx.StableID("counter")
		*store.Get(id, func() int { return 41 })++
	})
	h.frame(func(ctx *rowza.Context) {
		if got := *store.Get(id, func() int { return 0 }); got != 42 {
			t.Errorf("second frame value = %d, want 42", got)
		}
	})

	// One skipped frame keeps the entry; the next one drops it.
	h.frame(func(*rowza.Context) {})
	if store.Len() != 1 {
		t.Fatalf("entry dropped after a single skipped frame")
	}
	h.frame(func(*rowza.Context) {})
	if diff := cmp.Diff([]rowza.ID{id}, evicted); diff != "" {
		t.Errorf("evicted mismatch (-want +got):\n%s", diff)
	}
	if store.GetIfExists(id) != nil {
		t.Error("evicted entry is still readable")
	}
}

func TestStyles(t *testing.T) {
	for _, name := range rowza.StyleNames() {
		style, err := rowza.StyleByName(name)
		if err != nil {
			t.Fatalf("StyleByName(%q): %v", name, err)
		}
		if style.TextColor == 0 {
			t.Errorf("style %q has zero TextColor", name)
		}
		if style.CharWidth == 0 {
			t.Errorf("style %q has zero CharWidth", name)
		}
	}

	if diff := cmp.Diff([]string{"dark", "default", "light"}, rowza.StyleNames()); diff != "" {
		t.Errorf("StyleNames mismatch (-want +got):\n%s", diff)
	}
	if _, err := rowza.StyleByName("neon"); err == nil {
		t.Error("StyleByName accepted an unknown name")
	}
}

func TestRGBAPacking(t *testing.T) {
	// Vertex colors are read as normalized bytes in r, g, b, a order.
	if got := rowza.RGBA(255, 128, 64, 200); got != 0xC84080FF {
		t.Errorf("RGBA(255, 128, 64, 200) = %#x, want 0xc84080ff", got)
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := rowza.AcquireDrawList()
	defer rowza.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, rowza.ColorWhite)
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := rowza.AcquireDrawList()
	defer rowza.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddText(0, 0, "Page 1 of 3", rowza.ColorWhite, 1, 8, 8)
	}
}
