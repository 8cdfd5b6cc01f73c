package rowza

import "github.com/pkg/errors"

// Renderer draws finished draw lists. FontTextureID is the atlas bound for
// text commands.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
}

// GUI owns the Context and hands it out one frame at a time:
//
//	ctx := ui.Begin(input, size, dt)
//	rowza.DataTable(ctx, "users", props)
//	err := ui.End()
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// GUIOption configures New.
type GUIOption func(*GUI)

// WithStyle replaces DefaultStyle.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// New returns a GUI drawing through renderer.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{renderer: renderer, style: DefaultStyle(), ctx: NewContext()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin resets the context for a new frame and ages every frame store, so
// state of widgets not drawn last frame is dropped here.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()
	ctx.Input = input
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.SetStyle(g.style)
	ctx.Reset(displaySize, deltaTime)
	return ctx
}

// End renders the main list, then the foreground list (open dropdowns) if
// anything was drawn there. Both lists go back to the pool either way.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}
	defer func() {
		ReleaseDrawList(ctx.DrawList)
		ReleaseDrawList(ctx.ForegroundDrawList)
		ctx.DrawList, ctx.ForegroundDrawList = nil, nil
	}()

	if err := g.renderer.Render(ctx.DrawList); err != nil {
		return errors.Wrap(err, "render frame")
	}
	if fg := ctx.ForegroundDrawList; fg != nil && len(fg.CmdBuffer) > 0 {
		return errors.Wrap(g.renderer.Render(fg), "render dropdowns")
	}
	return nil
}
