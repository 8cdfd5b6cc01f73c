package rowza

import "strconv"

// Component is anything that draws itself into a frame. Hosts keep a list
// of components and render them between GUI.Begin and GUI.End.
type Component interface {
	Render(ctx *Context)
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(ctx *Context)

// Render implements Component.
func (f ComponentFunc) Render(ctx *Context) { f(ctx) }

// DataTableComponent wraps a DataTable as a Component. Result holds what
// the last Render drew.
type DataTableComponent[T any] struct {
	ID     string
	Title  string // draws the table inside a titled panel when set
	Props  DataTableProps[T]
	Result DataTableResult
}

// Render implements Component.
func (c *DataTableComponent[T]) Render(ctx *Context) {
	if c.Title == "" {
		c.Result = DataTable(ctx, c.ID, c.Props)
		return
	}
	ctx.Panel(c.Title)(func() {
		c.Result = DataTable(ctx, c.ID, c.Props)
	})
}

// RenderAll renders components one after another, each in its own ID scope.
func RenderAll(ctx *Context, components ...Component) {
	for i, c := range components {
		ctx.PushID(strconv.Itoa(i))
		c.Render(ctx)
		ctx.PopID()
	}
}
