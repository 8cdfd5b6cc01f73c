// Command rowza-snap renders DataTable states offscreen and saves them as
// JPEG files, for docs and visual review.
//
//	devbox shell
//	go run ./cmd/rowza-snap/ -out doc/imgs -style dark
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/rowza"
	"github.com/go-theft-auto/rowza/backend/opengl"
	"github.com/go-theft-auto/rowza/table"
)

const (
	width  = 720
	height = 300
)

func init() {
	runtime.LockOSThread()
}

func main() {
	out := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	style := flag.String("style", "dark", "style name")
	verbose := flag.Bool("v", false, "log table state changes")
	flag.Parse()

	rowza.SetVerbose(*verbose)
	if err := run(*out, *style); err != nil {
		slog.Error("rowza-snap failed", "err", err)
		os.Exit(1)
	}
}

type member struct {
	Name  string
	Team  string
	Roles []string
}

var members = []member{
	{"Alice", "Core", []string{"Admin"}},
	{"Bruno", "Core", []string{"User"}},
	{"Chloé", "Infra", []string{"Manager", "User"}},
	{"Dmitri", "Infra", []string{"User"}},
	{"Emma", "Web", []string{"Admin", "User"}},
	{"Farid", "Web", []string{"User"}},
	{"Greta", "Core", []string{"Manager"}},
	{"Hugo", "Infra", []string{"User"}},
	{"Inès", "Web", []string{"User"}},
}

func props() rowza.DataTableProps[member] {
	return rowza.DataTableProps[member]{
		Columns: []table.ColumnDef[member]{
			{ID: "name", Header: "Name", Accessor: func(m member) any { return m.Name }},
			{ID: "team", Header: "Team", Accessor: func(m member) any { return m.Team }},
			{ID: "roles", Header: "Roles", Accessor: func(m member) any { return m.Roles }},
		},
		Data: members,
		Filters: []rowza.FilterConfig{
			{ColumnID: "team", Placeholder: "All teams", Options: []rowza.FilterOption{
				{Label: "Core", Value: "Core"}, {Label: "Infra", Value: "Infra"}, {Label: "Web", Value: "Web"},
			}},
			{ColumnID: "roles", Placeholder: "All roles", Options: []rowza.FilterOption{
				{Label: "Admin", Value: "Admin"}, {Label: "Manager", Value: "Manager"}, {Label: "User", Value: "User"},
			}},
		},
		PageSize: 5,
	}
}

// step prepares the input of one frame from the result of the previous one.
type step func(in *rowza.InputState, last rowza.DataTableResult)

func click(r func(rowza.DataTableResult) rowza.Rect) step {
	return func(in *rowza.InputState, last rowza.DataTableResult) {
		c := r(last).Center()
		in.SetMousePos(c.X, c.Y)
		in.SetMouseButton(rowza.MouseButtonLeft, true)
	}
}

func typeText(s string) step {
	return func(in *rowza.InputState, _ rowza.DataTableResult) {
		for _, r := range s {
			in.AddInputChar(r)
		}
	}
}

func press(k rowza.Key) step {
	return func(in *rowza.InputState, _ rowza.DataTableResult) { in.SetKey(k, true) }
}

func search(r rowza.DataTableResult) rowza.Rect { return r.Controls.Search }
func next(r rowza.DataTableResult) rowza.Rect   { return r.Controls.Next }
func filter(i int) func(rowza.DataTableResult) rowza.Rect {
	return func(r rowza.DataTableResult) rowza.Rect { return r.Controls.Filters[i] }
}

type shot struct {
	name  string
	steps []step
}

var shots = []shot{
	{name: "datatable"},
	{name: "datatable_search", steps: []step{click(search), typeText("in")}},
	{name: "datatable_filter", steps: []step{click(filter(1)), press(rowza.KeyDown), press(rowza.KeyDown), press(rowza.KeyEnter)}},
	{name: "datatable_dropdown", steps: []step{click(filter(0))}},
	{name: "datatable_page2", steps: []step{click(next)}},
	{name: "datatable_no_results", steps: []step{click(search), typeText("nobody")}},
}

func run(outDir, styleName string) error {
	style, err := rowza.StyleByName(styleName)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(width, height, "rowza-snap", nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}

	renderer, err := opengl.NewRenderer(width, height)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	for i, s := range shots {
		path := filepath.Join(outDir, s.name+".jpg")
		if err := capture(renderer, style, fmt.Sprintf("snap-%d", i), s, path); err != nil {
			return errors.Wrapf(err, "capture %s", s.name)
		}
		slog.Info("saved", "path", path)
	}
	return nil
}

// capture replays the shot's steps one frame each, draws a settling frame
// so clicks applied after drawing show up, and saves the framebuffer.
func capture(renderer *opengl.Renderer, style rowza.Style, id string, s shot, path string) error {
	ui := rowza.New(renderer, rowza.WithStyle(style))
	input := rowza.NewInputState()
	p := props()

	var last rowza.DataTableResult
	frame := func() error {
		input.UpdateKeyRepeat(1.0 / 60)
		gl.Viewport(0, 0, width, height)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input, rowza.Vec2{X: width, Y: height}, 1.0/60)
		ctx.Panel("Members", rowza.Width(width), rowza.Padding(12))(func() {
			last = rowza.DataTable(ctx, id, p)
		})
		if err := ui.End(); err != nil {
			return err
		}

		input.Reset()
		input.SetMouseButton(rowza.MouseButtonLeft, false)
		for k := rowza.KeyNone + 1; k < rowza.KeyCount; k++ {
			input.SetKey(k, false)
		}
		return nil
	}

	if err := frame(); err != nil {
		return err
	}
	for _, st := range s.steps {
		st(input, last)
		if err := frame(); err != nil {
			return err
		}
	}
	if err := frame(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create image")
	}
	defer f.Close()
	return errors.Wrap(jpeg.Encode(f, renderer.Snapshot(), &jpeg.Options{Quality: 90}), "encode jpeg")
}
