// Example shows a users table with search, two select filters and
// pagination in a GLFW window.
//
//	devbox shell
//	go run ./example/
//
// Settings come from the TOML file named by ROWZA_CONFIG (see
// config/testdata/users.toml); without one the built-in users settings are
// used. ROWZA_VERBOSE=1 logs every table state change. Both can be set in a
// .env file next to the working directory.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/rowza"
	"github.com/go-theft-auto/rowza/backend/opengl"
	"github.com/go-theft-auto/rowza/config"
	"github.com/go-theft-auto/rowza/table"
)

const (
	windowWidth  = 960
	windowHeight = 640
	windowTitle  = "rowza example"
)

const defaultSettings = `
page_size = 8
style = "dark"

[labels]
search_placeholder = "Search users..."
reset_filters = "Clear filters"
no_results = "No users found"

[[filters]]
column_id = "archived"
placeholder = "All users"
default_value = "false"
  [[filters.options]]
  label = "Actif"
  value = "false"
  [[filters.options]]
  label = "Archivé"
  value = "true"

[[filters]]
column_id = "roles"
placeholder = "All roles"
  [[filters.options]]
  label = "Admin"
  value = "Admin"
  [[filters.options]]
  label = "Manager"
  value = "Manager"
  [[filters.options]]
  label = "User"
  value = "User"
`

type user struct {
	Name     string
	Email    string
	Roles    []string
	Archived bool
}

func userColumns() []table.ColumnDef[user] {
	return []table.ColumnDef[user]{
		{ID: "name", Header: "Name", Accessor: func(u user) any { return u.Name }},
		{ID: "email", Header: "Email", Accessor: func(u user) any { return u.Email }},
		{
			ID: "roles", Header: "Role",
			Accessor: func(u user) any { return u.Roles },
			Cell: func(c table.CellContext[user]) string {
				return strings.Join(c.Row.Original.Roles, ", ")
			},
		},
		{
			ID: "archived", Header: "Status",
			Accessor: func(u user) any { return u.Archived },
			Cell: func(c table.CellContext[user]) string {
				if c.Row.Original.Archived {
					return "Archivé"
				}
				return "Actif"
			},
		},
	}
}

func sampleUsers() []user {
	first := []string{"Alice", "Bruno", "Chloé", "Dmitri", "Emma", "Farid", "Greta", "Hugo", "Inès", "Jonas", "Kenji", "Léa"}
	roles := [][]string{{"Admin"}, {"Manager"}, {"User"}, {"Manager", "User"}}
	users := make([]user, 0, len(first)*2)
	for i := range len(first) * 2 {
		name := first[i%len(first)]
		if i >= len(first) {
			name += " II"
		}
		users = append(users, user{
			Name:     name,
			Email:    fmt.Sprintf("%s%d@example.com", strings.ToLower(first[i%len(first)]), i),
			Roles:    roles[i%len(roles)],
			Archived: i%5 == 4,
		})
	}
	return users
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("example failed", "err", err)
		os.Exit(1)
	}
}

func loadSettings() (config.Settings, error) {
	if path := os.Getenv("ROWZA_CONFIG"); path != "" {
		slog.Info("loading table settings", "path", path)
		return config.Load(path)
	}
	return config.Parse([]byte(defaultSettings))
}

func run() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "load .env")
	}
	if v, _ := strconv.ParseBool(os.Getenv("ROWZA_VERBOSE")); v {
		rowza.SetVerbose(true)
	}

	settings, err := loadSettings()
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

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	rowza.SetClipboardProvider(opengl.NewGLFWClipboard(window))
	ui := rowza.New(renderer, rowza.WithStyle(settings.UIStyle()))

	users := &rowza.DataTableComponent[user]{
		ID:    "users",
		Title: "Users",
		Props: rowza.DataTableProps[user]{
			Columns:  userColumns(),
			Data:     sampleUsers(),
			Filters:  settings.FilterConfigs(),
			Labels:   settings.TableLabels(),
			PageSize: settings.PageSize,
			GetRowID: func(u user, _ int) string { return u.Email },
		},
	}
	slog.Info("example started", "rows", len(users.Props.Data), "pageSize", settings.PageSize, "style", settings.Style)

	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		glfw.PollEvents()
		frameInput := input.Update(dt)

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(frameInput, rowza.Vec2{X: float32(w), Y: float32(h)}, dt)
		ctx.SetCursorPos(16, 16)
		ctx.VStack(rowza.Width(float32(w)-32))(func() {
			rowza.RenderAll(ctx, users)
		})
		if err := ui.End(); err != nil {
			return err
		}
		input.EndFrame()

		window.SwapBuffers()
	}

	slog.Info("example stopped", "page", users.Result.State.Pagination.PageIndex+1)
	return nil
}
