/*
Package rowza provides an immediate-mode GUI core and, on top of it, a
filterable paged data table.

# Overview

The UI is rebuilt every frame. Widgets are methods on a dedicated Context
type and return interaction results directly; what little state they need
between frames (text cursor, open dropdown, table filters) lives in typed
frame stores and is dropped once the widget stops drawing.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := rowza.New(renderer, rowza.WithStyle(rowza.DarkStyle()))

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    input := adapter.Update(deltaTime)

	    ctx := ui.Begin(input, rowza.Vec2{X: 1280, Y: 720}, deltaTime)
	    ctx.Panel("Users", rowza.Padding(12))(func() {
	        rowza.DataTable(ctx, "users", rowza.DataTableProps[User]{
	            Columns: columns,
	            Data:    users,
	            Filters: filters,
	        })
	    })
	    if err := ui.End(); err != nil {
	        log.Fatal(err)
	    }
	    adapter.EndFrame()
	    window.SwapBuffers()
	}

# DataTable

DataTable wires three things together: a DataTableState per mounted table,
the headless engine in package table, and the primitives in this package.
Each frame it builds a table.Table from the state, lets the filter bar and
the page buttons change the state through the engine, and draws the page of
rows the engine computes.

	search input   [select per FilterConfig]   [Reset Filters]
	+--------+---------------+-------+
	| Name   | Email         | Role  |
	+--------+---------------+-------+
	| ...                            |
	+--------+---------------+-------+
	                  Page 1 of 3  < >

Changing the search or a column filter sends the table back to the first
page. The reset button shows while any filter holds text; it clears the
search and restores the configured default filters. With no matching rows
the grid shows a single row with Labels.NoResults.

# InputText Shortcuts

	Left/Right       Move cursor (Ctrl: by word, Shift: extend selection)
	Home/End         Jump to start/end
	Ctrl+A           Select all
	Ctrl+C/X/V       Copy, cut, paste (needs a ClipboardProvider)
	Backspace/Delete Delete before/after cursor, or the selection
	Enter/Escape     Stop editing

# Select Shortcuts

	Up/Down          Move the highlight while open
	Enter            Pick the highlighted entry
	Escape           Close without picking
	Mouse Wheel      Scroll a long list

# Logging

Widgets log at Debug through log/slog. Call SetVerbose(true) to see
clicks, focus changes and every DataTable state transition.
*/
package rowza
