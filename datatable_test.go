package rowza_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/rowza"
	"github.com/go-theft-auto/rowza/table"
)

type account struct {
	Name   string
	Status string
	Roles  []string
}

func accountColumns() []table.ColumnDef[account] {
	return []table.ColumnDef[account]{
		{ID: "name", Header: "Name", Accessor: func(a account) any { return a.Name }},
		{ID: "status", Header: "Status", Accessor: func(a account) any { return a.Status }},
		{ID: "roles", Header: "Roles", Accessor: func(a account) any { return a.Roles },
			Cell: func(c table.CellContext[account]) string { return fmt.Sprint(c.Row.Original.Roles) }},
	}
}

func accounts(n int) []account {
	out := make([]account, n)
	for i := range out {
		status := "Active"
		if i%3 == 2 {
			status = "Archived"
		}
		out[i] = account{Name: fmt.Sprintf("user%02d", i), Status: status, Roles: []string{"User"}}
	}
	return out
}

var statusFilter = rowza.FilterConfig{
	ColumnID:    "status",
	Placeholder: "Any status",
	Options: []rowza.FilterOption{
		{Label: "Active", Value: "Active"},
		{Label: "Archived", Value: "Archived"},
	},
}

func names(rows [][]string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[0]
	}
	return out
}

func TestDataTableStateDefaults(t *testing.T) {
	filters := []rowza.FilterConfig{
		{ColumnID: "status", DefaultValue: "Active"},
		{ColumnID: "roles"},
	}
	s := rowza.NewDataTableState(filters, 0)

	want := table.State{
		ColumnFilters: table.ColumnFilters{{ID: "status", Value: "Active"}},
		Pagination:    table.Pagination{PageSize: table.DefaultPageSize},
	}
	if diff := cmp.Diff(want, s.TableState()); diff != "" {
		t.Errorf("mount state mismatch (-want +got):\n%s", diff)
	}
	if !s.HasActiveFilters() {
		t.Error("a default filter value should count as active")
	}

	s.SetSearch("bob")
	s.SetColumnFilter("status", "Archived")
	s.SetColumnFilter("roles", "Admin")
	s.SetColumnFilter("roles", "User")
	s.SetPagination(2, 10)

	want = table.State{
		GlobalFilter: "bob",
		ColumnFilters: table.ColumnFilters{
			{ID: "status", Value: "Archived"},
			{ID: "roles", Value: "User"},
		},
		Pagination: table.Pagination{PageIndex: 2, PageSize: 10},
	}
	if diff := cmp.Diff(want, s.TableState()); diff != "" {
		t.Errorf("after edits (-want +got):\n%s", diff)
	}

	s.Reset()
	if s.Search != "" {
		t.Errorf("Reset kept search %q", s.Search)
	}
	if diff := cmp.Diff(s.Defaults(), s.ColumnFilters); diff != "" {
		t.Errorf("Reset filters mismatch (-want +got):\n%s", diff)
	}
}

func TestDataTableStateActiveFilters(t *testing.T) {
	tests := []struct {
		name   string
		search string
		column string
		want   bool
	}{
		{"nothing", "", "", false},
		{"blank search", "   ", "", false},
		{"search", "ann", "", true},
		{"column", "", "Archived", true},
		{"blank column", "", "  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := rowza.NewDataTableState([]rowza.FilterConfig{statusFilter}, 5)
			s.SetSearch(tt.search)
			s.SetColumnFilter("status", tt.column)
			if got := s.HasActiveFilters(); got != tt.want {
				t.Errorf("HasActiveFilters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDataTableDefaultFilter(t *testing.T) {
	h := newHarness(t)
	data := []account{{Name: "A", Status: "Active"}, {Name: "B", Status: "Archived"}}
	filter := statusFilter
	filter.DefaultValue = "Active"

	var res rowza.DataTableResult
	h.frame(func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "default-filter", rowza.DataTableProps[account]{
			Columns: []table.ColumnDef[account]{
				{ID: "status", Header: "Status", Accessor: func(a account) any { return a.Status }},
			},
			Data:    data,
			Filters: []rowza.FilterConfig{filter},
		})
	})

	if diff := cmp.Diff([][]string{{"Active"}}, res.BodyRows); diff != "" {
		t.Errorf("BodyRows mismatch (-want +got):\n%s", diff)
	}
	if !res.ResetVisible {
		t.Error("reset button hidden while the default filter is applied")
	}
	if got := len(res.Controls.Filters); got != 1 {
		t.Errorf("got %d filter controls, want 1", got)
	}
}

func TestDataTableNoResults(t *testing.T) {
	h := newHarness(t)
	props := rowza.DataTableProps[account]{
		Columns: accountColumns(),
		Data:    accounts(4),
		Filters: []rowza.FilterConfig{{ColumnID: "status", DefaultValue: "Suspended"}},
	}

	var res rowza.DataTableResult
	h.frame(func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "no-results", props)
	})

	if !res.NoResults || len(res.BodyRows) != 0 {
		t.Errorf("NoResults=%v BodyRows=%v, want the empty state", res.NoResults, res.BodyRows)
	}
	if res.EmptyLabel != "No results found" {
		t.Errorf("EmptyLabel = %q, want the default label", res.EmptyLabel)
	}
	if res.PageLabel != "Page 1 of 0" {
		t.Errorf("PageLabel = %q", res.PageLabel)
	}
	if res.CanPrevious || res.CanNext {
		t.Errorf("page buttons enabled on an empty table: prev=%v next=%v", res.CanPrevious, res.CanNext)
	}

	// No data at all shows the same row.
	props.Data = nil
	props.Filters = nil
	h.frame(func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "no-data", props)
	})
	if !res.NoResults || res.EmptyLabel != rowza.DefaultNoResults {
		t.Errorf("NoResults=%v EmptyLabel=%q, want the no-results row for empty data", res.NoResults, res.EmptyLabel)
	}
}

func TestDataTablePagination(t *testing.T) {
	h := newHarness(t)
	props := rowza.DataTableProps[account]{
		Columns:  accountColumns(),
		Data:     accounts(15),
		PageSize: 5,
	}
	var res rowza.DataTableResult
	draw := func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "paging", props)
	}

	h.frame(draw)
	if res.PageLabel != "Page 1 of 3" || res.CanPrevious || !res.CanNext {
		t.Fatalf("first page: label=%q prev=%v next=%v", res.PageLabel, res.CanPrevious, res.CanNext)
	}
	if diff := cmp.Diff([]string{"user00", "user01", "user02", "user03", "user04"}, names(res.BodyRows)); diff != "" {
		t.Errorf("first page rows (-want +got):\n%s", diff)
	}

	// Clicks apply after the frame draws; the next frame shows the move.
	for i := 0; i < 2; i++ {
		h.click(res.Controls.Next)
		h.frame(draw)
		h.frame(draw)
	}
	if res.PageLabel != "Page 3 of 3" || !res.CanPrevious || res.CanNext {
		t.Fatalf("last page: label=%q prev=%v next=%v", res.PageLabel, res.CanPrevious, res.CanNext)
	}
	if diff := cmp.Diff([]string{"user10", "user11", "user12", "user13", "user14"}, names(res.BodyRows)); diff != "" {
		t.Errorf("last page rows (-want +got):\n%s", diff)
	}

	// Next is disabled on the last page.
	h.click(res.Controls.Next)
	h.frame(draw)
	h.frame(draw)
	if res.State.Pagination.PageIndex != 2 {
		t.Errorf("PageIndex = %d after clicking a disabled next", res.State.Pagination.PageIndex)
	}

	h.click(res.Controls.Previous)
	h.frame(draw)
	h.frame(draw)
	if res.PageLabel != "Page 2 of 3" {
		t.Errorf("after previous: label=%q", res.PageLabel)
	}
}

func TestDataTableSearchResetsPage(t *testing.T) {
	h := newHarness(t)
	props := rowza.DataTableProps[account]{
		Columns:  accountColumns(),
		Data:     accounts(15),
		PageSize: 5,
	}
	var res rowza.DataTableResult
	draw := func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "search", props)
	}

	h.frame(draw)
	h.click(res.Controls.Next)
	h.frame(draw)
	h.frame(draw)
	if res.State.Pagination.PageIndex != 1 {
		t.Fatalf("PageIndex = %d, want 1", res.State.Pagination.PageIndex)
	}
	if res.ResetVisible {
		t.Error("reset button shown with no filter")
	}

	h.click(res.Controls.Search)
	h.frame(draw)
	h.typeText("user1")
	h.frame(draw)

	want := []string{"user10", "user11", "user12", "user13", "user14"}
	if diff := cmp.Diff(want, names(res.BodyRows)); diff != "" {
		t.Errorf("search rows (-want +got):\n%s", diff)
	}
	if res.State.GlobalFilter != "user1" || res.State.Pagination.PageIndex != 0 {
		t.Errorf("state after search = %+v", res.State)
	}
	if !res.ResetVisible {
		t.Error("reset button hidden while searching")
	}
}

func TestDataTableColumnFilterAndReset(t *testing.T) {
	h := newHarness(t)
	filter := statusFilter
	filter.DefaultValue = "Active"
	props := rowza.DataTableProps[account]{
		Columns:  accountColumns(),
		Data:     accounts(6),
		Filters:  []rowza.FilterConfig{filter},
		PageSize: 10,
	}
	var res rowza.DataTableResult
	draw := func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "filter-reset", props)
	}

	h.frame(draw)
	if diff := cmp.Diff([]string{"user00", "user01", "user03", "user04"}, names(res.BodyRows)); diff != "" {
		t.Fatalf("default filter rows (-want +got):\n%s", diff)
	}

	// Open the select, then pick the third entry (Any status, Active, Archived).
	header := res.Controls.Filters[0]
	h.click(header)
	h.frame(draw)
	itemHeight := float32(16)
	h.clickAt(rowza.Vec2{X: header.X + 10, Y: header.Y + header.H + 2*itemHeight + itemHeight/2})
	h.frame(draw)
	if diff := cmp.Diff([]string{"user02", "user05"}, names(res.BodyRows)); diff != "" {
		t.Fatalf("archived rows (-want +got):\n%s", diff)
	}

	h.click(res.Controls.Search)
	h.frame(draw)
	h.typeText("05")
	h.frame(draw)
	if diff := cmp.Diff([]string{"user05"}, names(res.BodyRows)); diff != "" {
		t.Fatalf("search and filter rows (-want +got):\n%s", diff)
	}

	h.click(res.Controls.Reset)
	h.frame(draw)
	want := table.State{
		ColumnFilters: table.ColumnFilters{{ID: "status", Value: "Active"}},
		Pagination:    table.Pagination{PageSize: 10},
	}
	if diff := cmp.Diff(want, res.State); diff != "" {
		t.Errorf("state after reset (-want +got):\n%s", diff)
	}

	// The placeholder entry clears the filter.
	header = res.Controls.Filters[0]
	h.click(header)
	h.frame(draw)
	h.clickAt(rowza.Vec2{X: header.X + 10, Y: header.Y + header.H + itemHeight/2})
	h.frame(draw)
	if len(res.BodyRows) != 6 || res.ResetVisible {
		t.Errorf("after clearing: %d rows, reset visible %v", len(res.BodyRows), res.ResetVisible)
	}
}

func TestDataTableUnmount(t *testing.T) {
	h := newHarness(t)
	props := rowza.DataTableProps[account]{
		Columns:  accountColumns(),
		Data:     accounts(15),
		PageSize: 5,
	}
	var res rowza.DataTableResult
	draw := func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "unmount", props)
	}

	h.frame(draw)
	h.click(res.Controls.Next)
	h.frame(draw)
	h.frame(draw)
	if res.State.Pagination.PageIndex != 1 {
		t.Fatalf("PageIndex = %d while drawn every frame, want 1", res.State.Pagination.PageIndex)
	}

	// A frame without the table unmounts it; the next draw starts fresh.
	h.frame(func(*rowza.Context) {})
	h.frame(draw)
	if res.State.Pagination.PageIndex != 0 {
		t.Errorf("PageIndex = %d after remount, want 0", res.State.Pagination.PageIndex)
	}
}

func TestDataTableLabels(t *testing.T) {
	h := newHarness(t)
	props := rowza.DataTableProps[account]{
		Columns:  accountColumns(),
		Data:     accounts(3),
		PageSize: 2,
		Labels: rowza.Labels{
			NoResults: "No users found",
			PageLabel: func(page, total int) string { return fmt.Sprintf("%d/%d", page, total) },
		},
	}

	var res rowza.DataTableResult
	h.frame(func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "labels", props)
	})
	if res.PageLabel != "1/2" {
		t.Errorf("PageLabel = %q, want 1/2", res.PageLabel)
	}
	if res.EmptyLabel != "" {
		t.Errorf("EmptyLabel = %q while rows are drawn", res.EmptyLabel)
	}

	props.Filters = []rowza.FilterConfig{{ColumnID: "status", DefaultValue: "Suspended"}}
	h.frame(func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "labels-empty", props)
	})
	if res.EmptyLabel != "No users found" {
		t.Errorf("EmptyLabel = %q, want the configured label", res.EmptyLabel)
	}
	if res.PageLabel != "1/0" {
		t.Errorf("PageLabel = %q, want 1/0", res.PageLabel)
	}
}

func TestDataTableDuplicateFilterColumn(t *testing.T) {
	h := newHarness(t)
	active := statusFilter
	active.DefaultValue = "Active"
	props := rowza.DataTableProps[account]{
		Columns: accountColumns(),
		Data:    accounts(6),
		Filters: []rowza.FilterConfig{
			active,
			{ColumnID: "status", DefaultValue: "Archived", Options: statusFilter.Options},
		},
	}

	var res rowza.DataTableResult
	h.frame(func(ctx *rowza.Context) {
		res = rowza.DataTable(ctx, "duplicate", props)
	})
	if got := len(res.Controls.Filters); got != 1 {
		t.Fatalf("got %d filter selects, want 1", got)
	}
	want := []string{"user00", "user01", "user03", "user04"}
	if diff := cmp.Diff(want, names(res.BodyRows)); diff != "" {
		t.Errorf("rows mismatch, want the first entry's default (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(table.ColumnFilters{{ID: "status", Value: "Active"}}, res.State.ColumnFilters); diff != "" {
		t.Errorf("ColumnFilters mismatch (-want +got):\n%s", diff)
	}
}

func TestDataTableIndependentInstances(t *testing.T) {
	h := newHarness(t)
	props := rowza.DataTableProps[account]{
		Columns:  accountColumns(),
		Data:     accounts(15),
		PageSize: 5,
	}
	var first, second rowza.DataTableResult
	draw := func(ctx *rowza.Context) {
		ctx.VStack()(func() {
			first = rowza.DataTable(ctx, "left", props)
			second = rowza.DataTable(ctx, "right", props)
		})
	}

	h.frame(draw)
	if first.ID == second.ID {
		t.Fatal("two tables share an ID")
	}
	h.click(second.Controls.Next)
	h.frame(draw)
	h.frame(draw)
	if first.State.Pagination.PageIndex != 0 || second.State.Pagination.PageIndex != 1 {
		t.Errorf("page indexes = %d, %d, want 0, 1",
			first.State.Pagination.PageIndex, second.State.Pagination.PageIndex)
	}
}

func TestDataTableComponent(t *testing.T) {
	h := newHarness(t)
	users := &rowza.DataTableComponent[account]{
		ID:    "users",
		Title: "Users",
		Props: rowza.DataTableProps[account]{Columns: accountColumns(), Data: accounts(2)},
	}
	var drew bool
	h.frame(func(ctx *rowza.Context) {
		rowza.RenderAll(ctx, users, rowza.ComponentFunc(func(ctx *rowza.Context) {
			ctx.Text("footer")
			drew = true
		}))
	})

	if !drew {
		t.Error("ComponentFunc was not rendered")
	}
	if got := len(users.Result.BodyRows); got != 2 {
		t.Errorf("component drew %d rows, want 2", got)
	}
	if users.Result.PageLabel != "Page 1 of 1" {
		t.Errorf("PageLabel = %q", users.Result.PageLabel)
	}
}
