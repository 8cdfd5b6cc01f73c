package config_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/rowza"
	"github.com/go-theft-auto/rowza/config"
)

func TestLoadFile(t *testing.T) {
	s, err := config.Load("testdata/users.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.PageSize != 10 || s.Style != "dark" {
		t.Errorf("page_size=%d style=%q", s.PageSize, s.Style)
	}

	want := []rowza.FilterConfig{
		{
			ColumnID:     "archived",
			Placeholder:  "All states",
			DefaultValue: "false",
			Options:      []rowza.FilterOption{{Label: "Actif", Value: "false"}, {Label: "Archivé", Value: "true"}},
		},
		{
			ColumnID:    "roles",
			Placeholder: "All roles",
			Options: []rowza.FilterOption{
				{Label: "Admin", Value: "Admin"},
				{Label: "Manager", Value: "Manager"},
				{Label: "User", Value: "User"},
			},
		},
	}
	if diff := cmp.Diff(want, s.FilterConfigs()); diff != "" {
		t.Errorf("FilterConfigs mismatch (-want +got):\n%s", diff)
	}

	labels := s.TableLabels()
	if labels.SearchPlaceholder != "Search users..." || labels.ResetFilters != "Clear filters" || labels.NoResults != "No users found" {
		t.Errorf("labels = %+v", labels)
	}
	if got := labels.PageLabel(2, 7); got != "Page 2 / 7" {
		t.Errorf("PageLabel(2, 7) = %q", got)
	}
	if diff := cmp.Diff(rowza.DarkStyle(), s.UIStyle()); diff != "" {
		t.Errorf("UIStyle mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := config.Parse([]byte(`[labels]
no_results = "Nothing here"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.PageSize != 25 || s.Style != "default" {
		t.Errorf("defaults not applied: page_size=%d style=%q", s.PageSize, s.Style)
	}
	labels := s.TableLabels()
	if labels.PageLabel != nil {
		t.Error("PageLabel set without a template")
	}
	if labels.NoResults != "Nothing here" {
		t.Errorf("NoResults = %q", labels.NoResults)
	}
	if len(s.FilterConfigs()) != 0 {
		t.Errorf("FilterConfigs = %v, want none", s.FilterConfigs())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"bad toml", `page_size = `, "parse"},
		{"page size", `page_size = 0`, "page_size must be positive"},
		{"style", `style = "neon"`, "unknown style"},
		{"page label", "[labels]\npage_label = \"Page {page}\"", "needs {page} and {total}"},
		{"no column", "[[filters]]\nplaceholder = \"x\"", "column_id is required"},
		{"duplicate", "[[filters]]\ncolumn_id = \"a\"\n[[filters.options]]\nvalue = \"1\"\n[[filters]]\ncolumn_id = \"a\"", "duplicate column"},
		{"no options", "[[filters]]\ncolumn_id = \"a\"", "has no options"},
		{"default", "[[filters]]\ncolumn_id = \"a\"\ndefault_value = \"2\"\n[[filters.options]]\nvalue = \"1\"", "is not an option"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.toml))
			if err == nil {
				t.Fatal("Parse succeeded, want an error")
			}
			if !strings.HasPrefix(err.Error(), "load table config") || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("testdata/missing.toml")
	if err == nil || !strings.Contains(err.Error(), "testdata/missing.toml") {
		t.Errorf("Load(missing) error = %v", err)
	}
}
