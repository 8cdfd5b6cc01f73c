package table_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/rowza/table"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Archivé", "archive"},
		{"  ÉCOLE ", "ecole"},
		{"Straße", "strasse"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := table.Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterFns(t *testing.T) {
	tests := []struct {
		name   string
		fn     table.FilterFn
		value  any
		filter string
		want   bool
	}{
		{"includes", table.IncludesString, "Archived", "chiv", true},
		{"includes accent", table.IncludesString, "Archivé", "archive", true},
		{"includes miss", table.IncludesString, "Active", "arch", false},
		{"includes number", table.IncludesString, 1024, "02", true},
		{"equals", table.EqualsString, "Active", "ACTIVE", true},
		{"equals is whole value", table.EqualsString, "Inactive", "Active", false},
		{"equals bool", table.EqualsString, true, "true", true},
		{"equals nil", table.EqualsString, nil, "x", false},
		{"arr hit", table.ArrIncludes, []string{"Admin", "User"}, "user", true},
		{"arr miss", table.ArrIncludes, []string{"Admin"}, "User", false},
		{"arr empty", table.ArrIncludes, []string{}, "User", false},
		{"arr scalar", table.ArrIncludes, "User", "User", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.value, tt.filter); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumnFiltersWith(t *testing.T) {
	var f table.ColumnFilters
	f = f.With("status", "Active")
	f = f.With("roles", "Admin")
	f = f.With("status", "Archived")

	want := table.ColumnFilters{{ID: "status", Value: "Archived"}, {ID: "roles", Value: "Admin"}}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("With mismatch (-want +got):\n%s", diff)
	}

	cleared := f.With("status", "")
	if diff := cmp.Diff(table.ColumnFilters{{ID: "roles", Value: "Admin"}}, cleared); diff != "" {
		t.Errorf("clear mismatch (-want +got):\n%s", diff)
	}
	if f.Get("status") != "Archived" {
		t.Error("With modified its receiver")
	}
	if got := cleared.With("roles", "   "); got.Active() || len(got) != 0 {
		t.Errorf("blank value kept: %v", got)
	}
}

func TestColumnFiltersOneEntryPerColumn(t *testing.T) {
	ids := []string{"a", "b", "c"}
	values := []string{"", "x", "y", " "}
	rng := rand.New(rand.NewSource(7))

	var f table.ColumnFilters
	last := map[string]string{}
	for i := 0; i < 500; i++ {
		id := ids[rng.Intn(len(ids))]
		v := values[rng.Intn(len(values))]
		f = f.With(id, v)
		last[id] = v

		seen := map[string]bool{}
		for _, e := range f {
			if seen[e.ID] {
				t.Fatalf("step %d: duplicate entry for %q in %v", i, e.ID, f)
			}
			seen[e.ID] = true
		}
		for id, v := range last {
			want := v
			if want == "" || want == " " {
				want = ""
			}
			if got := f.Get(id); got != want {
				t.Fatalf("step %d: Get(%q) = %q, want %q", i, id, got, want)
			}
		}
	}
}
