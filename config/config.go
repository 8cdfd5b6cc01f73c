// Package config loads DataTable settings from TOML.
//
//	page_size = 10
//	style = "dark"
//
//	[labels]
//	search_placeholder = "Search users..."
//	page_label = "Page {page} of {total}"
//
//	[[filters]]
//	column_id = "role"
//	placeholder = "All roles"
//	  [[filters.options]]
//	  label = "Admin"
//	  value = "admin"
package config

import (
	"strconv"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/rowza"
	"github.com/go-theft-auto/rowza/table"
)

// Settings is the decoded settings file.
type Settings struct {
	PageSize int              `koanf:"page_size"`
	Style    string           `koanf:"style"`
	Labels   LabelSettings    `koanf:"labels"`
	Filters  []FilterSettings `koanf:"filters"`
}

// LabelSettings is the [labels] table. Empty keys keep the DataTable
// defaults.
type LabelSettings struct {
	SearchPlaceholder string `koanf:"search_placeholder"`
	ResetFilters      string `koanf:"reset_filters"`
	NoResults         string `koanf:"no_results"`
	PageLabel         string `koanf:"page_label"` // "{page}" and "{total}" are replaced
}

// FilterSettings is one [[filters]] entry: a select over column_id.
type FilterSettings struct {
	ColumnID     string           `koanf:"column_id"`
	Placeholder  string           `koanf:"placeholder"`
	DefaultValue string           `koanf:"default_value"`
	Options      []OptionSettings `koanf:"options"`
}

// OptionSettings is one [[filters.options]] entry.
type OptionSettings struct {
	Label string `koanf:"label"`
	Value string `koanf:"value"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"page_size": table.DefaultPageSize,
		"style":     "default",
	}
}

// Load reads and validates the settings file at path.
func Load(path string) (Settings, error) {
	s, err := load(file.Provider(path))
	if err != nil {
		return Settings{}, errors.Wrapf(err, "load table config %s", path)
	}
	return s, nil
}

// Parse decodes and validates settings from TOML bytes.
func Parse(data []byte) (Settings, error) {
	s, err := load(rawbytes.Provider(data))
	if err != nil {
		return Settings{}, errors.Wrap(err, "load table config")
	}
	return s, nil
}

func load(p koanf.Provider) (Settings, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Settings{}, errors.Wrap(err, "defaults")
	}
	if err := k.Load(p, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, "parse")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, errors.Wrap(err, "decode")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values a DataTable can't use.
func (s Settings) Validate() error {
	if s.PageSize <= 0 {
		return errors.Errorf("page_size must be positive, got %d", s.PageSize)
	}
	if _, err := rowza.StyleByName(s.Style); err != nil {
		return errors.Wrap(err, "style")
	}
	if t := s.Labels.PageLabel; t != "" && (!strings.Contains(t, "{page}") || !strings.Contains(t, "{total}")) {
		return errors.Errorf("labels.page_label %q needs {page} and {total}", t)
	}

	seen := make(map[string]bool, len(s.Filters))
	for i, f := range s.Filters {
		if f.ColumnID == "" {
			return errors.Errorf("filters[%d]: column_id is required", i)
		}
		if seen[f.ColumnID] {
			return errors.Errorf("filters[%d]: duplicate column %q", i, f.ColumnID)
		}
		seen[f.ColumnID] = true
		if len(f.Options) == 0 {
			return errors.Errorf("filter %q has no options", f.ColumnID)
		}
		if f.DefaultValue != "" && !f.hasOption(f.DefaultValue) {
			return errors.Errorf("filter %q: default_value %q is not an option", f.ColumnID, f.DefaultValue)
		}
	}
	return nil
}

func (f FilterSettings) hasOption(value string) bool {
	for _, o := range f.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// TableLabels converts the label settings. Unset labels keep the DataTable
// defaults.
func (s Settings) TableLabels() rowza.Labels {
	l := rowza.Labels{
		SearchPlaceholder: s.Labels.SearchPlaceholder,
		ResetFilters:      s.Labels.ResetFilters,
		NoResults:         s.Labels.NoResults,
	}
	if t := s.Labels.PageLabel; t != "" {
		l.PageLabel = func(page, pageCount int) string {
			return strings.NewReplacer(
				"{page}", strconv.Itoa(page),
				"{total}", strconv.Itoa(pageCount),
			).Replace(t)
		}
	}
	return l
}

// FilterConfigs converts the filter settings, in file order.
func (s Settings) FilterConfigs() []rowza.FilterConfig {
	out := make([]rowza.FilterConfig, len(s.Filters))
	for i, f := range s.Filters {
		opts := make([]rowza.FilterOption, len(f.Options))
		for j, o := range f.Options {
			opts[j] = rowza.FilterOption(o)
		}
		out[i] = rowza.FilterConfig{
			ColumnID:     f.ColumnID,
			Placeholder:  f.Placeholder,
			Options:      opts,
			DefaultValue: f.DefaultValue,
		}
	}
	return out
}

// UIStyle returns the named style. Validate has already checked the name.
func (s Settings) UIStyle() rowza.Style {
	style, err := rowza.StyleByName(s.Style)
	if err != nil {
		return rowza.DefaultStyle()
	}
	return style
}
