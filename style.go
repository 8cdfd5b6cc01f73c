package rowza

import (
	"fmt"
	"sort"
	"strings"
)

// Spacing scale for consistent layout.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
	SpaceMD float32 = 8
	SpaceLG float32 = 12
	SpaceXL float32 = 16
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32 // disabled widgets and placeholders

	// Panel
	PanelColor       uint32
	PanelBorderColor uint32

	// Buttons
	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	// Selection
	SelectedBgColor uint32
	HoveredBgColor  uint32

	// Inputs
	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32
	CursorColor         uint32
	SelectionColor      uint32

	// Table
	BorderColor     uint32
	HeaderBgColor   uint32
	HeaderTextColor uint32 // 0 = TextColor
	RowBgAltColor   uint32
	RowHoveredColor uint32

	// Dropdown
	DropdownBgColor uint32
	ArrowColor      uint32

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // Default gap between items
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32
	CellPadding   float32

	BorderSize float32
}

// DefaultStyle returns the default dark-grey style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:       RGBA(20, 20, 20, 200),
		PanelBorderColor: RGBA(80, 80, 80, 255),

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SelectedBgColor: RGBA(50, 100, 150, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),
		CursorColor:         ColorWhite,
		SelectionColor:      RGBA(50, 100, 150, 160),

		BorderColor:     RGBA(80, 80, 80, 255),
		HeaderBgColor:   RGBA(40, 40, 40, 255),
		RowBgAltColor:   RGBA(35, 35, 35, 255),
		RowHoveredColor: RGBA(45, 45, 55, 255),

		DropdownBgColor: RGBA(25, 25, 25, 250),
		ArrowColor:      RGBA(180, 180, 180, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,
		CellPadding:   6,

		BorderSize: 1,
	}
}

// DarkStyle returns a darker theme with a blue accent.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255)
	s.SelectionColor = RGBA(65, 105, 225, 160)
	s.HeaderBgColor = RGBA(30, 30, 36, 255)
	s.RowBgAltColor = RGBA(28, 28, 32, 255)
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor:         RGBA(20, 20, 20, 255),
		TextDisabledColor: RGBA(150, 150, 150, 255),

		PanelColor:       RGBA(245, 245, 245, 250),
		PanelBorderColor: RGBA(200, 200, 200, 255),

		ButtonColor:         RGBA(220, 220, 220, 255),
		ButtonHoveredColor:  RGBA(200, 200, 200, 255),
		ButtonActiveColor:   RGBA(180, 180, 180, 255),
		ButtonDisabledColor: RGBA(235, 235, 235, 255),

		SelectedBgColor: RGBA(0, 120, 215, 255),
		HoveredBgColor:  RGBA(230, 230, 230, 255),

		InputBgColor:        ColorWhite,
		InputFocusedBgColor: ColorWhite,
		InputBorderColor:    RGBA(150, 150, 150, 255),
		CursorColor:         RGBA(20, 20, 20, 255),
		SelectionColor:      RGBA(0, 120, 215, 90),

		BorderColor:     RGBA(200, 200, 200, 255),
		HeaderBgColor:   RGBA(230, 230, 230, 255),
		HeaderTextColor: RGBA(20, 20, 20, 255),
		RowBgAltColor:   RGBA(250, 250, 250, 255),
		RowHoveredColor: RGBA(238, 243, 250, 255),

		DropdownBgColor: ColorWhite,
		ArrowColor:      RGBA(80, 80, 80, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,
		CellPadding:   6,

		BorderSize: 1,
	}
}

var namedStyles = map[string]func() Style{
	"default": DefaultStyle,
	"dark":    DarkStyle,
	"light":   LightStyle,
}

// StyleNames lists the names StyleByName accepts.
func StyleNames() []string {
	names := make([]string, 0, len(namedStyles))
	for n := range namedStyles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// StyleByName returns a built-in style. The empty name selects DefaultStyle.
func StyleByName(name string) (Style, error) {
	if name == "" {
		return DefaultStyle(), nil
	}
	fn, ok := namedStyles[strings.ToLower(name)]
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q (want one of %s)", name, strings.Join(StyleNames(), ", "))
	}
	return fn(), nil
}
