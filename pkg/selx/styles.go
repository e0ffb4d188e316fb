package selx

import (
	"fmt"
	"sort"

	"charm.land/lipgloss/v2"
)

// Styles names every style slot the renderer consumes. The component passes
// these through unchanged; all visual decisions live here and in the themes.
// Each base slot has an Extra companion that is applied on top of the base
// output, mirroring the base-class/extra-class split hosts expect.
type Styles struct {
	Container         lipgloss.Style
	ContainerExtra    lipgloss.Style
	Dropdown          lipgloss.Style
	DropdownExtra     lipgloss.Style
	Option            lipgloss.Style
	OptionExtra       lipgloss.Style
	ActiveOption      lipgloss.Style
	TextInput         lipgloss.Style
	TextInputExtra    lipgloss.Style
	TextInputSelected lipgloss.Style
	Placeholder       lipgloss.Style
}

var stylePresets = map[string]func() Styles{
	"dark": darkStyles,
	"warm": warmStyles,
	"none": func() Styles { return Styles{} },
}

// StylesByName returns a built-in style set. Known names are "dark", "warm"
// and "none" (completely unstyled, for hosts that do their own styling).
func StylesByName(name string) (Styles, error) {
	if f, ok := stylePresets[name]; ok {
		return f(), nil
	}
	return Styles{}, fmt.Errorf("selx: unknown style name %q (have %v)", name, styleNames())
}

func styleNames() []string {
	names := make([]string, 0, len(stylePresets))
	for n := range stylePresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DefaultStyles returns the dark preset.
func DefaultStyles() Styles { return darkStyles() }

func darkStyles() Styles {
	return Styles{
		Container: lipgloss.NewStyle(),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")),
		Option: lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			PaddingLeft(1).
			PaddingRight(1),
		ActiveOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("24")).
			PaddingLeft(1).
			PaddingRight(1),
		TextInput: lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")),
		TextInputSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

func warmStyles() Styles {
	return Styles{
		Container: lipgloss.NewStyle(),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("137")),
		Option: lipgloss.NewStyle().
			Foreground(lipgloss.Color("180")).
			PaddingLeft(1).
			PaddingRight(1),
		ActiveOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")).
			PaddingLeft(1).
			PaddingRight(1),
		TextInput: lipgloss.NewStyle().
			Foreground(lipgloss.Color("180")),
		TextInputSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("137")),
	}
}
