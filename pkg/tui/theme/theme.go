package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Name   string
	Grid   GridTheme
	Footer FooterTheme
	Panel  PanelTheme
}

// GridTheme styles the calendar columns.
type GridTheme struct {
	Header    lipgloss.Style
	Today     lipgloss.Style
	Gutter    lipgloss.Style
	Day       lipgloss.Style
	Night     lipgloss.Style
	Block     lipgloss.Style
	Completed lipgloss.Style
	Dimmed    lipgloss.Style
	Cursor    lipgloss.Style
	Target    lipgloss.Style
	Refused   lipgloss.Style
	Now       lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Prompt lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Bar   lipgloss.Style
	Track lipgloss.Style
}

type palette struct {
	fg, muted, accent, block, done, night, day, now, warn string
}

var (
	dark = palette{
		fg: "252", muted: "244", accent: "212", block: "63", done: "35",
		night: "235", day: "237", now: "203", warn: "160",
	}
	light = palette{
		fg: "235", muted: "242", accent: "162", block: "111", done: "114",
		night: "253", day: "255", now: "160", warn: "196",
	}
)

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Dark()
}

// Dark is the default palette.
func Dark() Theme {
	return build("dark", dark)
}

// Light suits light terminal backgrounds.
func Light() Theme {
	return build("light", light)
}

// Named returns the theme called name, falling back to Default.
func Named(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Default()
}

// Toggle swaps between the dark and light palettes.
func (t Theme) Toggle() Theme {
	if t.Name == "light" {
		return Dark()
	}
	return Light()
}

func build(name string, p palette) Theme {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.fg))
	block := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fg)).
		Background(lipgloss.Color(p.block))

	return Theme{
		Name: name,
		Grid: GridTheme{
			Header:    header,
			Today:     header.Foreground(lipgloss.Color(p.accent)),
			Gutter:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
			Day:       lipgloss.NewStyle().Background(lipgloss.Color(p.day)),
			Night:     lipgloss.NewStyle().Background(lipgloss.Color(p.night)),
			Block:     block,
			Completed: block.Background(lipgloss.Color(p.done)).Strikethrough(true),
			Dimmed:    block.Faint(true),
			Cursor:    lipgloss.NewStyle().Reverse(true),
			Target:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
			Refused:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.warn)),
			Now:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.now)).Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.done)),
			Track: lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		},
	}
}
