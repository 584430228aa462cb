package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent         lipgloss.Style
	Success, Warning, Info, Fail lipgloss.Style
	Done, Selected, Overdue      lipgloss.Style

	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
	BoxUnchecked, BoxChecked string
	SymOK, SymFail, SymWarn  string
	SymInfo                  string
}

var Themes = []string{"classic", "neon", "mono"}

var current = ThemeFor("classic")

// ThemeFor falls back to classic for unknown names.
func ThemeFor(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Fail:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Overdue:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymOK: "✔", SymFail: "✖", SymWarn: "!", SymInfo: "•",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Warning: plain, Info: plain, Fail: plain,
			Done: plain, Selected: plain.Reverse(true), Overdue: plain,
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "+", SymFail: "x", SymWarn: "!", SymInfo: "-",
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NewStyle().Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Fail:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Overdue:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymOK: "✔", SymFail: "✖", SymWarn: "!", SymInfo: "•",
		}
	}
}

// SetTheme switches the package theme; mono also drops colour.
func SetTheme(name string) {
	current = ThemeFor(name)
	if current.Name == "mono" {
		SetColorForcing(false, true)
	}
}

func Current() Theme { return current }

// Box is the checkbox glyph for a done/paid flag.
func (t Theme) Box(checked bool) string {
	if checked {
		return t.BoxChecked
	}
	return t.BoxUnchecked
}
