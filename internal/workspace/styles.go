package workspace

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	flavor catppuccin.Flavor
}

func NewStyles(themeName string) *Styles {
	return &Styles{flavor: flavorFromName(themeName)}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	case "mocha":
		return catppuccin.Mocha
	default:
		return catppuccin.Mocha
	}
}

func (s *Styles) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.flavor.Mauve().Hex))
}

func (s *Styles) PaneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.flavor.Surface1().Hex))
}

func (s *Styles) FocusedPaneStyle() lipgloss.Style {
	return s.PaneStyle().
		BorderForeground(lipgloss.Color(s.flavor.Mauve().Hex))
}

func (s *Styles) HoveredPaneStyle() lipgloss.Style {
	return s.PaneStyle().
		BorderForeground(lipgloss.Color(s.flavor.Overlay1().Hex))
}

func (s *Styles) DraggedPaneStyle() lipgloss.Style {
	return s.PaneStyle().
		BorderForeground(lipgloss.Color(s.flavor.Peach().Hex)).
		Faint(true)
}

func (s *Styles) PaneTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Subtext0().Hex))
}

func (s *Styles) StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Text().Hex))
}

func (s *Styles) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Teal().Hex))
}

func (s *Styles) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Red().Hex)).
		Bold(true)
}
