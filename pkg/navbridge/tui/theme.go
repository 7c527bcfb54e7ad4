package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of the terminal view layer.
type Theme struct {
	AccentColor    lipgloss.Color // Title bar background, count highlight
	HighlightColor lipgloss.Color // Title text on the accent
	TextColor      lipgloss.Color // Default text color
	HintColor      lipgloss.Color // Status line and help text
}

// HexToColor converts 0xRRGGBB into a lipgloss color.
func HexToColor(hex uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", hex&0xFFFFFF))
}

// NewTheme returns the default theme with accent as the accent color.
func NewTheme(accent uint32) Theme {
	return Theme{
		AccentColor:    HexToColor(accent),
		HighlightColor: HexToColor(0xFFFFFF),
		TextColor:      HexToColor(0xDDDDDD),
		HintColor:      HexToColor(0x808080),
	}
}

type styles struct {
	title lipgloss.Style
	count lipgloss.Style
	text  lipgloss.Style
	hint  lipgloss.Style
	frame lipgloss.Style
	err   lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.HighlightColor).
			Background(t.AccentColor).
			Padding(0, 1),
		count: lipgloss.NewStyle().Bold(true).Foreground(t.AccentColor),
		text:  lipgloss.NewStyle().Foreground(t.TextColor),
		hint:  lipgloss.NewStyle().Foreground(t.HintColor),
		frame: lipgloss.NewStyle().Padding(1, 2),
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
