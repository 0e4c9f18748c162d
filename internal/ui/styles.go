package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors (ANSI 256).
const (
	ColorAccent    = "86"  // titles, question face
	ColorHighlight = "205" // selection, borders
	ColorDanger    = "196" // destructive actions
	ColorMuted     = "241" // hints
	ColorText      = "252"
	ColorDim       = "238" // disabled controls
	ColorAnswer    = "214" // answer face
	ColorWarning   = "208"
)

// CardWidth is the inner width of the card face box.
const CardWidth = 56

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style

	Box       lipgloss.Style // modal box
	BoxDanger lipgloss.Style // destructive modal box

	CardQuestion lipgloss.Style // card face showing the question
	CardAnswer   lipgloss.Style // card face showing the answer
	FaceLabel    lipgloss.Style

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Disabled lipgloss.Style
	Hint     lipgloss.Style
	Key      lipgloss.Style // key name in control hints
	Status   lipgloss.Style
	Error    lipgloss.Style
	Empty    lipgloss.Style
	Label    lipgloss.Style
	Details  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	CardQuestion: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Width(CardWidth).
		Padding(1, 2),
	CardAnswer: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAnswer)).
		Width(CardWidth).
		Padding(1, 2),
	FaceLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// NewCompactListDelegate returns a single-line delegate with the shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected.PaddingLeft(1)
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted.PaddingLeft(2)
	d.Styles.NormalDesc = Styles.Muted
	return d
}
