package ui

import (
	"flashstack/internal/deck"

	tea "github.com/charmbracelet/bubbletea"
)

// NextCardMsg advances to the next card.
type NextCardMsg struct{}

// PrevCardMsg goes back to the previous card.
type PrevCardMsg struct{}

// FlipCardMsg toggles the current card between question and answer.
type FlipCardMsg struct{}

// SelectCardMsg jumps to the card at Index (from the card list).
type SelectCardMsg struct {
	Index int
}

// ShowAddCardMsg opens the add-card modal (a, SPC c a).
type ShowAddCardMsg struct{}

// SubmitDraftMsg asks the store to commit Draft. Blank drafts are ignored.
type SubmitDraftMsg struct {
	Draft deck.Draft
}

// ShowDeleteCardMsg opens the delete confirmation (d, SPC c d).
// A zero ID targets the current card in card mode and the highlighted row in list mode.
type ShowDeleteCardMsg struct {
	ID int
}

// DeleteCardMsg is sent when the user confirms deletion.
type DeleteCardMsg struct {
	ID int
}

// DismissModalMsg closes the top modal (Esc).
type DismissModalMsg struct{}

// SwitchPanelMsg moves focus between the card and the list (tab, SPC w).
type SwitchPanelMsg struct{}

// ToggleHelpMsg expands or collapses the footer help (?, SPC ?).
type ToggleHelpMsg struct{}

// msgCmd wraps a message in a tea.Cmd.
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
