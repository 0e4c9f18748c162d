package ui

import (
	"fmt"

	"flashstack/internal/deck"
	"flashstack/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal asks a yes/no question. Enter or y confirms; esc or n cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// WithDetails adds a warning line below the label.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteCardConfirmModal confirms removal of card at 1-based position.
func NewDeleteCardConfirmModal(card deck.Card, position int) *ConfirmModal {
	label := fmt.Sprintf("%d. %s", position, textutil.Truncate(textutil.SingleLine(card.Question), 48))
	return NewConfirmModal(
		"Delete card?",
		label,
		func() tea.Msg { return DeleteCardMsg{ID: card.ID} },
	).WithDetails("The card cannot be restored.")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "n":
			return m, msgCmd(DismissModalMsg{})
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/enter: delete  n/esc: cancel")
	return Styles.BoxDanger.Render(content)
}
