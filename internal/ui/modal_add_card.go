package ui

import (
	"flashstack/internal/deck"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AddCardModal collects a question (single line) and an answer (multi-line).
// tab switches fields, ctrl+s submits, esc dismisses and keeps the draft.
type AddCardModal struct {
	question textinput.Model
	answer   textarea.Model
	onAnswer bool
}

// Ensure AddCardModal implements View.
var _ View = (*AddCardModal)(nil)

// NewAddCardModal creates the modal pre-filled with draft.
func NewAddCardModal(draft deck.Draft) *AddCardModal {
	q := textinput.New()
	q.Placeholder = "Enter question..."
	q.Width = 48
	q.Prompt = "Q: "
	q.SetValue(draft.Question)
	q.Focus()

	a := textarea.New()
	a.Placeholder = "Enter answer..."
	a.ShowLineNumbers = false
	a.SetWidth(50)
	a.SetHeight(3)
	a.SetValue(draft.Answer)
	a.Blur()

	return &AddCardModal{question: q, answer: a}
}

// Draft returns the current field values.
func (m *AddCardModal) Draft() deck.Draft {
	return deck.Draft{Question: m.question.Value(), Answer: m.answer.Value()}
}

// AnswerFocused reports whether the answer field has focus.
func (m *AddCardModal) AnswerFocused() bool { return m.onAnswer }

// Init implements View.
func (m *AddCardModal) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AddCardModal) toggleField() tea.Cmd {
	m.onAnswer = !m.onAnswer
	if m.onAnswer {
		m.question.Blur()
		return m.answer.Focus()
	}
	m.answer.Blur()
	return m.question.Focus()
}

// Update implements View.
func (m *AddCardModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, msgCmd(DismissModalMsg{})
		case "tab", "shift+tab":
			return m, m.toggleField()
		case "ctrl+s":
			return m, msgCmd(SubmitDraftMsg{Draft: m.Draft()})
		case "enter":
			if !m.onAnswer {
				return m, m.toggleField()
			}
		}
	}
	var cmd tea.Cmd
	if m.onAnswer {
		m.answer, cmd = m.answer.Update(msg)
	} else {
		m.question, cmd = m.question.Update(msg)
	}
	return m, cmd
}

// View implements View.
func (m *AddCardModal) View() string {
	content := Styles.Title.Render("Add New Card") + "\n\n"
	content += m.question.View() + "\n\n"
	content += Styles.Label.Render("A:") + "\n" + m.answer.View() + "\n\n"
	content += Styles.Hint.Render("tab: switch field  ctrl+s: add card  esc: close")
	return Styles.Box.Render(content)
}
