package ui

import (
	"fmt"
	"strings"

	"flashstack/internal/deck"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CardView shows the current card's face and the deck controls.
// It reads the store; mutations go through messages handled by the app.
type CardView struct {
	deck    *deck.Store
	keys    KeyMap
	focused bool
}

// Ensure CardView implements View.
var _ View = (*CardView)(nil)

// NewCardView creates a view over store.
func NewCardView(store *deck.Store, keys KeyMap) *CardView {
	return &CardView{deck: store, keys: keys, focused: true}
}

// SetFocused marks whether the card panel receives keys.
func (v *CardView) SetFocused(focused bool) { v.focused = focused }

// Init implements View.
func (v *CardView) Init() tea.Cmd { return nil }

// Update implements View. Prev and next are ignored while the deck has at most one card.
func (v *CardView) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	km := v.keys.withNavigation(v.deck.CanNavigate())
	switch {
	case key.Matches(keyMsg, km.Next):
		return v, msgCmd(NextCardMsg{})
	case key.Matches(keyMsg, km.Prev):
		return v, msgCmd(PrevCardMsg{})
	case key.Matches(keyMsg, km.Flip):
		if v.deck.Len() > 0 {
			return v, msgCmd(FlipCardMsg{})
		}
	case key.Matches(keyMsg, km.Add):
		return v, msgCmd(ShowAddCardMsg{})
	case key.Matches(keyMsg, km.Delete):
		if v.deck.Len() > 0 {
			return v, msgCmd(ShowDeleteCardMsg{})
		}
	}
	return v, nil
}

// Header returns the "Cards: N | Current: i/N" line.
func (v *CardView) Header() string {
	cur, total := v.deck.Position()
	return fmt.Sprintf("Cards: %d | Current: %d/%d", total, cur, total)
}

// View implements View.
func (v *CardView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("📚 Flashcard Stack") + "\n")
	b.WriteString(Styles.Muted.Render(v.Header()) + "\n")

	card, ok := v.deck.Current()
	if !ok {
		b.WriteString("\n" + Styles.Empty.Render("No cards yet. Press a to add your first card!") + "\n")
		return b.String()
	}
	b.WriteString(v.renderFace(card) + "\n")
	b.WriteString(v.renderControls())
	return b.String()
}

func (v *CardView) renderFace(card deck.Card) string {
	label, text, hint, style := "Question", card.Question, "f to flip", Styles.CardQuestion
	if v.deck.Flipped() {
		label, text, hint, style = "Answer", card.Answer, "f to flip back", Styles.CardAnswer
	}
	if !v.focused {
		style = style.BorderForeground(Styles.Disabled.GetForeground())
	}
	content := Styles.FaceLabel.Render(label) + "\n\n" +
		Styles.Normal.Render(text) + "\n\n" +
		Styles.Hint.Render(hint)
	return style.Render(content)
}

func (v *CardView) renderControls() string {
	nav := v.deck.CanNavigate()
	flipLabel := "Show Answer"
	if v.deck.Flipped() {
		flipLabel = "Show Question"
	}
	parts := []string{
		control("←/h", "Previous", nav),
		control("f", flipLabel, true),
		control("→/l", "Next", nav),
		control("d", "Delete Current Card", true),
	}
	return strings.Join(parts, "   ")
}

// control renders a key hint, dimmed when the action is unavailable.
func control(k, desc string, enabled bool) string {
	if !enabled {
		return Styles.Disabled.Render(k + " " + desc)
	}
	return Styles.Key.Render(k) + " " + Styles.Hint.Render(desc)
}
