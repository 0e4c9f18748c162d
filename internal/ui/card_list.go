package ui

import (
	"fmt"
	"strings"

	"flashstack/internal/deck"
	"flashstack/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// listRowWidth caps the question text in a list row.
const listRowWidth = 60

// cardItem implements list.DefaultItem for a card row.
type cardItem struct {
	card     deck.Card
	position int  // 1-based
	active   bool // the store's current card
}

func (c cardItem) FilterValue() string { return c.card.Question }
func (c cardItem) Title() string {
	marker := " "
	if c.active {
		marker = "•"
	}
	q := textutil.Truncate(textutil.SingleLine(c.card.Question), listRowWidth)
	return fmt.Sprintf("%s %d. %s", marker, c.position, q)
}
func (c cardItem) Description() string { return textutil.SingleLine(c.card.Answer) }

// CardListView lists every card in deck order. Its cursor is independent of
// the store's current index until the user selects a row.
type CardListView struct {
	list    list.Model
	keys    KeyMap
	focused bool
	count   int
}

// Ensure CardListView implements View.
var _ View = (*CardListView)(nil)

// NewCardListView creates an empty list; call SetCards to fill it.
func NewCardListView(keys KeyMap) *CardListView {
	l := list.New(nil, NewCompactListDelegate(), 80, 8)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &CardListView{list: l, keys: keys}
}

// SetCards replaces the rows and moves the cursor to current.
func (v *CardListView) SetCards(cards []deck.Card, current int) {
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = cardItem{card: c, position: i + 1, active: i == current}
	}
	v.list.SetItems(items)
	v.count = len(cards)
	if current >= 0 && current < len(cards) {
		v.list.Select(current)
	}
}

// Cursor returns the highlighted row.
func (v *CardListView) Cursor() int {
	return v.list.Index()
}

// HighlightedID returns the id of the card under the cursor.
func (v *CardListView) HighlightedID() (int, bool) {
	item, ok := v.list.SelectedItem().(cardItem)
	if !ok {
		return 0, false
	}
	return item.card.ID, true
}

// SetFocused marks whether the list receives keys.
func (v *CardListView) SetFocused(focused bool) { v.focused = focused }

// Init implements View.
func (v *CardListView) Init() tea.Cmd { return nil }

// Update implements View. j/k and arrows move the cursor; enter shows the card.
func (v *CardListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.list.SetWidth(msg.Width)
		v.list.SetHeight(max(3, msg.Height/3))
		return v, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Select):
			if v.count > 0 {
				return v, msgCmd(SelectCardMsg{Index: v.list.Index()})
			}
			return v, nil
		case key.Matches(msg, v.keys.Delete):
			if id, ok := v.HighlightedID(); ok {
				return v, msgCmd(ShowDeleteCardMsg{ID: id})
			}
			return v, nil
		case key.Matches(msg, v.keys.Add):
			return v, msgCmd(ShowAddCardMsg{})
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *CardListView) View() string {
	var b strings.Builder
	title := fmt.Sprintf("All Cards (%d)", v.count)
	if v.focused {
		b.WriteString(Styles.Selected.Render(title) + "\n")
	} else {
		b.WriteString(Styles.Muted.Render(title) + "\n")
	}
	if v.count == 0 {
		b.WriteString(Styles.Empty.Render("No cards yet. Add your first card above!"))
		return b.String()
	}
	b.WriteString(v.list.View())
	return b.String()
}
