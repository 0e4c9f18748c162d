package ui

import (
	"testing"

	"flashstack/internal/deck"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, store *deck.Store) (*AppModel, *appModelAdapter) {
	t.Helper()
	if store == nil {
		store = deck.NewSeeded()
	}
	a := NewAppModel(store)
	return a, &appModelAdapter{AppModel: a}
}

// press sends a key and feeds the resulting app message back once, the way
// the Bubble Tea runtime would. Widget commands (cursor blinks) are not run.
func press(adapter *appModelAdapter, keys ...string) {
	for _, k := range keys {
		_, cmd := adapter.Update(keyMsg(k))
		runAppCmd(adapter, cmd)
	}
}

// typeText sends s as a single rune burst without running widget commands.
func typeText(adapter *appModelAdapter, s string) {
	adapter.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func runAppCmd(adapter *appModelAdapter, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if !isAppMsg(msg) {
		return
	}
	_, next := adapter.Update(msg)
	runAppCmd(adapter, next)
}

// isAppMsg reports whether msg is one of the app's own messages. press only
// runs commands returned for control keys, which never sleep.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case NextCardMsg, PrevCardMsg, FlipCardMsg, SelectCardMsg,
		ShowAddCardMsg, SubmitDraftMsg, ShowDeleteCardMsg, DeleteCardMsg,
		DismissModalMsg, SwitchPanelMsg, ToggleHelpMsg:
		return true
	}
	return false
}

func TestApp_NextPrevFlipKeys(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, "l")
	assert.Equal(t, 1, a.Deck.Index())
	press(adapter, "right", "n")
	assert.Equal(t, 3, a.Deck.Index())
	press(adapter, "h", "left", "p")
	assert.Equal(t, 0, a.Deck.Index())

	press(adapter, "f")
	assert.True(t, a.Deck.Flipped())
	press(adapter, "enter")
	assert.False(t, a.Deck.Flipped())

	press(adapter, "f", "l")
	assert.False(t, a.Deck.Flipped(), "navigation resets flip")
}

func TestApp_NextFiveTimesWraps(t *testing.T) {
	a, adapter := newTestApp(t, nil)
	press(adapter, "l", "l", "l", "l", "l")
	assert.Equal(t, 0, a.Deck.Index())
	assert.False(t, a.Deck.Flipped())
}

func TestApp_NavigationDisabledWithOneCard(t *testing.T) {
	store := deck.New([]deck.Draft{{Question: "only", Answer: "one"}})
	a, adapter := newTestApp(t, store)

	_, cmd := adapter.Update(keyMsg("l"))
	assert.Nil(t, cmd, "next is disabled for a single card")
	_, cmd = adapter.Update(keyMsg("h"))
	assert.Nil(t, cmd)

	press(adapter, "f")
	assert.True(t, a.Deck.Flipped(), "flip still works")

	// Messages from the leader menu are ignored too.
	adapter.Update(NextCardMsg{})
	assert.True(t, a.Deck.Flipped())
}

func TestApp_AddCardFlow(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, "a")
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	_, ok := top.View.(*AddCardModal)
	require.True(t, ok, "expected AddCardModal, got %T", top.View)

	typeText(adapter, "Capital of France?")
	adapter.Update(keyMsg("tab"))
	typeText(adapter, "Paris")
	assert.Equal(t, deck.Draft{Question: "Capital of France?", Answer: "Paris"}, a.Deck.Draft())

	press(adapter, "ctrl+s")
	assert.Equal(t, 0, a.Overlays.Len())
	require.Equal(t, 6, a.Deck.Len())
	last := a.Deck.Cards()[5]
	assert.Equal(t, "Capital of France?", last.Question)
	assert.Equal(t, "Paris", last.Answer)
	assert.True(t, a.Deck.Draft().IsZero())
	assert.Equal(t, "Added card #6", a.Status)
	assert.Equal(t, 0, a.Deck.Index(), "adding does not navigate")
}

func TestApp_AddBlankIsSilentlyIgnored(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, "a")
	typeText(adapter, "   ")
	press(adapter, "ctrl+s")

	assert.Equal(t, 5, a.Deck.Len())
	assert.Equal(t, 1, a.Overlays.Len(), "form stays open")
	assert.Empty(t, a.Status)
	assert.False(t, a.StatusIsError)
}

func TestApp_DraftSurvivesDismiss(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, "a")
	typeText(adapter, "half typed")
	press(adapter, "esc")
	require.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, "half typed", a.Deck.Draft().Question)

	press(adapter, "a")
	top, _ := a.Overlays.Peek()
	form := top.View.(*AddCardModal)
	assert.Equal(t, "half typed", form.Draft().Question)
}

func TestApp_KeysGoToModalNotKeybinds(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, "a")
	typeText(adapter, "q")
	adapter.Update(keyMsg(" "))
	assert.False(t, a.KeyHandler.LeaderWaiting, "space inside the form is text")
	require.Equal(t, 1, a.Overlays.Len(), "q inside the form must not quit")
	assert.Equal(t, "q ", a.Deck.Draft().Question)
	assert.Equal(t, 5, a.Deck.Len())
}

func TestApp_DeleteCurrentWithConfirm(t *testing.T) {
	a, adapter := newTestApp(t, nil)
	press(adapter, "l", "l")

	press(adapter, "d")
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	modal, ok := top.View.(*ConfirmModal)
	require.True(t, ok)
	assert.Contains(t, modal.Label, "What is Vite?")

	press(adapter, "y")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, 4, a.Deck.Len())
	for _, c := range a.Deck.Cards() {
		assert.NotEqual(t, 3, c.ID)
	}
	assert.Equal(t, "Card deleted", a.Status)
}

func TestApp_DeleteCancel(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, "d", "n")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, 5, a.Deck.Len())

	press(adapter, "d", "esc")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, 5, a.Deck.Len())
}

func TestApp_DeleteLastWhileCurrent(t *testing.T) {
	a, adapter := newTestApp(t, nil)
	press(adapter, "h")
	require.Equal(t, 4, a.Deck.Index())

	press(adapter, "d", "enter")
	assert.Equal(t, 4, a.Deck.Len())
	assert.Equal(t, 3, a.Deck.Index())
}

func TestApp_DeleteOnEmptyDeckDoesNothing(t *testing.T) {
	a, adapter := newTestApp(t, deck.New(nil))

	_, cmd := adapter.Update(keyMsg("d"))
	assert.Nil(t, cmd)
	adapter.Update(ShowDeleteCardMsg{})
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestApp_ListSelect(t *testing.T) {
	a, adapter := newTestApp(t, nil)
	press(adapter, "f")

	press(adapter, "tab")
	require.Equal(t, ModeList, a.Mode)

	press(adapter, "j", "j", "j")
	assert.Equal(t, 3, a.List.Cursor())
	assert.Equal(t, 0, a.Deck.Index(), "moving the list cursor does not navigate")

	press(adapter, "enter")
	assert.Equal(t, 3, a.Deck.Index())
	assert.False(t, a.Deck.Flipped())
	assert.Equal(t, ModeCard, a.Mode, "selecting returns to the card")
}

func TestApp_ListDeleteHighlighted(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, "tab", "down", "x")
	require.Equal(t, 1, a.Overlays.Len())
	press(adapter, "y")

	assert.Equal(t, []int{1, 3, 4, 5}, cardIDs(a.Deck.Cards()))
	assert.Equal(t, ModeList, a.Mode)
}

func TestApp_LeaderMenu(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, " ", "c", "n")
	assert.Equal(t, 1, a.Deck.Index())

	press(adapter, " ", "c", "f")
	assert.True(t, a.Deck.Flipped())

	press(adapter, " ", "c", "a")
	require.Equal(t, 1, a.Overlays.Len())
	press(adapter, "esc")

	press(adapter, " ", "w")
	assert.Equal(t, ModeList, a.Mode)

	press(adapter, " ", "c", "d")
	require.Equal(t, 1, a.Overlays.Len())
	press(adapter, "esc")
}

func TestApp_CardLeaderKeysIgnoredInListMode(t *testing.T) {
	a, adapter := newTestApp(t, nil)

	press(adapter, "tab")
	require.Equal(t, ModeList, a.Mode)

	press(adapter, " ", "c")
	hints := RenderKeybindHelp(a.KeyHandler, a.Mode)
	assert.Contains(t, hints, "Add card")
	assert.NotContains(t, hints, "Next")
	press(adapter, "n")
	assert.Equal(t, 0, a.Deck.Index())
	assert.False(t, a.KeyHandler.LeaderWaiting)

	press(adapter, " ", "c", "f")
	assert.False(t, a.Deck.Flipped())
	press(adapter, " ", "c", "p")
	assert.Equal(t, 0, a.Deck.Index())

	press(adapter, "tab", " ", "c", "n")
	assert.Equal(t, 1, a.Deck.Index(), "card mode still honors the leader keys")
}

func TestApp_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		_, adapter := newTestApp(t, nil)
		_, cmd := adapter.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k)
	}
}

func TestApp_ToggleHelp(t *testing.T) {
	a, adapter := newTestApp(t, nil)
	press(adapter, "?")
	assert.True(t, a.Help.ShowAll)
	press(adapter, "?")
	assert.False(t, a.Help.ShowAll)
}

func TestApp_SelectOutOfRangeSetsError(t *testing.T) {
	a, adapter := newTestApp(t, nil)
	adapter.Update(SelectCardMsg{Index: 9})
	assert.True(t, a.StatusIsError)
	assert.Contains(t, a.Status, "out of range")
	assert.Equal(t, 0, a.Deck.Index())
}

func TestApp_ViewRendersHeaderCardAndList(t *testing.T) {
	_, adapter := newTestApp(t, nil)

	out := adapter.View()
	assert.Contains(t, out, "Cards: 5 | Current: 1/5")
	assert.Contains(t, out, "Question")
	assert.Contains(t, out, "What is React?")
	assert.Contains(t, out, "All Cards (5)")
	assert.Contains(t, out, "Press [SPC] for commands")

	press(adapter, "f")
	out = adapter.View()
	assert.Contains(t, out, "Answer")
	assert.Contains(t, out, "A JavaScript library")
	assert.Contains(t, out, "Show Question")
}

func TestApp_ViewShowsModalAndLeaderHelp(t *testing.T) {
	_, adapter := newTestApp(t, nil)

	press(adapter, " ")
	assert.Contains(t, adapter.View(), "Switch panel")
	press(adapter, "esc")
	assert.NotContains(t, adapter.View(), "Switch panel")

	press(adapter, "a")
	assert.Contains(t, adapter.View(), "Add New Card")
}

func TestApp_EmptyDeckView(t *testing.T) {
	_, adapter := newTestApp(t, deck.New(nil))
	out := adapter.View()
	assert.Contains(t, out, "Cards: 0 | Current: 0/0")
	assert.Contains(t, out, "No cards yet")
}

func cardIDs(cards []deck.Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
