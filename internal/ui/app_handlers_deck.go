package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleNext advances the deck. Ignored with fewer than two cards, like a disabled button.
func (a *appModelAdapter) handleNext() (tea.Model, tea.Cmd) {
	if !a.Deck.CanNavigate() {
		return a, nil
	}
	a.Deck.Next()
	a.setStatus("", false)
	a.syncViews()
	return a, nil
}

// handlePrev moves the deck back one card.
func (a *appModelAdapter) handlePrev() (tea.Model, tea.Cmd) {
	if !a.Deck.CanNavigate() {
		return a, nil
	}
	a.Deck.Prev()
	a.setStatus("", false)
	a.syncViews()
	return a, nil
}

func (a *appModelAdapter) handleFlip() (tea.Model, tea.Cmd) {
	a.Deck.Flip()
	return a, nil
}

// handleSelectCard shows the chosen card and returns focus to the card panel.
func (a *appModelAdapter) handleSelectCard(msg SelectCardMsg) (tea.Model, tea.Cmd) {
	if err := a.Deck.Select(msg.Index); err != nil {
		a.setStatus(fmt.Sprintf("Select card: %v", err), true)
		return a, nil
	}
	a.setStatus("", false)
	a.syncViews()
	a.Focus.SetFocus(PanelCard)
	return a, nil
}

// handleShowAddCard opens the add-card form with the pending draft.
func (a *appModelAdapter) handleShowAddCard() (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if _, isForm := top.View.(*AddCardModal); isForm {
			return a, nil
		}
	}
	modal := NewAddCardModal(a.Deck.Draft())
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleSubmitDraft commits the draft. A blank draft leaves the form open and
// reports nothing.
func (a *appModelAdapter) handleSubmitDraft(msg SubmitDraftMsg) (tea.Model, tea.Cmd) {
	a.Deck.SetDraft(msg.Draft)
	card, ok := a.Deck.CommitDraft()
	if !ok {
		return a, nil
	}
	if top, hasTop := a.Overlays.Peek(); hasTop {
		if _, isForm := top.View.(*AddCardModal); isForm {
			a.Overlays.Pop()
		}
	}
	a.setStatus(fmt.Sprintf("Added card #%d", card.ID), false)
	a.syncViews()
	return a, nil
}

// handleShowDeleteCard asks for confirmation before deleting. A zero ID means
// the highlighted row in list mode and the current card otherwise.
func (a *appModelAdapter) handleShowDeleteCard(msg ShowDeleteCardMsg) (tea.Model, tea.Cmd) {
	id := msg.ID
	if id == 0 {
		if a.Mode == ModeList {
			id, _ = a.List.HighlightedID()
		} else if c, ok := a.Deck.Current(); ok {
			id = c.ID
		}
	}
	for i, c := range a.Deck.Cards() {
		if c.ID == id {
			a.Overlays.Push(Overlay{View: NewDeleteCardConfirmModal(c, i+1), Dismiss: "esc"})
			return a, nil
		}
	}
	return a, nil
}

// handleDeleteCard removes the card and closes the confirmation.
func (a *appModelAdapter) handleDeleteCard(msg DeleteCardMsg) (tea.Model, tea.Cmd) {
	if a.Overlays.Len() > 0 {
		a.Overlays.Pop()
	}
	if a.Deck.Delete(msg.ID) {
		a.setStatus("Card deleted", false)
	}
	a.syncViews()
	return a, nil
}

func (a *appModelAdapter) handleDismissModal() (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	return a, nil
}
