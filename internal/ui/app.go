package ui

import (
	"strings"

	"flashstack/internal/deck"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model. It owns the deck store for the session and
// routes keys to the open modal, the keybind system, or the focused panel.
type AppModel struct {
	Mode       AppMode
	Deck       *deck.Store
	Card       *CardView
	List       *CardListView
	Focus      *FocusManager
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Keys       KeyMap
	Help       help.Model

	// Status is a one-line message below the list.
	Status        string
	StatusIsError bool

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model around store.
func NewAppModel(store *deck.Store) *AppModel {
	keys := DefaultKeyMap()
	a := &AppModel{
		Mode:       ModeCard,
		Deck:       store,
		Card:       NewCardView(store, keys),
		List:       NewCardListView(keys),
		KeyHandler: NewKeyHandler(newRegistry()),
		Keys:       keys,
		Help:       newHelpModel(),
	}
	a.Focus = NewFocusManager(PanelCard, PanelList)
	a.Focus.OnChange = func(_, to string) { a.setMode(modeForPanel(to)) }
	a.setMode(ModeCard)
	a.syncViews()
	return a
}

// newRegistry binds the global keys and the SPC leader menu.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("?", msgCmd(ToggleHelpMsg{}), "Help")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC w", msgCmd(SwitchPanelMsg{}), "Switch panel")
	reg.BindWithDesc("SPC ?", msgCmd(ToggleHelpMsg{}), "Help")
	reg.BindWithDesc("SPC c a", msgCmd(ShowAddCardMsg{}), "Add card")
	reg.BindWithDesc("SPC c d", msgCmd(ShowDeleteCardMsg{}), "Delete card")
	reg.BindForModes("SPC c f", msgCmd(FlipCardMsg{}), "Flip", ModeCard)
	reg.BindForModes("SPC c n", msgCmd(NextCardMsg{}), "Next", ModeCard)
	reg.BindForModes("SPC c p", msgCmd(PrevCardMsg{}), "Previous", ModeCard)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func (m *AppModel) setMode(mode AppMode) {
	m.Mode = mode
	m.KeyHandler.Mode = mode
	m.Card.SetFocused(mode == ModeCard)
	m.List.SetFocused(mode == ModeList)
}

// syncViews refreshes the list rows from the store.
func (m *AppModel) syncViews() {
	m.List.SetCards(m.Deck.Cards(), m.Deck.Index())
}

func (m *AppModel) setStatus(s string, isErr bool) {
	m.Status = s
	m.StatusIsError = isErr
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Help.Width = msg.Width
		a.List.Update(msg)
		return a, nil
	case NextCardMsg:
		return a.handleNext()
	case PrevCardMsg:
		return a.handlePrev()
	case FlipCardMsg:
		return a.handleFlip()
	case SelectCardMsg:
		return a.handleSelectCard(msg)
	case ShowAddCardMsg:
		return a.handleShowAddCard()
	case SubmitDraftMsg:
		return a.handleSubmitDraft(msg)
	case ShowDeleteCardMsg:
		return a.handleShowDeleteCard(msg)
	case DeleteCardMsg:
		return a.handleDeleteCard(msg)
	case DismissModalMsg:
		return a.handleDismissModal()
	case SwitchPanelMsg:
		a.Focus.Next()
		return a, nil
	case ToggleHelpMsg:
		a.Help.ShowAll = !a.Help.ShowAll
		return a, nil
	case tea.KeyMsg:
		if a.Overlays.Len() > 0 {
			return a.updateOverlay(msg)
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		if key.Matches(msg, a.Keys.Focus) {
			if msg.String() == "shift+tab" {
				a.Focus.Prev()
			} else {
				a.Focus.Next()
			}
			return a, nil
		}
		_, cmd := a.currentView().Update(msg)
		return a, cmd
	}

	// Cursor blinks and other widget ticks belong to the open modal.
	if a.Overlays.Len() > 0 {
		return a.updateOverlay(msg)
	}
	return a, nil
}

// updateOverlay feeds msg to the top modal. The add-card form mirrors its
// fields into the store draft so closing the form does not lose input.
func (a *appModelAdapter) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if top, _ := a.Overlays.Peek(); top.IsDismissKey(keyMsg.String()) {
			return a.handleDismissModal()
		}
	}
	cmd, _ := a.Overlays.UpdateTop(msg)
	if top, ok := a.Overlays.Peek(); ok {
		if form, isForm := top.View.(*AddCardModal); isForm {
			a.Deck.SetDraft(form.Draft())
		}
	}
	return a, cmd
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeList {
		return a.List
	}
	return a.Card
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	var b strings.Builder
	b.WriteString(a.Card.View())
	b.WriteString("\n\n")
	b.WriteString(a.List.View())
	b.WriteString("\n")
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		b.WriteString(style.Render(a.Status))
	}
	b.WriteString("\n")
	b.WriteString(a.Help.View(a.Keys.withNavigation(a.Deck.CanNavigate())))
	if a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Mode))
	} else {
		b.WriteString("\n" + Styles.Hint.Render("Press [SPC] for commands"))
	}
	return b.String()
}
