package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// leaderBindings converts the next-key hints for the pending sequence into
// key.Bindings sorted by key, with esc appended.
func leaderBindings(h *KeyHandler, mode AppMode) []key.Binding {
	hints := h.Registry.LeaderHints(h.Sequence(), mode)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// newHelpModel returns a help.Model in the app's colors.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Key
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	h.Styles.FullKey = Styles.Key
	h.Styles.FullDesc = Styles.Muted
	h.Styles.FullSeparator = Styles.Muted
	return h
}

// RenderKeybindHelp renders the transient bar shown while a leader sequence is pending,
// e.g. "SPC  a Add card • c Card • q Quit • esc cancel".
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	bindings := leaderBindings(h, mode)
	if len(bindings) == 0 {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	content := Styles.Muted.Render(h.Sequence()) + " " + newHelpModel().ShortHelpView(bindings)
	return box.Render(content)
}
