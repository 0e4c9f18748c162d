package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// LeaderSeq is the canonical name of the leader key in sequences.
const LeaderSeq = "SPC"

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC c a" is space, then c, then a.
// Single keys use tea.KeyMsg.String() names: "q", "ctrl+c", "?".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // absent = all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers seq for all modes without a description.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers seq for all modes with a help description.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindForModes(seq, cmd, desc)
}

// BindForModes registers seq for modes only. With no modes the binding
// applies everywhere.
func (r *KeybindRegistry) BindForModes(seq string, cmd tea.Cmd, desc string, modes ...AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupForMode returns the command bound to seq if it applies in mode, or nil.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// groupLabels names leader keys that open a submenu.
var groupLabels = map[string]string{
	"c": "Card",
}

// LeaderHints returns the next keys after currentSeq with their descriptions,
// filtered by mode. An empty currentSeq means just the leader was pressed.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	prefix := LeaderSeq + " "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesToMode(seq, mode) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		if r.HasPrefix(prefix + next) {
			if label, ok := groupLabels[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[next] = d
		} else {
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	return !ok || slices.Contains(modes, mode)
}

// normalizeSeq rewrites space in any spelling to SPC.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return LeaderSeq
	}
	return s
}

// KeyHandler tracks leader state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() of the leader; Bubble Tea reports space as " "
	LeaderWaiting bool     // leader pressed, sequence incomplete
	Buffer        []string // sequence so far, starting with LeaderSeq
	Mode          AppMode  // bindings filtered to other modes do not fire
}

// NewKeyHandler creates a handler with space as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
	}
}

// Sequence returns the pending leader sequence, e.g. "SPC c".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a key. consumed means the key belongs to the keybind system
// and must not reach the views; cmd is the bound command, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := h.Sequence()
		if c := h.Registry.LookupForMode(seq, h.Mode); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if s == h.LeaderKey {
		h.LeaderWaiting = true
		h.Buffer = []string{LeaderSeq}
		return true, nil
	}

	if c := h.Registry.LookupForMode(keyToSeqPart(s), h.Mode); c != nil {
		return true, c
	}
	return false, nil
}
