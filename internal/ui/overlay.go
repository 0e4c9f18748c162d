package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view drawn over the app. Dismiss is the key that closes it.
type Overlay struct {
	View    View
	Dismiss string
}

// IsDismissKey reports whether key closes this overlay.
func (o Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds open modals; the top one receives input.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o on top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay and stores the returned View.
// The caller runs the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}
