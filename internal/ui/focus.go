package ui

// FocusManager rotates focus across panels in a fixed tab order.
type FocusManager struct {
	Current  string
	Order    []string
	OnChange func(from, to string)
}

// NewFocusManager focuses the first panel of order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus forward, wrapping at the end, and returns the new panel id.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.set(f.Order[(idx+delta+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
