package ui

// AppMode tells which region receives navigation keys.
type AppMode int

const (
	ModeCard AppMode = iota // current card focused
	ModeList                // card list focused
)

// Focus panel ids, in tab order.
const (
	PanelCard = "card"
	PanelList = "list"
)

func (m AppMode) String() string {
	switch m {
	case ModeCard:
		return "Card"
	case ModeList:
		return "List"
	default:
		return "Unknown"
	}
}

// modeForPanel maps a focus panel id to its AppMode.
func modeForPanel(id string) AppMode {
	if id == PanelList {
		return ModeList
	}
	return ModeCard
}
