// Package ui is the Bubble Tea front end of flashstack.
//
// The root AppModel owns a *deck.Store and translates key presses into store
// operations. Building blocks:
//   - View: an Elm-style region with its own Init/Update/View
//   - CardView and CardListView: the current card face and the deck list
//   - FocusManager: tab rotation between the card and the list
//   - OverlayStack: modal views (add card, delete confirmation) with a dismiss key
//   - KeybindRegistry and KeyHandler: single keys and SPC-leader sequences
package ui
