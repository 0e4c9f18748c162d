// Package deck holds the flashcard deck: an ordered list of cards, the
// current viewing position, the flip state and the add-card draft.
//
// A Store is owned by a single interactive session and is not safe for
// concurrent use. Operations on an empty deck are no-ops.
package deck

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Select for a position outside the deck.
var ErrIndexOutOfRange = errors.New("card index out of range")

// Store is the deck state: cards in display order, the current index,
// whether the current card shows its answer, and the pending draft.
type Store struct {
	cards   []Card
	index   int
	flipped bool
	draft   Draft
	nextID  int

	observer Observer
}

// Option configures a Store.
type Option func(*Store)

// WithObserver registers obs to be notified after each mutation.
func WithObserver(obs Observer) Option {
	return func(s *Store) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// New creates a Store seeded with the given cards in order.
// Seeded cards get ids 1..len(seed).
func New(seed []Draft, opts ...Option) *Store {
	s := &Store{
		cards:    make([]Card, 0, len(seed)),
		nextID:   1,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, d := range seed {
		s.cards = append(s.cards, s.newCard(d))
	}
	return s
}

// NewSeeded creates a Store holding DefaultSeed.
func NewSeeded(opts ...Option) *Store {
	return New(DefaultSeed, opts...)
}

// newCard assigns the next id. Ids never repeat within a Store, even after deletes.
func (s *Store) newCard(d Draft) Card {
	c := Card{ID: s.nextID, Question: d.Question, Answer: d.Answer}
	s.nextID++
	return c
}

// Cards returns a copy of the deck in display order.
func (s *Store) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Len returns the number of cards.
func (s *Store) Len() int { return len(s.cards) }

// Index returns the current position. It is 0 for an empty deck.
func (s *Store) Index() int { return s.index }

// Flipped reports whether the current card shows its answer.
func (s *Store) Flipped() bool { return s.flipped }

// Draft returns the pending add-card input.
func (s *Store) Draft() Draft { return s.draft }

// SetDraft replaces the pending add-card input.
func (s *Store) SetDraft(d Draft) { s.draft = d }

// Current returns the card at the current index, or false when the deck is empty.
func (s *Store) Current() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	return s.cards[s.index], true
}

// Position returns the 1-based current position and the deck size,
// e.g. (2, 5) for "Current: 2/5". An empty deck yields (0, 0).
func (s *Store) Position() (current, total int) {
	if len(s.cards) == 0 {
		return 0, 0
	}
	return s.index + 1, len(s.cards)
}

// CanNavigate reports whether Next and Prev would move to a different card.
func (s *Store) CanNavigate() bool { return len(s.cards) > 1 }

// Next advances to the following card, wrapping from last to first.
func (s *Store) Next() {
	n := len(s.cards)
	if n == 0 {
		return
	}
	from := s.index
	s.flipped = false
	s.index = (s.index + 1) % n
	s.observer.OnNavigate(from, s.index)
}

// Prev moves to the preceding card, wrapping from first to last.
func (s *Store) Prev() {
	n := len(s.cards)
	if n == 0 {
		return
	}
	from := s.index
	s.flipped = false
	s.index = (s.index - 1 + n) % n
	s.observer.OnNavigate(from, s.index)
}

// Flip toggles between the question and answer face of the current card.
func (s *Store) Flip() {
	if len(s.cards) == 0 {
		return
	}
	s.flipped = !s.flipped
	s.observer.OnFlip(s.flipped)
}

// Select jumps to the card at index and shows its question.
func (s *Store) Select(index int) error {
	if index < 0 || index >= len(s.cards) {
		return fmt.Errorf("select %d of %d: %w", index, len(s.cards), ErrIndexOutOfRange)
	}
	s.index = index
	s.flipped = false
	s.observer.OnSelect(index)
	return nil
}

// Add appends a card built from d if both fields are non-blank after trimming.
// Fields are stored as entered. On success the pending draft is cleared.
// A blank draft is rejected silently: nothing changes and ok is false.
func (s *Store) Add(d Draft) (card Card, ok bool) {
	if !d.Valid() {
		s.observer.OnAddRejected(d)
		return Card{}, false
	}
	card = s.newCard(d)
	s.cards = append(s.cards, card)
	s.draft = Draft{}
	s.observer.OnAdd(card)
	return card, true
}

// CommitDraft adds the pending draft. See Add.
func (s *Store) CommitDraft() (Card, bool) {
	return s.Add(s.draft)
}

// Delete removes the first card with the given id and reports whether one was found.
// If the current index pointed at or past the old last position it moves to
// the new last position. Deleting a card always resets the flip state.
func (s *Store) Delete(id int) bool {
	pos := -1
	for i, c := range s.cards {
		if c.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}
	removed := s.cards[pos]
	oldLen := len(s.cards)
	s.cards = append(s.cards[:pos:pos], s.cards[pos+1:]...)
	if s.index >= oldLen-1 {
		s.index = max(0, oldLen-2)
	}
	s.flipped = false
	s.observer.OnDelete(removed, pos)
	return true
}

// DeleteCurrent removes the card at the current index.
func (s *Store) DeleteCurrent() bool {
	c, ok := s.Current()
	if !ok {
		return false
	}
	return s.Delete(c.ID)
}
