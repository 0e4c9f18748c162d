package deck

import "log/slog"

// Observer receives notifications after each Store mutation.
// Implementations must not call back into the Store.
type Observer interface {
	// OnNavigate is called after Next or Prev moved the current index.
	OnNavigate(from, to int)

	// OnFlip is called after Flip with the new flip state.
	OnFlip(flipped bool)

	// OnSelect is called after Select jumped to index.
	OnSelect(index int)

	// OnAdd is called after a draft was committed as card.
	OnAdd(card Card)

	// OnAddRejected is called when a draft failed validation.
	OnAddRejected(draft Draft)

	// OnDelete is called after card was removed from position index.
	OnDelete(card Card, index int)
}

// NoopObserver implements Observer with no-op methods.
// Embed it to implement only the callbacks you need.
type NoopObserver struct{}

func (NoopObserver) OnNavigate(from, to int)       {}
func (NoopObserver) OnFlip(flipped bool)           {}
func (NoopObserver) OnSelect(index int)            {}
func (NoopObserver) OnAdd(card Card)               {}
func (NoopObserver) OnAddRejected(draft Draft)     {}
func (NoopObserver) OnDelete(card Card, index int) {}

// Ensure NoopObserver implements Observer.
var _ Observer = NoopObserver{}

// MultiObserver fans out notifications to multiple observers.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver forwarding to all non-nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall runs fn and swallows a panic so one observer cannot break the others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// OnNavigate forwards the call to all observers.
func (m *MultiObserver) OnNavigate(from, to int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnNavigate(from, to) })
	}
}

// OnFlip forwards the call to all observers.
func (m *MultiObserver) OnFlip(flipped bool) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnFlip(flipped) })
	}
}

// OnSelect forwards the call to all observers.
func (m *MultiObserver) OnSelect(index int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnSelect(index) })
	}
}

// OnAdd forwards the call to all observers.
func (m *MultiObserver) OnAdd(card Card) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnAdd(card) })
	}
}

// OnAddRejected forwards the call to all observers.
func (m *MultiObserver) OnAddRejected(draft Draft) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnAddRejected(draft) })
	}
}

// OnDelete forwards the call to all observers.
func (m *MultiObserver) OnDelete(card Card, index int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnDelete(card, index) })
	}
}

// LogObserver writes a structured log record for every deck mutation.
// Navigation and flips log at debug level, edits at info.
type LogObserver struct {
	logger *slog.Logger
}

// Ensure LogObserver implements Observer.
var _ Observer = (*LogObserver)(nil)

// NewLogObserver returns a LogObserver. A nil logger uses slog.Default().
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger.With("component", "deck")}
}

func (o *LogObserver) OnNavigate(from, to int) {
	o.logger.Debug("navigate", "from", from, "to", to)
}

func (o *LogObserver) OnFlip(flipped bool) {
	o.logger.Debug("flip", "flipped", flipped)
}

func (o *LogObserver) OnSelect(index int) {
	o.logger.Debug("select", "index", index)
}

func (o *LogObserver) OnAdd(card Card) {
	o.logger.Info("card added", "id", card.ID, "question", card.Question)
}

func (o *LogObserver) OnAddRejected(draft Draft) {
	o.logger.Debug("draft rejected",
		"question_blank", isBlank(draft.Question),
		"answer_blank", isBlank(draft.Answer))
}

func (o *LogObserver) OnDelete(card Card, index int) {
	o.logger.Info("card deleted", "id", card.ID, "index", index)
}
