package trace

import (
	"context"
	"sync"

	"flashstack/internal/deck"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrFrom      = attribute.Key("deck.from")
	AttrIndex     = attribute.Key("deck.index")
	AttrFlipped   = attribute.Key("deck.flipped")
	AttrCardID    = attribute.Key("deck.card_id")
	AttrQuestion  = attribute.Key("deck.question")
	AttrOperation = attribute.Key("deck.operation")
)

// TracingObserver implements deck.Observer and records one span per deck
// operation, all parented to a single session span.
type TracingObserver struct {
	tracer oteltrace.Tracer

	mu      sync.Mutex
	ctx     context.Context
	session oteltrace.Span
	ops     int
}

// Ensure TracingObserver implements deck.Observer.
var _ deck.Observer = (*TracingObserver)(nil)

// NewTracingObserver starts the session span. Call End when the session closes.
func NewTracingObserver(tracer oteltrace.Tracer) *TracingObserver {
	ctx, session := tracer.Start(context.Background(), "deck.session")
	return &TracingObserver{
		tracer:  tracer,
		ctx:     ctx,
		session: session,
	}
}

// End closes the session span with the number of recorded operations.
func (o *TracingObserver) End() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return
	}
	o.session.SetAttributes(attribute.Int("deck.operations", o.ops))
	o.session.End()
	o.session = nil
}

// record emits a zero-work span for an operation that already completed.
func (o *TracingObserver) record(name string, status codes.Code, desc string, attrs ...attribute.KeyValue) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return
	}
	o.ops++
	_, span := o.tracer.Start(o.ctx, name,
		oteltrace.WithAttributes(AttrOperation.String(name)),
		oteltrace.WithAttributes(attrs...),
	)
	if status != codes.Unset {
		span.SetStatus(status, desc)
	}
	span.End()
}

func (o *TracingObserver) OnNavigate(from, to int) {
	o.record("deck.navigate", codes.Unset, "", AttrFrom.Int(from), AttrIndex.Int(to))
}

func (o *TracingObserver) OnFlip(flipped bool) {
	o.record("deck.flip", codes.Unset, "", AttrFlipped.Bool(flipped))
}

func (o *TracingObserver) OnSelect(index int) {
	o.record("deck.select", codes.Unset, "", AttrIndex.Int(index))
}

func (o *TracingObserver) OnAdd(card deck.Card) {
	o.record("deck.add", codes.Ok, "", AttrCardID.Int(card.ID), AttrQuestion.String(card.Question))
}

func (o *TracingObserver) OnAddRejected(draft deck.Draft) {
	o.record("deck.add", codes.Error, "blank draft")
}

func (o *TracingObserver) OnDelete(card deck.Card, index int) {
	o.record("deck.delete", codes.Ok, "", AttrCardID.Int(card.ID), AttrIndex.Int(index))
}
