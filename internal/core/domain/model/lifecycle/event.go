package lifecycle

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// StatusChanged is recorded by an aggregate on every successful transition.
type StatusChanged struct {
	Kind       Kind
	ID         kernel.UUID
	From       string
	To         string
	OccurredAt time.Time
}

// EventSource is implemented by aggregates that record StatusChanged events
// until the unit of work publishes them.
type EventSource interface {
	DomainEvents() []StatusChanged
	ClearDomainEvents()
}

// Events is an embeddable recorder implementing EventSource.
type Events struct {
	pending []StatusChanged
}

// Record appends an event.
func (e *Events) Record(event StatusChanged) {
	e.pending = append(e.pending, event)
}

// DomainEvents returns a copy of the recorded events.
func (e *Events) DomainEvents() []StatusChanged {
	out := make([]StatusChanged, len(e.pending))
	copy(out, e.pending)
	return out
}

// ClearDomainEvents drops all recorded events.
func (e *Events) ClearDomainEvents() {
	e.pending = nil
}

// Clone returns an independent copy of the recorder.
func (e *Events) Clone() Events {
	return Events{pending: e.DomainEvents()}
}
