package domain

import "time"

type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
	EventData() any
}

// Event is an immutable record of something that already happened.
// The timestamp is captured when the event is constructed.
type Event[T any] struct {
	name       string
	occurredAt time.Time
	data       T
}

func NewEvent[T any](name string, data T) Event[T] {
	return Event[T]{
		name:       name,
		occurredAt: time.Now(),
		data:       data,
	}
}

func (e Event[T]) EventName() string {
	return e.name
}

func (e Event[T]) OccurredAt() time.Time {
	return e.occurredAt
}

func (e Event[T]) EventData() any {
	return e.data
}

func (e Event[T]) Data() T {
	return e.data
}
