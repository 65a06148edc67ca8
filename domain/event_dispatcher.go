package domain

import "errors"

// ErrEventHandling marks a failure raised by an event handler after the
// triggering change was already applied.
var ErrEventHandling = errors.New("event handling failed")

type EventHandler interface {
	Handle(event DomainEvent) error
}

type EventDispatcher interface {
	Register(eventName string, handler EventHandler)
	Unregister(eventName string, handler EventHandler)
	UnregisterAll(eventName string)
	Notify(event DomainEvent) error
	Handlers(eventName string) []EventHandler
}
