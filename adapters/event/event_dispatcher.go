package event

import (
	"reflect"
	"sync"

	"github.com/dddshop/backend/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Policy string

const (
	// FailFast stops at the first failing handler and returns its error.
	FailFast Policy = "fail_fast"
	// Isolate runs every handler and returns the combined errors.
	Isolate Policy = "isolate"
)

type Option func(ed *eventDispatcher)

func WithPolicy(policy Policy) Option {
	return func(ed *eventDispatcher) {
		ed.policy = policy
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(ed *eventDispatcher) {
		ed.logger = logger
	}
}

type eventDispatcher struct {
	handlers map[string][]domain.EventHandler
	policy   Policy
	logger   *zap.SugaredLogger
	mutex    sync.RWMutex
}

func NewEventDispatcher(options ...Option) *eventDispatcher {
	ed := &eventDispatcher{
		handlers: make(map[string][]domain.EventHandler),
		policy:   FailFast,
		logger:   zap.NewNop().Sugar(),
	}

	for _, fn := range options {
		fn(ed)
	}

	return ed
}

func (ed *eventDispatcher) Register(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
}

func (ed *eventDispatcher) Unregister(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	handlers := ed.handlers[eventName]
	for i, h := range handlers {
		if !sameHandler(h, handler) {
			continue
		}

		ed.handlers[eventName] = append(handlers[:i:i], handlers[i+1:]...)
		return
	}
}

func (ed *eventDispatcher) UnregisterAll(eventName string) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	delete(ed.handlers, eventName)
}

func (ed *eventDispatcher) Handlers(eventName string) []domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	handlers := ed.handlers[eventName]
	if len(handlers) == 0 {
		return nil
	}

	return append([]domain.EventHandler(nil), handlers...)
}

// Notify runs the handlers registered for the event name synchronously, in
// registration order. The registry is not locked while handlers run.
func (ed *eventDispatcher) Notify(event domain.DomainEvent) error {
	handlers := ed.Handlers(event.EventName())

	var errs error
	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			if ed.policy != Isolate {
				return err
			}

			ed.logger.Errorw("event handler failed",
				zap.String("event", event.EventName()),
				zap.Error(err),
			)
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

func sameHandler(a, b domain.EventHandler) bool {
	if a == nil || b == nil {
		return a == b
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}
