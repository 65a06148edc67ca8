package listeners

import (
	"context"
	"fmt"
	"time"

	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/pubsub"
	jsoniter "github.com/json-iterator/go"
)

const (
	DomainEventsChannel = "domain-events"

	// DefaultPublishTimeout bounds how long Notify waits on the broker.
	DefaultPublishTimeout = 3 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Envelope struct {
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// PubSubForwardListener publishes every event it receives to a pub/sub channel.
type PubSubForwardListener struct {
	pubsub  pubsub.Service
	channel string
	timeout time.Duration
}

type ForwardOption func(l *PubSubForwardListener)

func WithPublishTimeout(timeout time.Duration) ForwardOption {
	return func(l *PubSubForwardListener) {
		l.timeout = timeout
	}
}

func NewPubSubForwardListener(ps pubsub.Service, channel string, options ...ForwardOption) *PubSubForwardListener {
	l := &PubSubForwardListener{pubsub: ps, channel: channel, timeout: DefaultPublishTimeout}
	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *PubSubForwardListener) Handle(event domain.DomainEvent) error {
	payload, err := json.Marshal(Envelope{
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt(),
		Data:       event.EventData(),
	})
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventName(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	if err := l.pubsub.Publish(ctx, l.channel, string(payload)); err != nil {
		return fmt.Errorf("publish event %s: %w", event.EventName(), err)
	}

	return nil
}

// DecodeEnvelope parses a payload published by PubSubForwardListener.
func DecodeEnvelope(payload string) (Envelope, error) {
	var envelope Envelope
	if err := json.UnmarshalFromString(payload, &envelope); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal envelope: %w", err)
	}

	return envelope, nil
}
