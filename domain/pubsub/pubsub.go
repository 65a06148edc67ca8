package pubsub

import "context"

// Message is a payload received on a channel.
type Message struct {
	Channel string
	Payload string
}

type Subscription interface {
	Receive(ctx context.Context) (Message, error)
	Close() error
}

type Service interface {
	Publish(ctx context.Context, channel string, payload string) error
	Subscribe(ctx context.Context, channel string) Subscription
}
