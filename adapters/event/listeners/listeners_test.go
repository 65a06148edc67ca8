package listeners_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dddshop/backend/adapters/event"
	"github.com/dddshop/backend/adapters/event/listeners"
	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
	"github.com/dddshop/backend/domain/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakePubSub struct {
	channels []string
	messages []string
	err      error
	hang     bool
}

func (f *fakePubSub) Publish(ctx context.Context, channel string, payload string) error {
	if f.hang {
		<-ctx.Done()
		return ctx.Err()
	}

	if f.err != nil {
		return f.err
	}

	f.channels = append(f.channels, channel)
	f.messages = append(f.messages, payload)

	return nil
}

func (f *fakePubSub) Subscribe(ctx context.Context, channel string) pubsub.Subscription {
	return nil
}

func newObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return zap.New(core).Sugar(), logs
}

func mustCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer("1", "A")
	require.NoError(t, err)

	address, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	require.NoError(t, err)
	c.ChangeAddress(address)

	return c
}

func TestCustomerCreatedListeners(t *testing.T) {
	logger, logs := newObservedLogger()
	ed := event.NewEventDispatcher()

	ed.Register(customer.CustomerCreatedEventName, listeners.NewConsoleLogCreatedListener(logger))
	ed.Register(customer.CustomerCreatedEventName, listeners.NewConsoleLogCreatedSecondListener(logger))

	require.NoError(t, ed.Notify(customer.NewCustomerCreatedEvent(mustCustomer(t))))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "This is the first console.log of the event: CustomerCreated", entries[0].Message)
	assert.Equal(t, "This is the second console.log of the event: CustomerCreated", entries[1].Message)
}

func TestAddressChangedListener(t *testing.T) {
	logger, logs := newObservedLogger()
	l := listeners.NewAddressChangedListener(logger)

	require.NoError(t, l.Handle(customer.NewAddressChangedEvent(mustCustomer(t))))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Customer address: 1, A changed to: Street 1, 1, Zipcode 1 City 1", entries[0].Message)
}

func TestListenersIgnoreOtherEvents(t *testing.T) {
	logger, logs := newObservedLogger()
	other := domain.NewEvent("Other", struct{}{})

	handlers := []domain.EventHandler{
		listeners.NewConsoleLogCreatedListener(logger),
		listeners.NewConsoleLogCreatedSecondListener(logger),
		listeners.NewAddressChangedListener(logger),
		listeners.NewProductCreatedListener(logger),
	}

	for _, h := range handlers {
		assert.NoError(t, h.Handle(other))
	}
	assert.Zero(t, logs.Len())
}

func TestProductCreatedListener(t *testing.T) {
	logger, logs := newObservedLogger()
	p, err := product.NewProduct("p1", "Product 1", 10)
	require.NoError(t, err)

	require.NoError(t, listeners.NewProductCreatedListener(logger).Handle(product.NewProductCreatedEvent(p)))

	entries := logs.FilterMessage("Sending email to the catalog subscribers").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ContextMap()["product_id"])
}

func TestPubSubForwardListener(t *testing.T) {
	t.Run("it should publish the event envelope", func(t *testing.T) {
		ps := &fakePubSub{}
		l := listeners.NewPubSubForwardListener(ps, listeners.DomainEventsChannel)

		require.NoError(t, l.Handle(customer.NewAddressChangedEvent(mustCustomer(t))))

		require.Len(t, ps.messages, 1)
		assert.Equal(t, listeners.DomainEventsChannel, ps.channels[0])
		assert.Contains(t, ps.messages[0], `"name":"CustomerAddressChanged"`)
		assert.Contains(t, ps.messages[0], `"address":{"street":"Street 1","number":1,"zip":"Zipcode 1","city":"City 1"}`)
	})

	t.Run("it should round trip through DecodeEnvelope", func(t *testing.T) {
		ps := &fakePubSub{}
		l := listeners.NewPubSubForwardListener(ps, listeners.DomainEventsChannel)

		evt := customer.NewCustomerCreatedEvent(mustCustomer(t))
		require.NoError(t, l.Handle(evt))

		envelope, err := listeners.DecodeEnvelope(ps.messages[0])
		require.NoError(t, err)
		assert.Equal(t, customer.CustomerCreatedEventName, envelope.Name)
		assert.True(t, evt.OccurredAt().Equal(envelope.OccurredAt))
		assert.Equal(t, map[string]any{"id": "1", "name": "A"}, envelope.Data)

		_, err = listeners.DecodeEnvelope("not json")
		assert.Error(t, err)
	})

	t.Run("it should give up on a broker that does not answer", func(t *testing.T) {
		l := listeners.NewPubSubForwardListener(&fakePubSub{hang: true}, listeners.DomainEventsChannel,
			listeners.WithPublishTimeout(20*time.Millisecond))

		evt := customer.NewCustomerCreatedEvent(mustCustomer(t))

		done := make(chan error, 1)
		go func() { done <- l.Handle(evt) }()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		case <-time.After(time.Second):
			t.Fatal("publish was not bounded by the timeout")
		}
	})

	t.Run("it should return publish errors", func(t *testing.T) {
		errDown := errors.New("broker down")
		l := listeners.NewPubSubForwardListener(&fakePubSub{err: errDown}, listeners.DomainEventsChannel)

		err := l.Handle(customer.NewCustomerCreatedEvent(mustCustomer(t)))
		assert.ErrorIs(t, err, errDown)
	})
}

func TestRegisterAll(t *testing.T) {
	logger, _ := newObservedLogger()

	t.Run("without pubsub", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		listeners.RegisterAll(ed, logger, nil)

		assert.Len(t, ed.Handlers(customer.CustomerCreatedEventName), 2)
		assert.Len(t, ed.Handlers(customer.AddressChangedEventName), 1)
		assert.Len(t, ed.Handlers(product.ProductCreatedEventName), 1)
	})

	t.Run("with pubsub", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		ps := &fakePubSub{}
		listeners.RegisterAll(ed, logger, ps)

		assert.Len(t, ed.Handlers(customer.CustomerCreatedEventName), 3)

		require.NoError(t, ed.Notify(customer.NewCustomerCreatedEvent(mustCustomer(t))))
		assert.Len(t, ps.messages, 1)
	})
}
