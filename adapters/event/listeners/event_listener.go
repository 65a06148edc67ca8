package listeners

import (
	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
	"github.com/dddshop/backend/domain/pubsub"
	"go.uber.org/zap"
)

var EventNames = []string{
	customer.CustomerCreatedEventName,
	customer.AddressChangedEventName,
	product.ProductCreatedEventName,
}

// RegisterAll wires the default listeners. ps may be nil when no broker is configured.
func RegisterAll(dispatcher domain.EventDispatcher, logger *zap.SugaredLogger, ps pubsub.Service) {
	dispatcher.Register(customer.CustomerCreatedEventName, NewConsoleLogCreatedListener(logger))
	dispatcher.Register(customer.CustomerCreatedEventName, NewConsoleLogCreatedSecondListener(logger))
	dispatcher.Register(customer.AddressChangedEventName, NewAddressChangedListener(logger))
	dispatcher.Register(product.ProductCreatedEventName, NewProductCreatedListener(logger))

	if ps == nil {
		return
	}

	forward := NewPubSubForwardListener(ps, DomainEventsChannel)
	for _, name := range EventNames {
		dispatcher.Register(name, forward)
	}
}
