package listeners

import (
	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/customer"
	"go.uber.org/zap"
)

type AddressChangedListener struct {
	logger *zap.SugaredLogger
}

func NewAddressChangedListener(logger *zap.SugaredLogger) *AddressChangedListener {
	return &AddressChangedListener{logger: logger}
}

func (l *AddressChangedListener) Handle(event domain.DomainEvent) error {
	addressChangedEvent, ok := event.(customer.AddressChangedEvent)
	if !ok {
		return nil
	}

	data := addressChangedEvent.Data()
	l.logger.Infof("Customer address: %s, %s changed to: %s", data.ID, data.Name, data.Address.String())

	return nil
}
