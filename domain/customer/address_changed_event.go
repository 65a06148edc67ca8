package customer

import "github.com/dddshop/backend/domain"

const AddressChangedEventName = "CustomerAddressChanged"

type AddressChanged struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

type AddressChangedEvent = domain.Event[AddressChanged]

func NewAddressChangedEvent(c *Customer) AddressChangedEvent {
	var address Address
	if c.Address() != nil {
		address = *c.Address()
	}

	return domain.NewEvent(AddressChangedEventName, AddressChanged{
		ID:      c.ID(),
		Name:    c.Name(),
		Address: address,
	})
}
