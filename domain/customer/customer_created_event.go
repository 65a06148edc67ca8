package customer

import "github.com/dddshop/backend/domain"

const CustomerCreatedEventName = "CustomerCreated"

type Created struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CustomerCreatedEvent = domain.Event[Created]

func NewCustomerCreatedEvent(c *Customer) CustomerCreatedEvent {
	return domain.NewEvent(CustomerCreatedEventName, Created{
		ID:   c.ID(),
		Name: c.Name(),
	})
}
