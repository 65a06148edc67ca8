package customer

import (
	"context"
	"errors"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrNameRequired     = errors.New("name is required")
	ErrAddressRequired  = errors.New("address is mandatory to activate a customer")
	ErrNegativePoints   = errors.New("reward points must be greater than or equal to zero")
	ErrStreetRequired   = errors.New("street is required")
	ErrNumberRequired   = errors.New("number must be greater than zero")
	ErrZipRequired      = errors.New("zip is required")
	ErrCityRequired     = errors.New("city is required")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("customer already exists")
)

type Service interface {
	Create(ctx context.Context, id string, name string) (*Customer, error)
	ChangeAddress(ctx context.Context, id string, address Address) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

type Customer struct {
	id           string
	name         string
	address      *Address
	active       bool
	rewardPoints int
}

func NewCustomer(id string, name string) (*Customer, error) {
	c := &Customer{
		id:   id,
		name: name,
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Restore rebuilds a customer from persisted state. Invariants are still enforced.
func Restore(id, name string, address *Address, active bool, rewardPoints int) (*Customer, error) {
	c := &Customer{
		id:           id,
		name:         name,
		address:      address,
		active:       active,
		rewardPoints: rewardPoints,
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	if c.active && c.address == nil {
		return nil, ErrAddressRequired
	}

	return c, nil
}

func (c *Customer) validate() error {
	if c.id == "" {
		return ErrIDRequired
	}

	if c.name == "" {
		return ErrNameRequired
	}

	if c.rewardPoints < 0 {
		return ErrNegativePoints
	}

	return nil
}

func (c *Customer) ID() string        { return c.id }
func (c *Customer) Name() string      { return c.name }
func (c *Customer) Address() *Address { return c.address }
func (c *Customer) IsActive() bool    { return c.active }
func (c *Customer) RewardPoints() int { return c.rewardPoints }

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	c.name = name

	return nil
}

func (c *Customer) ChangeAddress(address Address) {
	c.address = &address
}

func (c *Customer) Activate() error {
	if c.address == nil {
		return ErrAddressRequired
	}

	c.active = true

	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrNegativePoints
	}

	c.rewardPoints += points

	return nil
}
