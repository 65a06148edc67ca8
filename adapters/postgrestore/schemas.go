package postgrestore

import (
	"fmt"

	"github.com/dddshop/backend/domain/checkout"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
)

// Models lists the gorm schemas, in creation order.
func Models() []interface{} {
	return []interface{}{
		&CustomerSchema{},
		&ProductSchema{},
		&OrderSchema{},
		&OrderItemSchema{},
	}
}

type CustomerSchema struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name;not null"`
	Street       string `gorm:"column:street"`
	Number       int    `gorm:"column:number"`
	Zipcode      string `gorm:"column:zipcode"`
	City         string `gorm:"column:city"`
	Active       bool   `gorm:"column:active"`
	RewardPoints int    `gorm:"column:reward_points"`
}

func (CustomerSchema) TableName() string {
	return "customers"
}

func NewCustomerSchema(c *customer.Customer) CustomerSchema {
	s := CustomerSchema{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}

	if a := c.Address(); a != nil {
		s.Street = a.Street()
		s.Number = a.Number()
		s.Zipcode = a.Zip()
		s.City = a.City()
	}

	return s
}

func (s *CustomerSchema) ToDomainCustomer() (*customer.Customer, error) {
	var address *customer.Address
	if s.Street != "" {
		a, err := customer.NewAddress(s.Street, s.Number, s.Zipcode, s.City)
		if err != nil {
			return nil, fmt.Errorf("invalid address for customer %s: %w", s.ID, err)
		}
		address = &a
	}

	return customer.Restore(s.ID, s.Name, address, s.Active, s.RewardPoints)
}

type ProductSchema struct {
	ID    string  `gorm:"column:id;primaryKey" db:"id"`
	Name  string  `gorm:"column:name;not null" db:"name"`
	Price float64 `gorm:"column:price" db:"price"`
}

func (ProductSchema) TableName() string {
	return "products"
}

func (s *ProductSchema) ToDomainProduct() (*product.Product, error) {
	return product.NewProduct(s.ID, s.Name, s.Price)
}

type OrderSchema struct {
	ID         string  `gorm:"column:id;primaryKey"`
	CustomerID string  `gorm:"column:customer_id;not null"`
	Total      float64 `gorm:"column:total"`

	Items []OrderItemSchema `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderSchema) TableName() string {
	return "orders"
}

func NewOrderSchema(o *checkout.Order) OrderSchema {
	items := make([]OrderItemSchema, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItemSchema{
			ID:        item.ID(),
			OrderID:   o.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		}
	}

	return OrderSchema{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Total:      o.Total(),
		Items:      items,
	}
}

func (s *OrderSchema) ToDomainOrder() (*checkout.Order, error) {
	items := make([]*checkout.OrderItem, len(s.Items))
	for i, itemSchema := range s.Items {
		item, err := checkout.NewOrderItem(itemSchema.ID, itemSchema.Name, itemSchema.Price,
			itemSchema.ProductID, itemSchema.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid item %s of order %s: %w", itemSchema.ID, s.ID, err)
		}
		items[i] = item
	}

	return checkout.NewOrder(s.ID, s.CustomerID, items)
}

type OrderItemSchema struct {
	ID        string  `gorm:"column:id;primaryKey"`
	OrderID   string  `gorm:"column:order_id;index"`
	ProductID string  `gorm:"column:product_id"`
	Name      string  `gorm:"column:name"`
	Price     float64 `gorm:"column:price"`
	Quantity  int     `gorm:"column:quantity"`
}

func (OrderItemSchema) TableName() string {
	return "order_items"
}
