package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dddshop/backend/domain/checkout"
	"gorm.io/gorm"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, o *checkout.Order) error {
	orderSchema := NewOrderSchema(o)

	if err := s.db.WithContext(ctx).Create(&orderSchema).Error; err != nil {
		if isDuplicateKey(err) {
			return checkout.ErrOrderExists
		}

		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// Update replaces the order's customer, total and the full item list.
func (s *OrderStore) Update(ctx context.Context, o *checkout.Order) error {
	orderSchema := NewOrderSchema(o)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderSchema{}).
			Where("id = ?", orderSchema.ID).
			Updates(map[string]interface{}{
				"customer_id": orderSchema.CustomerID,
				"total":       orderSchema.Total,
			})
		if result.Error != nil {
			return fmt.Errorf("unexpected error: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return checkout.ErrOrderNotFound
		}

		if err := tx.Where("order_id = ?", orderSchema.ID).Delete(&OrderItemSchema{}).Error; err != nil {
			return fmt.Errorf("unexpected error: %w", err)
		}

		if err := tx.Create(&orderSchema.Items).Error; err != nil {
			return fmt.Errorf("unexpected error: %w", err)
		}

		return nil
	})
}

func (s *OrderStore) Find(ctx context.Context, id string) (*checkout.Order, error) {
	var orderSchema OrderSchema

	if err := s.db.WithContext(ctx).
		Preload("Items", orderItems).
		Where("id = ?", id).
		First(&orderSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return orderSchema.ToDomainOrder()
}

func (s *OrderStore) FindAll(ctx context.Context) ([]checkout.Order, error) {
	var orderSchemas []OrderSchema

	if err := s.db.WithContext(ctx).
		Preload("Items", orderItems).
		Order("id").
		Find(&orderSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	orders := make([]checkout.Order, 0, len(orderSchemas))
	for _, orderSchema := range orderSchemas {
		o, err := orderSchema.ToDomainOrder()
		if err != nil {
			return nil, err
		}

		orders = append(orders, *o)
	}

	return orders, nil
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
