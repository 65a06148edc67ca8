package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dddshop/backend/adapters/event"
	"github.com/dddshop/backend/adapters/event/listeners"
	"github.com/dddshop/backend/adapters/postgrestore"
	"github.com/dddshop/backend/adapters/services"
	"github.com/dddshop/backend/domain/checkout"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var (
		customerName string
		withOrder    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a sample customer, products and order",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
			if err != nil {
				return err
			}
			defer db.Close()

			dispatcher := event.NewEventDispatcher(event.WithLogger(applog))
			listeners.RegisterAll(dispatcher, applog, nil)

			customerStore := postgrestore.NewCustomerStore(db.ORM)
			productStore := postgrestore.NewProductStore(db.SQL)

			customerService := services.NewCustomerService(customerStore, dispatcher)
			productService := services.NewProductService(productStore, dispatcher)
			orderService := services.NewOrderService(postgrestore.NewOrderStore(db.ORM), customerStore, productStore)

			ctx := cmd.Context()

			c, err := customerService.Create(ctx, "", customerName)
			if err != nil {
				return fmt.Errorf("cannot create customer: %w", err)
			}

			address, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
			if err != nil {
				return err
			}

			if _, err := customerService.ChangeAddress(ctx, c.ID(), address); err != nil {
				return fmt.Errorf("cannot change address: %w", err)
			}

			if err := seedProducts(ctx, productService); err != nil {
				return err
			}

			if !withOrder {
				applog.Infof("customer: %s", c.ID())
				return nil
			}

			order, err := orderService.PlaceOrder(ctx, c.ID(), []checkout.ItemRequest{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p2", Quantity: 1},
			})
			if err != nil {
				return fmt.Errorf("cannot place order: %w", err)
			}

			applog.Info("seed data created successfully")
			applog.Infof("customer: %s - order: %s - total: %.2f", c.ID(), order.ID(), order.Total())

			return nil
		},
	}

	cmd.Flags().StringVar(&customerName, "customer", "Customer 1", "name of the seeded customer")
	cmd.Flags().BoolVar(&withOrder, "order", true, "also place an order for the seeded customer")

	return cmd
}

func seedProducts(ctx context.Context, productService product.Service) error {
	for _, seed := range []struct {
		id    string
		name  string
		price float64
	}{
		{"p1", "Product 1", 10},
		{"p2", "Product 2", 25},
	} {
		_, err := productService.Create(ctx, seed.id, seed.name, seed.price)
		if errors.Is(err, product.ErrProductExists) {
			continue
		}

		if err != nil {
			return fmt.Errorf("cannot create product %s: %w", seed.id, err)
		}
	}

	return nil
}
