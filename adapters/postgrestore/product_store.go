package postgrestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dddshop/backend/domain/product"
	"github.com/jmoiron/sqlx"
)

const (
	insertProduct = `INSERT INTO products(id,name,price) VALUES (?,?,?)`
	updateProduct = `UPDATE products SET name=?, price=? WHERE id=?`
)

type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	return createProduct(ctx, s.db, p)
}

func (s *ProductStore) CreateAll(ctx context.Context, products []*product.Product) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, p := range products {
			if err := createProduct(ctx, tx, p); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *ProductStore) Update(ctx context.Context, p *product.Product) error {
	return updateProductRow(ctx, s.db, p)
}

func (s *ProductStore) UpdateAll(ctx context.Context, products []*product.Product) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, p := range products {
			if err := updateProductRow(ctx, tx, p); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *ProductStore) Find(ctx context.Context, id string) (*product.Product, error) {
	var result ProductSchema

	err := s.db.GetContext(ctx, &result, s.db.Rebind(`SELECT id,name,price FROM products WHERE id=?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}

		return nil, fmt.Errorf("cannot get the product '%s': %w", id, err)
	}

	return result.ToDomainProduct()
}

func (s *ProductStore) FindAll(ctx context.Context) ([]product.Product, error) {
	var results []ProductSchema

	if err := s.db.SelectContext(ctx, &results, `SELECT id,name,price FROM products ORDER BY id`); err != nil {
		return nil, fmt.Errorf("cannot list products: %w", err)
	}

	products := make([]product.Product, 0, len(results))
	for _, result := range results {
		p, err := result.ToDomainProduct()
		if err != nil {
			return nil, err
		}

		products = append(products, *p)
	}

	return products, nil
}

func (s *ProductStore) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cannot begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cannot commit transaction: %w", err)
	}

	return nil
}

// execer is satisfied by both *sqlx.DB and *sqlx.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

func createProduct(ctx context.Context, db execer, p *product.Product) error {
	_, err := db.ExecContext(ctx, db.Rebind(insertProduct), p.ID(), p.Name(), p.Price())
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %s", product.ErrProductExists, p.ID())
		}

		return fmt.Errorf("cannot save the product: %w", err)
	}

	return nil
}

func updateProductRow(ctx context.Context, db execer, p *product.Product) error {
	result, err := db.ExecContext(ctx, db.Rebind(updateProduct), p.Name(), p.Price(), p.ID())
	if err != nil {
		return fmt.Errorf("cannot update the product '%s': %w", p.ID(), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("cannot update the product '%s': %w", p.ID(), err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", product.ErrProductNotFound, p.ID())
	}

	return nil
}
