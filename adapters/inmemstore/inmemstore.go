package inmemstore

import (
	"fmt"

	"github.com/dddshop/backend/adapters/postgrestore"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnection opens a private in-memory SQLite database with the store schema applied.
func NewConnection() (*postgrestore.Conn, error) {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite: %w", err)
	}

	// every connection to :memory: is a different database
	db.SetMaxOpenConns(1)

	orm, err := gorm.Open(&sqlite.Dialector{Conn: db.DB}, postgrestore.NewGormConfig(false))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot open gorm: %w", err)
	}

	if err := orm.AutoMigrate(postgrestore.Models()...); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot migrate schema: %w", err)
	}

	return &postgrestore.Conn{SQL: db, ORM: orm}, nil
}
