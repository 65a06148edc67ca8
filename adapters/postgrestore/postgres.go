package postgrestore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/dddshop/backend/pkg/config"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const uniqueViolation = "23505"

type Options struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	Debug        bool
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		DSN: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode),
		MaxOpenConns: c.DB.MaxOpenConns,
		MaxIdleConns: c.DB.MaxIdleConns,
		Debug:        c.Debug,
	}
}

// Conn shares one connection pool between the sqlx and gorm stores.
type Conn struct {
	SQL *sqlx.DB
	ORM *gorm.DB
}

func (c *Conn) Close() error {
	return c.SQL.Close()
}

func NewConnection(opts Options) (*Conn, error) {
	db, err := sqlx.Connect("postgres", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)

	if _, err := Migrate(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}

	orm, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), NewGormConfig(opts.Debug))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot open gorm: %w", err)
	}

	return &Conn{SQL: db, ORM: orm}, nil
}

func NewGormConfig(debug bool) *gorm.Config {
	level := logger.Silent
	if debug {
		level = logger.Info
	}

	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}
}

// Migrate applies the embedded migrations and returns how many ran.
func Migrate(db *sql.DB) (int, error) {
	source := migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}

	n, err := migrate.Exec(db, "postgres", source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("cannot run migrations: %w", err)
	}

	return n, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	// raw sqlx queries against the in-memory store skip gorm's translation
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
