package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Repository is the shared handle every data-access type is built on. It
// owns no connection lifecycle; the pool is closed by whoever opened it.
type Repository struct {
	DB            *sql.DB
	GoquDBWrapper *goqu.Database
	Schema        string
}

func NewRepository(db *sql.DB, dialect, schema string) *Repository {
	return &Repository{
		DB:            db,
		GoquDBWrapper: goqu.New(dialect, db),
		Schema:        schema,
	}
}

// Table returns the schema qualified identifier for table.
func (r *Repository) Table(table string) exp.IdentifierExpression {
	if r.Schema == "" {
		return goqu.T(table)
	}
	return goqu.S(r.Schema).Table(table)
}

func (r *Repository) From(table string) *goqu.SelectDataset {
	return r.GoquDBWrapper.From(r.Table(table)).Prepared(true)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func WithTransaction(ctx context.Context, db *goqu.Database, fn func(tx *goqu.TxDatabase) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return
}
