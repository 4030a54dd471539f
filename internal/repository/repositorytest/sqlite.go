// Package repositorytest provides an in-memory SQLite stand-in for the
// inventory schema so data access code can be tested without Postgres.
package repositorytest

import (
	"database/sql"
	"testing"

	"github.com/ketankishore27/inventory-management/internal/repository"
	"github.com/ketankishore27/inventory-management/pkg/models"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const Schema = "inventory"

var schemaStatements = []string{
	`ATTACH DATABASE ':memory:' AS inventory`,
	`CREATE TABLE inventory.inventory (
		service_tag_number TEXT,
		status TEXT,
		sub_status TEXT,
		ordered_by TEXT,
		make_model TEXT,
		po TEXT,
		ownership TEXT,
		deployed_date TEXT,
		location TEXT,
		received TEXT,
		warranty_end TEXT,
		warranty_date TEXT,
		warranty_status TEXT,
		year INTEGER
	)`,
	`CREATE TABLE inventory.resources_allocation_all (
		name TEXT,
		service_tag_number TEXT,
		allocation_date TEXT,
		cost_center TEXT,
		location TEXT,
		email TEXT,
		details TEXT
	)`,
}

// NewRepository returns a repository backed by a fresh database holding
// empty inventory and allocation tables.
func NewRepository(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	// ATTACH is per connection, so the pool must never open a second one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range schemaStatements {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	t.Cleanup(func() { db.Close() })

	return repository.NewRepository(db, repository.DialectSQLite, Schema)
}

func SeedDevices(t *testing.T, repo *repository.Repository, devices ...models.Device) {
	t.Helper()

	for _, device := range devices {
		_, err := repo.GoquDBWrapper.Insert(repo.Table("inventory")).
			Prepared(true).
			Rows(device).
			Executor().
			Exec()
		require.NoError(t, err)
	}
}

func SeedAllocations(t *testing.T, repo *repository.Repository, allocations ...models.Allocation) {
	t.Helper()

	for _, allocation := range allocations {
		_, err := repo.GoquDBWrapper.Insert(repo.Table("resources_allocation_all")).
			Prepared(true).
			Rows(allocation).
			Executor().
			Exec()
		require.NoError(t, err)
	}
}
