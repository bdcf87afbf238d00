package repository

import (
	"testing"

	"controle_faturas/internal/infrastructure/database"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// newTestDB opens a throwaway in-memory database with the real schema and
// seed data. MaxOpenConns is pinned to 1 so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db, "senha-teste"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
