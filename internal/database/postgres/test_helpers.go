package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GameCatalog_Go/internal/database"
)

// Integration tests run against a real database when TEST_DATABASE_URL is
// set and skip otherwise. Migrations are applied once per package run.
var (
	testConnString string
	testPool       *pgxpool.Pool
)

func TestMain(m *testing.M) {
	testConnString = os.Getenv("TEST_DATABASE_URL")
	if testConnString != "" {
		if err := database.Migrate(testConnString); err != nil {
			fmt.Fprintf(os.Stderr, "failed to migrate test database: %v\n", err)
			os.Exit(1)
		}
		pool, err := pgxpool.New(context.Background(), testConnString)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
			os.Exit(1)
		}
		testPool = pool
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

// requireTestDB skips the test unless an integration database is configured
func requireTestDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

// createTestUser inserts a throwaway player account and returns its ID
func createTestUser(t *testing.T, username string) int {
	t.Helper()
	var id int
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO users (username, email, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $1 || '@test.local', 'x', (SELECT id FROM roles WHERE name = 'Player'), NOW(), NOW())
		RETURNING id
	`, username).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	t.Cleanup(func() {
		_, _ = testPool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	})
	return id
}

// createTestItem inserts a throwaway item and returns its ID
func createTestItem(t *testing.T, name string) int {
	t.Helper()
	var id int
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO items (name, price, levelreq, stats, is_tradable, created_at, updated_at)
		VALUES ($1, 100, 1, '{}', TRUE, NOW(), NOW())
		RETURNING id
	`, name).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	t.Cleanup(func() {
		_, _ = testPool.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	})
	return id
}
