package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Trade ledger table
		CREATE TABLE trade (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			opened_at DATETIME NOT NULL,
			symbol VARCHAR(50) NOT NULL,
			isin VARCHAR(20),
			category VARCHAR(50) NOT NULL,
			currency VARCHAR(10) NOT NULL DEFAULT 'EUR',
			status VARCHAR(10) NOT NULL DEFAULT 'OPEN',
			quantity FLOAT NOT NULL,
			entry_price FLOAT NOT NULL,
			avg_cost_basis FLOAT,
			exit_price FLOAT,
			current_price FLOAT,
			opening_cost FLOAT NOT NULL DEFAULT 0.0,
			closing_cost FLOAT NOT NULL DEFAULT 0.0,
			annual_holding_rate FLOAT NOT NULL DEFAULT 0.20,
			notes TEXT,
			gross_invested FLOAT,
			net_invested FLOAT,
			current_value FLOAT,
			gross_profit_loss FLOAT,
			tax_due FLOAT,
			net_profit FLOAT,
			return_pct FLOAT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX idx_trade_opened_at ON trade (opened_at);
		CREATE INDEX idx_trade_status ON trade (status);

		-- Portfolio settings key/value table
		CREATE TABLE portfolio_setting (
			"key" VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		INSERT INTO portfolio_setting ("key", value) VALUES ('initial_balance', '0');
	`

	_, err := db.Exec(schema)
	return err
}
