// Package dbtest opens throwaway SQLite databases migrated with the
// production schema.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/smartdairy/internal/migration"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a migrated database backed by a file in t.TempDir.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "dairy.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migration.RunMigrations(sqlDB, "sqlite"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// SeedCustomer inserts a customer row directly and returns its id.
func SeedCustomer(t testing.TB, db *gorm.DB, name string, price float64, contact *string) int64 {
	t.Helper()

	if err := db.Exec(
		`INSERT INTO customers (name, price_per_ltr, contact) VALUES (?, ?, ?)`,
		name, price, contact,
	).Error; err != nil {
		t.Fatalf("seed customer %q: %v", name, err)
	}
	var id int64
	if err := db.Raw(`SELECT id FROM customers WHERE name = ?`, name).Scan(&id).Error; err != nil {
		t.Fatalf("lookup customer %q: %v", name, err)
	}
	return id
}

// SeedEntry inserts an entry row for date (YYYY-MM-DD).
func SeedEntry(t testing.TB, db *gorm.DB, customerID int64, date string, quantity float64) {
	t.Helper()

	if err := db.Exec(
		`INSERT INTO entries (customer_id, entry_date, quantity) VALUES (?, ?, ?)`,
		customerID, date, quantity,
	).Error; err != nil {
		t.Fatalf("seed entry %d/%s: %v", customerID, date, err)
	}
}
