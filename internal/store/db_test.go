package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/munderdifflin/paperflow/internal/catalog"
)

// tempDBPath returns a path to a temp database file.
func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

// setupTestDB creates a new migrated temporary database for testing.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(tempDBPath(t))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

// setupSeededDB creates a migrated database seeded with the default catalog.
func setupSeededDB(t *testing.T) *DB {
	t.Helper()
	db := setupTestDB(t)
	if err := db.Seed(catalog.Default(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("failed to seed test db: %v", err)
	}
	return db
}

func TestOpen(t *testing.T) {
	path := tempDBPath(t)
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("database file does not exist at %s", path)
	}
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c", "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
		t.Error("parent directories were not created")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Migrate(); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
}

func TestSeed(t *testing.T) {
	db := setupSeededDB(t)

	items, err := db.AllItems()
	if err != nil {
		t.Fatalf("AllItems failed: %v", err)
	}
	if len(items) != len(catalog.Default()) {
		t.Errorf("seeded %d items, want %d", len(items), len(catalog.Default()))
	}

	// Paper items get the paper baseline.
	level, err := db.StockLevel("A4 paper", time.Now())
	if err != nil {
		t.Fatalf("StockLevel failed: %v", err)
	}
	if level != seedStockPaper {
		t.Errorf("A4 paper stock = %d, want %d", level, seedStockPaper)
	}
}

func TestSeed_AlreadySeeded(t *testing.T) {
	db := setupSeededDB(t)

	if err := db.Seed(catalog.Default(), time.Now()); err == nil {
		t.Error("Seed on a seeded store should fail")
	}
}

func TestReseed(t *testing.T) {
	db := setupSeededDB(t)

	if _, err := db.CreateTransaction("A4 paper", KindSale, 10, 0.50, time.Now()); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	if err := db.Reseed(catalog.Default(), time.Now()); err != nil {
		t.Fatalf("Reseed failed: %v", err)
	}

	records, err := db.TransactionsForItem("A4 paper")
	if err != nil {
		t.Fatalf("TransactionsForItem failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Reseed left %d transactions, want 0", len(records))
	}
}
