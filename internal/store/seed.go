package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/munderdifflin/paperflow/internal/catalog"
)

// Baseline stock levels by category for a fresh store.
const (
	seedStockPaper   = 1000
	seedStockProduct = 600
)

// Seed populates an empty store with the catalog as inventory rows and a
// small set of historical quotes for discount lookups. Seeding an already
// populated store is an error; use Reseed to start over.
func (db *DB) Seed(cat catalog.Catalog, now time.Time) error {
	db.mu.RLock()
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM inventory").Scan(&count)
	db.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("count inventory: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("store already seeded with %d items", count)
	}

	return db.Transaction(func(tx *sql.Tx) error {
		for _, entry := range cat {
			stock := seedStockProduct
			if entry.Category == "paper" {
				stock = seedStockPaper
			}
			_, err := tx.Exec(`
				INSERT INTO inventory (item_name, category, unit_price, current_stock)
				VALUES (?, ?, ?, ?)
			`, entry.ItemName, entry.Category, entry.UnitPrice, stock)
			if err != nil {
				return fmt.Errorf("seed inventory %q: %w", entry.ItemName, err)
			}
		}

		for i, q := range seedQuotes {
			_, err := tx.Exec(`
				INSERT INTO quote_history (id, request_text, quote_explanation, total, created_at)
				VALUES (?, ?, ?, ?, ?)
			`, fmt.Sprintf("seed-quote-%d", i+1), q.request, q.explanation, q.total,
				formatTime(now.AddDate(0, -1, -i)))
			if err != nil {
				return fmt.Errorf("seed quote history: %w", err)
			}
		}

		return nil
	})
}

// Reseed wipes inventory, transactions, and quote history, then seeds.
func (db *DB) Reseed(cat catalog.Catalog, now time.Time) error {
	err := db.Transaction(func(tx *sql.Tx) error {
		for _, table := range []string{"transactions", "quote_history", "inventory"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return db.Seed(cat, now)
}

// Historical quotes seeded for the discount lookup. Explanations that
// mention bulk or discount terms make matching orders discount-eligible.
var seedQuotes = []struct {
	request     string
	explanation string
	total       float64
}{
	{
		request:     "500 sheets of A4 paper for the quarterly report run",
		explanation: "Large order of A4 paper; applied a bulk discount for quantities above 400 sheets.",
		total:       22.50,
	},
	{
		request:     "1200 sheets of standard copy paper for the print shop",
		explanation: "High-volume copy paper order qualified for our bulk pricing tier.",
		total:       43.20,
	},
	{
		request:     "200 paper plates and 200 paper cups for the office party",
		explanation: "Party supplies bundle; standard pricing, discount applied for combined order.",
		total:       34.00,
	},
	{
		request:     "50 sheets of glossy paper for brochures",
		explanation: "Small glossy paper order at standard unit pricing.",
		total:       10.00,
	},
	{
		request:     "100 poster boards for the school fair",
		explanation: "Poster board order at standard pricing.",
		total:       100.00,
	},
}
