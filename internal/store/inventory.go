package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Item is one inventory row.
type Item struct {
	ItemName     string
	Category     string
	UnitPrice    float64
	CurrentStock int
}

// CheckItem reports whether an item exists in inventory, matching the
// name case-insensitively.
func (db *DB) CheckItem(name string) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var count int
	row := db.conn.QueryRow(
		"SELECT COUNT(*) FROM inventory WHERE lower(item_name) = lower(?)", name)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("check item: %w", err)
	}
	return count > 0, nil
}

// StockLevel returns the stock on hand for an item as of the given time:
// the seeded baseline plus restock units minus sold units.
func (db *DB) StockLevel(name string, asOf time.Time) (int, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var base int
	row := db.conn.QueryRow(
		"SELECT current_stock FROM inventory WHERE lower(item_name) = lower(?)", name)
	if err := row.Scan(&base); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("item %q not found", name)
		}
		return 0, fmt.Errorf("get stock baseline: %w", err)
	}

	var delta sql.NullInt64
	row = db.conn.QueryRow(`
		SELECT SUM(CASE kind WHEN 'stock_orders' THEN units ELSE -units END)
		FROM transactions
		WHERE lower(item_name) = lower(?) AND created_at <= ?
	`, name, formatTime(asOf))
	if err := row.Scan(&delta); err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}

	return base + int(delta.Int64), nil
}

// UnitPrice returns the unit price of an item by exact name match,
// case-insensitively. Returns sql.ErrNoRows wrapped when absent.
func (db *DB) UnitPrice(name string) (float64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var price float64
	row := db.conn.QueryRow(
		"SELECT unit_price FROM inventory WHERE lower(item_name) = lower(?)", name)
	if err := row.Scan(&price); err != nil {
		return 0, fmt.Errorf("get unit price for %q: %w", name, err)
	}
	return price, nil
}

// AllItems returns every inventory row in name order.
func (db *DB) AllItems() ([]Item, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(
		"SELECT item_name, category, unit_price, current_stock FROM inventory ORDER BY item_name")
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ItemName, &it.Category, &it.UnitPrice, &it.CurrentStock); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
