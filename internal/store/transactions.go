package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transaction kinds. Restocks add units to inventory, sales remove them.
const (
	KindStockOrder = "stock_orders"
	KindSale       = "sales"
)

// TransactionRecord is one recorded stock order or sale.
type TransactionRecord struct {
	ID        string
	ItemName  string
	Kind      string
	Units     int
	Price     float64
	CreatedAt time.Time
}

// CreateTransaction records a stock order or sale and returns its id.
func (db *DB) CreateTransaction(item, kind string, units int, price float64, at time.Time) (string, error) {
	if kind != KindStockOrder && kind != KindSale {
		return "", fmt.Errorf("unknown transaction kind %q", kind)
	}
	if units <= 0 {
		return "", fmt.Errorf("transaction units must be positive, got %d", units)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	id := uuid.NewString()
	_, err := db.conn.Exec(`
		INSERT INTO transactions (id, item_name, kind, units, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, item, kind, units, price, formatTime(at))
	if err != nil {
		return "", fmt.Errorf("create %s transaction: %w", kind, err)
	}

	return id, nil
}

// TransactionsForItem returns all transactions for an item, oldest first.
func (db *DB) TransactionsForItem(item string) ([]TransactionRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, item_name, kind, units, price, created_at
		FROM transactions
		WHERE lower(item_name) = lower(?)
		ORDER BY created_at
	`, item)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var records []TransactionRecord
	for rows.Next() {
		var r TransactionRecord
		var created string
		if err := rows.Scan(&r.ID, &r.ItemName, &r.Kind, &r.Units, &r.Price, &created); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("parse transaction time: %w", err)
		}
		r.CreatedAt = t
		records = append(records, r)
	}
	return records, rows.Err()
}
