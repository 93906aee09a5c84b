package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuoteRecord is one historical quote.
type QuoteRecord struct {
	ID          string
	RequestText string
	Explanation string
	Total       float64
	CreatedAt   time.Time
}

// AddQuote records a historical quote for later discount lookups.
func (db *DB) AddQuote(requestText, explanation string, total float64, at time.Time) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id := uuid.NewString()
	_, err := db.conn.Exec(`
		INSERT INTO quote_history (id, request_text, quote_explanation, total, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, requestText, explanation, total, formatTime(at))
	if err != nil {
		return "", fmt.Errorf("add quote: %w", err)
	}
	return id, nil
}

// SearchQuoteHistory returns quotes whose request text or explanation
// contains any of the given terms, case-insensitively. Empty and
// single-character terms are skipped to avoid matching everything.
func (db *DB) SearchQuoteHistory(terms []string, limit int) ([]QuoteRecord, error) {
	var conditions []string
	var args []any
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if len(term) < 2 {
			continue
		}
		pattern := "%" + strings.ToLower(term) + "%"
		conditions = append(conditions,
			"(lower(request_text) LIKE ? OR lower(quote_explanation) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if len(conditions) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT id, request_text, quote_explanation, total, created_at
		FROM quote_history
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ?
	`, strings.Join(conditions, " OR "))

	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search quote history: %w", err)
	}
	defer rows.Close()

	var records []QuoteRecord
	for rows.Next() {
		var r QuoteRecord
		var created string
		if err := rows.Scan(&r.ID, &r.RequestText, &r.Explanation, &r.Total, &created); err != nil {
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("parse quote time: %w", err)
		}
		r.CreatedAt = t
		records = append(records, r)
	}
	return records, rows.Err()
}
