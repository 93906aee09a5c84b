package orchestrator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/munderdifflin/paperflow/pkg/models"
)

// shortagePhrases is the fixed lexicon of negative-availability signals
// scanned for in inventory replies. First match wins, case-insensitive,
// no stemming.
var shortagePhrases = []string{
	"not enough",
	"insufficient",
	"low",
	"out of",
	"don't have",
}

// missingItemsMarker introduces the comma-separated list of catalog-missing
// items in an inventory reply.
const missingItemsMarker = "MISSING ITEMS:"

// HasShortage reports whether an inventory reply signals insufficient stock.
func HasShortage(reply string) bool {
	lower := strings.ToLower(reply)
	for _, phrase := range shortagePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// MissingItems extracts the items named after the MISSING ITEMS: marker.
// Entries are comma-separated; empties and a bare "none" are dropped.
// Returns nil when the marker is absent.
func MissingItems(reply string) []string {
	_, rest, found := strings.Cut(reply, missingItemsMarker)
	if !found {
		return nil
	}

	// The list runs to the end of its line.
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}

	var items []string
	for _, part := range strings.Split(rest, ",") {
		item := strings.TrimSpace(part)
		if item == "" || strings.EqualFold(item, "none") {
			continue
		}
		items = append(items, item)
	}
	return items
}

// quotePayload mirrors the JSON shape the quoting agent is instructed to
// emit. Absent keys fall back to the zero values.
type quotePayload struct {
	FinalTotalPrice     float64 `json:"final_total_price"`
	BulkDiscountApplied bool    `json:"bulk_discount_applied"`
}

// ParseQuoteReply interprets a quoting reply as a QuoteResult. It accepts a
// native structured value or a JSON object, either as the whole reply text
// or embedded in surrounding prose. Any other shape is an error; the caller
// treats that as a hard stop for the request.
func ParseQuoteReply(reply models.Reply) (models.QuoteResult, error) {
	if reply.Structured != nil {
		return quoteFromStructured(reply.Structured), nil
	}

	text := strings.TrimSpace(reply.Text)

	var payload quotePayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		return models.QuoteResult{
			TotalPrice:          payload.FinalTotalPrice,
			BulkDiscountApplied: payload.BulkDiscountApplied,
		}, nil
	}

	// Models often wrap the JSON object in prose; try the outermost braces.
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err == nil {
			return models.QuoteResult{
				TotalPrice:          payload.FinalTotalPrice,
				BulkDiscountApplied: payload.BulkDiscountApplied,
			}, nil
		}
	}

	return models.QuoteResult{}, fmt.Errorf("quote reply is neither structured nor JSON: %.80q", text)
}

// quoteFromStructured reads the expected keys from a structured reply,
// defaulting missing or mistyped values.
func quoteFromStructured(data map[string]any) models.QuoteResult {
	var result models.QuoteResult

	switch v := data["final_total_price"].(type) {
	case float64:
		result.TotalPrice = v
	case int:
		result.TotalPrice = float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			result.TotalPrice = f
		}
	}

	if b, ok := data["bulk_discount_applied"].(bool); ok {
		result.BulkDiscountApplied = b
	}

	return result
}
