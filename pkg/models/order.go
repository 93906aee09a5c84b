// Package models contains the shared value types for the order workflow.
package models

// ItemType classifies an order line as paper stock or a general product.
type ItemType string

const (
	// ItemTypePaper marks paper and cardstock items.
	ItemTypePaper ItemType = "paper"
	// ItemTypeProduct marks everything else in the catalog.
	ItemTypeProduct ItemType = "product"
)

// UnitLabel returns the unit word used when rendering an order-detail line.
// Paper items are counted in sheets; other items read as their type word.
func (t ItemType) UnitLabel() string {
	if t == ItemTypePaper {
		return "sheets"
	}
	return string(t)
}

// OrderLine is one parsed item request. Immutable once created.
type OrderLine struct {
	Quantity int
	Name     string
	Type     ItemType
}

// ParsedOrder is the structured form of a customer request.
// RequestDate is an ISO-8601 date string, or empty when the request
// carried no date annotation.
type ParsedOrder struct {
	Lines       []OrderLine
	RequestDate string
}

// QuoteResult is the interpreted output of the quoting collaborator.
type QuoteResult struct {
	TotalPrice          float64
	BulkDiscountApplied bool
}

// Reply is a collaborator's answer to a delegated instruction.
// Production agents return free text; test doubles and future structured
// backends may attach a decoded value instead.
type Reply struct {
	Text       string
	Structured map[string]any
}
