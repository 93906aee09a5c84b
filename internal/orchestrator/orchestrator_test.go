package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/munderdifflin/paperflow/internal/catalog"
	"github.com/munderdifflin/paperflow/pkg/models"
)

// mockCollaborator returns canned replies and records the instructions it
// received.
type mockCollaborator struct {
	name         string
	replies      []models.Reply
	err          error
	instructions []string
}

func (m *mockCollaborator) Name() string { return m.name }

func (m *mockCollaborator) Invoke(_ context.Context, instruction string) (models.Reply, error) {
	m.instructions = append(m.instructions, instruction)
	if m.err != nil {
		return models.Reply{}, m.err
	}
	idx := len(m.instructions) - 1
	if idx >= len(m.replies) {
		idx = len(m.replies) - 1
	}
	if idx < 0 {
		return models.Reply{}, nil
	}
	return m.replies[idx], nil
}

func textReply(text string) models.Reply { return models.Reply{Text: text} }

const goodQuoteJSON = `{"final_total_price": 42.5, "bulk_discount_applied": true}`

const stockOKReply = "The stock level is 1000. We have plenty to fulfill this order."

func newTestOrchestrator(inv, quote, sales *mockCollaborator) *Orchestrator {
	return New(inv, quote, sales, catalog.Default(), NopLogger())
}

const wellFormedRequest = `- 200 sheets of A4 paper
- 100 sheets of Cardstock
(Date of request: 2025-04-01)`

func TestProcess_HappyPath(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{textReply(stockOKReply)}}
	quote := &mockCollaborator{name: "quote_management", replies: []models.Reply{textReply(goodQuoteJSON)}}
	sales := &mockCollaborator{name: "sales_agent", replies: []models.Reply{textReply("Order confirmed! Delivery by 2025-04-08.")}}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	if got != "Order confirmed! Delivery by 2025-04-08." {
		t.Errorf("Process returned %q, want the sales reply verbatim", got)
	}
	if len(inv.instructions) != 2 {
		t.Errorf("inventory invoked %d times, want once per order line (2)", len(inv.instructions))
	}
	if len(quote.instructions) != 1 || len(sales.instructions) != 1 {
		t.Errorf("quote/sales invocations = %d/%d, want 1/1", len(quote.instructions), len(sales.instructions))
	}
}

func TestProcess_SalesInstructionContent(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{textReply(stockOKReply)}}
	quote := &mockCollaborator{name: "quote_management", replies: []models.Reply{textReply(goodQuoteJSON)}}
	sales := &mockCollaborator{name: "sales_agent", replies: []models.Reply{textReply("done")}}

	newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	if len(sales.instructions) != 1 {
		t.Fatal("sales was not invoked")
	}
	instruction := sales.instructions[0]

	if !strings.Contains(instruction, "$42.50") {
		t.Errorf("sales instruction missing price 42.50:\n%s", instruction)
	}
	if !strings.Contains(instruction, "there will be a bulk discount") {
		t.Errorf("sales instruction missing discount phrase:\n%s", instruction)
	}
	if !strings.Contains(instruction, "- 200 sheets of Item: A4 paper") {
		t.Errorf("sales instruction missing order detail line:\n%s", instruction)
	}
}

func TestProcess_NoBulkDiscountPhrasing(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{textReply(stockOKReply)}}
	quote := &mockCollaborator{name: "quote_management", replies: []models.Reply{
		textReply(`{"final_total_price": 12.0, "bulk_discount_applied": false}`),
	}}
	sales := &mockCollaborator{name: "sales_agent", replies: []models.Reply{textReply("done")}}

	newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	if !strings.Contains(sales.instructions[0], "there will be no bulk discount") {
		t.Errorf("sales instruction should state no bulk discount:\n%s", sales.instructions[0])
	}
}

func TestProcess_UnidentifiedItem(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent"}
	quote := &mockCollaborator{name: "quote_management"}
	sales := &mockCollaborator{name: "sales_agent"}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(),
		"- 10 packets of bowling balls")

	if !strings.Contains(got, "I couldn't identify which item you want") {
		t.Errorf("Process returned %q, want the catalog-help message", got)
	}
	if !strings.Contains(got, "A4 paper") {
		t.Errorf("catalog-help message should list known items, got %q", got)
	}
	if len(inv.instructions)+len(quote.instructions)+len(sales.instructions) != 0 {
		t.Error("no collaborator may be invoked for an unidentified item")
	}
}

func TestProcess_InsufficientStock(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{
		textReply("Unfortunately there is not enough A4 paper to fulfill this order."),
	}}
	quote := &mockCollaborator{name: "quote_management"}
	sales := &mockCollaborator{name: "sales_agent"}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	want := fmt.Sprintf(msgOutOfStock, 200, "A4 paper")
	if got != want {
		t.Errorf("Process returned %q, want %q", got, want)
	}
	// The first shortage halts the remaining lines and the later steps.
	if len(inv.instructions) != 1 {
		t.Errorf("inventory invoked %d times, want 1 (short-circuit)", len(inv.instructions))
	}
	if len(quote.instructions)+len(sales.instructions) != 0 {
		t.Error("quoting/sales must not run after a shortage")
	}
}

func TestProcess_MissingItems(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{
		textReply(stockOKReply),
		textReply("Everything checked.\nMISSING ITEMS: a, b"),
	}}
	quote := &mockCollaborator{name: "quote_management"}
	sales := &mockCollaborator{name: "sales_agent"}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	want := fmt.Sprintf(msgMissingCatalog, "a, b")
	if got != want {
		t.Errorf("Process returned %q, want %q", got, want)
	}
	if len(quote.instructions)+len(sales.instructions) != 0 {
		t.Error("quoting/sales must not run when items are missing from the catalog")
	}
}

func TestProcess_MalformedQuote(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{textReply(stockOKReply)}}
	quote := &mockCollaborator{name: "quote_management", replies: []models.Reply{
		textReply("Sorry, I was unable to produce a price."),
	}}
	sales := &mockCollaborator{name: "sales_agent"}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	if got != msgQuoteParse {
		t.Errorf("Process returned %q, want exactly %q", got, msgQuoteParse)
	}
	if len(sales.instructions) != 0 {
		t.Error("sales must not run after a quote interpretation failure")
	}
}

func TestProcess_QuoteInvokeError(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{textReply(stockOKReply)}}
	quote := &mockCollaborator{name: "quote_management", err: errors.New("api timeout")}
	sales := &mockCollaborator{name: "sales_agent"}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	if got != msgQuoteRequest {
		t.Errorf("Process returned %q, want %q", got, msgQuoteRequest)
	}
	if len(sales.instructions) != 0 {
		t.Error("sales must not run after a quoting failure")
	}
}

func TestProcess_InventoryInvokeErrorIsPermissive(t *testing.T) {
	// A failed inventory call leaves the reply empty: the shortage and
	// missing-items scans find nothing and the request proceeds.
	inv := &mockCollaborator{name: "inventory_agent", err: errors.New("api timeout")}
	quote := &mockCollaborator{name: "quote_management", replies: []models.Reply{textReply(goodQuoteJSON)}}
	sales := &mockCollaborator{name: "sales_agent", replies: []models.Reply{textReply("confirmed")}}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	if got != "confirmed" {
		t.Errorf("Process returned %q, want the sales reply", got)
	}
}

func TestProcess_SalesInvokeError(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{textReply(stockOKReply)}}
	quote := &mockCollaborator{name: "quote_management", replies: []models.Reply{textReply(goodQuoteJSON)}}
	sales := &mockCollaborator{name: "sales_agent", err: errors.New("api timeout")}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	if got != msgFinalization {
		t.Errorf("Process returned %q, want %q", got, msgFinalization)
	}
}

func TestProcess_FallbackPath(t *testing.T) {
	// No parseable lines: the raw text goes to the inventory agent, and
	// the stripped request text is used as the order description.
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{
		textReply("I assessed the request. All items exist and are stocked."),
	}}
	quote := &mockCollaborator{name: "quote_management", replies: []models.Reply{textReply(goodQuoteJSON)}}
	sales := &mockCollaborator{name: "sales_agent", replies: []models.Reply{textReply("done")}}

	request := "We need a couple hundred napkins for an event (Date of request: 2025-04-01)"
	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), request)

	if got != "done" {
		t.Errorf("Process returned %q, want the sales reply", got)
	}
	if len(inv.instructions) != 1 {
		t.Fatalf("inventory invoked %d times, want 1 (open-ended delegation)", len(inv.instructions))
	}
	if !strings.Contains(inv.instructions[0], "parse the request and identify each item") {
		t.Errorf("fallback instruction should be open-ended:\n%s", inv.instructions[0])
	}
	if !strings.Contains(quote.instructions[0], "We need a couple hundred napkins") {
		t.Errorf("quote instruction should fall back to the stripped request text:\n%s", quote.instructions[0])
	}
	if strings.Contains(quote.instructions[0], "Date of request") {
		t.Errorf("quote instruction should not carry the date annotation:\n%s", quote.instructions[0])
	}
}

func TestProcess_FallbackPathMissingItems(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{
		textReply("Assessed.\nMISSING ITEMS: imported vellum"),
	}}
	quote := &mockCollaborator{name: "quote_management"}
	sales := &mockCollaborator{name: "sales_agent"}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(),
		"Looking for some imported vellum, 300 units or so")

	want := fmt.Sprintf(msgMissingCatalog, "imported vellum")
	if got != want {
		t.Errorf("Process returned %q, want %q", got, want)
	}
	if len(quote.instructions)+len(sales.instructions) != 0 {
		t.Error("quoting/sales must not run when the fallback reply names missing items")
	}
}

func TestProcess_StructuredQuoteReply(t *testing.T) {
	inv := &mockCollaborator{name: "inventory_agent", replies: []models.Reply{textReply(stockOKReply)}}
	quote := &mockCollaborator{name: "quote_management", replies: []models.Reply{
		{Structured: map[string]any{"final_total_price": 15.0, "bulk_discount_applied": false}},
	}}
	sales := &mockCollaborator{name: "sales_agent", replies: []models.Reply{textReply("done")}}

	got := newTestOrchestrator(inv, quote, sales).Process(context.Background(), wellFormedRequest)

	if got != "done" {
		t.Errorf("Process returned %q, want the sales reply", got)
	}
	if !strings.Contains(sales.instructions[0], "$15.00") {
		t.Errorf("sales instruction missing structured price:\n%s", sales.instructions[0])
	}
}
