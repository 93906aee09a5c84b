package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/munderdifflin/paperflow/internal/catalog"
	"github.com/munderdifflin/paperflow/internal/store"
)

// ToolExecutor executes order-domain tool calls against the store.
type ToolExecutor struct {
	db      *store.DB
	catalog catalog.Catalog
	now     func() time.Time
}

// NewToolExecutor creates a tool executor over the given store and catalog.
func NewToolExecutor(db *store.DB, cat catalog.Catalog) *ToolExecutor {
	return &ToolExecutor{db: db, catalog: cat, now: time.Now}
}

// SetClock overrides the executor's clock. Used in tests.
func (e *ToolExecutor) SetClock(now func() time.Time) {
	e.now = now
}

// ToolResult represents the result of a tool execution.
type ToolResult struct {
	Content string
	IsError bool
}

// Execute runs a tool by name with the given JSON input. Tool failures are
// reported back to the model as error results, not as loop failures.
func (e *ToolExecutor) Execute(ctx context.Context, name string, input json.RawMessage) ToolResult {
	switch name {
	case "get_inventory_level":
		return e.execGetInventoryLevel(input)
	case "reorder_inventory_item":
		return e.execReorderInventoryItem(input)
	case "get_discount_info":
		return e.execGetDiscountInfo(input)
	case "get_item_price":
		return e.execGetItemPrice(input)
	case "sell_inventory_item":
		return e.execSellInventoryItem(input)
	case "check_delivery_timeline":
		return e.execCheckDeliveryTimeline(input)
	default:
		return ToolResult{Content: fmt.Sprintf("Unknown tool: %s", name), IsError: true}
	}
}

func (e *ToolExecutor) execGetInventoryLevel(input json.RawMessage) ToolResult {
	var params struct {
		Item string `json:"item"`
	}
	if err := json.Unmarshal(input, &params); err != nil {
		return ToolResult{Content: fmt.Sprintf("Invalid parameters: %v", err), IsError: true}
	}

	exists, err := e.db.CheckItem(params.Item)
	if err != nil {
		return ToolResult{Content: fmt.Sprintf("Failed to check item: %v", err), IsError: true}
	}
	if !exists {
		return ToolResult{Content: fmt.Sprintf("Item '%s' not found in inventory.", params.Item)}
	}

	level, err := e.db.StockLevel(params.Item, e.now())
	if err != nil {
		return ToolResult{Content: fmt.Sprintf("Failed to get stock level: %v", err), IsError: true}
	}

	return ToolResult{Content: fmt.Sprintf("The stock level for %s is %d.", params.Item, level)}
}

func (e *ToolExecutor) execReorderInventoryItem(input json.RawMessage) ToolResult {
	var params struct {
		Item     string  `json:"item"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}
	if err := json.Unmarshal(input, &params); err != nil {
		return ToolResult{Content: fmt.Sprintf("Invalid parameters: %v", err), IsError: true}
	}

	if _, err := e.db.CreateTransaction(params.Item, store.KindStockOrder, params.Quantity, params.Price, e.now()); err != nil {
		return ToolResult{Content: fmt.Sprintf("Failed to reorder: %v", err), IsError: true}
	}

	return ToolResult{Content: fmt.Sprintf("%d of %s reordered successfully.", params.Quantity, params.Item)}
}

func (e *ToolExecutor) execGetDiscountInfo(input json.RawMessage) ToolResult {
	var params struct {
		SearchTerms string `json:"search_terms"`
	}
	if err := json.Unmarshal(input, &params); err != nil {
		return ToolResult{Content: fmt.Sprintf("Invalid parameters: %v", err), IsError: true}
	}

	records, err := e.db.SearchQuoteHistory(strings.Fields(params.SearchTerms), 20)
	if err != nil {
		return ToolResult{Content: fmt.Sprintf("Failed to search quote history: %v", err), IsError: true}
	}

	bulkDiscount := false
	for _, r := range records {
		explanation := strings.ToLower(r.Explanation)
		if strings.Contains(explanation, "bulk") || strings.Contains(explanation, "discount") {
			bulkDiscount = true
			break
		}
	}

	return ToolResult{Content: fmt.Sprintf("%t", bulkDiscount)}
}

func (e *ToolExecutor) execGetItemPrice(input json.RawMessage) ToolResult {
	var params struct {
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
	}
	if err := json.Unmarshal(input, &params); err != nil {
		return ToolResult{Content: fmt.Sprintf("Invalid parameters: %v", err), IsError: true}
	}

	total, found := e.priceFor(params.ItemName, params.Quantity)
	if !found {
		// 0.0 signals item not found; the agent checks for it.
		return ToolResult{Content: "0.0"}
	}

	return ToolResult{Content: fmt.Sprintf("%.2f", total)}
}

// priceFor resolves a total price: exact inventory match first, then fuzzy
// matches against inventory and the catalog.
func (e *ToolExecutor) priceFor(itemName string, quantity int) (float64, bool) {
	if unit, err := e.db.UnitPrice(itemName); err == nil {
		return unit * float64(quantity), true
	}

	items, err := e.db.AllItems()
	if err == nil {
		lower := strings.ToLower(itemName)
		for _, it := range items {
			rowLower := strings.ToLower(it.ItemName)
			if strings.Contains(rowLower, lower) || strings.Contains(lower, rowLower) {
				return it.UnitPrice * float64(quantity), true
			}
		}
	}

	if entry, ok := e.catalog.FindFuzzy(itemName); ok {
		return entry.UnitPrice * float64(quantity), true
	}

	return 0, false
}

func (e *ToolExecutor) execSellInventoryItem(input json.RawMessage) ToolResult {
	var params struct {
		Item     string  `json:"item"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}
	if err := json.Unmarshal(input, &params); err != nil {
		return ToolResult{Content: fmt.Sprintf("Invalid parameters: %v", err), IsError: true}
	}

	if _, err := e.db.CreateTransaction(params.Item, store.KindSale, params.Quantity, params.Price, e.now()); err != nil {
		return ToolResult{Content: fmt.Sprintf("Failed to record sale: %v", err), IsError: true}
	}

	return ToolResult{Content: fmt.Sprintf("%d of %s sold successfully.", params.Quantity, params.Item)}
}

func (e *ToolExecutor) execCheckDeliveryTimeline(input json.RawMessage) ToolResult {
	var params struct {
		StartDate string `json:"start_date"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.Unmarshal(input, &params); err != nil {
		return ToolResult{Content: fmt.Sprintf("Invalid parameters: %v", err), IsError: true}
	}

	date := store.SupplierDeliveryDate(params.StartDate, params.Quantity, e.now)
	return ToolResult{Content: date}
}
