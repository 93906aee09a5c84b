package api

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// InventoryTools returns the tool schemas available to the inventory agent.
func InventoryTools() []anthropic.ToolUnionParam {
	return []anthropic.ToolUnionParam{
		{
			OfTool: &anthropic.ToolParam{
				Name:        "get_inventory_level",
				Description: anthropic.String("Check the stock level of an item. Reports when the item is not found in inventory."),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: map[string]interface{}{
						"item": map[string]interface{}{
							"type":        "string",
							"description": "The item to check the stock level for",
						},
					},
					Required: []string{"item"},
				},
			},
		},
		{
			OfTool: &anthropic.ToolParam{
				Name:        "reorder_inventory_item",
				Description: anthropic.String("Reorder an item from the supplier to restock inventory. Only call this for items that exist but are short on stock."),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: map[string]interface{}{
						"item": map[string]interface{}{
							"type":        "string",
							"description": "The item to reorder",
						},
						"quantity": map[string]interface{}{
							"type":        "integer",
							"description": "The quantity to purchase",
						},
						"price": map[string]interface{}{
							"type":        "number",
							"description": "The price it costs to reorder the item",
						},
					},
					Required: []string{"item", "quantity", "price"},
				},
			},
		},
	}
}

// QuotingTools returns the tool schemas available to the quoting agent.
func QuotingTools() []anthropic.ToolUnionParam {
	return []anthropic.ToolUnionParam{
		{
			OfTool: &anthropic.ToolParam{
				Name:        "get_discount_info",
				Description: anthropic.String("Check historical quotes matching the given search terms to determine whether a bulk discount applies to this order."),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: map[string]interface{}{
						"search_terms": map[string]interface{}{
							"type":        "string",
							"description": "Keywords from the customer's request (will be split into words)",
						},
					},
					Required: []string{"search_terms"},
				},
			},
		},
		{
			OfTool: &anthropic.ToolParam{
				Name:        "get_item_price",
				Description: anthropic.String("Calculate the total cost for a quantity of an item from its unit price. Returns 0.0 when the item is not found."),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: map[string]interface{}{
						"item_name": map[string]interface{}{
							"type":        "string",
							"description": "The item to price",
						},
						"quantity": map[string]interface{}{
							"type":        "integer",
							"description": "The number of units to price",
						},
					},
					Required: []string{"item_name", "quantity"},
				},
			},
		},
	}
}

// SalesTools returns the tool schemas available to the sales agent.
func SalesTools() []anthropic.ToolUnionParam {
	return []anthropic.ToolUnionParam{
		{
			OfTool: &anthropic.ToolParam{
				Name:        "sell_inventory_item",
				Description: anthropic.String("Record a sale of an item, removing the units from inventory."),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: map[string]interface{}{
						"item": map[string]interface{}{
							"type":        "string",
							"description": "The item to sell",
						},
						"quantity": map[string]interface{}{
							"type":        "integer",
							"description": "The quantity to sell",
						},
						"price": map[string]interface{}{
							"type":        "number",
							"description": "The price to sell the item for",
						},
					},
					Required: []string{"item", "quantity", "price"},
				},
			},
		},
		{
			OfTool: &anthropic.ToolParam{
				Name:        "check_delivery_timeline",
				Description: anthropic.String("Estimate the delivery date for an order of a given size starting from a date."),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: map[string]interface{}{
						"start_date": map[string]interface{}{
							"type":        "string",
							"description": "The starting date in ISO format (YYYY-MM-DD)",
						},
						"quantity": map[string]interface{}{
							"type":        "integer",
							"description": "The number of units in the order",
						},
					},
					Required: []string{"start_date", "quantity"},
				},
			},
		},
	}
}
