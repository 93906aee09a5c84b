package orchestrator

import (
	"fmt"
	"strings"

	"github.com/munderdifflin/paperflow/pkg/models"
)

// openEndedInventoryInstruction asks the inventory agent to parse and
// assess every item in a request the parser could not structure.
func openEndedInventoryInstruction(request string) string {
	return fmt.Sprintf(`We have an order of several items listed in the request: %s.
First, parse the request and identify each item name and quantity to be ordered.
For each item, do the following steps:
- Check to verify we have enough quantity of the requested item in inventory using get_inventory_level.
- If get_inventory_level indicates that the item does not exist, add it to a list of missing items in your response.
- Calculate if we have enough quantity of the item to fulfill this order.
- If not, place an order to restock using reorder_inventory_item to update the quantity for the item in the database.
Do NOT call reorder_inventory_item for an item that is missing - only call it if the item exists but there is not enough quantity.

At the end of your response, list any items that do not exist in the database as:
MISSING ITEMS: item1, item2, item3`, request)
}

// inventoryCheckInstruction asks the inventory agent to verify stock for
// one order line and restock if short.
func inventoryCheckInstruction(line models.OrderLine) string {
	return fmt.Sprintf(`We have an order for type %s %d of %s.
Check to verify we have enough quantity of the requested item in inventory using get_inventory_level.
Calculate if we have enough quantity of the item to fulfill this order.
If not, place an order to restock using reorder_inventory_item to update the quantity for the item in the database.
Do NOT call reorder_inventory_item for an item that is missing - only call it if the item exists but there is not enough quantity.

At the end of your response, list any items that do not exist in the database as:
MISSING ITEMS: item1, item2, item3`, line.Type, line.Quantity, line.Name)
}

// quoteInstruction carries the five-step pricing recipe to the quoting
// agent. The request text doubles as the discount search terms.
func quoteInstruction(missing []string, details, request string) string {
	orderDetails := details
	if orderDetails == "" {
		orderDetails = request
	}

	return fmt.Sprintf(`Calculate a price quote for this order using your available tools.

Do NOT perform any of the following steps for a missing item from the order that does not exist.
MISSING ITEMS: %s

ORDER DETAILS:
%s

TASK:
1. First, use get_discount_info with search_terms="%s" to check if a bulk discount applies
2. Then, for each line item above, use get_item_price to get the price (call it once per item)
3. Sum all the item prices to get the subtotal
4. If bulk discount applies, reduce the subtotal by 10%%
5. Return your final answer as a JSON string in this exact format:
{"final_total_price": <number>, "bulk_discount_applied": <true or false>}

Make sure to actually call both tools and calculate the correct total.`,
		missingList(missing), orderDetails, request)
}

// salesInstruction asks the sales agent to record the sale, estimate
// delivery, and write the customer-facing summary.
func salesInstruction(orderDesc string, missing []string, quote models.QuoteResult) string {
	discount := "no"
	if quote.BulkDiscountApplied {
		discount = "a"
	}

	return fmt.Sprintf(`Finalize a sales transaction with the following details:
%s

Do NOT perform any of the following steps for a missing item from the order that does not exist.
MISSING ITEMS: %s

The final price will be $%.2f for the order and there will be %s bulk discount.

Use sell_inventory_item to add the transaction to the database. Use check_delivery_timeline to determine
when the delivery date will be expected and if it can arrive by the customer's requested delivery date.

Return the estimated delivery date, and if a bulk discount was applied, along with the total sales order in dollars in your response.
Format your response in a message that summarizes the order, total price, if a discount was applied, and personalize it to the customer's order.`,
		orderDesc, missingList(missing), quote.TotalPrice, discount)
}

// detailBlock renders the canonical "what was ordered" description, one
// line per order line.
func detailBlock(lines []models.OrderLine) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = fmt.Sprintf("- %d %s of Item: %s", line.Quantity, line.Type.UnitLabel(), line.Name)
	}
	return strings.Join(parts, "\n")
}

// missingList renders the missing-item set for prompt interpolation.
func missingList(missing []string) string {
	if len(missing) == 0 {
		return "None"
	}
	return strings.Join(missing, ", ")
}
