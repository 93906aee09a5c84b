package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/munderdifflin/paperflow/internal/agent"
	"github.com/munderdifflin/paperflow/internal/catalog"
)

// User-facing messages. Failures are reported as plain descriptive strings
// to the caller; there is no separate error channel past Process.
const (
	msgUnidentifiedItem = "I'm sorry, I couldn't identify which item you want. We offer: %s. Please specify one of these items."
	msgOutOfStock       = "I'm sorry, we don't have enough in stock to fulfill your order for %d of %s at this time."
	msgMissingCatalog   = "I'm sorry, the following items are not available in our catalog: %s. Please check our available products."
	msgQuoteRequest     = "I apologize, but we encountered an issue processing your quote request. Please try again or contact customer service."
	msgQuoteParse       = "I apologize, but we encountered an issue processing your quote. Please try again."
	msgFinalization     = "I apologize, but we encountered an issue finalizing your order. Please try again or contact customer service."
)

// Orchestrator sequences one customer request through parsing, inventory
// validation, quoting, and sale finalization. It holds no per-request
// state; every Process call is independent.
type Orchestrator struct {
	inventory agent.Collaborator
	quoting   agent.Collaborator
	sales     agent.Collaborator
	catalog   catalog.Catalog
	logger    *DebugLogger
}

// New creates an orchestrator over the three collaborators and the
// injected read-only catalog. A nil logger disables diagnostics.
func New(inventory, quoting, sales agent.Collaborator, cat catalog.Catalog, logger *DebugLogger) *Orchestrator {
	if logger == nil {
		logger = NopLogger()
	}
	return &Orchestrator{
		inventory: inventory,
		quoting:   quoting,
		sales:     sales,
		catalog:   cat,
		logger:    logger,
	}
}

// Process runs one customer request to completion and returns the
// customer-facing result: either the sales summary or a failure message.
func (o *Orchestrator) Process(ctx context.Context, request string) string {
	parsed := Parse(request)
	o.logger.Log("parsed %d order lines, request date %q", len(parsed.Lines), parsed.RequestDate)

	// The reply of the last inventory delegation feeds the missing-items
	// scan below, in both the per-line and the fallback path.
	var lastInventoryReply string

	if len(parsed.Lines) == 0 {
		// Fallback: let the inventory agent parse and assess the raw text.
		reply, err := o.inventory.Invoke(ctx, openEndedInventoryInstruction(request))
		if err != nil {
			o.logger.Log("inventory collaborator failed on fallback path: %v", err)
		} else {
			lastInventoryReply = reply.Text
		}
	} else {
		// Every line must overlap the catalog before any collaborator runs.
		for _, line := range parsed.Lines {
			if !o.catalog.Matches(line.Name) {
				o.logger.Log("unidentified item %q, rejecting request", line.Name)
				return fmt.Sprintf(msgUnidentifiedItem, strings.Join(o.catalog.Names(), ", "))
			}
		}

		for _, line := range parsed.Lines {
			reply, err := o.inventory.Invoke(ctx, inventoryCheckInstruction(line))
			if err != nil {
				// A failed check leaves the reply empty; the shortage and
				// missing-items scans then find nothing and processing
				// continues. Permissive on purpose.
				o.logger.Log("inventory collaborator failed for %q: %v", line.Name, err)
				lastInventoryReply = ""
				continue
			}
			lastInventoryReply = reply.Text

			// First shortage stops the whole request.
			if HasShortage(lastInventoryReply) {
				o.logger.Log("shortage reported for %d of %q", line.Quantity, line.Name)
				return fmt.Sprintf(msgOutOfStock, line.Quantity, line.Name)
			}
		}
	}

	missing := MissingItems(lastInventoryReply)
	if len(missing) > 0 {
		o.logger.Log("catalog-missing items: %s", strings.Join(missing, ", "))
		return fmt.Sprintf(msgMissingCatalog, strings.Join(missing, ", "))
	}

	details := detailBlock(parsed.Lines)
	stripped := strings.TrimSpace(stripDate(request))

	quoteReply, err := o.quoting.Invoke(ctx, quoteInstruction(missing, details, stripped))
	if err != nil {
		o.logger.Log("quoting collaborator failed: %v", err)
		return msgQuoteRequest
	}

	quote, err := ParseQuoteReply(quoteReply)
	if err != nil {
		o.logger.Log("could not interpret quote reply: %v", err)
		return msgQuoteParse
	}
	o.logger.Log("quote: total %.2f, bulk discount %t", quote.TotalPrice, quote.BulkDiscountApplied)

	orderDesc := details
	if orderDesc == "" {
		orderDesc = stripped
	}

	salesReply, err := o.sales.Invoke(ctx, salesInstruction(orderDesc, missing, quote))
	if err != nil {
		o.logger.Log("sales collaborator failed: %v", err)
		return msgFinalization
	}

	return salesReply.Text
}
