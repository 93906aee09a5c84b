// Package agent implements the three collaborator roles the orchestrator
// delegates to: inventory, quoting, and sales. Each is a tool-calling
// Claude agent with a role system prompt and a role-specific tool subset.
package agent

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/munderdifflin/paperflow/internal/api"
	"github.com/munderdifflin/paperflow/pkg/models"
)

// Collaborator is an external capability boundary the orchestrator
// delegates sub-tasks to. Implementations receive a free-text instruction
// and return a free-text or structured reply.
type Collaborator interface {
	// Name returns the role name of the collaborator.
	Name() string
	// Invoke runs one instruction to completion and returns the reply.
	Invoke(ctx context.Context, instruction string) (models.Reply, error)
}

// claudeCollaborator runs a role over the shared tool-use agent loop.
type claudeCollaborator struct {
	name         string
	systemPrompt string
	tools        []anthropic.ToolUnionParam
	loop         *api.AgentLoop
}

// Compile-time verification that claudeCollaborator implements Collaborator.
var _ Collaborator = (*claudeCollaborator)(nil)

func (c *claudeCollaborator) Name() string {
	return c.name
}

func (c *claudeCollaborator) Invoke(ctx context.Context, instruction string) (models.Reply, error) {
	result, err := c.loop.Run(ctx, c.systemPrompt, instruction, c.tools)
	if err != nil {
		return models.Reply{}, fmt.Errorf("%s invocation: %w", c.name, err)
	}
	return models.Reply{Text: result.Output}, nil
}

const inventorySystemPrompt = `You are the inventory agent for a paper supply company.
You manage inventory: check stock levels, decide when restocking is needed, and place restock orders.
Answer inventory queries accurately using your tools. Follow the instructions you are given exactly,
including any required response markers.`

const quotingSystemPrompt = `You are the quote management agent for a paper supply company.
You generate price quotes for customer orders, checking historical quotes to decide whether a
bulk discount applies. Use your tools for every price and discount lookup; never invent numbers.`

const salesSystemPrompt = `You are the sales agent for a paper supply company.
You finalize sales transactions: record sales in the database, estimate delivery dates, and write
a clear, friendly customer-facing order summary.`

// NewInventoryAgent creates the stock-check/restock collaborator.
func NewInventoryAgent(loop *api.AgentLoop) Collaborator {
	return &claudeCollaborator{
		name:         "inventory_agent",
		systemPrompt: inventorySystemPrompt,
		tools:        api.InventoryTools(),
		loop:         loop,
	}
}

// NewQuotingAgent creates the pricing/discount collaborator.
func NewQuotingAgent(loop *api.AgentLoop) Collaborator {
	return &claudeCollaborator{
		name:         "quote_management",
		systemPrompt: quotingSystemPrompt,
		tools:        api.QuotingTools(),
		loop:         loop,
	}
}

// NewSalesAgent creates the sale-finalization collaborator.
func NewSalesAgent(loop *api.AgentLoop) Collaborator {
	return &claudeCollaborator{
		name:         "sales_agent",
		systemPrompt: salesSystemPrompt,
		tools:        api.SalesTools(),
		loop:         loop,
	}
}
