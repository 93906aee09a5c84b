package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// AgentLoop manages the API call and tool execution cycle for one
// collaborator role.
type AgentLoop struct {
	client        *Client
	executor      *ToolExecutor
	onStream      func(StreamEvent)
	maxIterations int
}

// StreamEvent represents an event during agent execution for progress output.
type StreamEvent struct {
	Type    string // "text", "tool_use", "tool_result", "done", "error"
	Content string
	Tool    string
	Input   json.RawMessage
}

// LoopResult contains the results of an agent loop execution.
type LoopResult struct {
	Output     string
	TokensIn   int64
	TokensOut  int64
	ToolCalls  int
	Iterations int
}

// AgentLoopConfig contains configuration for the agent loop.
type AgentLoopConfig struct {
	Client   *Client
	Executor *ToolExecutor
	// MaxIterations caps API calls per instruction (0 = default).
	MaxIterations int
}

const defaultMaxIterations = 20

// NewAgentLoop creates a new agent loop with the given configuration.
func NewAgentLoop(cfg AgentLoopConfig) *AgentLoop {
	maxIter := cfg.MaxIterations
	if maxIter == 0 {
		maxIter = defaultMaxIterations
	}

	return &AgentLoop{
		client:        cfg.Client,
		executor:      cfg.Executor,
		maxIterations: maxIter,
	}
}

// SetStreamHandler sets a callback for streaming events during execution.
func (l *AgentLoop) SetStreamHandler(fn func(StreamEvent)) {
	l.onStream = fn
}

// emit sends a stream event if a handler is configured.
func (l *AgentLoop) emit(event StreamEvent) {
	if l.onStream != nil {
		l.onStream(event)
	}
}

// Run executes the agent loop with the given prompts and tool set: call the
// model, execute any tool_use blocks, feed tool_result blocks back, and stop
// when the model ends its turn.
func (l *AgentLoop) Run(ctx context.Context, systemPrompt, userPrompt string, tools []anthropic.ToolUnionParam) (*LoopResult, error) {
	result := &LoopResult{}

	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
	}

	for result.Iterations < l.maxIterations {
		result.Iterations++

		resp, err := l.client.sdk().Messages.New(ctx, anthropic.MessageNewParams{
			Model:     l.client.Model(),
			MaxTokens: 4096,
			System: []anthropic.TextBlockParam{
				{Text: systemPrompt},
			},
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			l.emit(StreamEvent{Type: "error", Content: err.Error()})
			return result, fmt.Errorf("API call failed: %w", err)
		}

		result.TokensIn += resp.Usage.InputTokens
		result.TokensOut += resp.Usage.OutputTokens
		l.client.Tracker().Add(resp.Usage.InputTokens, resp.Usage.OutputTokens)

		var assistantBlocks []anthropic.ContentBlockParamUnion
		var toolResultBlocks []anthropic.ContentBlockParamUnion
		var textOutput string

		for _, block := range resp.Content {
			switch variant := block.AsAny().(type) {
			case anthropic.TextBlock:
				textOutput += variant.Text
				l.emit(StreamEvent{Type: "text", Content: variant.Text})
				assistantBlocks = append(assistantBlocks, anthropic.NewTextBlock(variant.Text))

			case anthropic.ToolUseBlock:
				result.ToolCalls++

				l.emit(StreamEvent{Type: "tool_use", Tool: variant.Name, Input: variant.Input})
				assistantBlocks = append(assistantBlocks,
					anthropic.NewToolUseBlock(variant.ID, variant.Input, variant.Name))

				toolResult := l.executor.Execute(ctx, variant.Name, variant.Input)
				l.emit(StreamEvent{
					Type:    "tool_result",
					Tool:    variant.Name,
					Content: truncateForDisplay(toolResult.Content),
				})

				toolResultBlocks = append(toolResultBlocks,
					anthropic.NewToolResultBlock(variant.ID, toolResult.Content, toolResult.IsError))
			}
		}

		if resp.StopReason == anthropic.StopReasonEndTurn {
			result.Output = textOutput
			l.emit(StreamEvent{Type: "done"})
			return result, nil
		}

		messages = append(messages, anthropic.NewAssistantMessage(assistantBlocks...))
		if len(toolResultBlocks) > 0 {
			messages = append(messages, anthropic.NewUserMessage(toolResultBlocks...))
		}
	}

	return result, fmt.Errorf("max iterations (%d) reached", l.maxIterations)
}

func truncateForDisplay(s string) string {
	if len(s) > 500 {
		return s[:500] + "..."
	}
	return s
}
