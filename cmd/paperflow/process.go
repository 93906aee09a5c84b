package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/munderdifflin/paperflow/internal/agent"
	"github.com/munderdifflin/paperflow/internal/api"
	"github.com/munderdifflin/paperflow/internal/catalog"
	"github.com/munderdifflin/paperflow/internal/config"
	"github.com/munderdifflin/paperflow/internal/orchestrator"
	"github.com/munderdifflin/paperflow/internal/store"
)

var (
	processFile    string
	processVerbose bool
)

var processCmd = &cobra.Command{
	Use:   "process [request]",
	Short: "Process a customer order request",
	Long: `Process runs one customer request through the full workflow:
parse, inventory validation, quoting, and sale finalization. The request is
taken from the argument, from --file, or from stdin.

The result is the customer-facing summary, or an explanation of why the
order could not be fulfilled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processFile, "file", "f", "", "Read the request from a file")
	processCmd.Flags().BoolVarP(&processVerbose, "verbose", "v", false, "Show agent activity while processing")
}

func runProcess(cmd *cobra.Command, args []string) error {
	request, err := readRequest(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating store: %w", err)
	}

	client, err := api.NewClient(api.ClientConfig{
		Model:         anthropic.Model(cfg.Anthropic.Model),
		APIKey:        cfg.Anthropic.APIKey,
		UseAWSBedrock: cfg.AWS.UseBedrock,
		AWSRegion:     cfg.AWS.Region,
		AWSProfile:    cfg.AWS.Profile,
	})
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	loop := api.NewAgentLoop(api.AgentLoopConfig{
		Client:        client,
		Executor:      api.NewToolExecutor(db, cat),
		MaxIterations: cfg.Orchestrator.MaxIterations,
	})
	if processVerbose {
		loop.SetStreamHandler(printStreamEvent)
	}

	logger, err := orchestrator.NewDebugLogger(cfg.Orchestrator.LogPath)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	defer logger.Close()

	orch := orchestrator.New(
		agent.NewInventoryAgent(loop),
		agent.NewQuotingAgent(loop),
		agent.NewSalesAgent(loop),
		cat,
		logger,
	)

	result := orch.Process(context.Background(), request)
	fmt.Println(result)

	if processVerbose {
		in, out := client.Tracker().Total()
		color.New(color.Faint).Fprintf(os.Stderr,
			"tokens: %d in / %d out across %d calls\n", in, out, client.Tracker().Calls())
	}

	return nil
}

// readRequest resolves the request text from the argument, --file, or stdin.
func readRequest(args []string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	if processFile != "" {
		data, err := os.ReadFile(processFile)
		if err != nil {
			return "", fmt.Errorf("reading request file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("no request given: pass it as an argument, via --file, or on stdin")
	}
	request := strings.TrimSpace(string(data))
	if request == "" {
		return "", fmt.Errorf("no request given: pass it as an argument, via --file, or on stdin")
	}
	return request, nil
}

// loadCatalog returns the configured catalog file or the built-in set.
func loadCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

// printStreamEvent renders agent activity for --verbose runs.
func printStreamEvent(event api.StreamEvent) {
	switch event.Type {
	case "tool_use":
		color.Cyan("→ %s %s", event.Tool, string(event.Input))
	case "tool_result":
		color.New(color.Faint).Printf("  %s\n", event.Content)
	case "error":
		color.Red("error: %s", event.Content)
	}
}
