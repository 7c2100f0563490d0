package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "taskjournal/internal/adapters/mcp"
	"taskjournal/internal/adapters/sqlite"
	"taskjournal/internal/config"
)

func main() {
	dataFlag := flag.String("data", config.DataPath(), "path to the task store directory")
	flag.Parse()

	if err := run(*dataFlag); err != nil {
		fmt.Fprintf(os.Stderr, "taskjournal-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(dataPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// stdout carries the protocol; logs go to stderr
	logger := cfg.NewLogger()

	store := sqlite.NewStore(logger)
	if err := store.Open(dataPath); err != nil {
		return err
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"taskjournal-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, mcpadapter.Reader{
		Store:          store,
		Presenter:      cfg.InfoDisplay(time.Local),
		Logger:         logger,
		JournalEnabled: cfg.JournalInfo,
	})
	mcpadapter.RegisterWriteTools(mcpServer, store)

	logger.Info("serving on stdio", "store", store.Path())
	return server.ServeStdio(mcpServer)
}
