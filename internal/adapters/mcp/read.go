package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskjournal/internal/adapters/render"
	"taskjournal/internal/application"
	"taskjournal/internal/application/commands"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// Reader holds what the read-only tools need to render tasks
type Reader struct {
	Store          ports.OperationStore
	Presenter      domain.Presenter
	Logger         *slog.Logger
	JournalEnabled bool
}

// RegisterReadTools adds all read-only task tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, r Reader) {
	s.AddTool(journalTool(), journalHandler(r))
	s.AddTool(listTool(), listHandler(r))
	s.AddTool(searchTool(), searchHandler(r))
	s.AddTool(undoPreviewTool(), undoPreviewHandler(r))
}

// --- journal ---

func journalTool() mcp.Tool {
	return mcp.NewTool("journal",
		mcp.WithDescription("Show a task's change journal: one entry per second of edits, each a list of sentences describing what changed."),
		mcp.WithString("uuid",
			mcp.Description("Task UUID"),
			mcp.Required(),
		),
	)
}

func journalHandler(r Reader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		uuid := req.GetString("uuid", "")
		if uuid == "" {
			return toolError(fmt.Errorf("uuid is required"))
		}

		infos, err := commands.NewInfoCommand(r.Store, r.Presenter, r.Logger, r.JournalEnabled, uuid).Execute(ctx)
		if errors.Is(err, application.ErrNoMatches) {
			return mcp.NewToolResultText("No matches."), nil
		}
		if err != nil {
			return toolError(err)
		}

		info := infos[0]
		if info.JournalErr != nil {
			return toolError(info.JournalErr)
		}
		if !r.JournalEnabled {
			return mcp.NewToolResultText("Journal is disabled."), nil
		}
		if len(info.Journal) == 0 {
			return mcp.NewToolResultText("No changes recorded."), nil
		}
		return mcp.NewToolResultText(render.JournalText(info.Journal)), nil
	}
}

// --- list_tasks ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List stored tasks with their UUID, status and description."),
		mcp.WithString("status",
			mcp.Description("Only list tasks with this status (pending, completed, deleted). Omit to list all."),
		),
	)
}

func listHandler(r Reader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tasks, err := commands.NewListTasksCommand(r.Store, req.GetString("status", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(tasks, formatTask)
	}
}

// --- search_tasks ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_tasks",
		mcp.WithDescription("Fuzzy search task descriptions, projects and tags."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func searchHandler(r Reader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchTasksCommand(r.Store, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(results, func(res commands.SearchResult) string {
			return formatTask(res.Task)
		})
	}
}

// --- undo_preview ---

func undoPreviewTool() mcp.Tool {
	return mcp.NewTool("undo_preview",
		mcp.WithDescription("List the operations the next undo would revert."),
	)
}

func undoPreviewHandler(r Reader) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ops, err := commands.NewUndoPreviewCommand(r.Store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(ops, formatOperation)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatTask(t domain.Task) string {
	return fmt.Sprintf("%s  %s  %s", t.UUID, t.Status(), t.Description())
}

func formatOperation(op domain.Operation) string {
	if !op.IsUpdate() {
		return fmt.Sprintf("%s  %s", op.Kind, op.UUID)
	}
	old, value := "-", "-"
	if op.OldValue != nil {
		old = *op.OldValue
	}
	if op.Value != nil {
		value = *op.Value
	}
	return fmt.Sprintf("%s  %s  %s: %s -> %s", op.Kind, op.UUID, op.Property, old, value)
}
