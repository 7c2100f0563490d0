package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskjournal/internal/application/commands"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// RegisterWriteTools adds all task mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.OperationStore) {
	s.AddTool(addTool(), addHandler(store))
	s.AddTool(annotateTool(), annotateHandler(store))
	s.AddTool(transitionTool("start_task", "Start working on a task."), transitionHandler(store, commands.NewStartTaskCommand, "Started"))
	s.AddTool(transitionTool("stop_task", "Stop a started task."), transitionHandler(store, commands.NewStopTaskCommand, "Stopped"))
	s.AddTool(transitionTool("done_task", "Mark a task completed."), transitionHandler(store, newDoneCommand, "Completed"))
	s.AddTool(transitionTool("delete_task", "Mark a task deleted."), transitionHandler(store, commands.NewDeleteTaskCommand, "Deleted"))
}

// --- add_task ---

func addTool() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Create a new pending task."),
		mcp.WithString("description",
			mcp.Description("Task description"),
			mcp.Required(),
		),
		mcp.WithString("project",
			mcp.Description("Project name, dot separated for sub projects"),
		),
		mcp.WithString("tags",
			mcp.Description("Space separated tags"),
		),
	)
}

func addHandler(store ports.OperationStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateTaskCommand(store, req.GetString("description", ""))
		if project := req.GetString("project", ""); project != "" {
			cmd.Properties[domain.PropProject] = project
		}
		cmd.Tags = strings.Fields(req.GetString("tags", ""))

		task, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Created task %s.", task.UUID)), nil
	}
}

// --- annotate_task ---

func annotateTool() mcp.Tool {
	return mcp.NewTool("annotate_task",
		mcp.WithDescription("Attach a timestamped note to a task."),
		mcp.WithString("uuid",
			mcp.Description("Task UUID"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("Annotation text"),
			mcp.Required(),
		),
	)
}

func annotateHandler(store ports.OperationStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		uuid := req.GetString("uuid", "")
		cmd := commands.NewAnnotateTaskCommand(store, uuid, req.GetString("text", ""))
		if _, err := cmd.Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Annotated task %s.", uuid)), nil
	}
}

// --- start_task, stop_task, done_task, delete_task ---

type transitionFunc func(store ports.OperationStore, uuid string) *commands.ModifyTaskCommand

func newDoneCommand(store ports.OperationStore, uuid string) *commands.ModifyTaskCommand {
	return commands.NewDoneTaskCommand(store, uuid, nil)
}

func transitionTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("uuid",
			mcp.Description("Task UUID"),
			mcp.Required(),
		),
	)
}

func transitionHandler(store ports.OperationStore, newCommand transitionFunc, verb string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		uuid := req.GetString("uuid", "")
		task, err := newCommand(store, uuid).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s task %s '%s'.", verb, task.UUID, task.Description())), nil
	}
}
