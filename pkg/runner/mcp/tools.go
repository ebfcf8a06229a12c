package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTasksTool(srv, svc)
	registerGetTaskTool(srv, svc)
	registerAddTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerMoveTaskTool(srv, svc)
	registerResizeTaskTool(srv, svc)
	registerCurrentTaskTool(srv, svc)
	registerDayMetricsTool(srv, svc)
	registerReadNoteTool(srv, svc)
	registerWriteNoteTool(srv, svc)
}

func withDate(description string) mcp.ToolOption {
	return mcp.WithString("date",
		mcp.Description(description+" Accepts YYYY-MM-DD, today, yesterday or tomorrow. Defaults to today."),
	)
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List the tasks scheduled on a day, ordered by start time."),
		withDate("Day to list."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := svc.ParseDate(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		list := svc.ListTasks(ctx, day)
		return toJSONResult(map[string]any{
			"date":  day.String(),
			"tasks": list,
			"count": len(list),
		})
	})
}

func registerGetTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_task",
		mcp.WithDescription("Fetch a single task by identifier or unique identifier prefix."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.TaskByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Schedule a new task."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title."),
		),
		mcp.WithString("description",
			mcp.Description("Optional longer description."),
		),
		mcp.WithString("startTime",
			mcp.Required(),
			mcp.Description("Start time in RFC3339, e.g. 2024-06-01T09:00:00-07:00."),
		),
		mcp.WithString("duration",
			mcp.Description("Duration such as 30m, 1h30m or 90. Defaults to 30m."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			StartTime   string `json:"startTime"`
			Duration    string `json:"duration"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddTask(ctx, AddTaskOptions{
			Title:       args.Title,
			Description: args.Description,
			Start:       args.StartTime,
			Duration:    args.Duration,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Flip a task between complete and incomplete."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier or unique prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ToggleTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier or unique prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.DeleteTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": dto,
		})
	})
}

func registerMoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_task",
		mcp.WithDescription("Reschedule a task. Fails when another task already starts in the target slot."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier or unique prefix."),
		),
		mcp.WithString("startTime",
			mcp.Required(),
			mcp.Description("New start time in RFC3339."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		start, err := request.RequireString("startTime")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.MoveTask(ctx, id, start)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerResizeTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"resize_task",
		mcp.WithDescription("Grow or shrink a task. The duration never drops below 30 minutes."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier or unique prefix."),
		),
		mcp.WithNumber("delta",
			mcp.Required(),
			mcp.Description("Minutes to add, negative to shrink."),
			mcp.Min(-1440),
			mcp.Max(1440),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ResizeTask(ctx, id, request.GetInt("delta", 0))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCurrentTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"current_task",
		mcp.WithDescription("Return the task running right now, if any."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, ok := svc.CurrentTask(ctx)
		if !ok {
			return toJSONResult(map[string]any{"running": false})
		}
		return toJSONResult(map[string]any{
			"running": true,
			"task":    dto,
		})
	})
}

func registerDayMetricsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"day_metrics",
		mcp.WithDescription("Completion and daylight planning metrics for a day."),
		withDate("Day to measure."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := svc.ParseDate(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		d := svc.Day(ctx, day)
		return toJSONResult(map[string]any{
			"date":    d.Date,
			"metrics": d.Metrics,
			"summary": d.Summary,
		})
	})
}

func registerReadNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"read_note",
		mcp.WithDescription("Read the journal note for a day."),
		withDate("Day to read."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := svc.ParseDate(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(svc.ReadNote(ctx, day))
	})
}

func registerWriteNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"write_note",
		mcp.WithDescription("Replace the journal note for a day."),
		withDate("Day to write."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Full note content. Simple inline markdown is allowed."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := svc.ParseDate(request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		content, err := request.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.WriteNote(ctx, day, content)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
