package gateservice

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vrslev/pi-guard/internal/engine"
)

// NewMCPServer exposes eng as a single MCP tool, `evaluate_tool_call`, for
// hosts that prefer an MCP transport over the Unix-socket protocol
// (SPEC_FULL.md §4.12; grounded on vanducng-goclaw's use of
// mark3labs/mcp-go, generalized from its client-connection manager to a
// server exposing one tool).
func NewMCPServer(eng *engine.Engine) *server.MCPServer {
	s := server.NewMCPServer("pi-guard", "0.1.0")

	tool := mcp.NewTool("evaluate_tool_call",
		mcp.WithDescription("Evaluate a Bash command or file write against the configured autonomy policy"),
		mcp.WithString("tool_name", mcp.Required(), mcp.Description("Bash, Write, Edit, MultiEdit, or NotebookEdit")),
		mcp.WithString("tool_input", mcp.Required(), mcp.Description("the tool's JSON tool_input, as a string")),
		mcp.WithString("cwd", mcp.Description("the working directory of the calling session")),
	)

	s.AddTool(tool, mcpHandler(eng))
	return s
}

func mcpHandler(eng *engine.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		toolName, err := req.RequireString("tool_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		toolInput, err := req.RequireString("tool_input")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		workDir := req.GetString("cwd", "")

		d := &Daemon{eng: eng}
		resp := d.evaluate(EvalRequest{ToolName: toolName, ToolInput: toolInput, WorkDir: workDir})

		return mcp.NewToolResultText(resp.Decision + ": " + resp.Reason), nil
	}
}
