// Package gateservice adapts the Decision Engine into a long-running Unix
// socket service (SPEC_FULL.md §4.12), grounded on the teacher's
// daemon.go/client.go/protocol.go/hook.go near one-for-one: the wire
// protocol and process lifecycle are kept, the evaluator slot is filled by
// internal/engine.Engine instead of an LLM call.
package gateservice

// EvalRequest is sent from client to daemon via Unix socket.
type EvalRequest struct {
	ToolName  string `json:"tool_name"`
	ToolInput string `json:"tool_input"`
	WorkDir   string `json:"work_dir"`
}

// EvalResponse is sent from daemon to client via Unix socket.
type EvalResponse struct {
	Decision string `json:"decision"` // "ALLOW" or "ASK"
	Reason   string `json:"reason"`
}

// bashToolInput is the shape of Bash's tool_input JSON.
type bashToolInput struct {
	Command string `json:"command"`
}

// writeToolInput is the shape shared by Write/Edit/MultiEdit/NotebookEdit's
// tool_input JSON: they all key the target path as file_path.
type writeToolInput struct {
	FilePath string `json:"file_path"`
}

// evaluatedTools are the tool names the Decision Engine has semantics for.
// Every other tool name passes through unevaluated (spec.md's scope is
// shell commands and file writes, not every possible tool).
var evaluatedTools = map[string]bool{
	"Bash":          true,
	"Write":         true,
	"Edit":          true,
	"MultiEdit":     true,
	"NotebookEdit":  true,
}
