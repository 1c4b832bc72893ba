package gateservice

import (
	"encoding/json"
	"io"
)

// HookInput matches the host agent's PermissionRequest hook input.
type HookInput struct {
	SessionID  string          `json:"session_id"`
	ToolName   string          `json:"tool_name"`
	ToolInput  json.RawMessage `json:"tool_input"`
	WorkingDir string          `json:"cwd"`
}

// HookOutput is written back for a PermissionRequest hook.
type HookOutput struct {
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

type HookSpecificOutput struct {
	HookEventName string    `json:"hookEventName"`
	Decision      *Decision `json:"decision,omitempty"`
}

type Decision struct {
	Behavior string `json:"behavior"` // "allow" or "deny"
	Message  string `json:"message,omitempty"`
}

// ReadHookInput reads and decodes one HookInput from r (stdin in
// production).
func ReadHookInput(r io.Reader) (*HookInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var in HookInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// WriteAllowOutput writes the hookSpecificOutput that tells the host agent
// to proceed without its own confirmation prompt.
func WriteAllowOutput(w io.Writer) error {
	out := HookOutput{
		HookSpecificOutput: &HookSpecificOutput{
			HookEventName: "PermissionRequest",
			Decision:      &Decision{Behavior: "allow"},
		},
	}
	return json.NewEncoder(w).Encode(out)
}

// RunHook implements the `pi-guard hook` entry point: it reads one
// HookInput from stdin, queries the gate daemon (auto-starting it if
// needed), and writes an allow output to stdout only on ALLOW — any other
// outcome writes nothing, letting the host agent fall through to its own
// permission flow (spec.md's NoUI and block outcomes both surface this
// way to the host).
func RunHook(stdin io.Reader, stdout io.Writer) error {
	in, err := ReadHookInput(stdin)
	if err != nil {
		return err
	}
	if in.ToolName == "" || !evaluatedTools[in.ToolName] {
		return nil
	}

	resp, err := Query(in.ToolName, string(in.ToolInput), in.WorkingDir)
	if err != nil {
		return nil
	}
	if resp.Decision == "ALLOW" {
		return WriteAllowOutput(stdout)
	}
	return nil
}
