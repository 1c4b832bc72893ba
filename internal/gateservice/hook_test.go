package gateservice

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHookInputDecodesToolInput(t *testing.T) {
	body := `{"session_id":"s1","tool_name":"Bash","tool_input":{"command":"ls"},"cwd":"/proj"}`
	in, err := ReadHookInput(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "Bash", in.ToolName)
	assert.Equal(t, "/proj", in.WorkingDir)

	var bi bashToolInput
	require.NoError(t, json.Unmarshal(in.ToolInput, &bi))
	assert.Equal(t, "ls", bi.Command)
}

func TestWriteAllowOutputShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAllowOutput(&buf))

	var out HookOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.NotNil(t, out.HookSpecificOutput)
	assert.Equal(t, "allow", out.HookSpecificOutput.Decision.Behavior)
}

func TestRunHookSkipsUnevaluatedTool(t *testing.T) {
	body := `{"session_id":"s1","tool_name":"Read","tool_input":{},"cwd":"/proj"}`
	var out bytes.Buffer
	require.NoError(t, RunHook(strings.NewReader(body), &out))
	assert.Zero(t, out.Len())
}

func TestRunHookEmptyToolNamePassesThrough(t *testing.T) {
	body := `{"session_id":"s1","tool_input":{},"cwd":"/proj"}`
	var out bytes.Buffer
	require.NoError(t, RunHook(strings.NewReader(body), &out))
	assert.Zero(t, out.Len())
}
