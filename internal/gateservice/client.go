package gateservice

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"time"
)

// Query sends one request to the gate daemon, auto-starting it if it is
// not already running and retrying at a fixed interval while it comes up
// (grounded on the teacher's queryDaemon/startDaemonProcess).
func Query(toolName, toolInput, workDir string) (*EvalResponse, error) {
	socketPath := defaultSocketPath()

	req := EvalRequest{ToolName: toolName, ToolInput: toolInput, WorkDir: workDir}

	resp, err := sendRequest(socketPath, req)
	if err == nil {
		return resp, nil
	}

	if startErr := startDaemonProcess(); startErr != nil {
		return nil, fmt.Errorf("failed to start daemon: %w", startErr)
	}

	ready := pollUntil(10, 200*time.Millisecond, func() bool {
		resp, err = sendRequest(socketPath, req)
		return err == nil
	})
	if ready {
		return resp, nil
	}

	return nil, fmt.Errorf("daemon not available after retries: %w", err)
}

func sendRequest(socketPath string, req EvalRequest) (*EvalResponse, error) {
	conn, err := net.DialTimeout("unix", socketPath, 2*time.Second)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(35 * time.Second))

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	var resp EvalResponse
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &resp, nil
}

// startDaemonProcess re-execs the current binary as `pi-guard serve` in
// the background.
func startDaemonProcess() error {
	exePath, err := os.Executable()
	if err != nil {
		return err
	}

	cmd := exec.Command(exePath, "serve")
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	return cmd.Start()
}
