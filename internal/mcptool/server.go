// Package mcptool serves a calculator session as a Model Context Protocol
// tool, so that an assistant can press keys and read the display.
package mcptool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/govalues/calc"
	"github.com/govalues/calc/internal/keypad"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "calc"
	serverVersion = "v0.1.0"
)

// PressInput represents the MCP tool input for pressing keys.
type PressInput struct {
	Keys string `json:"keys" jsonschema:"key sequence such as 200 + 2 % = or 9 sqrt"`
}

// PressResult represents the calculator state after the keys were pressed.
type PressResult struct {
	Display          string `json:"display" jsonschema:"text shown on the display"`
	Formula          string `json:"formula" jsonschema:"expression trail shown above the display"`
	State            string `json:"state" jsonschema:"input state: LEFT, TRANSIENT, RIGHT or AFTER"`
	MemoryEmpty      bool   `json:"memory_empty" jsonschema:"true if the memory cell is empty"`
	ErrorLatched     bool   `json:"error_latched" jsonschema:"true if an error is shown and only C is accepted"`
	BackspaceAllowed bool   `json:"backspace_allowed" jsonschema:"true if backspace would change the entry"`
}

// PressTool defines the MCP tool schema for pressing calculator keys.
func PressTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "calculator_press",
		Description: "Presses keys on a decimal calculator and returns its display. " +
			"Keys are digits, operations (+ - * / sqrt sqr 1/x neg M+ M- MS MC) " +
			"and commands (= % C CE < MR). The calculator keeps its state between calls.",
	}
}

// Server owns one calculator session shared by all tool calls.
type Server struct {
	mu        sync.Mutex // serializes key presses
	session   *calc.Session
	mcpServer *mcp.Server
}

// NewServer returns a server with a cleared calculator session.
func NewServer() *Server {
	s := &Server{session: calc.NewSession()}
	s.mcpServer = mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(s.mcpServer, PressTool(), s.pressHandler())
	return s
}

// Press presses the keys of line and returns the resulting state.
// On an unknown key the keys before it stay applied.
func (s *Server) Press(line string) (PressResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := keypad.Run(s.session, line); err != nil {
		return PressResult{}, err
	}
	return snapshot(s.session), nil
}

func snapshot(c *calc.Session) PressResult {
	return PressResult{
		Display:          c.Display(),
		Formula:          c.Formula(),
		State:            c.State().String(),
		MemoryEmpty:      c.MemoryEmpty(),
		ErrorLatched:     c.ErrorLatched(),
		BackspaceAllowed: c.CanBackspace(),
	}
}

func (s *Server) pressHandler() mcp.ToolHandlerFor[PressInput, PressResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PressInput) (*mcp.CallToolResult, PressResult, error) {
		result, err := s.Press(input.Keys)
		if err != nil {
			return nil, PressResult{}, err
		}
		return nil, result, nil
	}
}

// Run serves the tool over transport until the context is canceled or the
// client disconnects.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
