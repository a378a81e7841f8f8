// Package mcp exposes the calculator as Model Context Protocol tools.
//
// Tools
//
//   - press     apply space-separated keys to the shared editor
//   - display   show the current expression and result
//   - evaluate  evaluate an expression without touching the editor
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"calcpad/internal/arith"
	"calcpad/internal/domain"
	"calcpad/internal/input"
)

// Server holds the editor shared by the tool handlers.
type Server struct {
	mu  sync.Mutex
	ed  domain.Editor
	log *zap.Logger
}

// NewServer returns a Server driving ed. log may be nil.
func NewServer(ed domain.Editor, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{ed: ed, log: log}
}

// MCPServer builds the mcp-go server with every tool registered.
func (s *Server) MCPServer(version string) *server.MCPServer {
	ms := server.NewMCPServer(
		"calcpad",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	ms.AddTool(mcp.NewTool("press",
		mcp.WithDescription("Press calculator keys. Keys are space separated: digits, . + - * / %, = or Enter to evaluate, sign, del, clear."),
		mcp.WithString("keys",
			mcp.Required(),
			mcp.Description("Space-separated keys, e.g. \"12 + 3 =\""),
		),
	), s.handlePress)

	ms.AddTool(mcp.NewTool("display",
		mcp.WithDescription("Show the calculator's current expression and result"),
	), s.handleDisplay)

	ms.AddTool(mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate an arithmetic expression (+ - * / %, parentheses, unary minus) without changing the calculator"),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("Expression to evaluate, e.g. \"(1+2)*3\""),
		),
	), s.handleEvaluate)

	return ms
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio(version string) error {
	return server.ServeStdio(s.MCPServer(version))
}

func (s *Server) handlePress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	keys, ok := args["keys"].(string)
	if !ok || strings.TrimSpace(keys) == "" {
		return mcp.NewToolResultError("keys is required"), nil
	}

	actions, parseErr := input.ParseAll(strings.Fields(keys))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		if err := s.ed.Apply(a); err != nil && !errors.Is(err, domain.ErrEvaluation) {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	s.log.Debug("press", zap.String("keys", keys), zap.String("expression", s.ed.Display().Expression))

	if parseErr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%v (display: %s)", parseErr, formatDisplay(s.ed.Display()))), nil
	}
	return mcp.NewToolResultText(formatDisplay(s.ed.Display())), nil
}

func (s *Server) handleDisplay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	d := s.ed.Display()
	s.mu.Unlock()
	return mcp.NewToolResultText(formatDisplay(d)), nil
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	expr, ok := args["expression"].(string)
	if !ok {
		return mcp.NewToolResultError("expression is required"), nil
	}
	v, err := arith.Evaluate(expr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error evaluating %q: %v", expr, err)), nil
	}
	return mcp.NewToolResultText(arith.FormatNumber(v)), nil
}

func formatDisplay(d domain.DisplayState) string {
	return fmt.Sprintf("expression: %s\nresult: %s", d.Expression, d.Result)
}
