// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/fsh/internal/ports"
	"go.uber.org/zap"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server        *server.MCPServer
	stateProvider ports.PromptStateProvider
	logger        *zap.Logger
	version       string

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
}

// NewServer creates a new MCP server instance.
func NewServer(stateProvider ports.PromptStateProvider, version string, logger *zap.Logger) *Server {
	s := &Server{
		stateProvider: stateProvider,
		logger:        logger,
		version:       version,
	}

	// Create the MCP server
	s.server = server.NewMCPServer(
		"fsh",
		version,
		server.WithToolCapabilities(false),
	)

	// Register tools
	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: repo_state
	repoStateTool := mcp.NewTool(
		"repo_state",
		mcp.WithDescription("Inspect the git repository enclosing a directory: reference, in-progress operation and staged/unstaged changes"),
		mcp.WithString(
			"path",
			mcp.Description("Directory to inspect (default: the server's working directory)"),
		),
	)
	s.server.AddTool(repoStateTool, s.handleRepoState)

	// Tool: render_prompt
	renderPromptTool := mcp.NewTool(
		"render_prompt",
		mcp.WithDescription("Build the shell prompt segments for a directory without terminal styling"),
		mcp.WithString(
			"path",
			mcp.Description("Directory the prompt describes (default: the server's working directory)"),
		),
		mcp.WithNumber(
			"exit_status",
			mcp.Description("Exit status of the previous command (default: 0)"),
		),
	)
	s.server.AddTool(renderPromptTool, s.handleRenderPrompt)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve handles MCP requests from in and writes responses to out until ctx
// is cancelled or Stop is called. Closing in also ends it.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		cancel()
	}()

	s.logger.Info("MCP server listening on stdio", zap.String("version", s.version))
	stdio := server.NewStdioServer(s.server)
	return stdio.Listen(ctx, in, out)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.running = false
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// handleRepoState handles the repo_state tool.
func (s *Server) handleRepoState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")

	state, err := s.stateProvider.RepoState(ctx, path)
	if err != nil {
		s.logger.Warn("repo_state failed", zap.String("path", path), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to inspect repository: %v", err)), nil
	}

	if state == nil {
		return jsonResult(map[string]interface{}{"in_repository": false})
	}
	return jsonResult(state)
}

// handleRenderPrompt handles the render_prompt tool.
func (s *Server) handleRenderPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := ports.PromptRequest{
		Dir:        request.GetString("path", ""),
		ExitStatus: request.GetInt("exit_status", 0),
	}

	segments, err := s.stateProvider.Build(ctx, req)
	if err != nil {
		s.logger.Warn("render_prompt failed", zap.String("path", req.Dir), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to build prompt: %v", err)), nil
	}

	return jsonResult(segments)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
