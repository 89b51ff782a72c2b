// Package mcp exposes the solver as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ankarhem/advent-of-code/application/service"
	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/mapping"
	"github.com/ankarhem/advent-of-code/domain/repository"
	"github.com/ankarhem/advent-of-code/domain/run"
	parser "github.com/ankarhem/advent-of-code/infrastructure/almanac"
)

const serverName = "aoc"

// Solver answers minimum queries.
type Solver interface {
	Solve(ctx context.Context, alm almanac.Almanac, mode almanac.Mode) (service.Answer, error)
}

// RunLister lists recorded runs.
type RunLister interface {
	List(ctx context.Context, limit int, options ...repository.Option) ([]run.Run, error)
}

// Server wraps the MCP server with almanac tools.
type Server struct {
	mcpServer *server.MCPServer
	solver    Solver
	runs      RunLister
	pipeline  []mapping.PipelineOption
	version   string
	logger    *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithRuns enables the list_runs tool.
func WithRuns(runs RunLister) ServerOption {
	return func(s *Server) { s.runs = runs }
}

// WithPipelineOptions sets the options applied to every parsed almanac.
func WithPipelineOptions(opts ...mapping.PipelineOption) ServerOption {
	return func(s *Server) { s.pipeline = opts }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates an MCP server backed by solver.
func NewServer(solver Solver, version string, opts ...ServerOption) *Server {
	s := &Server{
		solver:  solver,
		version: version,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer(serverName, version, server.WithToolCapabilities(true))
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("solve_almanac",
		mcp.WithDescription("Push an almanac's seeds through every stage and return the lowest final location"),
		mcp.WithString("almanac",
			mcp.Required(),
			mcp.Description("The almanac document: a seeds line followed by map blocks"),
		),
		mcp.WithString("mode",
			mcp.Description("points (part 1), ranges (part 2) or both (default)"),
		),
		mcp.WithString("format",
			mcp.Description("text (default) or yaml"),
		),
	), s.handleSolve)

	s.mcpServer.AddTool(mcp.NewTool("translate_seed",
		mcp.WithDescription("Return the value of one seed after each stage, in stage order"),
		mcp.WithString("almanac",
			mcp.Required(),
			mcp.Description("The almanac document"),
		),
		mcp.WithNumber("seed",
			mcp.Required(),
			mcp.Description("The seed identifier to trace"),
		),
		mcp.WithString("format",
			mcp.Description("text (default) or yaml"),
		),
	), s.handleTranslate)

	if s.runs != nil {
		s.mcpServer.AddTool(mcp.NewTool("list_runs",
			mcp.WithDescription("List recently recorded solves, newest first"),
			mcp.WithNumber("limit",
				mcp.Description("Number of runs to return (default: 10)"),
			),
		), s.handleListRuns)
	}

	s.mcpServer.AddTool(mcp.NewTool("get_version",
		mcp.WithDescription("Return the server version"),
	), s.handleVersion)
}

type answerResult struct {
	Mode    string  `json:"mode"`
	Part    int     `json:"part"`
	Minimum *uint64 `json:"minimum"`
	Found   bool    `json:"found"`
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alm, errResult := s.almanac(request)
	if errResult != nil {
		return errResult, nil
	}

	modes := almanac.Modes()
	if m := strings.TrimSpace(request.GetString("mode", "")); m != "" && !strings.EqualFold(m, "both") {
		mode, err := almanac.ParseMode(m)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		modes = []almanac.Mode{mode}
	}

	results := make([]answerResult, 0, len(modes))
	for _, mode := range modes {
		answer, err := s.solver.Solve(ctx, alm, mode)
		if err != nil {
			s.logger.ErrorContext(ctx, "solve failed", slog.Any("error", err))
			return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
		}
		r := answerResult{Mode: string(mode), Part: mode.Part()}
		if minimum, found := answer.Minimum(); found {
			r.Minimum, r.Found = &minimum, true
		}
		results = append(results, r)
	}
	return jsonResult(results)
}

type stageValue struct {
	Stage string `json:"stage"`
	Value uint64 `json:"value"`
}

func (s *Server) handleTranslate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alm, errResult := s.almanac(request)
	if errResult != nil {
		return errResult, nil
	}

	seed, err := seedArgument(request.GetArguments()["seed"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pipeline := alm.Pipeline()
	trace := pipeline.Trace(seed)
	stages := pipeline.Stages()
	values := make([]stageValue, 0, len(trace))
	values = append(values, stageValue{Stage: "seed", Value: trace[0]})
	for i, stage := range stages {
		values = append(values, stageValue{Stage: stage.Name(), Value: trace[i+1]})
	}
	return jsonResult(values)
}

type runResult struct {
	ID         int64   `json:"id"`
	Year       int     `json:"year"`
	Day        int     `json:"day"`
	Part       int     `json:"part"`
	Minimum    *uint64 `json:"minimum"`
	DurationMS float64 `json:"duration_ms"`
	CreatedAt  string  `json:"created_at"`
}

func (s *Server) handleListRuns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)
	if limit < 1 {
		return mcp.NewToolResultError("limit must be positive"), nil
	}

	runs, err := s.runs.List(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "list runs failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("list runs failed: %v", err)), nil
	}

	results := make([]runResult, len(runs))
	for i, r := range runs {
		results[i] = runResult{
			ID:         r.ID(),
			Year:       r.Year(),
			Day:        r.Day(),
			Part:       r.Part(),
			DurationMS: r.Duration().Seconds() * 1000,
			CreatedAt:  r.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		}
		if minimum, found := r.Answer(); found {
			results[i].Minimum = &minimum
		}
	}
	return jsonResult(results)
}

func (s *Server) handleVersion(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.version), nil
}

// almanac parses the almanac argument, returning a tool error result on failure.
func (s *Server) almanac(request mcp.CallToolRequest) (almanac.Almanac, *mcp.CallToolResult) {
	text, err := request.RequireString("almanac")
	if err != nil {
		return almanac.Almanac{}, mcp.NewToolResultError("almanac is required")
	}

	name := "almanac.txt"
	switch strings.ToLower(request.GetString("format", "text")) {
	case "text", "txt", "":
	case "yaml", "yml":
		name = "almanac.yaml"
	default:
		return almanac.Almanac{}, mcp.NewToolResultError("format must be text or yaml")
	}

	alm, err := parser.Decode(name, []byte(text), s.pipeline...)
	if err != nil {
		return almanac.Almanac{}, mcp.NewToolResultError(fmt.Sprintf("invalid almanac: %v", err))
	}
	return alm, nil
}

// seedArgument accepts a JSON number or a decimal string. Strings allow
// identifiers beyond float64 precision.
func seedArgument(v any) (uint64, error) {
	switch x := v.(type) {
	case float64:
		if x < 0 || x != math.Trunc(x) || x >= math.MaxUint64 {
			return 0, fmt.Errorf("seed must be a non-negative integer, got %v", x)
		}
		return uint64(x), nil
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("seed must be a non-negative integer: %w", err)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("seed is required")
	default:
		return 0, fmt.Errorf("seed must be a number, got %T", v)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
