package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankarhem/advent-of-code/application/service"
	"github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/repository"
	"github.com/ankarhem/advent-of-code/domain/run"
)

const exampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// fakeRuns implements RunLister with canned runs.
type fakeRuns struct {
	runs  []run.Run
	limit int
}

func (f *fakeRuns) List(_ context.Context, limit int, _ ...repository.Option) ([]run.Run, error) {
	f.limit = limit
	if limit < len(f.runs) {
		return f.runs[:limit], nil
	}
	return f.runs, nil
}

func sendMessage(t *testing.T, srv *Server, method string, id int, params map[string]any) mcp.JSONRPCResponse {
	t.Helper()

	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
	}
	if params != nil {
		msg["params"] = params
	}

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	result := srv.MCPServer().HandleMessage(context.Background(), raw)
	resp, ok := result.(mcp.JSONRPCResponse)
	require.True(t, ok, "expected JSONRPCResponse, got %T: %+v", result, result)
	return resp
}

func resultJSON(t *testing.T, resp mcp.JSONRPCResponse, dst any) {
	t.Helper()
	b, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, dst))
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) mcp.CallToolResult {
	t.Helper()
	sendMessage(t, srv, "initialize", 1, initializeParams())
	resp := sendMessage(t, srv, "tools/call", 2, map[string]any{
		"name":      name,
		"arguments": args,
	})
	var result mcp.CallToolResult
	resultJSON(t, resp, &result)
	return result
}

func textFromContent(t *testing.T, result mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	b, err := json.Marshal(result.Content[0])
	require.NoError(t, err)
	var tc struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(b, &tc))
	return tc.Text
}

func initializeParams() map[string]any {
	return map[string]any{
		"protocolVersion": "2025-06-18",
		"capabilities":    map[string]any{},
		"clientInfo": map[string]any{
			"name":    "test-client",
			"version": "0.0.1",
		},
	}
}

func testServer(opts ...ServerOption) *Server {
	return NewServer(service.NewSolver(service.WithWorkers(2)), "0.1.0", opts...)
}

func TestServer_Initialize(t *testing.T) {
	resp := sendMessage(t, testServer(), "initialize", 1, initializeParams())

	var result mcp.InitializeResult
	resultJSON(t, resp, &result)

	assert.Equal(t, "aoc", result.ServerInfo.Name)
	assert.Equal(t, "0.1.0", result.ServerInfo.Version)
	assert.NotNil(t, result.Capabilities.Tools)
}

func TestServer_ListTools(t *testing.T) {
	listTools := func(srv *Server) map[string]mcp.Tool {
		sendMessage(t, srv, "initialize", 1, initializeParams())
		resp := sendMessage(t, srv, "tools/list", 2, nil)
		var result mcp.ListToolsResult
		resultJSON(t, resp, &result)
		tools := map[string]mcp.Tool{}
		for _, tool := range result.Tools {
			tools[tool.Name] = tool
		}
		return tools
	}

	tools := listTools(testServer())
	assert.Len(t, tools, 3)
	assert.Contains(t, tools, "solve_almanac")
	assert.Contains(t, tools, "translate_seed")
	assert.Contains(t, tools, "get_version")
	assert.NotContains(t, tools, "list_runs")
	assert.Contains(t, tools["solve_almanac"].InputSchema.Required, "almanac")
	assert.Contains(t, tools["translate_seed"].InputSchema.Required, "seed")

	withRuns := listTools(testServer(WithRuns(&fakeRuns{})))
	assert.Contains(t, withRuns, "list_runs")
}

func TestServer_SolveAlmanac(t *testing.T) {
	result := callTool(t, testServer(), "solve_almanac", map[string]any{"almanac": exampleAlmanac})
	require.False(t, result.IsError, textFromContent(t, result))

	var answers []answerResult
	require.NoError(t, json.Unmarshal([]byte(textFromContent(t, result)), &answers))
	require.Len(t, answers, 2)
	assert.Equal(t, "points", answers[0].Mode)
	assert.Equal(t, uint64(35), *answers[0].Minimum)
	assert.Equal(t, 2, answers[1].Part)
	assert.Equal(t, uint64(46), *answers[1].Minimum)
}

func TestServer_SolveAlmanacSingleMode(t *testing.T) {
	result := callTool(t, testServer(), "solve_almanac", map[string]any{
		"almanac": exampleAlmanac,
		"mode":    "2",
	})
	require.False(t, result.IsError)

	var answers []answerResult
	require.NoError(t, json.Unmarshal([]byte(textFromContent(t, result)), &answers))
	require.Len(t, answers, 1)
	assert.Equal(t, "ranges", answers[0].Mode)
}

func TestServer_SolveAlmanacErrors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing almanac", map[string]any{}, "almanac is required"},
		{"bad mode", map[string]any{"almanac": exampleAlmanac, "mode": "sideways"}, "unknown seed mode"},
		{"bad format", map[string]any{"almanac": exampleAlmanac, "format": "xml"}, "format must be"},
		{"syntax", map[string]any{"almanac": "seeds: x"}, "invalid almanac"},
		{"unpaired", map[string]any{"almanac": "seeds: 1 2 3\n", "mode": "ranges"}, "solve failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, testServer(), "solve_almanac", tt.args)
			assert.True(t, result.IsError)
			assert.Contains(t, textFromContent(t, result), tt.want)
		})
	}
}

func TestServer_TranslateSeed(t *testing.T) {
	result := callTool(t, testServer(), "translate_seed", map[string]any{
		"almanac": exampleAlmanac,
		"seed":    79,
	})
	require.False(t, result.IsError, textFromContent(t, result))

	var values []stageValue
	require.NoError(t, json.Unmarshal([]byte(textFromContent(t, result)), &values))
	require.Len(t, values, 8)
	assert.Equal(t, stageValue{Stage: "seed", Value: 79}, values[0])
	assert.Equal(t, stageValue{Stage: "seed-to-soil", Value: 81}, values[1])
	assert.Equal(t, stageValue{Stage: "humidity-to-location", Value: 82}, values[7])
}

func TestServer_TranslateSeedNegative(t *testing.T) {
	result := callTool(t, testServer(), "translate_seed", map[string]any{
		"almanac": exampleAlmanac,
		"seed":    -1,
	})
	assert.True(t, result.IsError)
}

func TestServer_ListRuns(t *testing.T) {
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	runs := &fakeRuns{runs: []run.Run{
		run.ReconstructRun(2, 2023, 5, almanac.ModeRanges, "d", 46, true, 3*time.Millisecond, 4, created),
		run.ReconstructRun(1, 2023, 5, almanac.ModePoints, "d", 0, false, time.Millisecond, 4, created),
	}}

	result := callTool(t, testServer(WithRuns(runs)), "list_runs", map[string]any{"limit": 5})
	require.False(t, result.IsError)
	assert.Equal(t, 5, runs.limit)

	var listed []runResult
	require.NoError(t, json.Unmarshal([]byte(textFromContent(t, result)), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, int64(2), listed[0].ID)
	assert.Equal(t, uint64(46), *listed[0].Minimum)
	assert.InDelta(t, 3.0, listed[0].DurationMS, 1e-9)
	assert.Nil(t, listed[1].Minimum)
	assert.Equal(t, "2026-02-01T09:00:00Z", listed[0].CreatedAt)
}

func TestServer_GetVersion(t *testing.T) {
	result := callTool(t, testServer(), "get_version", map[string]any{})
	assert.Equal(t, "0.1.0", textFromContent(t, result))
}

func TestSeedArgument(t *testing.T) {
	n, err := seedArgument(float64(42))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n)

	n, err = seedArgument("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), n)

	for _, bad := range []any{1.5, -3.0, "x", nil, true} {
		_, err := seedArgument(bad)
		assert.Error(t, err, "%v", bad)
	}
}
