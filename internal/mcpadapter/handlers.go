package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/aoc2022/internal/models"
	"github.com/povarna/aoc2022/internal/runner"
)

// SolveInput is the MCP tool input schema (matches HTTP API field names).
type SolveInput struct {
	Day   int    `json:"day" jsonschema:"puzzle day, 1 to 25"`
	Part  int    `json:"part" jsonschema:"puzzle part, 1 or 2"`
	Input string `json:"input" jsonschema:"raw puzzle input text"`
}

type ListDaysInput struct{}

type ListDaysOutput struct {
	Days []models.DayInfo `json:"days" jsonschema:"implemented days in order"`
}

// NewSolveHandler returns a tool handler that uses the given runner.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(r *runner.Runner) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
		return Solve(ctx, r, req, input)
	}
}

// Solve answers one puzzle part. Errors are reported to the client as a
// tool error.
func Solve(
	ctx context.Context,
	r *runner.Runner,
	req *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, models.SolveResult, error) {
	result, err := r.Solve(ctx, models.SolveRequest{
		Day:   input.Day,
		Part:  input.Part,
		Input: input.Input,
	})
	if err != nil {
		return nil, models.SolveResult{}, err
	}
	return nil, result, nil
}

// NewListDaysHandler returns a tool handler listing the registered days.
func NewListDaysHandler(r *runner.Runner) func(context.Context, *mcp.CallToolRequest, ListDaysInput) (*mcp.CallToolResult, ListDaysOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListDaysInput) (*mcp.CallToolResult, ListDaysOutput, error) {
		entries := r.Registry().Days()
		out := ListDaysOutput{Days: make([]models.DayInfo, 0, len(entries))}
		for _, e := range entries {
			out.Days = append(out.Days, models.DayInfo{Day: e.Day, Title: e.Title, Examples: len(e.Examples)})
		}
		return nil, out, nil
	}
}

// NewServer registers the puzzle tools on a fresh MCP server.
func NewServer(r *runner.Runner, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "aoc2022",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve one part of an Advent of Code 2022 puzzle for the given day and raw input",
	}, NewSolveHandler(r))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_days",
		Description: "List the Advent of Code 2022 days that can be solved",
	}, NewListDaysHandler(r))

	return server
}
