package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListExercisesInput is the input schema for the list_exercises tool.
type ListExercisesInput struct{}

// ListExercisesOutput is the output schema for the list_exercises tool.
type ListExercisesOutput struct {
	Exercises []ExerciseOutput `json:"exercises"`
	Count     int              `json:"count"`
}

// ExerciseOutput describes a single exercise.
type ExerciseOutput struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// RunExerciseInput is the input schema for the run_exercise tool.
type RunExerciseInput struct {
	Name string `json:"name" jsonschema:"the exercise to run (see list_exercises)"`
}

// RunExerciseOutput is the output schema for the run_exercise tool.
type RunExerciseOutput struct {
	Name   string `json:"name"`
	RunID  string `json:"run_id"`
	Output string `json:"output"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the object-oriented programming exercises",
	}, s.handleListExercises)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_exercise",
		Description: "Run an exercise and return its printed walkthrough. Concurrent runs of the files exercise share the same scratch files.",
	}, s.handleRunExercise)
}

// handleListExercises handles the list_exercises tool invocation.
func (s *Server) handleListExercises(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListExercisesInput,
) (*mcp.CallToolResult, ListExercisesOutput, error) {
	infos := s.ports.Catalog.List()

	output := ListExercisesOutput{
		Exercises: make([]ExerciseOutput, len(infos)),
		Count:     len(infos),
	}
	for i, info := range infos {
		output.Exercises[i] = ExerciseOutput{
			Name:    info.Name,
			Title:   info.Title,
			Summary: info.Summary,
		}
	}

	return nil, output, nil
}

// handleRunExercise handles the run_exercise tool invocation.
func (s *Server) handleRunExercise(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunExerciseInput,
) (*mcp.CallToolResult, RunExerciseOutput, error) {
	var buf strings.Builder
	report, err := s.ports.Catalog.Run(ctx, input.Name, &buf)
	if err != nil {
		return nil, RunExerciseOutput{}, err
	}

	return nil, RunExerciseOutput{
		Name:   report.Exercise,
		RunID:  report.RunID,
		Output: buf.String(),
	}, nil
}
