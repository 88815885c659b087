package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/classwork/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for classwork resources.
	uriScheme = "classwork://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "exercises",
		Name:        "exercises",
		Description: "List of all exercises",
		MIMEType:    "application/json",
	}, s.handleExercisesResource)

	// Reading a transcript runs the exercise.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "exercises/{name}/transcript",
		Name:        "exercise-transcript",
		Description: "Printed walkthrough of a specific exercise",
		MIMEType:    "text/plain",
	}, s.handleTranscriptResource)
}

// handleExercisesResource returns the exercise list.
func (s *Server) handleExercisesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type exerciseInfo struct {
		Name    string `json:"name"`
		Title   string `json:"title"`
		Summary string `json:"summary"`
		URI     string `json:"uri"`
	}

	list := s.ports.Catalog.List()
	infos := make([]exerciseInfo, len(list))
	for i, info := range list {
		infos[i] = exerciseInfo{
			Name:    info.Name,
			Title:   info.Title,
			Summary: info.Summary,
			URI:     uriScheme + "exercises/" + info.Name + "/transcript",
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling exercises: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTranscriptResource runs an exercise and returns what it printed.
func (s *Server) handleTranscriptResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractExerciseName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var buf strings.Builder
	if _, err := s.ports.Catalog.Run(ctx, name, &buf); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("running exercise: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     buf.String(),
		}},
	}, nil
}

// extractExerciseName extracts the name from a URI like classwork://exercises/{name}/transcript.
func extractExerciseName(uri string) string {
	const prefix = uriScheme + "exercises/"
	const suffix = "/transcript"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	name := strings.TrimSuffix(uri, suffix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
