package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classwork/internal/core/domain"
)

func TestServer_handleListExercises(t *testing.T) {
	ctx := context.Background()

	t.Run("returns exercises in catalog order", func(t *testing.T) {
		server, err := NewServer(&Ports{Catalog: testCatalog()})
		require.NoError(t, err)

		_, output, err := server.handleListExercises(ctx, nil, ListExercisesInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		require.Len(t, output.Exercises, 2)
		assert.Equal(t, "shapes", output.Exercises[0].Name)
		assert.Equal(t, "Shape Areas", output.Exercises[0].Title)
		assert.Equal(t, "animals", output.Exercises[1].Name)
	})

	t.Run("empty catalog returns zero count", func(t *testing.T) {
		server, err := NewServer(&Ports{Catalog: &mockCatalog{}})
		require.NoError(t, err)

		_, output, err := server.handleListExercises(ctx, nil, ListExercisesInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Exercises)
	})
}

func TestServer_handleRunExercise(t *testing.T) {
	ctx := context.Background()

	t.Run("returns captured output", func(t *testing.T) {
		catalog := testCatalog()
		server, err := NewServer(&Ports{Catalog: catalog})
		require.NoError(t, err)

		_, output, err := server.handleRunExercise(ctx, nil, RunExerciseInput{Name: "shapes"})

		require.NoError(t, err)
		assert.Equal(t, "shapes", output.Name)
		assert.Equal(t, "run-shapes", output.RunID)
		assert.Contains(t, output.Output, "Area: 78.54 square units")
		assert.Equal(t, []string{"shapes"}, catalog.ran)
	})

	t.Run("unknown exercise returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Catalog: testCatalog()})
		require.NoError(t, err)

		_, _, err = server.handleRunExercise(ctx, nil, RunExerciseInput{Name: "planets"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		catalog := testCatalog()
		catalog.err = errors.New("writer closed")
		server, err := NewServer(&Ports{Catalog: catalog})
		require.NoError(t, err)

		_, _, err = server.handleRunExercise(ctx, nil, RunExerciseInput{Name: "shapes"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "writer closed")
	})
}
