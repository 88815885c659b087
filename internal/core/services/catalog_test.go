package services

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classwork/internal/adapters/driven/storage/billyfs"
	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/logger"
)

// stubExercise prints a fixed line.
type stubExercise struct {
	name  string
	title string
	out   string
	err   error
	runs  int
}

func (s *stubExercise) Info() domain.ExerciseInfo {
	return domain.ExerciseInfo{Name: s.name, Title: s.title, Summary: s.name + " summary"}
}

func (s *stubExercise) Run(_ context.Context, w io.Writer) error {
	s.runs++
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.out)
	return err
}

func TestNewDefaultCatalog_Order(t *testing.T) {
	c := NewDefaultCatalog(billyfs.NewMemory())

	var names []string
	for _, info := range c.List() {
		names = append(names, info.Name)
	}

	assert.Equal(t, []string{"vehicles", "shapes", "styled", "animals", "files"}, names)
}

func TestCatalog_SkipsNilAndDuplicates(t *testing.T) {
	first := &stubExercise{name: "a", title: "First"}
	dup := &stubExercise{name: "a", title: "Second"}

	c := NewCatalog(first, nil, dup)

	require.Len(t, c.List(), 1)
	assert.Equal(t, "First", c.List()[0].Title)
}

func TestCatalog_Get(t *testing.T) {
	c := NewDefaultCatalog(billyfs.NewMemory())

	ex, err := c.Get("shapes")
	require.NoError(t, err)
	assert.Equal(t, "Shape Areas", ex.Info().Title)
}

func TestCatalog_Get_NotFound(t *testing.T) {
	c := NewDefaultCatalog(billyfs.NewMemory())

	ex, err := c.Get("planets")

	assert.Nil(t, ex)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, `exercise "planets" not found`, err.Error())
}

func TestCatalog_Run(t *testing.T) {
	stub := &stubExercise{name: "a", title: "A", out: "hello\n"}
	c := NewCatalog(stub)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ticks := []time.Time{start, start.Add(250 * time.Millisecond)}
	c.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	var buf bytes.Buffer
	report, err := c.Run(context.Background(), "a", &buf)

	require.NoError(t, err)
	assert.Equal(t, "hello\n", buf.String())
	assert.Equal(t, "a", report.Exercise)
	assert.Equal(t, start, report.StartedAt)
	assert.Equal(t, 250*time.Millisecond, report.Duration)
	_, parseErr := uuid.Parse(report.RunID)
	assert.NoError(t, parseErr)
}

func TestCatalog_Run_VerboseLog(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	c := NewCatalog(&stubExercise{name: "a", title: "Alpha", out: "hello\n"})
	report, err := c.Run(context.Background(), "a", io.Discard)
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "\n=== Alpha ===\n")
	assert.Contains(t, out, "run="+report.RunID+" exercise a started")
	assert.Contains(t, out, "exercise a finished")
}

func TestCatalog_Run_UniqueIDs(t *testing.T) {
	c := NewCatalog(&stubExercise{name: "a"})

	r1, err := c.Run(context.Background(), "a", io.Discard)
	require.NoError(t, err)
	r2, err := c.Run(context.Background(), "a", io.Discard)
	require.NoError(t, err)

	assert.NotEqual(t, r1.RunID, r2.RunID)
}

func TestCatalog_Run_Unknown(t *testing.T) {
	c := NewCatalog()

	_, err := c.Run(context.Background(), "nope", io.Discard)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Run_Error(t *testing.T) {
	c := NewCatalog(&stubExercise{name: "a", err: errDisk})

	report, err := c.Run(context.Background(), "a", io.Discard)

	assert.ErrorIs(t, err, errDisk)
	assert.Contains(t, err.Error(), "run a")
	assert.NotEmpty(t, report.RunID)
}

func TestCatalog_RunAll(t *testing.T) {
	a := &stubExercise{name: "a", title: "Alpha", out: "one\n"}
	b := &stubExercise{name: "b", title: "Beta", out: "two\n"}
	c := NewCatalog(a, b)

	var buf bytes.Buffer
	reports, err := c.RunAll(context.Background(), &buf)

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "a", reports[0].Exercise)
	assert.Equal(t, "b", reports[1].Exercise)
	assert.Equal(t, "=== Alpha ===\n\none\n\n=== Beta ===\n\ntwo\n", buf.String())
}

func TestCatalog_RunAll_StopsOnError(t *testing.T) {
	a := &stubExercise{name: "a", title: "Alpha", out: "one\n"}
	b := &stubExercise{name: "b", title: "Beta", err: errDisk}
	last := &stubExercise{name: "c", title: "Gamma"}
	c := NewCatalog(a, b, last)

	reports, err := c.RunAll(context.Background(), io.Discard)

	assert.ErrorIs(t, err, errDisk)
	assert.Len(t, reports, 1)
	assert.Zero(t, last.runs)
}

func TestCatalog_RunAll_Default(t *testing.T) {
	c := NewDefaultCatalog(billyfs.NewMemory())

	var buf bytes.Buffer
	reports, err := c.RunAll(context.Background(), &buf)

	require.NoError(t, err)
	assert.Len(t, reports, 5)

	out := buf.String()
	titles := []string{"Vehicle Hierarchy", "Shape Areas", "Styled Shapes", "Animal Sounds", "File Handlers"}
	last := -1
	for _, title := range titles {
		idx := strings.Index(out, "=== "+title+" ===")
		require.GreaterOrEqual(t, idx, 0, title)
		assert.Greater(t, idx, last, "%s is out of order", title)
		last = idx
	}
	assert.NotContains(t, out, "An unexpected error occurred")
}

func TestCatalog_RunAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewDefaultCatalog(billyfs.NewMemory())

	reports, err := c.RunAll(ctx, io.Discard)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reports)
}
