package domain

import "time"

// ExerciseInfo describes a runnable exercise.
type ExerciseInfo struct {
	// Name is the command-line identifier (e.g. "vehicles").
	Name string

	// Title is the display title (e.g. "Vehicle Hierarchy").
	Title string

	// Summary is a one-line description of what the exercise demonstrates.
	Summary string
}

// RunReport records a single exercise run.
type RunReport struct {
	// RunID uniquely identifies the run.
	RunID string

	// Exercise is the name of the exercise that ran.
	Exercise string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is how long the walkthrough took.
	Duration time.Duration
}

// ShortID returns the first eight characters of the run ID.
func (r RunReport) ShortID() string {
	if len(r.RunID) <= 8 {
		return r.RunID
	}
	return r.RunID[:8]
}
