// Package workflow models the state the suites hand between steps: the
// monotonic configuration of a job and the lifecycle of its bids. The
// live application owns the real records; these types exist so every
// multi-step UI flow is checked against an explicit model instead of
// implicit ordering.
package workflow

import (
	"errors"
	"fmt"
	"time"
)

// JobStage represents how far a job's multi-step configuration has
// progressed. Stages are strictly ordered; a job never moves backwards.
type JobStage int

// Job stages, in the order the form drives them
const (
	JobStageCreated JobStage = iota
	JobStageTitled
	JobStageTyped
	JobStageDescribed
	JobStageScheduled
)

// String returns the stage name used in failure messages.
func (s JobStage) String() string {
	switch s {
	case JobStageCreated:
		return "created"
	case JobStageTitled:
		return "titled"
	case JobStageTyped:
		return "typed"
	case JobStageDescribed:
		return "described"
	case JobStageScheduled:
		return "scheduled"
	}
	return fmt.Sprintf("JobStage(%d)", int(s))
}

// Domain errors
var (
	ErrEmptyJobTitle       = errors.New("job title cannot be empty")
	ErrEmptyJobType        = errors.New("job type cannot be empty")
	ErrEmptyJobDescription = errors.New("job description cannot be empty")
	ErrInvalidJobDates     = errors.New("job end date must be after start date")
)

// Job tracks a single job's configuration as the UI steps fill it in.
// A job is only fully configured once title, type, description and both
// dates have each been set and the summary view has confirmed them.
type Job struct {
	title       string
	jobType     string
	description string
	startDate   time.Time
	endDate     time.Time
	scheduled   bool
}

// NewJob returns a freshly created, unconfigured job row.
func NewJob() *Job {
	return &Job{}
}

// SetTitle records the committed inline-editor title.
func (j *Job) SetTitle(title string) error {
	if title == "" {
		return ErrEmptyJobTitle
	}
	j.title = title
	return nil
}

// SetType records the selected job type, e.g. "Capex".
func (j *Job) SetType(jobType string) error {
	if jobType == "" {
		return ErrEmptyJobType
	}
	j.jobType = jobType
	return nil
}

// SetDescription records the summary-tab free-text description.
func (j *Job) SetDescription(description string) error {
	if description == "" {
		return ErrEmptyJobDescription
	}
	j.description = description
	return nil
}

// Schedule records the start and end dates picked from the two
// independent date-picker controls.
func (j *Job) Schedule(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidJobDates
	}
	j.startDate = start
	j.endDate = end
	j.scheduled = true
	return nil
}

// Title returns the committed title.
func (j *Job) Title() string { return j.title }

// Type returns the selected job type.
func (j *Job) Type() string { return j.jobType }

// Description returns the summary description.
func (j *Job) Description() string { return j.description }

// Dates returns the scheduled start and end dates.
func (j *Job) Dates() (start, end time.Time) { return j.startDate, j.endDate }

// Stage returns the furthest contiguous stage the configuration has
// reached. A skipped step caps the stage even if later fields were set.
func (j *Job) Stage() JobStage {
	stage := JobStageCreated
	if j.title == "" {
		return stage
	}
	stage = JobStageTitled
	if j.jobType == "" {
		return stage
	}
	stage = JobStageTyped
	if j.description == "" {
		return stage
	}
	stage = JobStageDescribed
	if !j.scheduled {
		return stage
	}
	return JobStageScheduled
}

// Summarized reports whether the job is fully configured: title, type,
// description and both dates all set. Only then is the summary-view
// round trip expected to succeed.
func (j *Job) Summarized() bool {
	return j.Stage() == JobStageScheduled
}
