package domain

import "time"

// Stage represents the lifecycle position of a pipeline run.
type Stage string

const (
	// StageReceived indicates the run was accepted and not yet started.
	StageReceived Stage = "received"
	// StageGenerating indicates the artifact is being produced.
	StageGenerating Stage = "generating"
	// StageDeploying indicates the artifact is being published.
	StageDeploying Stage = "deploying"
	// StageVerifying indicates the published artifact is being probed.
	StageVerifying Stage = "verifying"
	// StageSubmitting indicates completion is being reported to the evaluator.
	StageSubmitting Stage = "submitting"
	// StageCompleted indicates the run finished every stage.
	StageCompleted Stage = "completed"
	// StageFailed indicates generation or deployment failed.
	StageFailed Stage = "failed"
	// StageTimedOut indicates the run exceeded its deadline.
	StageTimedOut Stage = "timed_out"
)

// IsTerminal reports whether no further transition can follow s.
func (s Stage) IsTerminal() bool {
	switch s {
	case StageCompleted, StageFailed, StageTimedOut:
		return true
	default:
		return false
	}
}

// PipelineRun is the in-memory record of one execution. It is never persisted.
// AcceptedAt is set at intake; StartedAt is set when a worker begins executing
// the run and anchors its deadline, so time spent queued is not charged to it.
type PipelineRun struct {
	Identity   TaskIdentity
	Request    TaskRequest
	AcceptedAt time.Time
	StartedAt  time.Time
	Stage      Stage
	Elapsed    time.Duration
}

// NewPipelineRun creates a run in the received stage for req.
func NewPipelineRun(req TaskRequest, now time.Time) PipelineRun {
	return PipelineRun{
		Identity:   req.Identity(),
		Request:    req,
		AcceptedAt: now,
		Stage:      StageReceived,
	}
}

// RunResult is the explicit outcome of a finished run.
type RunResult struct {
	Identity TaskIdentity
	Stage    Stage
	Cause    error
	Elapsed  time.Duration
}

// Succeeded reports whether the run reached the completed stage.
func (r RunResult) Succeeded() bool {
	return r.Stage == StageCompleted
}
