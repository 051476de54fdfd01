// Package pipeline implements the stage runner that drives one accepted task to a terminal stage.
package pipeline

import (
	"context"
	"time"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes pipeline runs through the linear stage sequence
// received, generating, deploying, verifying, submitting, completed.
type Runner struct {
	generator ports.Generator
	gateway   ports.DeploymentGateway
	verifier  ports.Verifier
	submitter ports.Submitter
	journal   ports.CompletionJournal
	tracer    ports.Tracer
	logger    ports.Logger

	deadline      time.Duration
	verifyTimeout time.Duration
}

// NewRunner creates a Runner.
func NewRunner(
	generator ports.Generator,
	gateway ports.DeploymentGateway,
	verifier ports.Verifier,
	submitter ports.Submitter,
	journal ports.CompletionJournal,
	tracer ports.Tracer,
	logger ports.Logger,
	settings domain.PipelineSettings,
) *Runner {
	return &Runner{
		generator:     generator,
		gateway:       gateway,
		verifier:      verifier,
		submitter:     submitter,
		journal:       journal,
		tracer:        tracer,
		logger:        logger,
		deadline:      settings.Deadline,
		verifyTimeout: settings.VerifyTimeout,
	}
}

// stageResult is what a stage hands back to the runner: the next stage and,
// for a failed stage, the cause.
type stageResult struct {
	next  domain.Stage
	cause error
}

// runState carries what earlier stages produced to later ones.
type runState struct {
	run        *domain.PipelineRun
	deadlineAt time.Time
	files      domain.Files
	deployment domain.DeploymentResult
}

func (st *runState) remaining() time.Duration {
	return time.Until(st.deadlineAt)
}

// Run drives run to a terminal stage. It never returns an error: failures are
// absorbed into the result and logged. The deadline counts from the call, not
// from acceptance.
func (r *Runner) Run(ctx context.Context, run domain.PipelineRun) domain.RunResult {
	run.StartedAt = time.Now()
	key := run.Identity.Key()

	ctx, span := r.tracer.Start(ctx, "run",
		ports.WithAttribute("key", key),
		ports.WithAttribute("round", run.Identity.Round),
	)
	defer span.End()

	st := &runState{run: &run, deadlineAt: run.StartedAt.Add(r.deadline)}
	deadlineCtx, cancel := context.WithDeadline(ctx, st.deadlineAt)
	defer cancel()

	args := []any{"key", key, "round", run.Identity.Round}
	if !run.AcceptedAt.IsZero() {
		args = append(args, "queued", run.StartedAt.Sub(run.AcceptedAt).Round(time.Millisecond).String())
	}
	r.logger.Info("run started", args...)

	if run.Stage == domain.StageReceived {
		run.Stage = domain.StageGenerating
	}

	var cause error
	for !run.Stage.IsTerminal() {
		stage := run.Stage
		run.Elapsed = time.Since(run.StartedAt)
		if run.Elapsed > r.deadline {
			cause = zerr.With(zerr.Wrap(domain.ErrPipelineTimeout, "check deadline"), "stage", string(stage))
			run.Stage = domain.StageTimedOut
			break
		}

		// Submitting runs on the worker context so a report started in time is not cut short.
		stageCtx := deadlineCtx
		if stage == domain.StageSubmitting {
			stageCtx = ctx
		}

		r.logger.Info("entering stage", "key", key, "stage", string(stage))
		res := r.execute(stageCtx, stage, st)
		if res.cause != nil && deadlineCtx.Err() != nil && ctx.Err() == nil {
			res = stageResult{
				next:  domain.StageTimedOut,
				cause: zerr.With(zerr.Wrap(domain.ErrPipelineTimeout, res.cause.Error()), "stage", string(stage)),
			}
		}
		cause = res.cause
		run.Stage = res.next
	}
	run.Elapsed = time.Since(run.StartedAt)

	result := domain.RunResult{
		Identity: run.Identity,
		Stage:    run.Stage,
		Cause:    cause,
		Elapsed:  run.Elapsed,
	}
	r.finish(result, span)
	return result
}

// execute runs stage inside its own span.
func (r *Runner) execute(ctx context.Context, stage domain.Stage, st *runState) stageResult {
	ctx, span := r.tracer.Start(ctx, string(stage), ports.WithAttribute("key", st.run.Identity.Key()))
	defer span.End()

	res := stageResult{next: domain.StageFailed, cause: zerr.With(zerr.New("unknown stage"), "stage", string(stage))}
	switch stage {
	case domain.StageGenerating:
		res = r.generate(ctx, st)
	case domain.StageDeploying:
		res = r.deploy(ctx, st, span)
	case domain.StageVerifying:
		res = r.verify(ctx, st, span)
	case domain.StageSubmitting:
		res = r.submit(ctx, st, span)
	}

	if res.cause != nil {
		span.RecordError(res.cause)
	}
	return res
}

func (r *Runner) generate(ctx context.Context, st *runState) stageResult {
	req := st.run.Request
	files, err := r.generator.Generate(ctx, req.Brief, req.Checks, req.Attachments)
	if err != nil {
		return stageResult{next: domain.StageFailed, cause: err}
	}
	st.files = files
	return stageResult{next: domain.StageDeploying}
}

// deploy creates the round-one target, or updates it for later rounds and falls
// back to a fresh target named after the current round when the update fails.
func (r *Runner) deploy(ctx context.Context, st *runState, span ports.Span) stageResult {
	id := st.run.Identity
	base := id.RepoName(1)

	if id.Round > 1 {
		res, err := r.update(ctx, base, st.files)
		if err == nil {
			st.deployment = res
			span.SetAttribute("target", base)
			return stageResult{next: domain.StageVerifying}
		}
		if ctx.Err() != nil {
			return stageResult{next: domain.StageFailed, cause: err}
		}

		r.logger.Warn("update failed, creating new deployment", "key", id.Key(), "target", base, "error", err.Error())
		span.SetAttribute("fallback", true)
		base = id.RepoName(id.Round)
	}

	res, err := r.gateway.Create(ctx, base, st.files)
	if err != nil {
		return stageResult{next: domain.StageFailed, cause: err}
	}
	st.deployment = res
	span.SetAttribute("target", base)
	return stageResult{next: domain.StageVerifying}
}

func (r *Runner) update(ctx context.Context, name string, files domain.Files) (domain.DeploymentResult, error) {
	repoURL, sha, err := r.gateway.Update(ctx, name, files)
	if err != nil {
		return domain.DeploymentResult{}, err
	}
	published, err := r.gateway.PublishedURL(ctx, name)
	if err != nil {
		return domain.DeploymentResult{}, err
	}
	return domain.DeploymentResult{RepoURL: repoURL, CommitSHA: sha, PublishedURL: published}, nil
}

// verify waits for the published site. Its outcome never changes the run's path.
func (r *Runner) verify(ctx context.Context, st *runState, span ports.Span) stageResult {
	timeout := min(r.verifyTimeout, st.remaining())
	url := st.deployment.PublishedURL

	live := r.verifier.WaitUntilLive(ctx, url, timeout)
	span.SetAttribute("live", live)
	if live {
		r.logger.Info("site is live", "key", st.run.Identity.Key(), "url", url)
	} else {
		r.logger.Warn("site not live before timeout", "key", st.run.Identity.Key(), "url", url, "timeout", timeout.String())
	}
	return stageResult{next: domain.StageSubmitting}
}

// submit reports the deployment. An exhausted delivery is logged; the run still completes.
func (r *Runner) submit(ctx context.Context, st *runState, span ports.Span) stageResult {
	req := st.run.Request
	payload := domain.NewSubmissionPayload(req, st.deployment)

	outcome := r.submitter.Deliver(ctx, req.EvaluationURL, payload)
	span.SetAttribute("outcome", string(outcome))
	if outcome == domain.Exhausted {
		r.logger.Warn("evaluator never acknowledged", "key", st.run.Identity.Key())
	}
	return stageResult{next: domain.StageCompleted}
}

// finish logs the terminal stage and journals completed runs.
func (r *Runner) finish(result domain.RunResult, span ports.Span) {
	key := result.Identity.Key()
	elapsed := result.Elapsed.Round(time.Millisecond).String()
	span.SetAttribute("stage", string(result.Stage))

	switch result.Stage {
	case domain.StageCompleted:
		if err := r.journal.Record(key); err != nil {
			r.logger.Error(zerr.Wrap(err, "journal completed run"), "key", key)
		}
		r.logger.Info("run completed", "key", key, "elapsed", elapsed)
	default:
		span.RecordError(result.Cause)
		r.logger.Error(result.Cause, "key", key, "stage", string(result.Stage), "elapsed", elapsed)
	}
}
