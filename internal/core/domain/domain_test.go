package domain_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/courier/internal/core/domain"
)

func TestTaskIdentity_Key(t *testing.T) {
	id := domain.TaskIdentity{Task: "captcha-solver", Round: 2, Nonce: "ab12"}
	assert.Equal(t, "captcha-solver-2-ab12", id.Key())
	assert.Equal(t, id.Key(), id.String())
}

func TestTaskIdentity_KeyDistinguishesDashes(t *testing.T) {
	tests := []struct {
		a, b domain.TaskIdentity
	}{
		{
			a: domain.TaskIdentity{Task: "sales-2", Round: 1, Nonce: "abc"},
			b: domain.TaskIdentity{Task: "sales", Round: 2, Nonce: "1-abc"},
		},
		{
			a: domain.TaskIdentity{Task: "t", Round: 1, Nonce: "a-b"},
			b: domain.TaskIdentity{Task: "t-1", Round: 0, Nonce: "b"},
		},
		{
			a: domain.TaskIdentity{Task: "t-", Round: 3, Nonce: "n"},
			b: domain.TaskIdentity{Task: "t", Round: -3, Nonce: "n"},
		},
		{
			a: domain.TaskIdentity{Task: "t", Round: 1, Nonce: "%2D"},
			b: domain.TaskIdentity{Task: "t", Round: 1, Nonce: "-"},
		},
	}

	for _, tt := range tests {
		assert.NotEqual(t, tt.a.Key(), tt.b.Key(), "%v and %v", tt.a, tt.b)
	}

	id := domain.TaskIdentity{Task: "sales", Round: 2, Nonce: "1-abc"}
	assert.Equal(t, "sales-2-1%2Dabc", id.Key())
}

func TestTaskIdentity_RepoName(t *testing.T) {
	tests := []struct {
		name  string
		task  string
		round int
		want  string
	}{
		{name: "Plain", task: "sum-of-sales", round: 1, want: "sum-of-sales-r1"},
		{name: "Second round", task: "sum-of-sales", round: 2, want: "sum-of-sales-r2"},
		{name: "Unsafe characters", task: "a b/c", round: 1, want: "a-b-c-r1"},
		{name: "Keeps dots and underscores", task: "x_y.z", round: 3, want: "x_y.z-r3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := domain.TaskIdentity{Task: tt.task, Round: tt.round, Nonce: "n"}
			assert.Equal(t, tt.want, id.RepoName(tt.round))
		})
	}
}

func TestTaskRequest_Validate(t *testing.T) {
	valid := func() domain.TaskRequest {
		return domain.TaskRequest{
			Task:          "t",
			Round:         1,
			Nonce:         "n",
			EvaluationURL: "http://eval.example/notify",
		}
	}

	tests := []struct {
		name        string
		mutate      func(*domain.TaskRequest)
		errContains string
	}{
		{name: "Valid", mutate: func(*domain.TaskRequest) {}},
		{name: "Missing task", mutate: func(r *domain.TaskRequest) { r.Task = " " }, errContains: "missing field"},
		{name: "Missing nonce", mutate: func(r *domain.TaskRequest) { r.Nonce = "" }, errContains: "missing field"},
		{name: "Round zero", mutate: func(r *domain.TaskRequest) { r.Round = 0 }, errContains: "round must be at least 1"},
		{
			name:        "Missing evaluation url",
			mutate:      func(r *domain.TaskRequest) { r.EvaluationURL = "" },
			errContains: "missing field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			err := req.Validate()
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errContains)
			assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
		})
	}
}

func TestStage_IsTerminal(t *testing.T) {
	terminal := []domain.Stage{domain.StageCompleted, domain.StageFailed, domain.StageTimedOut}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s)
	}

	open := []domain.Stage{
		domain.StageReceived, domain.StageGenerating, domain.StageDeploying,
		domain.StageVerifying, domain.StageSubmitting,
	}
	for _, s := range open {
		assert.False(t, s.IsTerminal(), s)
	}
}

func TestNewPipelineRun(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	req := domain.TaskRequest{Task: "t", Round: 1, Nonce: "n"}
	run := domain.NewPipelineRun(req, now)

	assert.Equal(t, domain.StageReceived, run.Stage)
	assert.Equal(t, req.Identity(), run.Identity)
	assert.Equal(t, now, run.AcceptedAt)
	assert.True(t, run.StartedAt.IsZero(), "the deadline starts when a worker picks the run up")
}

func TestNewSubmissionPayload(t *testing.T) {
	req := domain.TaskRequest{Email: "me@example.com", Task: "t", Round: 2, Nonce: "n"}
	res := domain.DeploymentResult{
		RepoURL:      "https://github.com/me/t-r1",
		CommitSHA:    "abc",
		PublishedURL: "https://me.github.io/t-r1/",
	}

	got := domain.NewSubmissionPayload(req, res)
	assert.Equal(t, domain.SubmissionPayload{
		Email:     "me@example.com",
		Task:      "t",
		Round:     2,
		Nonce:     "n",
		RepoURL:   res.RepoURL,
		CommitSHA: "abc",
		PagesURL:  res.PublishedURL,
	}, got)
}

func TestFiles_Names(t *testing.T) {
	files := domain.Files{"index.html": "", "LICENSE": "", "README.md": ""}
	assert.Equal(t, []string{"LICENSE", "README.md", "index.html"}, files.Names())
}

func TestLayoutPaths(t *testing.T) {
	assert.Equal(t, filepath.Join(".courier", "processed_tasks.json"), domain.DefaultKeyStorePath())
	assert.Equal(t, filepath.Join(".courier", "completed_tasks.json"), domain.DefaultJournalPath())
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, 600*time.Second, s.Pipeline.Deadline)
	assert.Equal(t, 5, s.Submission.MaxAttempts)
	assert.Equal(t, domain.DefaultSubmissionSchedule(), s.Submission.Schedule)
	assert.Equal(t, 5*time.Second, s.Probe.Interval)
	assert.True(t, s.Store.WatchEnabled())

	off := false
	s.Store.Watch = &off
	assert.False(t, s.Store.WatchEnabled())
}
