package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/courier/internal/app"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	logger  *mocks.MockLogger
	store   *mocks.MockKeyStore
	journal *mocks.MockCompletionJournal
	tracer  *mocks.MockTracer
}

func newApp(t *testing.T, settings *domain.Settings) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &appMocks{
		logger:  mocks.NewMockLogger(ctrl),
		store:   mocks.NewMockKeyStore(ctrl),
		journal: mocks.NewMockCompletionJournal(ctrl),
		tracer:  mocks.NewMockTracer(ctrl),
	}
	if settings == nil {
		s := domain.DefaultSettings()
		settings = &s
	}
	return app.New(settings, m.logger, m.store, m.journal, m.tracer, nil, nil, nil), m
}

func providerFor(a *app.App, m *appMocks) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: m.logger}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	a, m := newApp(t, nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), providerFor(a, m))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "courier version")
}

// TestRun_KeysList verifies that keys are printed to stdout.
func TestRun_KeysList(t *testing.T) {
	a, m := newApp(t, nil)
	m.store.EXPECT().Keys().Return([]string{"alpha-1-n1", "beta-1-n2"})
	m.journal.EXPECT().Completed("alpha-1-n1").Return(true)
	m.journal.EXPECT().Completed("beta-1-n2").Return(false)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"keys", "list", "--pending"}, stdout, new(bytes.Buffer), providerFor(a, m))

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "beta-1-n2\n", stdout.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the failure and returns 1.
func TestRun_ExecutionError(t *testing.T) {
	a, m := newApp(t, nil)
	m.store.EXPECT().Forget("missing-1-n").Return(domain.ErrKeyNotFound)
	m.logger.EXPECT().Error(domain.ErrKeyNotFound)

	exitCode := run(context.Background(), []string{"keys", "forget", "missing-1-n"}, new(bytes.Buffer), new(bytes.Buffer), providerFor(a, m))

	assert.Equal(t, 1, exitCode)
}

// TestRun_ServeWithoutIdentity verifies that serve refuses to start without a secret and email.
func TestRun_ServeWithoutIdentity(t *testing.T) {
	a, m := newApp(t, nil)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error, _ ...any) {
		assert.ErrorIs(t, err, domain.ErrMissingIdentity)
	})

	exitCode := run(context.Background(), []string{"serve"}, new(bytes.Buffer), new(bytes.Buffer), providerFor(a, m))

	assert.Equal(t, 1, exitCode)
}

// TestRun_Cancelled verifies that cancelling the parent context reaches the command.
func TestRun_Cancelled(t *testing.T) {
	blocked := make(chan struct{})
	provider := func(ctx context.Context) (*app.Components, func(), error) {
		close(blocked)
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}
	ctx, cancel := context.WithCancel(context.Background())
	exitCh := make(chan int, 1)
	stderr := new(bytes.Buffer)
	go func() {
		exitCh <- run(ctx, []string{"serve"}, new(bytes.Buffer), stderr, provider)
	}()

	<-blocked
	cancel()

	select {
	case code := <-exitCh:
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), context.Canceled.Error())
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
