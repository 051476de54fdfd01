package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/courier/internal/adapters/telemetry"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/courier/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func TestOTelTracer_RecordsAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", recorder)

	_, span := tracer.Start(t.Context(), "deploying",
		ports.WithAttribute("key", "t-1-n"),
		ports.WithAttribute("round", 2),
	)
	span.SetAttribute("fallback", true)
	span.End()
	require.NoError(t, tracer.Shutdown(t.Context()))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "deploying", ended[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("key", "t-1-n"),
		attribute.Int("round", 2),
		attribute.Bool("fallback", true),
	}, ended[0].Attributes())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
}

func TestOTelTracer_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", recorder)

	_, span := tracer.Start(t.Context(), "generating")
	span.RecordError(errors.New("model unavailable"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "model unavailable", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
}

func TestLogBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Info("span finished", "span", "verifying", "key", "t-1-n", "elapsed", gomock.Any())
	log.EXPECT().Warn("deploy rejected", "span", "deploying", "elapsed", gomock.Any())

	tracer := telemetry.NewOTelTracer("test", telemetry.NewLogBridge(log))

	_, ok := tracer.Start(t.Context(), "verifying", ports.WithAttribute("key", "t-1-n"))
	ok.End()

	_, failed := tracer.Start(t.Context(), "deploying")
	failed.RecordError(errors.New("deploy rejected"))
	failed.End()

	require.NoError(t, tracer.Shutdown(t.Context()))
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := t.Context()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
	require.NoError(t, tracer.Shutdown(ctx))
}
