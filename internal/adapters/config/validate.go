package config

import (
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validate checks that every bound and count in s is usable.
// Identity is checked separately when serving, since operator commands run without it.
func Validate(s *domain.Settings) error {
	durations := []struct {
		name string
		val  int64
	}{
		{"pipeline.deadline", int64(s.Pipeline.Deadline)},
		{"pipeline.verify_timeout", int64(s.Pipeline.VerifyTimeout)},
		{"probe.interval", int64(s.Probe.Interval)},
		{"probe.request_timeout", int64(s.Probe.RequestTimeout)},
		{"submission.request_timeout", int64(s.Submission.RequestTimeout)},
		{"server.shutdown_timeout", int64(s.Server.ShutdownTimeout)},
		{"generator.timeout", int64(s.Generator.Timeout)},
		{"github.timeout", int64(s.GitHub.Timeout)},
	}
	for _, d := range durations {
		if d.val <= 0 {
			return invalid(d.name, "must be positive")
		}
	}

	switch {
	case s.Scheduler.Workers < 1:
		return invalid("scheduler.workers", "must be at least 1")
	case s.Scheduler.QueueSize < 1:
		return invalid("scheduler.queue_size", "must be at least 1")
	case s.Submission.MaxAttempts < 1:
		return invalid("submission.max_attempts", "must be at least 1")
	case len(s.Submission.Schedule) < s.Submission.MaxAttempts-1:
		return invalid("submission.schedule", "needs one wait per retry")
	case s.Store.Path == "":
		return invalid("store.path", "must not be empty")
	case s.Store.JournalPath == "":
		return invalid("store.journal_path", "must not be empty")
	case s.Store.JournalPath == s.Store.Path:
		return invalid("store.journal_path", "must differ from store.path")
	}

	for _, wait := range s.Submission.Schedule {
		if wait < 0 {
			return invalid("submission.schedule", "waits must not be negative")
		}
	}

	switch s.Log.Format {
	case domain.LogFormatAuto, domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return invalid("log.format", "must be auto, pretty or json")
	}

	return nil
}

// ValidateIdentity checks the settings needed to accept deliveries.
func ValidateIdentity(s *domain.Settings) error {
	if s.Identity.Secret == "" || s.Identity.Email == "" {
		return domain.ErrMissingIdentity
	}
	return nil
}

func invalid(field, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, field+" "+reason), "field", field)
}
