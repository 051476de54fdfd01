package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidSecret is returned when a delivery carries a secret other than the configured one.
	ErrInvalidSecret = zerr.New("invalid secret")

	// ErrEmailMismatch is returned when a delivery is addressed to a different identity.
	ErrEmailMismatch = zerr.New("email mismatch")

	// ErrInvalidRequest is returned when a delivery lacks a field the pipeline needs.
	ErrInvalidRequest = zerr.New("invalid task request")

	// ErrDispatchFailed is returned when an accepted run could not be handed to the worker pool.
	ErrDispatchFailed = zerr.New("failed to dispatch pipeline run")

	// ErrSchedulerClosed is returned when work is dispatched after the worker pool stopped.
	ErrSchedulerClosed = zerr.New("scheduler is closed")

	// ErrGenerationFailed is returned when the generator produced no usable file set.
	ErrGenerationFailed = zerr.New("artifact generation failed")

	// ErrMissingEntryFile is returned when generated output lacks the designated entry file.
	ErrMissingEntryFile = zerr.New("generated output is missing the entry file")

	// ErrMalformedOutput is returned when generator output cannot be parsed into files.
	ErrMalformedOutput = zerr.New("generated output is malformed")

	// ErrDeploymentFailed is returned when a deployment gateway operation fails.
	ErrDeploymentFailed = zerr.New("deployment failed")

	// ErrDeploymentNotFound is returned when an update targets a deployment that does not exist.
	ErrDeploymentNotFound = zerr.New("deployment target not found")

	// ErrPipelineTimeout is the cause recorded for runs that exceeded their deadline.
	ErrPipelineTimeout = zerr.New("pipeline deadline exceeded")

	// ErrSubmissionExhausted is recorded when every submission attempt failed.
	ErrSubmissionExhausted = zerr.New("submission attempts exhausted")

	// ErrStoreCreateFailed is returned when the key store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create key store directory")

	// ErrStoreReadFailed is returned when the key store file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read key store")

	// ErrStoreUnmarshalFailed is returned when the key store file cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal key store")

	// ErrStoreMarshalFailed is returned when the key store cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal key store")

	// ErrStoreWriteFailed is returned when the key store file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write key store")

	// ErrStoreLockFailed is returned when the key store file lock cannot be taken.
	ErrStoreLockFailed = zerr.New("failed to lock key store")

	// ErrStoreCorrupt is returned when the key store checksum does not match its contents.
	ErrStoreCorrupt = zerr.New("key store checksum mismatch")

	// ErrKeyNotFound is returned when forgetting a key the store does not hold.
	ErrKeyNotFound = zerr.New("key not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrMissingIdentity is returned when serving without a configured secret or email.
	ErrMissingIdentity = zerr.New("identity secret and email must be configured")

	// ErrServerFailed is returned when the HTTP listener stops unexpectedly.
	ErrServerFailed = zerr.New("http server failed")
)

// WrapCause joins a sentinel and the error that caused it, so that errors.Is
// matches either one. The message reads "<sentinel>: <cause>".
func WrapCause(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
