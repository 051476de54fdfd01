package ports

// KeyStore is the durable set of identity keys that have been accepted for processing.
//
//go:generate go run go.uber.org/mock/mockgen -source=keystore.go -destination=mocks/mock_keystore.go -package=mocks
type KeyStore interface {
	// ContainsAndInsert atomically reports whether key was already present and,
	// if it was not, inserts it and persists the set before returning.
	ContainsAndInsert(key string) (present bool, err error)

	// Contains reports whether key is present.
	Contains(key string) bool

	// Keys returns every key in lexical order.
	Keys() []string

	// Forget removes keys and persists the set.
	// It returns domain.ErrKeyNotFound if any key is absent; nothing is removed in that case.
	Forget(keys ...string) error

	// Reload replaces the in-memory set with the persisted one.
	Reload() error
}

// CompletionJournal records identity keys whose runs reached the completed stage.
type CompletionJournal interface {
	// Record marks key as completed and persists the journal.
	Record(key string) error

	// Completed reports whether key has been recorded.
	Completed(key string) bool

	// Forget removes whichever of keys are recorded. Absent keys are ignored.
	Forget(keys ...string) error
}
