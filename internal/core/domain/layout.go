package domain

import "path/filepath"

const (
	// StateDirName is the name of the directory holding durable service state.
	StateDirName = ".courier"

	// KeyStoreFileName is the name of the processed identities file.
	KeyStoreFileName = "processed_tasks.json"

	// JournalFileName is the name of the completed identities file.
	JournalFileName = "completed_tasks.json"

	// ConfigFileName is the name of the service configuration file.
	ConfigFileName = "courier.yaml"

	// EntryFileName is the file every generated artifact must contain.
	EntryFileName = "index.html"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultKeyStorePath returns the default path for the processed identities file.
// It joins .courier and processed_tasks.json.
func DefaultKeyStorePath() string {
	return filepath.Join(StateDirName, KeyStoreFileName)
}

// DefaultJournalPath returns the default path for the completion journal.
// It joins .courier and completed_tasks.json.
func DefaultJournalPath() string {
	return filepath.Join(StateDirName, JournalFileName)
}
