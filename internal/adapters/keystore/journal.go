package keystore

import "go.trai.ch/courier/internal/core/ports"

var _ ports.CompletionJournal = (*Journal)(nil)

// Journal implements ports.CompletionJournal on a second key set file.
type Journal struct {
	set *Store
}

// NewJournal loads the journal persisted at path.
func NewJournal(path string) (*Journal, error) {
	set, err := NewStore(path)
	if err != nil {
		return nil, err
	}
	return &Journal{set: set}, nil
}

// Record marks key as completed. Recording a key twice is not an error.
func (j *Journal) Record(key string) error {
	_, err := j.set.ContainsAndInsert(key)
	return err
}

// Completed reports whether key has been recorded.
func (j *Journal) Completed(key string) bool {
	return j.set.Contains(key)
}

// Keys returns every recorded key in lexical order.
func (j *Journal) Keys() []string {
	return j.set.Keys()
}

// Forget removes whichever of keys are recorded. Absent keys are ignored.
func (j *Journal) Forget(keys ...string) error {
	present := make([]string, 0, len(keys))
	for _, k := range keys {
		if j.set.Contains(k) {
			present = append(present, k)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return j.set.Forget(present...)
}
