// Package marker persists the reporting timestamp of the last rendered
// sheet. The marker is the system's only idempotence mechanism: a run whose
// payload carries the same timestamp is skipped.
package marker

import "os"

// Store reads and writes the last-seen reporting timestamp.
type Store interface {
	// Last returns the persisted timestamp and whether one exists.
	Last() (string, bool, error)
	// Save overwrites the persisted timestamp.
	Save(value string) error
}

// FileStore keeps the timestamp verbatim in a plain text file, with no
// structure or escaping. It is compared only by string equality and never
// parsed after being written.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The file is
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Last returns the file contents verbatim. A missing file is not an error;
// it reports that no timestamp has been persisted yet.
func (s *FileStore) Last() (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Save overwrites the file with the timestamp verbatim.
func (s *FileStore) Save(value string) error {
	return os.WriteFile(s.path, []byte(value), 0644)
}

// NullStore never remembers anything; every run looks new and saves are
// discarded. Used by forced runs.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore { return &NullStore{} }

// Last always reports no persisted timestamp.
func (s *NullStore) Last() (string, bool, error) { return "", false, nil }

// Save does nothing.
func (s *NullStore) Save(string) error { return nil }

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*NullStore)(nil)
)
