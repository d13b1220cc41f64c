package session

import (
	"os"
	"strings"
)

// FileTokenStore persists the session token as a single opaque string
// in one file. A missing file means logged out.
type FileTokenStore struct {
	Path string
}

// NewFileTokenStore returns a token store backed by the file at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{Path: path}
}

// Load reads the stored token. A missing file is not an error.
func (f *FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Save writes the token, readable by the owner only.
func (f *FileTokenStore) Save(token string) error {
	return os.WriteFile(f.Path, []byte(token), 0o600)
}

// Clear removes the token file. A missing file is not an error.
func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
