package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/cricbid/auctionctl/internal/errors"
)

// credentialsFile is the on-disk shape of the stored token pair
type credentialsFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// FileStore persists tokens as a JSON file with 0600 permissions.
// It is the terminal analogue of the browser's localStorage token slots.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the given file path.
// The file is created lazily on the first SetTokens call.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the standard credentials location inside dir
func DefaultPath(dir string) string {
	return filepath.Join(dir, "credentials.json")
}

func (s *FileStore) read() credentialsFile {
	var cf credentialsFile
	data, err := os.ReadFile(s.path)
	if err != nil {
		return cf
	}
	// A corrupt file is treated as logged-out rather than an error.
	_ = json.Unmarshal(data, &cf)
	return cf
}

func (s *FileStore) write(cf credentialsFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeCredentialsStore, "failed to create credentials directory", err)
	}

	data, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeCredentialsStore, "failed to encode credentials", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeCredentialsStore, "failed to write credentials file", err)
	}
	return nil
}

// SetTokens implements Store
func (s *FileStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cf := s.read()
	if access != "" {
		cf.AccessToken = access
	}
	if refresh != "" {
		cf.RefreshToken = refresh
	}
	return s.write(cf)
}

// Access implements Store
func (s *FileStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().AccessToken
}

// Refresh implements Store
func (s *FileStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().RefreshToken
}

// Clear implements Store. Removing an already-removed file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeCredentialsStore, "failed to remove credentials file", err)
	}
	return nil
}
