package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"clubportal/internal/model"
)

// Fixed storage keys, mirrored as file names under the state directory.
const (
	userFile  = "user.json"
	tokenFile = "token"
)

// Storage persists the session identity and bearer token to a directory.
// Reads never fail hard: missing or malformed state reads as "no session".
type Storage struct {
	Dir string
}

// NewStorage creates storage rooted at dir.
func NewStorage(dir string) *Storage {
	return &Storage{Dir: dir}
}

// Read returns the persisted identity and token, or (nil, "") when absent
// or unreadable.
func (s *Storage) Read() (*model.User, string) {
	data, err := os.ReadFile(filepath.Join(s.Dir, userFile))
	if err != nil {
		return nil, ""
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, ""
	}
	token, err := os.ReadFile(filepath.Join(s.Dir, tokenFile))
	if err != nil {
		return &user, ""
	}
	return &user, string(token)
}

// Write persists the identity and token, creating the directory as needed.
func (s *Storage) Write(user *model.User, token string) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.Dir, userFile), data, 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, tokenFile), []byte(token), 0o600)
}

// Clear removes any persisted session state.
func (s *Storage) Clear() {
	_ = os.Remove(filepath.Join(s.Dir, userFile))
	_ = os.Remove(filepath.Join(s.Dir, tokenFile))
}
