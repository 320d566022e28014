package remote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

const sessionFilename = "session.json"

// Session is the signed-in identity, persisted next to the habit data so
// every command run resumes it.
type Session struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// Header returns the HTTP headers authenticating this session.
func (s Session) Header() http.Header {
	h := make(http.Header)
	if s.Token != "" {
		h.Set("Authorization", "Bearer "+s.Token)
	}
	return h
}

func sessionPath(home string) string {
	return filepath.Join(home, sessionFilename)
}

// LoadSession reads the session stored under the given habit home
// directory.
func LoadSession(home string) (Session, error) {
	data, err := os.ReadFile(sessionPath(home))
	if err != nil {
		return Session{}, fmt.Errorf("session not found. Please run 'habits login' first: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("corrupt session file %q: %w", sessionPath(home), err)
	}
	if s.UserID == "" {
		return Session{}, fmt.Errorf("session file %q has no user", sessionPath(home))
	}
	return s, nil
}

// SaveSession persists the session under the given habit home directory.
func SaveSession(home string, s Session) error {
	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("could not create %q: %w", home, err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not encode session: %w", err)
	}
	// The token is a credential, keep the file private.
	if err := os.WriteFile(sessionPath(home), data, 0600); err != nil {
		return fmt.Errorf("could not write session file: %w", err)
	}
	return nil
}

// ClearSession removes the persisted session. Clearing an absent session
// is not an error.
func ClearSession(home string) error {
	err := os.Remove(sessionPath(home))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove session file: %w", err)
	}
	return nil
}
