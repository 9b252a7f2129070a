// Package session handles the user's opaque auth token.
//
// The token is issued by the login flow (external to this client) and stored
// in ~/.config/qkart/session.toml. Operations that need authentication
// receive an explicit Session value; nothing reads ambient global state.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Session carries the opaque token for the current user. The zero value is
// an anonymous session.
type Session struct {
	Token    string `toml:"token"`
	Username string `toml:"username"`
}

const defaultSessionPath = "~/.config/qkart/session.toml"

// Authenticated reports whether the session carries a token. The client
// never inspects the token; the service validates it.
func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.Token) != ""
}

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

// Load reads the session from the given path. A missing or unreadable file
// yields an anonymous session rather than an error: the storefront browses
// fine without one.
func Load(path string) (Session, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Session{}, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Session{}, nil // Graceful degradation
	}

	var sess Session
	if err := toml.Unmarshal(bytes, &sess); err != nil {
		return Session{}, nil // Graceful degradation
	}
	sess.Token = strings.TrimSpace(sess.Token)
	return sess, nil
}

// Save writes the session to the given path, creating directories as needed.
func Save(path string, s Session) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// The token is a credential; keep the file owner-readable only.
	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSessionPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
