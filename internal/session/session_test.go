package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsAnonymous(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	sess, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if sess.Authenticated() {
		t.Fatalf("session = %#v, want anonymous", sess)
	}
}

func TestLoad_InvalidTOMLIsAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := os.WriteFile(path, []byte(`token = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	sess, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if sess.Authenticated() {
		t.Fatalf("session = %#v, want anonymous on parse failure", sess)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.toml")

	want := Session{Token: "opaque-token-123", Username: "crio"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("Load = %#v, want %#v", got, want)
	}
	if !got.Authenticated() {
		t.Fatal("Authenticated = false for a saved token")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("session file mode = %o, want 600", perm)
	}
}

func TestAuthenticated_TrimsWhitespace(t *testing.T) {
	if (Session{Token: "   "}).Authenticated() {
		t.Fatal("whitespace-only token counted as authenticated")
	}
	if !(Session{Token: "t"}).Authenticated() {
		t.Fatal("non-empty token not counted as authenticated")
	}
}
