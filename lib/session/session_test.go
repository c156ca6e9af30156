// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	saved := &Session{
		Token:   "tok-123",
		BaseURL: "http://localhost:8080/api/v1",
		UserID:  "u-1",
		Email:   "ops@raildesk.example",
		Role:    "ADMIN",
	}
	if err := SaveTo(saved, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("file mode = %o, want 0600", got)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}
	if !loaded.IsAdmin() {
		t.Error("expected IsAdmin for ADMIN role")
	}
}

func TestLoadMissingFileDirectsToLogin(t *testing.T) {
	t.Parallel()

	_, err := LoadFrom(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing session")
	}
}

func TestLoadRejectsIncompleteSession(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"token":"tok"}`), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for session without base_url")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := SaveTo(&Session{Token: "tok", BaseURL: "http://x"}, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if err := ClearAt(path); err != nil {
		t.Fatalf("ClearAt: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be gone after Clear")
	}
	// Clearing again is not an error.
	if err := ClearAt(path); err != nil {
		t.Fatalf("second ClearAt: %v", err)
	}
}
