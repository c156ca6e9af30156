// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package session holds the persisted authentication state for the
// Raildesk client: the bearer token issued by the backend plus the
// cached role and identity resolved from "who am I". The store has an
// explicit lifecycle — hydrate from the session file at startup,
// refresh the cached identity via the API, clear on logout — so no
// surface reads ambient global auth state.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Session is the operator's authentication state. Stored at the
// well-known path returned by FilePath and loaded by every command
// that talks to the backend. Analogous to SSH keys: authenticate once
// via "raildesk login", then access is seamless.
type Session struct {
	// Token is the bearer token proving the user's identity.
	Token string `json:"token"`

	// BaseURL is the backend the token was issued by, so commands
	// talk to the same deployment they logged in to.
	BaseURL string `json:"base_url"`

	// UserID, Email, and Role cache the "who am I" response at login
	// time. Role gates admin-only UI surfaces; the backend remains
	// authoritative and re-checks every request.
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

// IsAdmin reports whether the cached role is ADMIN.
func (session *Session) IsAdmin() bool {
	return session.Role == "ADMIN"
}

// FilePath returns the path to the session file. Checks the
// RAILDESK_SESSION_FILE environment variable first, then falls back
// to ~/.config/raildesk/session.json.
func FilePath() string {
	if envPath := os.Getenv("RAILDESK_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "raildesk-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "raildesk", "session.json")
}

// Load reads the session from the well-known path. Returns a clear
// error directing the user to "raildesk login" if no session exists.
func Load() (*Session, error) {
	return LoadFrom(FilePath())
}

// LoadFrom reads a session from a specific file path.
func LoadFrom(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no Raildesk session found at %s — run \"raildesk login\" first", path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}

	if session.Token == "" {
		return nil, fmt.Errorf("session file %s has no token", path)
	}
	if session.BaseURL == "" {
		return nil, fmt.Errorf("session file %s has no base_url", path)
	}

	return &session, nil
}

// Save writes the session to the well-known path. Creates the parent
// directory with mode 0700 if needed. The file is written with mode
// 0600 since it contains an access token.
func Save(session *Session) error {
	return SaveTo(session, FilePath())
}

// SaveTo writes a session to a specific file path.
func SaveTo(session *Session, path string) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}

// Clear removes the session file. Logging out of a deployment you
// were never logged in to is not an error.
func Clear() error {
	return ClearAt(FilePath())
}

// ClearAt removes a session file at a specific path.
func ClearAt(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", path, err)
	}
	return nil
}
