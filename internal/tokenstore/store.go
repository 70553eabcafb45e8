// Package tokenstore keeps a GG token pair in a JSON file between runs.
package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ggapi "github.com/peteraglen/ggapi-go-client"
)

// ErrNotFound is returned by Load when no tokens have been saved yet.
var ErrNotFound = errors.New("no stored tokens")

type fileTokens struct {
	Tokens    ggapi.TokenPair `json:"tokens"`
	ClientID  string          `json:"client_id,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type FileStore struct {
	Path     string
	ClientID string
}

func NewFileStore(path, clientID string) *FileStore {
	return &FileStore{Path: path, ClientID: clientID}
}

// DefaultPath returns $XDG_CONFIG_HOME/ggapi/tokens.json, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		xdgConfigHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(xdgConfigHome, "ggapi", "tokens.json")
}

func (f *FileStore) Load() (ggapi.TokenPair, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return ggapi.TokenPair{}, ErrNotFound
	}
	if err != nil {
		return ggapi.TokenPair{}, fmt.Errorf("failed to read token file: %w", err)
	}

	var t fileTokens
	if err := json.Unmarshal(b, &t); err != nil {
		return ggapi.TokenPair{}, fmt.Errorf("failed to parse token file: %w", err)
	}

	if f.ClientID != "" && t.ClientID != "" && t.ClientID != f.ClientID {
		return ggapi.TokenPair{}, fmt.Errorf("token file belongs to client %s", t.ClientID)
	}

	if t.Tokens.AccessToken == "" || t.Tokens.RefreshToken == "" {
		return ggapi.TokenPair{}, fmt.Errorf("missing access_token or refresh_token in token file")
	}

	return t.Tokens, nil
}

// Save writes pair with owner-only permissions, creating the parent directory.
func (f *FileStore) Save(pair ggapi.TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(f.Path), err)
	}

	b, err := json.MarshalIndent(fileTokens{
		Tokens:    pair,
		ClientID:  f.ClientID,
		UpdatedAt: time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("failed to replace token file: %w", err)
	}

	return nil
}

func (f *FileStore) Delete() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
