package main

import (
	"context"
	"flag"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ggapi "github.com/peteraglen/ggapi-go-client"
	"github.com/peteraglen/ggapi-go-client/internal/tokenstore"
)

func TestParseRecipient(t *testing.T) {
	tests := []struct {
		input    string
		expected ggapi.Recipient
		wantErr  bool
	}{
		{"friends", ggapi.ToFriends, false},
		{"12345", "user,12345", false},
		{"0", "", true},
		{"bob", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseRecipient(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetConfig(t *testing.T) {
	t.Setenv("GG_TEST_VALUE", "from-env")

	assert.Equal(t, "from-flag", getConfig("from-flag", "GG_TEST_VALUE", "default"))
	assert.Equal(t, "from-env", getConfig("", "GG_TEST_VALUE", "default"))
	assert.Equal(t, "default", getConfig("", "GG_TEST_UNSET", "default"))
}

func TestLoadConfig_RequiresClientID(t *testing.T) {
	t.Setenv("GG_CLIENT_ID", "")

	_, err := loadConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	assert.ErrorContains(t, err, "client ID not set")
}

func TestRun_AuthorizeURL(t *testing.T) {
	t.Setenv("GG_TOKEN_FILE", filepath.Join(t.TempDir(), "tokens.json"))

	err := run(context.Background(), zerolog.Nop(), "authorize-url", []string{
		"-client-id", "client-id", "-redirect-uri", "https://example.com/cb", "-state", "xyz",
	})
	require.NoError(t, err)

	u, err := url.Parse(ggapi.AuthCodeURL(ggapi.Credentials{ClientID: "client-id", RedirectURI: "https://example.com/cb"}, "xyz"))
	require.NoError(t, err)
	assert.Equal(t, "xyz", u.Query().Get("state"))
}

func TestRun_NotLoggedIn(t *testing.T) {
	t.Setenv("GG_TOKEN_FILE", filepath.Join(t.TempDir(), "tokens.json"))
	t.Setenv("GG_CLIENT_ID", "client-id")

	err := run(context.Background(), zerolog.Nop(), "avatar", []string{"-uin", "12345"})
	assert.ErrorContains(t, err, "not logged in")
}

func TestRun_AvatarWithStoredTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	t.Setenv("GG_TOKEN_FILE", path)
	t.Setenv("GG_CLIENT_ID", "client-id")

	require.NoError(t, tokenstore.NewFileStore(path, "client-id").Save(ggapi.TokenPair{AccessToken: "a", RefreshToken: "r"}))

	err := run(context.Background(), zerolog.Nop(), "avatar", []string{"-uin", "12345"})
	assert.NoError(t, err)
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), zerolog.Nop(), "bogus", nil)
	assert.ErrorContains(t, err, `unknown command "bogus"`)
}
