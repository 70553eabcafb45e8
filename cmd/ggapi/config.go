package main

import (
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"

	ggapi "github.com/peteraglen/ggapi-go-client"
	"github.com/peteraglen/ggapi-go-client/internal/tokenstore"
)

type config struct {
	credentials ggapi.Credentials
	tokenFile   string
}

// loadConfig resolves settings with priority flag > env > .env file > default.
func loadConfig(fs *flag.FlagSet, args []string) (*config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	clientID := fs.String("client-id", "", "OAuth client ID (or GG_CLIENT_ID)")
	clientSecret := fs.String("client-secret", "", "OAuth client secret (or GG_CLIENT_SECRET)")
	redirectURI := fs.String("redirect-uri", "", "Registered redirect URI (or GG_REDIRECT_URI)")
	tokenFile := fs.String("token-file", "", "Token storage file (or GG_TOKEN_FILE)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{
		credentials: ggapi.Credentials{
			ClientID:     getConfig(*clientID, "GG_CLIENT_ID", ""),
			ClientSecret: getConfig(*clientSecret, "GG_CLIENT_SECRET", ""),
			RedirectURI:  getConfig(*redirectURI, "GG_REDIRECT_URI", ""),
		},
		tokenFile: getConfig(*tokenFile, "GG_TOKEN_FILE", tokenstore.DefaultPath()),
	}

	if cfg.credentials.ClientID == "" {
		return nil, errors.New("client ID not set: use -client-id or GG_CLIENT_ID")
	}

	if cfg.tokenFile == "" {
		return nil, errors.New("token file path could not be determined: use -token-file or GG_TOKEN_FILE")
	}

	return cfg, nil
}

func getConfig(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultValue
}
