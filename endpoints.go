package ggapi

import (
	"errors"
	"net/url"
	"strings"
)

const (
	TokenURL     = "https://auth.api.gg.pl/token"
	AuthorizeURL = "https://www.gg.pl/authorize"

	PubdirURL  = "https://pubdir.api.gg.pl"
	UsersURL   = "https://users.api.gg.pl"
	LifeURL    = "https://life.api.gg.pl"
	AvatarsURL = "http://avatars.gg.pl"

	responseType = "json"
)

// Endpoints are the hosts a [Session] talks to. Each API scope lives on its
// own host.
type Endpoints struct {
	TokenURL     string
	AuthorizeURL string
	PubdirURL    string
	UsersURL     string
	LifeURL      string
	AvatarsURL   string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		TokenURL:     TokenURL,
		AuthorizeURL: AuthorizeURL,
		PubdirURL:    PubdirURL,
		UsersURL:     UsersURL,
		LifeURL:      LifeURL,
		AvatarsURL:   AvatarsURL,
	}
}

func (e Endpoints) merge(override Endpoints) Endpoints {
	pick := func(current, next string) string {
		if next = strings.TrimSuffix(strings.TrimSpace(next), "/"); next != "" {
			return next
		}
		return current
	}

	return Endpoints{
		TokenURL:     pick(e.TokenURL, override.TokenURL),
		AuthorizeURL: pick(e.AuthorizeURL, override.AuthorizeURL),
		PubdirURL:    pick(e.PubdirURL, override.PubdirURL),
		UsersURL:     pick(e.UsersURL, override.UsersURL),
		LifeURL:      pick(e.LifeURL, override.LifeURL),
		AvatarsURL:   pick(e.AvatarsURL, override.AvatarsURL),
	}
}

func (e Endpoints) validate() error {
	for name, raw := range map[string]string{
		"token":     e.TokenURL,
		"authorize": e.AuthorizeURL,
		"pubdir":    e.PubdirURL,
		"users":     e.UsersURL,
		"life":      e.LifeURL,
		"avatars":   e.AvatarsURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &ConfigError{Err: errors.New(name + " URL must be an absolute URL")}
		}
	}
	return nil
}
