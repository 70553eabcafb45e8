package ggapi

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	code             string
	accessToken      string
	refreshToken     string
	endpoints        Endpoints
	timeout          time.Duration
	userAgent        string
	requestLogger    RequestLogger
	refreshPolicy    RefreshPolicy
	refreshGrantType string
	refreshHook      func(TokenPair)
	requestHeaders   map[string]string
}

func newClientOptions() *Options {
	return &Options{
		endpoints:        DefaultEndpoints(),
		timeout:          30 * time.Second,
		userAgent:        "ggapi-go-client v" + Version,
		requestLogger:    &NoopLogger{},
		refreshPolicy:    DefaultRefreshPolicy,
		refreshGrantType: GrantTypeRefreshToken,
		requestHeaders: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"Accept":       responseType,
		},
	}
}

// WithAuthorizationCode makes [New] exchange code for a token pair before
// returning.
func WithAuthorizationCode(code string) Option {
	return func(o *Options) {
		o.code = strings.TrimSpace(code)
	}
}

// WithTokens restores a previously stored token pair. No network call is made.
func WithTokens(accessToken, refreshToken string) Option {
	return func(o *Options) {
		o.accessToken = accessToken
		o.refreshToken = refreshToken
	}
}

func WithTokenPair(pair TokenPair) Option {
	return WithTokens(pair.AccessToken, pair.RefreshToken)
}

// WithEndpoints overrides the service hosts. Empty fields keep their default.
func WithEndpoints(e Endpoints) Option {
	return func(o *Options) {
		o.endpoints = o.endpoints.merge(e)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= time.Second {
			o.timeout = timeout
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		if userAgent = strings.TrimSpace(userAgent); userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRefreshPolicy(policy RefreshPolicy) Option {
	return func(o *Options) {
		if policy != nil {
			o.refreshPolicy = policy
		}
	}
}

// WithRefreshGrantType sets the grant_type sent when refreshing. The service
// historically accepted "authorization_code" here.
func WithRefreshGrantType(grantType string) Option {
	return func(o *Options) {
		switch grantType {
		case GrantTypeRefreshToken, GrantTypeAuthorizationCode:
			o.refreshGrantType = grantType
		}
	}
}

// WithTokenRefreshHook registers fn to be called with the new token pair after
// every successful code exchange or refresh.
func WithTokenRefreshHook(fn func(TokenPair)) Option {
	return func(o *Options) {
		o.refreshHook = fn
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isProtectedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

func isProtectedHeader(header string) bool {
	for _, h := range []string{"Content-Type", "Accept", "User-Agent", "Authorization"} {
		if strings.EqualFold(header, h) {
			return true
		}
	}
	return false
}

// Validate checks the options for consistency. It is called by [New].
func (o *Options) Validate() error {
	hasCode := o.code != ""
	hasTokens := o.accessToken != "" && o.refreshToken != ""

	switch {
	case !hasCode && !hasTokens:
		return &ConfigError{Err: ErrMissingGrant}
	case hasCode && (o.accessToken != "" || o.refreshToken != ""):
		return &ConfigError{Err: ErrConflictingGrant}
	}

	if o.timeout < time.Second {
		return &ConfigError{Err: errors.New("timeout must be at least 1s")}
	}

	if o.timeout > 5*time.Minute {
		return &ConfigError{Err: fmt.Errorf("timeout must not exceed %v", 5*time.Minute)}
	}

	if o.requestLogger == nil {
		return &ConfigError{Err: errors.New("requestLogger must not be nil")}
	}

	if o.refreshPolicy == nil {
		return &ConfigError{Err: errors.New("refreshPolicy must not be nil")}
	}

	if o.refreshGrantType != GrantTypeRefreshToken && o.refreshGrantType != GrantTypeAuthorizationCode {
		return &ConfigError{Err: fmt.Errorf("unsupported refresh grant type %q", o.refreshGrantType)}
	}

	return o.endpoints.validate()
}
