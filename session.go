package ggapi

import (
	"context"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Version is reported in the default User-Agent.
const Version = "0.1"

// Session is an authenticated connection to the GG REST API for one user.
type Session struct {
	credentials Credentials
	options     *Options
	client      *resty.Client

	mu     sync.RWMutex
	tokens TokenPair
}

// New creates a Session. Exactly one of [WithAuthorizationCode] or
// [WithTokens] must be supplied. With an authorization code, New performs the
// token exchange before returning; with stored tokens no request is made.
func New(ctx context.Context, creds Credentials, opts ...Option) (*Session, error) {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		credentials: creds,
		options:     options,
		client:      newRestyClient(options),
	}

	if options.code != "" {
		if err := s.exchangeCode(ctx, options.code); err != nil {
			return nil, err
		}
		return s, nil
	}

	s.tokens = TokenPair{AccessToken: options.accessToken, RefreshToken: options.refreshToken}

	return s, nil
}

func newRestyClient(options *Options) *resty.Client {
	return resty.New().
		SetTimeout(options.timeout).
		SetHeaders(options.requestHeaders).
		SetHeader("User-Agent", options.userAgent).
		SetLogger(options.requestLogger)
}
