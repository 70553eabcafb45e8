// Package ggapi provides a client for the GG.pl REST API.
//
// The client wraps [github.com/go-resty/resty/v2] and handles the OAuth2
// authorization-code flow, the service's error envelope and transparent
// refresh of expired access tokens.
//
// # Basic Usage
//
//	creds := ggapi.Credentials{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    RedirectURI:  "https://example.com/callback",
//	}
//
//	// Send the user to the authorize page first.
//	http.Redirect(w, r, ggapi.AuthCodeURL(creds, state), http.StatusFound)
//
//	// Then exchange the code received on the redirect URI.
//	s, err := ggapi.New(ctx, creds, ggapi.WithAuthorizationCode(code))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store(s.Tokens())
//
//	ok, err := s.SendNotification(ctx, ggapi.ToUser(12345), "hi", "")
//
// # Tokens
//
// The package does not persist tokens. Read the current pair with
// [Session.Tokens] and restore it later with [WithTokens]. Tokens rotate when
// the access token expires; register [WithTokenRefreshHook] to be told.
//
// # Token Refresh
//
// When a request fails and [DefaultRefreshPolicy] reports an expired token,
// the session refreshes its tokens and sends the request exactly once more.
// Refreshing uses the "refresh_token" grant type; services that expect the
// legacy behaviour can set [WithRefreshGrantType] to "authorization_code".
//
// # Errors
//
// HTTP 400 and 409 responses carrying a JSON error envelope are returned as
// [*ServiceError]. Other non-2xx responses are returned as [*HTTPError].
// Missing or conflicting credentials passed to [New] produce a [*ConfigError]
// wrapping [ErrMissingGrant] or [ErrConflictingGrant].
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output.
package ggapi
