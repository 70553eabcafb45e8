package ggapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

const (
	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeRefreshToken      = "refresh_token"
)

// Credentials identify the application to the token endpoint.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// TokenPair is the access and refresh token issued by the token endpoint.
// The library does not persist it; read it with [Session.Tokens].
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// OAuth2Token converts the pair for use with golang.org/x/oauth2 helpers.
func (p TokenPair) OAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "OAuth",
	}
}

func TokenPairFromOAuth2(t *oauth2.Token) TokenPair {
	if t == nil {
		return TokenPair{}
	}
	return TokenPair{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}
}

func (s *Session) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.credentials.ClientID,
		ClientSecret: s.credentials.ClientSecret,
		RedirectURL:  s.credentials.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   s.options.endpoints.AuthorizeURL,
			TokenURL:  s.options.endpoints.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthCodeURL returns the authorize page URL the host application redirects
// the user to. The service sends the user back to the redirect URI with a
// code to pass to [WithAuthorizationCode].
func (s *Session) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return s.oauth2Config().AuthCodeURL(state, opts...)
}

// AuthCodeURL builds the authorize page URL without a Session, which cannot
// exist before the user has granted access.
func AuthCodeURL(creds Credentials, state string, opts ...oauth2.AuthCodeOption) string {
	s := &Session{credentials: creds, options: newClientOptions()}
	return s.AuthCodeURL(state, opts...)
}

// Tokens returns the current token pair so the caller can store it.
func (s *Session) Tokens() TokenPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

func (s *Session) accessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.AccessToken
}

// exchangeCode trades a one-time authorization code for a token pair.
func (s *Session) exchangeCode(ctx context.Context, code string) error {
	data := s.tokenRequestData()
	data.Set("code", code)
	data.Set("grant_type", GrantTypeAuthorizationCode)

	s.options.requestLogger.Debugf("ggapi: exchanging authorization code at %s", s.options.endpoints.TokenURL)

	pair, err := s.requestToken(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if pair.RefreshToken == "" {
		return errors.New("failed to exchange authorization code: token response has no refresh_token")
	}

	s.setTokens(pair)
	return nil
}

// Refresh obtains a new token pair using the current refresh token.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.tokens.RefreshToken
	s.mu.RUnlock()

	if refreshToken == "" {
		return errors.New("no refresh token available")
	}

	data := s.tokenRequestData()
	data.Set("refresh_token", refreshToken)
	data.Set("grant_type", s.options.refreshGrantType)

	s.options.requestLogger.Debugf("ggapi: refreshing access token (grant_type=%s)", s.options.refreshGrantType)

	pair, err := s.requestToken(ctx, data)
	if err != nil {
		s.options.requestLogger.Errorf("ggapi: token refresh failed: %v", err)
		return fmt.Errorf("failed to refresh token: %w", err)
	}

	// The endpoint may omit refresh_token when it does not rotate it.
	if pair.RefreshToken == "" {
		pair.RefreshToken = refreshToken
	}

	s.setTokens(pair)
	return nil
}

func (s *Session) tokenRequestData() url.Values {
	return url.Values{
		"client_id":     {s.credentials.ClientID},
		"client_secret": {s.credentials.ClientSecret},
		"redirect_uri":  {s.credentials.RedirectURI},
	}
}

func (s *Session) requestToken(ctx context.Context, data url.Values) (TokenPair, error) {
	body, err := s.send(ctx, http.MethodPost, s.options.endpoints.TokenURL, data)
	if err != nil {
		return TokenPair{}, err
	}

	var pair TokenPair
	if err := json.Unmarshal(body, &pair); err != nil {
		return TokenPair{}, fmt.Errorf("failed to decode token response: %w", err)
	}

	if pair.AccessToken == "" {
		return TokenPair{}, errors.New("token response has no access_token")
	}

	return pair, nil
}

func (s *Session) setTokens(pair TokenPair) {
	s.mu.Lock()
	s.tokens = pair
	s.mu.Unlock()

	if s.options.refreshHook != nil {
		s.options.refreshHook(pair)
	}
}
