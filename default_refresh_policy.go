package ggapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ExpiredTokenCode is the error code the service uses for an expired access
// token.
const ExpiredTokenCode = "expired_token"

// RefreshPolicy reports whether a failed response means the access token has
// expired and should be refreshed before retrying the request once.
type RefreshPolicy func(*resty.Response) bool

// DefaultRefreshPolicy is the refresh condition used by [Session]. A JSON
// error envelope whose code is "expired_token" always matches. For responses
// other than 400 and 409, which carry structured errors, a body containing the
// text "expired_token" also matches.
//
// Supply a custom function via [WithRefreshPolicy] to override this behaviour.
func DefaultRefreshPolicy(r *resty.Response) bool {
	if r == nil || !r.IsError() {
		return false
	}

	body := r.Body()

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error == ExpiredTokenCode {
		return true
	}

	switch r.StatusCode() {
	case http.StatusBadRequest, http.StatusConflict:
		return false
	}

	return bytes.Contains(body, []byte(ExpiredTokenCode))
}
