package ggapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// do sends an authenticated request and returns the raw 2xx body. When the
// refresh policy reports an expired token the tokens are refreshed and the
// request is sent once more; the second outcome is returned as-is.
func (s *Session) do(ctx context.Context, method, rawURL string, data url.Values) ([]byte, error) {
	const maxAttempts = 2

	var resp *resty.Response
	var err error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err = s.execute(ctx, method, rawURL, data)
		if err != nil {
			return nil, err
		}

		if !resp.IsError() {
			return resp.Body(), nil
		}

		if attempt == maxAttempts || !s.options.refreshPolicy(resp) {
			break
		}

		s.options.requestLogger.Warnf("ggapi: access token expired (%s %s), refreshing", method, rawURL)

		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	return nil, responseError(resp, data)
}

// send is a single round trip with no expiry handling. Token endpoint calls use
// it so a failed refresh cannot trigger another refresh.
func (s *Session) send(ctx context.Context, method, rawURL string, data url.Values) ([]byte, error) {
	resp, err := s.execute(ctx, method, rawURL, data)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, responseError(resp, data)
	}

	return resp.Body(), nil
}

func (s *Session) execute(ctx context.Context, method, rawURL string, data url.Values) (*resty.Response, error) {
	req := s.client.R().SetContext(ctx)

	if token := s.accessToken(); token != "" {
		req.SetAuthScheme("OAuth").SetAuthToken(token)
	}

	if len(data) > 0 {
		req.SetFormDataFromValues(data)
	}

	resp, err := req.Execute(method, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, rawURL, err)
	}

	return resp, nil
}

func responseError(resp *resty.Response, data url.Values) error {
	body := resp.Body()

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusConflict:
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == "" {
			break
		}

		return &ServiceError{
			StatusCode: resp.StatusCode(),
			Code:       envelope.Error,
			Message:    envelope.Description,
			Args:       data,
		}
	}

	return &HTTPError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       body,
	}
}

// getResult performs the request and decodes the "result" member of the
// response envelope into v.
func (s *Session) getResult(ctx context.Context, method, rawURL string, data url.Values, v any) error {
	body, err := s.do(ctx, method, rawURL, data)
	if err != nil {
		return err
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", rawURL, err)
	}

	if len(envelope.Result) == 0 {
		return fmt.Errorf("response from %s has no result", rawURL)
	}

	if err := json.Unmarshal(envelope.Result, v); err != nil {
		return fmt.Errorf("failed to decode result from %s: %w", rawURL, err)
	}

	return nil
}
