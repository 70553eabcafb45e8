package ggapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Recipient is the addressee of a notification: a single user or all friends
// of the authenticated user.
type Recipient string

// ToFriends addresses every friend of the authenticated user.
const ToFriends Recipient = "friends"

// ToUser addresses a single user.
func ToUser(uin UIN) Recipient {
	return Recipient(uin.pathSegment())
}

type statusResult struct {
	Status *int `json:"status"`
}

// SendNotification sends message to the recipient. It reports whether the
// service accepted it.
func (s *Session) SendNotification(ctx context.Context, to Recipient, message, link string) (bool, error) {
	if to == "" {
		return false, errors.New("notification recipient must be set")
	}

	data := url.Values{
		"to":      {string(to)},
		"message": {message},
	}
	if link != "" {
		data.Set("link", link)
	}

	return s.postStatus(ctx, fmt.Sprintf("%s/notification.%s", s.options.endpoints.LifeURL, responseType), data)
}

// Event is an entry posted to the authenticated user's dashboard.
type Event struct {
	Message string
	Link    string
	Image   string
}

// SendEvent posts e on the authenticated user's dashboard. It reports whether
// the service accepted it.
func (s *Session) SendEvent(ctx context.Context, e Event) (bool, error) {
	data := url.Values{"message": {e.Message}}
	if e.Link != "" {
		data.Set("link", e.Link)
	}
	if e.Image != "" {
		data.Set("image", e.Image)
	}

	return s.postStatus(ctx, fmt.Sprintf("%s/event.%s", s.options.endpoints.LifeURL, responseType), data)
}

func (s *Session) postStatus(ctx context.Context, rawURL string, data url.Values) (bool, error) {
	var result statusResult
	if err := s.getResult(ctx, http.MethodPost, rawURL, data, &result); err != nil {
		return false, err
	}

	if result.Status == nil {
		return false, fmt.Errorf("response from %s has no status", rawURL)
	}

	return *result.Status == 0, nil
}
