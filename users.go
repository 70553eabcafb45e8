package ggapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// UIN is a GG user number. The zero value refers to the authenticated user.
type UIN uint64

// DefaultFriendsLimit is used when [FriendsQuery.Limit] is not positive.
const DefaultFriendsLimit = 1000

func (u UIN) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// pathSegment formats u the way the API addresses users: "me" or "user,<uin>".
func (u UIN) pathSegment() string {
	if u == 0 {
		return "me"
	}
	return "user," + u.String()
}

// GetUser returns the public directory entry of uin, or of the authenticated
// user when uin is zero. The result is returned undecoded.
func (s *Session) GetUser(ctx context.Context, uin UIN) (json.RawMessage, error) {
	rawURL := fmt.Sprintf("%s/users/%s", s.options.endpoints.PubdirURL, uin.pathSegment())

	var user json.RawMessage
	if err := s.getResult(ctx, http.MethodGet, rawURL, nil, &user); err != nil {
		return nil, err
	}

	return user, nil
}

// FriendsQuery selects a page of a user's friends list.
type FriendsQuery struct {
	// UIN whose friends are listed. Zero means the authenticated user.
	UIN UIN

	Limit int

	// LastID is the opaque cursor from the last entry of the previous page.
	LastID uint64
}

func (q FriendsQuery) values() url.Values {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultFriendsLimit
	}

	v := url.Values{"limit": {strconv.Itoa(limit)}}
	if q.LastID != 0 {
		v.Set("lastId", strconv.FormatUint(q.LastID, 10))
	}
	return v
}

// GetFriends returns one page of friends. Entries are returned undecoded.
func (s *Session) GetFriends(ctx context.Context, q FriendsQuery) ([]json.RawMessage, error) {
	rawURL := fmt.Sprintf("%s/friends/%s?%s", s.options.endpoints.UsersURL, q.UIN.pathSegment(), q.values().Encode())

	var friends []json.RawMessage
	if err := s.getResult(ctx, http.MethodGet, rawURL, nil, &friends); err != nil {
		return nil, err
	}

	return friends, nil
}

// AvatarURL returns the avatar image URL of uin. It makes no request.
func (s *Session) AvatarURL(uin UIN) string {
	return s.options.endpoints.AvatarsURL + "/" + uin.String()
}
