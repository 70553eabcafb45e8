package ggapi

import (
	"context"
	"net/http"
	"testing"
)

func TestSendNotification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{"accepted", `{"result":{"status":0}}`, true},
		{"rejected", `{"result":{"status":1}}`, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, rec := newTestServer(t, func(w http.ResponseWriter, _ *http.Request, _ capturedRequest) {
				writeJSON(w, http.StatusOK, tt.body)
			})

			s := newTestSession(t, server)

			ok, err := s.SendNotification(context.Background(), ToUser(12345), "hi", "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ok != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, ok)
			}

			calls := rec.byPath("/notification.json")
			if len(calls) != 1 {
				t.Fatalf("expected one request to /notification.json, got %d", len(calls))
			}

			call := calls[0]
			if call.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", call.Method)
			}

			if call.Form.Get("to") != "user,12345" {
				t.Errorf("expected to=user,12345, got %s", call.Form.Get("to"))
			}

			if call.Form.Get("message") != "hi" {
				t.Errorf("expected message=hi, got %s", call.Form.Get("message"))
			}

			if call.Form.Has("link") {
				t.Error("expected no link")
			}
		})
	}
}

func TestSendNotification_ToFriendsWithLink(t *testing.T) {
	t.Parallel()

	server, rec := newTestServer(t, func(w http.ResponseWriter, _ *http.Request, _ capturedRequest) {
		writeJSON(w, http.StatusOK, `{"result":{"status":0}}`)
	})

	s := newTestSession(t, server)

	if _, err := s.SendNotification(context.Background(), ToFriends, "hello all", "https://example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := rec.byPath("/notification.json")[0]

	if call.Form.Get("to") != "friends" {
		t.Errorf("expected to=friends, got %s", call.Form.Get("to"))
	}

	if call.Form.Get("link") != "https://example.com" {
		t.Errorf("expected link, got %s", call.Form.Get("link"))
	}
}

func TestSendNotification_EmptyRecipient(t *testing.T) {
	t.Parallel()

	server, rec := newTestServer(t, func(w http.ResponseWriter, _ *http.Request, _ capturedRequest) {
		w.WriteHeader(http.StatusOK)
	})

	s := newTestSession(t, server)

	if _, err := s.SendNotification(context.Background(), "", "hi", ""); err == nil {
		t.Fatal("expected error for empty recipient")
	}

	if got := len(rec.byPath("/notification.json")); got != 0 {
		t.Errorf("expected no request, got %d", got)
	}
}

func TestSendNotification_MissingStatus(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request, _ capturedRequest) {
		writeJSON(w, http.StatusOK, `{"result":{}}`)
	})

	s := newTestSession(t, server)

	if _, err := s.SendNotification(context.Background(), ToFriends, "hi", ""); err == nil {
		t.Fatal("expected error for missing status")
	}
}

func TestSendEvent(t *testing.T) {
	t.Parallel()

	server, rec := newTestServer(t, func(w http.ResponseWriter, _ *http.Request, _ capturedRequest) {
		writeJSON(w, http.StatusOK, `{"result":{"status":0}}`)
	})

	s := newTestSession(t, server)

	ok, err := s.SendEvent(context.Background(), Event{
		Message: "new post",
		Link:    "https://example.com/post",
		Image:   "https://example.com/post.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !ok {
		t.Error("expected event to be accepted")
	}

	call := rec.byPath("/event.json")[0]

	expected := map[string]string{
		"message": "new post",
		"link":    "https://example.com/post",
		"image":   "https://example.com/post.png",
	}
	for key, want := range expected {
		if got := call.Form.Get(key); got != want {
			t.Errorf("expected %s=%s, got %s", key, want, got)
		}
	}
}

func TestSendEvent_MessageOnly(t *testing.T) {
	t.Parallel()

	server, rec := newTestServer(t, func(w http.ResponseWriter, _ *http.Request, _ capturedRequest) {
		writeJSON(w, http.StatusOK, `{"result":{"status":3}}`)
	})

	s := newTestSession(t, server)

	ok, err := s.SendEvent(context.Background(), Event{Message: "status update"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ok {
		t.Error("expected non-zero status to report failure")
	}

	call := rec.byPath("/event.json")[0]
	if call.Form.Has("link") || call.Form.Has("image") {
		t.Errorf("expected only message, got %v", call.Form)
	}
}
