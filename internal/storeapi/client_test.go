package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:3000/")

	if client.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %s, want http://localhost:3000", client.BaseURL)
	}

	if client.HTTPClient == nil {
		t.Fatal("HTTPClient should not be nil")
	}

	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("")

	if client.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", client.BaseURL, DefaultBaseURL)
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClient("")
	client.SetTimeout(5 * time.Second)

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

func TestUpdateStore_Success(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		if r.Method != http.MethodPatch {
			t.Errorf("Request method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/api/stores/store-1" {
			t.Errorf("Request path = %s, want /api/stores/store-1", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", ct)
		}
		if _, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err != nil {
			t.Errorf("%s header is not a UUID: %v", RequestIDHeader, err)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		if len(body) != 1 || body["label"] != "Summer sale" {
			t.Errorf("body = %v, want {label: Summer sale}", body)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"store-1","name":"Summer sale"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdateStore(context.Background(), "store-1", &LabelUpdate{Label: "Summer sale"})
	if err != nil {
		t.Fatalf("UpdateStore() error = %v, want nil", err)
	}

	if calls != 1 {
		t.Errorf("server received %d requests, want 1", calls)
	}
}

func TestDeleteStore_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Request method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/api/stores/store-1" {
			t.Errorf("Request path = %s, want /api/stores/store-1", r.URL.Path)
		}
		if r.ContentLength > 0 {
			t.Errorf("DELETE should not send a body, got %d bytes", r.ContentLength)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.DeleteStore(context.Background(), "store-1"); err != nil {
		t.Fatalf("DeleteStore() error = %v, want nil", err)
	}
}

func TestDo_AnyTwoXXIsSuccess(t *testing.T) {
	for _, status := range []int{200, 201, 202, 204, 299} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(server.URL)
		if err := client.DeleteStore(context.Background(), "s"); err != nil {
			t.Errorf("status %d: DeleteStore() error = %v, want nil", status, err)
		}

		server.Close()
	}
}

func TestDo_NonTwoXXIsHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"redirect", http.StatusFound, ""},
		{"bad request", http.StatusBadRequest, "Label is required"},
		{"unauthenticated", http.StatusUnauthorized, "Unauthenticated"},
		{"conflict", http.StatusConflict, "billboard in use"},
		{"server error", http.StatusInternalServerError, "Internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status == http.StatusFound {
					// No Location header so the client surfaces the 302 itself.
					w.WriteHeader(tt.status)
					return
				}
				http.Error(w, tt.body, tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			err := client.UpdateStore(context.Background(), "s", &LabelUpdate{Label: "x"})
			if err == nil {
				t.Fatal("UpdateStore() should return error")
			}

			if !IsHTTPError(err) {
				t.Errorf("error should be HTTP error, got %T: %v", err, err)
			}
			if IsNetworkError(err) {
				t.Error("HTTP error should not be classified as network error")
			}
			if got := StatusCode(err); got != tt.status {
				t.Errorf("StatusCode() = %d, want %d", got, tt.status)
			}
			if tt.body != "" && !strings.Contains(err.Error(), tt.body) {
				t.Errorf("error %q should contain response body %q", err.Error(), tt.body)
			}
		})
	}
}

func TestDo_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL)
	err := client.DeleteStore(context.Background(), "s")
	if err == nil {
		t.Fatal("DeleteStore() should return error for closed server")
	}

	if !IsNetworkError(err) {
		t.Errorf("error should be network error, got %T: %v", err, err)
	}
}

func TestDo_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL)
	client.SetTimeout(50 * time.Millisecond)

	err := client.DeleteStore(context.Background(), "s")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error should be *APIError, got %T: %v", err, err)
	}
	if apiErr.Type != ErrTypeTimeout {
		t.Errorf("Type = %v, want %v", apiErr.Type, ErrTypeTimeout)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	err := client.DeleteStore(ctx, "s")
	if err == nil {
		t.Fatal("DeleteStore() should fail with canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error should wrap context.Canceled, got %v", err)
	}
}

func TestDo_NoRetry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_ = client.UpdateStore(context.Background(), "s", &LabelUpdate{Label: "x"})

	if calls != 1 {
		t.Errorf("server received %d requests, want exactly 1", calls)
	}
}
