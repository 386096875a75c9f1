package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{
		BaseURL: "https://example.com",
		APIKey:  "",
	})
	if err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{
		BaseURL: "",
		APIKey:  "test-key",
	})
	if err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL: "https://example.com",
		APIKey:  "test-key",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.BaseURL() != "https://example.com" {
		t.Errorf("BaseURL() = %s", client.BaseURL())
	}
	if client.HTTPClient() == nil {
		t.Error("HTTPClient() is nil")
	}
	// No timeout is enforced unless configured.
	if client.HTTPClient().Timeout != 0 {
		t.Errorf("timeout = %v, want 0", client.HTTPClient().Timeout)
	}
}

func TestNewClient_Timeout(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL: "https://example.com",
		APIKey:  "test-key",
		Timeout: 30 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.HTTPClient().Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.HTTPClient().Timeout)
	}
}

func TestNewClient_CustomHTTPClient(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}

	client, err := NewClient(Config{
		BaseURL:    "https://example.com",
		APIKey:     "test-key",
		HTTPClient: customHTTPClient,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.HTTPClient() != customHTTPClient {
		t.Error("custom HTTP client not set")
	}
}

func TestClient_Do_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "em_1"})
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	var result struct {
		ID string `json:"id"`
	}
	if err := client.Do(context.Background(), "POST", "/emails", map[string]string{"from": "a@b.c"}, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result.ID != "em_1" {
		t.Errorf("result.ID = %q, want em_1", result.ID)
	}
}

func TestClient_Do_Created(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "em_1"})
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	var result struct {
		ID string `json:"id"`
	}
	if err := client.Do(context.Background(), "POST", "/emails", nil, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result.ID != "em_1" {
		t.Errorf("result.ID = %q, want em_1", result.ID)
	}
}

func TestClient_Do_NoRetries(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	if err := client.Do(context.Background(), "GET", "/emails/em_1", nil, nil); err == nil {
		t.Fatal("expected error for 503 response")
	}
	if atomic.LoadInt32(&attempts) != 1 {
		t.Errorf("attempts = %d, want exactly 1 (no retries)", attempts)
	}
}

func TestClient_Do_ExtraHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Idempotency-Key"); got != "key-9" {
			t.Errorf("Idempotency-Key = %q, want key-9", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "em_1"})
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	extra := make(http.Header)
	extra.Set("Idempotency-Key", "key-9")
	if err := client.DoWithHeaders(context.Background(), "POST", "/emails", nil, nil, extra); err != nil {
		t.Fatalf("DoWithHeaders() error = %v", err)
	}
}

func TestClient_Do_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, _ := NewClient(Config{BaseURL: serverURL, APIKey: "test-key"})

	err := client.Do(context.Background(), "GET", "/emails/em_1", nil, nil)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Do() error = %v, want *NetworkError", err)
	}
	if netErr.Err == nil {
		t.Error("NetworkError.Err = nil, want the underlying cause")
	}
}

func TestClient_Do_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	var result struct{ ID string }
	err := client.Do(context.Background(), "GET", "/emails/em_1", nil, &result)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Do() error = %v, want *NetworkError for malformed body", err)
	}
}

func TestClient_Do_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.Do(ctx, "GET", "/emails/em_1", nil, nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}
