package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL, FetchOptions{})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Fetch = %q, want %q", data, "payload")
	}
	if !strings.HasPrefix(gotUserAgent, UserAgentName+"/") {
		t.Errorf("User-Agent = %q, want %q prefix", gotUserAgent, UserAgentName+"/")
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL, FetchOptions{}); err == nil {
		t.Error("Fetch succeeded on a 404 response, want error")
	}
}

func TestFetchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Fetch(ctx, server.URL, FetchOptions{}); err == nil {
		t.Error("Fetch succeeded with a cancelled context, want error")
	}
}

func TestFetchInvalidURL(t *testing.T) {
	if _, err := Fetch(context.Background(), "://bad-url", FetchOptions{}); err == nil {
		t.Error("Fetch succeeded with an invalid URL, want error")
	}
}
