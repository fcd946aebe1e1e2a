package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := New(5*time.Second, 0)
	body, err := c.GetBody(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetBody failed: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", body, "hello")
	}
}

func TestGetBody_NonSuccessStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(5*time.Second, 0)
	if _, err := c.GetBody(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 500 response")
	} else if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q does not mention the status", err)
	}
}

func TestPacingDelaysSecondRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(5*time.Second, 30*time.Millisecond)
	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := c.GetBody(context.Background(), srv.URL); err != nil {
			t.Fatalf("GetBody failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Errorf("three paced requests finished in %v, want at least 60ms", elapsed)
	}
}

func TestPacingHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(5*time.Second, time.Hour)
	if _, err := c.GetBody(context.Background(), srv.URL); err != nil {
		t.Fatalf("first request failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.GetBody(ctx, srv.URL); err == nil {
		t.Fatal("expected context deadline error while pacing")
	}
}
