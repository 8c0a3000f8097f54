package geocoder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quixand/astro-transits/internal/common"
)

func TestResolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Beijing, China" {
			t.Errorf("query = %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "astro-test" {
			t.Errorf("user agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"39.9057136","lon":"116.3912972","display_name":"Beijing, China"}]`))
	}))
	defer server.Close()

	client := NewClient("astro-test", WithBaseURL(server.URL))
	coords, err := client.Resolve(context.Background(), "Beijing, China")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if coords.Latitude != 39.9057136 || coords.Longitude != 116.3912972 {
		t.Errorf("coords = %+v", coords)
	}
}

func TestResolveNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient("astro-test", WithBaseURL(server.URL))
	_, err := client.Resolve(context.Background(), "Atlantis")
	if !errors.Is(err, common.ErrLocationNotFound) {
		t.Errorf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestResolveTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient("astro-test", WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	_, err := client.Resolve(context.Background(), "Beijing, China")
	if !errors.Is(err, common.ErrGeocoderTimeout) {
		t.Errorf("expected ErrGeocoderTimeout, got %v", err)
	}
}

func TestResolveServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "over capacity", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient("astro-test", WithBaseURL(server.URL))
	_, err := client.Resolve(context.Background(), "Beijing, China")
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if errors.Is(err, common.ErrLocationNotFound) {
		t.Error("server error must not be reported as not-found")
	}
}
