package fetch

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSourceReadsLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.bin")
	want := []byte("pretend image bytes")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	var c Client
	got, err := c.Source(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSourceMissingFile(t *testing.T) {
	var c Client
	if _, err := c.Source(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSourceFileOverCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.bin")
	if err := os.WriteFile(path, make([]byte, 64), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Client{MaxBytes: 16}
	_, err := c.Source(path)
	if err == nil || !strings.Contains(err.Error(), "larger than") {
		t.Fatalf("err = %v, want size cap error", err)
	}
}

func TestSourceFetchesURL(t *testing.T) {
	want := []byte("remote image bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("request has no User-Agent")
		}
		w.Write(want)
	}))
	defer srv.Close()

	var c Client
	got, err := c.Source(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSourceURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	var c Client
	if _, err := c.Source(srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestSourceURLOverCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 64))
	}))
	defer srv.Close()

	c := Client{MaxBytes: 16}
	if _, err := c.Source(srv.URL); err == nil {
		t.Fatal("expected error for oversized response")
	}
}
