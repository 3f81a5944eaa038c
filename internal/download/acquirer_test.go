package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasmeira/rosary-digest/internal/logger"
)

func TestFetch(t *testing.T) {
	payload := []byte("fake mp3 bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "Day 1- Test.mp3")
	a := New(srv.Client(), logger.New("error"))

	size, err := a.Fetch(context.Background(), srv.URL, dest)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if size != int64(len(payload)) {
		t.Errorf("size = %d, want %d", size, len(payload))
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("content mismatch: %q", data)
	}
}

func TestFetchReusesExistingFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "Day 1- Test.mp3")
	if err := os.WriteFile(dest, []byte("already here"), 0644); err != nil {
		t.Fatal(err)
	}

	// No server: an existing file must short-circuit the network entirely.
	a := New(http.DefaultClient, logger.New("error"))
	size, err := a.Fetch(context.Background(), "http://127.0.0.1:1/unreachable", dest)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if size != int64(len("already here")) {
		t.Errorf("size = %d", size)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "missing.mp3")
	a := New(srv.Client(), logger.New("error"))

	_, err := a.Fetch(context.Background(), srv.URL, dest)
	if !errors.Is(err, ErrDownloadFailed) {
		t.Errorf("error = %v, want ErrDownloadFailed", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("destination file should not exist after HTTP error")
	}
}

func TestFetchInterruptedLeavesNoFile(t *testing.T) {
	// Announce more bytes than are sent, then drop the connection: the
	// client sees an unexpected EOF mid-transfer.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "4096")
		w.Write([]byte("only a fragment"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "interrupted.mp3")
	a := New(srv.Client(), logger.New("error"))

	_, err := a.Fetch(context.Background(), srv.URL, dest)
	if !errors.Is(err, ErrDownloadFailed) {
		t.Errorf("error = %v, want ErrDownloadFailed", err)
	}

	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("partial download must not be visible at the destination path")
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("download dir should be empty, found %d entries", len(entries))
	}
}

func TestFetchUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0755)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	dest := filepath.Join(dir, "blocked.mp3")
	a := New(srv.Client(), logger.New("error"))

	_, err := a.Fetch(context.Background(), srv.URL, dest)
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Errorf("error = %v, want ErrInsufficientSpace", err)
	}
}
