package main

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhouzirui/z-bookstore/backend/internal/config"
)

func TestNewRepositoryDefaultsToEmbedded(t *testing.T) {
	repo := newRepository(config.CatalogConfig{})

	if got := repo.SourceName(); got != "fs:data/books.json" {
		t.Fatalf("unexpected source %q", got)
	}
	books, err := repo.List(context.Background())
	if err != nil || len(books) == 0 {
		t.Fatalf("expected embedded books, got %d, %v", len(books), err)
	}
}

func TestNewRepositoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	repo := newRepository(config.CatalogConfig{DataPath: path})

	if got := repo.SourceName(); got != "file:"+path {
		t.Fatalf("unexpected source %q", got)
	}
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRunServerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, srv) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runServer err: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runServer did not return after cancel")
	}
}
