package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
	"github.com/zhouzirui/z-bookstore/backend/internal/service/catalog"
)

func TestRunListing(t *testing.T) {
	svc := catalog.NewService(book.NewMemoryStore(book.Seed()), 3)
	var out bytes.Buffer

	if err := run(context.Background(), &out, svc, ""); err != nil {
		t.Fatalf("run err: %v", err)
	}
	if !strings.Contains(out.String(), "[2] プログラミング言語Go / Alan A. A. Donovan ¥4,180") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if !strings.HasSuffix(out.String(), "6 books\n") {
		t.Fatalf("missing summary line:\n%s", out.String())
	}
}

func TestRunDetail(t *testing.T) {
	svc := catalog.NewService(book.NewMemoryStore(book.Seed()), 3)
	var out bytes.Buffer

	if err := run(context.Background(), &out, svc, "2"); err != nil {
		t.Fatalf("run err: %v", err)
	}
	if !strings.Contains(out.String(), "recommended (3):\n  [1] ") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunDetailNotFound(t *testing.T) {
	svc := catalog.NewService(book.NewMemoryStore(book.Seed()), 3)

	if err := run(context.Background(), &bytes.Buffer{}, svc, "999"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}
