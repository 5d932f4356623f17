package book

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Repository is a Store backed by a Source. Without WithCache every call
// re-reads the source, so edits to the file show up on the next request.
type Repository struct {
	source Source
	cache  bool

	mu     sync.RWMutex
	loaded []Book
}

// Option configures a Repository.
type Option func(*Repository)

// WithCache keeps the first successfully decoded collection and serves it
// for every later call.
func WithCache() Option {
	return func(r *Repository) {
		r.cache = true
	}
}

// NewRepository creates a Repository reading from source.
func NewRepository(source Source, opts ...Option) *Repository {
	r := &Repository{source: source}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SourceName identifies the underlying source for logs and metrics.
func (r *Repository) SourceName() string {
	return r.source.Name()
}

// List loads the whole collection.
func (r *Repository) List(ctx context.Context) ([]Book, error) {
	books, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]Book(nil), books...), nil
}

// FindByID loads the collection and looks up id.
func (r *Repository) FindByID(ctx context.Context, id string) (Book, bool, error) {
	books, err := r.load(ctx)
	if err != nil {
		return Book{}, false, err
	}
	b, ok := Find(books, id)
	return b, ok, nil
}

func (r *Repository) load(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.cache {
		r.mu.RLock()
		loaded := r.loaded
		r.mu.RUnlock()
		if loaded != nil {
			return loaded, nil
		}
	}

	books, err := readSource(r.source)
	if err != nil {
		return nil, err
	}

	if r.cache {
		r.mu.Lock()
		if r.loaded == nil {
			r.loaded = books
		}
		books = r.loaded
		r.mu.Unlock()
	}
	return books, nil
}

// readSource opens, fully reads and closes the source before parsing, so a
// caller never observes a partially read collection.
func readSource(src Source) ([]Book, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, &DataSourceError{Source: src.Name(), Err: err}
	}

	data, readErr := io.ReadAll(rc)
	closeErr := rc.Close()
	if readErr != nil {
		return nil, &DataSourceError{Source: src.Name(), Err: fmt.Errorf("read: %w", readErr)}
	}
	if closeErr != nil {
		return nil, &DataSourceError{Source: src.Name(), Err: fmt.Errorf("close: %w", closeErr)}
	}

	books, err := Decode(data)
	if err != nil {
		return nil, &DataSourceError{Source: src.Name(), Err: err}
	}
	return books, nil
}
