package book

import "context"

// Store exposes read-only catalog queries for services and HTTP handlers.
type Store interface {
	// List returns the whole collection in source order.
	List(ctx context.Context) ([]Book, error)
	// FindByID reports false when no record matches; that is not an error.
	FindByID(ctx context.Context, id string) (Book, bool, error)
}

// MemoryStore implements Store with an in-memory slice, suitable for fixtures.
type MemoryStore struct {
	items []Book
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied books.
func NewMemoryStore(items []Book) *MemoryStore {
	return &MemoryStore{items: append([]Book(nil), items...)}
}

// List returns a copy of the stored books.
func (s *MemoryStore) List(_ context.Context) ([]Book, error) {
	return append([]Book(nil), s.items...), nil
}

// FindByID looks up a book by identifier.
func (s *MemoryStore) FindByID(_ context.Context, id string) (Book, bool, error) {
	b, ok := Find(s.items, id)
	return b, ok, nil
}

// SourceName labels fixture-backed stores in logs and metrics.
func (s *MemoryStore) SourceName() string {
	return "memory"
}

// Find returns the first book whose ID equals id exactly.
func Find(books []Book, id string) (Book, bool) {
	for _, item := range books {
		if item.ID == id {
			return item, true
		}
	}
	return Book{}, false
}
