// Package catalog combines the book store with recommendation selection
// for the list and detail pages.
package catalog

import (
	"context"

	"github.com/zhouzirui/z-bookstore/backend/internal/logging"
	"github.com/zhouzirui/z-bookstore/backend/internal/metrics"
	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
	"github.com/zhouzirui/z-bookstore/backend/internal/service/recommend"
)

// Detail is one book plus the books recommended alongside it.
type Detail struct {
	Book            book.Book   `json:"book"`
	Recommendations []book.Book `json:"recommendations"`
}

// Service answers catalog queries. It keeps no state between calls.
type Service struct {
	store  book.Store
	source string
	limit  int
}

type namedSource interface {
	SourceName() string
}

// NewService creates a Service. A non-positive limit falls back to
// recommend.DefaultLimit.
func NewService(store book.Store, limit int) *Service {
	if limit <= 0 {
		limit = recommend.DefaultLimit
	}
	source := "unknown"
	if named, ok := store.(namedSource); ok {
		source = named.SourceName()
	}
	return &Service{store: store, source: source, limit: limit}
}

// Limit reports how many recommendations Detail returns at most.
func (s *Service) Limit() int {
	return s.limit
}

// List returns every book in catalog order.
func (s *Service) List(ctx context.Context) ([]book.Book, error) {
	books, err := s.store.List(ctx)
	if err != nil {
		metrics.CatalogLoads.WithLabelValues(s.source, metrics.ResultError).Inc()
		logging.Ctx(ctx).Error().Err(err).Str("source", s.source).Msg("catalog: list failed")
		return nil, err
	}
	metrics.CatalogLoads.WithLabelValues(s.source, metrics.ResultOK).Inc()
	return books, nil
}

// Detail looks up id and selects its recommendations from the same load
// of the collection. It reports false when id is not in the catalog.
func (s *Service) Detail(ctx context.Context, id string) (Detail, bool, error) {
	books, err := s.List(ctx)
	if err != nil {
		metrics.CatalogLookups.WithLabelValues(metrics.ResultError).Inc()
		return Detail{}, false, err
	}

	found, ok := book.Find(books, id)
	if !ok {
		metrics.CatalogLookups.WithLabelValues(metrics.ResultNotFound).Inc()
		logging.Ctx(ctx).Debug().Str("book_id", id).Msg("catalog: book not found")
		return Detail{}, false, nil
	}
	metrics.CatalogLookups.WithLabelValues(metrics.ResultFound).Inc()

	return Detail{
		Book:            found,
		Recommendations: recommend.Recommend(books, id, s.limit),
	}, true, nil
}
