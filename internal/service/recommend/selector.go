// Package recommend picks the books shown next to a detail page.
package recommend

import "github.com/zhouzirui/z-bookstore/backend/internal/model/book"

// DefaultLimit is the number of recommendations on a detail page.
const DefaultLimit = 3

// Recommend returns the first limit books whose ID differs from excludeID,
// in collection order. Selection is positional: the same input always yields
// the same output, and a short collection yields a short result.
func Recommend(all []book.Book, excludeID string, limit int) []book.Book {
	if limit <= 0 {
		return []book.Book{}
	}

	size := limit
	if len(all) < size {
		size = len(all)
	}
	picked := make([]book.Book, 0, size)
	for _, b := range all {
		if len(picked) == limit {
			break
		}
		if b.ID == excludeID {
			continue
		}
		picked = append(picked, b)
	}
	return picked
}
