package book

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Decode parses a JSON array of books, keeping source order.
// Every record must carry a non-empty unique id and a non-negative price.
// The JSON decoder would replace invalid UTF-8 with U+FFFD, so the raw
// bytes are checked first.
func Decode(data []byte) ([]Book, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("decode books: invalid UTF-8")
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	if books == nil {
		return nil, errors.New("decode books: expected a JSON array")
	}

	seen := make(map[string]int, len(books))
	for i := range books {
		if err := getValidator().Struct(&books[i]); err != nil {
			return nil, fmt.Errorf("book at index %d: %w", i, err)
		}
		if prev, ok := seen[books[i].ID]; ok {
			return nil, fmt.Errorf("book at index %d: duplicate id %q (first at index %d)", i, books[i].ID, prev)
		}
		seen[books[i].ID] = i
	}
	return books, nil
}
