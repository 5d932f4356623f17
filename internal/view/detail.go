package view

import (
	"io"

	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
)

// DetailView renders a single book and its recommendations.
type DetailView struct {
	Cards CardRenderer
}

// Render writes the book's attributes. The recommendation section is only
// present when recommendations is non-empty.
func (v DetailView) Render(w io.Writer, b book.Book, recommendations []book.Book) error {
	cards, err := RenderCards(v.Cards, recommendations)
	if err != nil {
		return err
	}
	return executeTo(w, detailPage, struct {
		Title string
		Book  book.Book
		Cards []Card
	}{Title: b.Title, Book: b, Cards: cards})
}
