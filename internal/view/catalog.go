package view

import (
	"io"

	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
)

// Link is a navigation link rendered above a listing.
type Link struct {
	Href  string
	Label string
}

// CatalogPage is the input of a listing page.
type CatalogPage struct {
	Heading  string
	BackLink *Link
	Books    []book.Book
}

// CatalogView renders a listing with whichever card style it is given.
type CatalogView struct {
	Cards CardRenderer
}

// Render writes one card per book, in order.
func (v CatalogView) Render(w io.Writer, page CatalogPage) error {
	cards, err := RenderCards(v.Cards, page.Books)
	if err != nil {
		return err
	}
	return executeTo(w, catalogPage, struct {
		Title string
		Page  CatalogPage
		Cards []Card
	}{Title: page.Heading, Page: page, Cards: cards})
}
