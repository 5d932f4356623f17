package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
)

// CardRenderer turns one book into a self-contained card fragment.
type CardRenderer interface {
	RenderCard(b book.Book) (template.HTML, error)
}

// Card variant names accepted by NewCardRenderer.
const (
	VariantPlain       = "plain"
	VariantMarketplace = "marketplace"
)

type templateCard struct {
	tmpl *template.Template
}

func (c templateCard) RenderCard(b book.Book) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, "card", b); err != nil {
		return "", fmt.Errorf("render card %q: %w", b.ID, err)
	}
	return template.HTML(buf.String()), nil
}

func parseCard(name string) templateCard {
	return templateCard{tmpl: template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name))}
}

var (
	// PlainCard shows a cover placeholder, title, author and price.
	PlainCard CardRenderer = parseCard("card_plain.tmpl")
	// MarketplaceCard adds a bestseller badge, a rating placeholder and an
	// add-to-cart button that does nothing.
	MarketplaceCard CardRenderer = parseCard("card_marketplace.tmpl")
)

// NewCardRenderer returns the renderer registered under variant.
func NewCardRenderer(variant string) (CardRenderer, error) {
	switch variant {
	case VariantPlain:
		return PlainCard, nil
	case VariantMarketplace:
		return MarketplaceCard, nil
	default:
		return nil, fmt.Errorf("unknown card variant %q", variant)
	}
}

// Card is a rendered card keyed by its book id.
type Card struct {
	ID   string
	HTML template.HTML
}

// RenderCards renders books in order. It only reads books.
func RenderCards(r CardRenderer, books []book.Book) ([]Card, error) {
	cards := make([]Card, 0, len(books))
	for _, b := range books {
		html, err := r.RenderCard(b)
		if err != nil {
			return nil, err
		}
		cards = append(cards, Card{ID: b.ID, HTML: html})
	}
	return cards, nil
}
