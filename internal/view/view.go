// Package view renders the bookstore HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"price": FormatPrice,
}

var (
	catalogPage  = parsePage("catalog.tmpl")
	detailPage   = parsePage("detail.tmpl")
	notFoundPage = parsePage("not_found.tmpl")
	errorPage    = parsePage("error.tmpl")
)

func parsePage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.tmpl", "templates/"+name))
}

// FormatPrice renders a yen amount with thousands separators, e.g. ¥1,980.
func FormatPrice(price int) string {
	return "¥" + humanize.Comma(int64(price))
}

// executeTo renders into a buffer first so a failing template never leaves
// half a page on w.
func executeTo(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderNotFound writes the page shown when a book id does not resolve.
func RenderNotFound(w io.Writer, id string) error {
	return executeTo(w, notFoundPage, struct {
		Title string
		ID    string
	}{Title: "本が見つかりません", ID: id})
}

// RenderError writes the page shown when the catalog cannot be loaded.
func RenderError(w io.Writer) error {
	return executeTo(w, errorPage, struct{ Title string }{Title: "エラー"})
}
