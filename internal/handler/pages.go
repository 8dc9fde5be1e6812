package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

type pages struct {
	tmpl *template.Template
}

func newPages() *pages {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
		"currency": func(c entities.Currency) string { return strings.ToUpper(string(c)) },
	}
	return &pages{
		tmpl: template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")),
	}
}

// render buffers the page, nothing is written when the template fails.
func (p *pages) render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
