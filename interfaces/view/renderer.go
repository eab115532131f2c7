package view

import (
	"fmt"
	"html/template"
	"io"

	"media-portal/web"
)

// PageData is shared by every page template
type PageData struct {
	Title  string
	Lang   string
	Search string
	Path   string
	Modal  template.HTML
}

// Renderer executes the page templates embedded in package web
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(web.FS, "components/*.gohtml", "pages/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page
func (r *Renderer) Render(w io.Writer, name string, data PageData) error {
	if data.Lang == "" {
		data.Lang = LocaleRomanian
	}
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render page %s: %w", name, err)
	}
	return nil
}
