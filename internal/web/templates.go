package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/phrazzld/unit-converter/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names an HTML view.
type Page string

// Available pages.
const (
	PageHome   Page = "home.html"
	PageForm   Page = "form.html"
	PageResult Page = "result.html"
)

var pages = []Page{PageHome, PageForm, PageResult}

// FormValues echoes submitted form fields back into a page.
type FormValues struct {
	Value    string
	FromUnit domain.UnitID
	ToUnit   domain.UnitID
}

// PageData is the view model shared by every page.
type PageData struct {
	Title      string
	Categories []domain.Category

	// Category is empty on the home page and on results for an unknown category.
	Category domain.Category
	Units    []domain.Unit
	Form     FormValues

	Result  *domain.ConversionResult
	Error   string
	TraceID string
}

// Renderer executes the embedded templates.
type Renderer struct {
	pages map[Page]*template.Template
}

// NewRenderer parses every page together with the base layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[Page]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := template.New("base.html").ParseFS(templateFS, "templates/base.html", "templates/"+string(p))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", p, err)
		}
		r.pages[p] = t
	}
	return r, nil
}

// Render writes page to w using data.
func (r *Renderer) Render(w io.Writer, page Page, data PageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	return nil
}
