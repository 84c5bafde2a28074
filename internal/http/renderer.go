package httpx

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates
var templateFS embed.FS

// TemplateRenderer renders HTML pages for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// NewTemplateRenderer parses the embedded page and partial templates.
func NewTemplateRenderer(logger *slog.Logger) (*TemplateRenderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	t, err := template.New("root").ParseFS(templateFS,
		"templates/pages/*.tmpl",
		"templates/partials/*.tmpl",
	)
	if err != nil {
		logger.Error("template parsing failed", slog.Any("error", err))
		return nil, err
	}
	return &TemplateRenderer{t: t, logger: logger}, nil
}

// Render executes the named page template and writes it as HTML.
// The template is executed into a buffer first so a mid-render failure
// never produces a half-written response body.
func (r *TemplateRenderer) Render(w http.ResponseWriter, name string, data any) error {
	return r.render(w, http.StatusOK, name, data)
}

// RenderStatus is Render with an explicit HTTP status code.
func (r *TemplateRenderer) RenderStatus(w http.ResponseWriter, code int, name string, data any) error {
	return r.render(w, code, name, data)
}

func (r *TemplateRenderer) render(w http.ResponseWriter, code int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("template execution failed",
			slog.String("template", name),
			slog.Any("error", err),
		)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		return err
	}
	return nil
}
