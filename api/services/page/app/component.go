package app

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/tbeaudouin05/envpage/api/config"
	"github.com/tbeaudouin05/envpage/api/metrics"
	envapp "github.com/tbeaudouin05/envpage/api/services/env/app"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Component is the root display: a heading and a card whose paragraph holds
// TEST_ENV_VALUE. It is immutable once built and safe for concurrent use.
type Component struct {
	env   envapp.Env
	title string
}

// Option customizes a Component.
type Option func(*Component)

// WithTitle overrides the heading and document title.
func WithTitle(title string) Option {
	return func(c *Component) {
		if title != "" {
			c.title = title
		}
	}
}

// New builds the component around an already resolved env.
func New(env envapp.Env, opts ...Option) *Component {
	c := &Component{env: env, title: config.DefaultPageTitle}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// view is the template data.
type view struct {
	Title  string
	Text   string
	Script template.JS
}

// Title returns the heading text.
func (c *Component) Title() string { return c.title }

// Text returns the paragraph text.
func (c *Component) Text() string { return c.env.TestEnvValue }

// Env returns the env the component was built with.
func (c *Component) Env() envapp.Env { return c.env }

// Script returns the injection script assigning the env to window.__ENV__.
func (c *Component) Script() (string, error) {
	script, err := c.script()
	if err != nil {
		metrics.RenderErrorTotal.WithLabelValues(metrics.SurfaceScript).Inc()
		return "", err
	}
	metrics.RenderTotal.WithLabelValues(metrics.SurfaceScript).Inc()
	return script, nil
}

func (c *Component) script() (string, error) {
	// json.Marshal escapes <, > and &, so the result is safe inside <script>.
	b, err := json.Marshal(c.env)
	if err != nil {
		return "", fmt.Errorf("%w: encoding env: %v", ErrRender, err)
	}
	return fmt.Sprintf("window.%s = %s;", config.GlobalObject, b), nil
}

// Render writes the markup fragment to w.
func (c *Component) Render(w io.Writer) error {
	return c.execute(w, "fragment", metrics.SurfaceFragment, view{Title: c.title, Text: c.Text()})
}

// RenderDocument writes a complete HTML document, including the inline
// injection script, to w.
func (c *Component) RenderDocument(w io.Writer) error {
	script, err := c.script()
	if err != nil {
		metrics.RenderErrorTotal.WithLabelValues(metrics.SurfaceDocument).Inc()
		return err
	}
	return c.execute(w, "document", metrics.SurfaceDocument, view{
		Title:  c.title,
		Text:   c.Text(),
		Script: template.JS(script),
	})
}

// Document returns the rendered HTML document.
func (c *Component) Document() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.RenderDocument(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// execute renders into a buffer first so w never sees a partial page.
func (c *Component) execute(w io.Writer, name, surface string, data view) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		metrics.RenderErrorTotal.WithLabelValues(surface).Inc()
		return fmt.Errorf("%w: executing %s: %v", ErrRender, name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		metrics.RenderErrorTotal.WithLabelValues(surface).Inc()
		return fmt.Errorf("%w: writing %s: %v", ErrRender, name, err)
	}
	metrics.RenderTotal.WithLabelValues(surface).Inc()
	return nil
}
