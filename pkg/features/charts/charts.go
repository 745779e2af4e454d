// Package charts hands marked containers to named renderers.
//
// The engine draws nothing itself. Embedding code registers a renderer
// per chart name; each data-chart container is passed to the renderer
// its name selects. A name without a renderer is skipped with a debug
// log, never an error.
package charts

import (
	"fmt"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

// NameAttr carries a container's chart name.
const NameAttr = "data-chart"

// Renderer draws a chart into its container at mount.
type Renderer interface {
	Render(container *dom.Node) error
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(container *dom.Node) error

// Render implements Renderer.
func (f RenderFunc) Render(container *dom.Node) error {
	return f(container)
}

// Option configures a Registry.
type Option func(*Registry)

// WithRenderer registers a renderer under a chart name.
func WithRenderer(name string, r Renderer) Option {
	return func(reg *Registry) {
		if name != "" && r != nil {
			reg.renderers[name] = r
		}
	}
}

// Registry matches chart containers to renderers.
type Registry struct {
	renderers map[string]Renderer
}

// New returns a Registry with the given renderers. A registry with
// none skips itself at mount.
func New(opts ...Option) *Registry {
	reg := &Registry{renderers: make(map[string]Renderer)}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Name identifies the feature in mount reports.
func (reg *Registry) Name() string { return "charts" }

// Mount renders every container that names a registered renderer.
func (reg *Registry) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	if len(reg.renderers) == 0 {
		return page.ErrSkip
	}
	for _, container := range anchors {
		name := container.Attr(NameAttr)
		r, ok := reg.renderers[name]
		if !ok {
			ctx.Log.Debug("no renderer registered", "chart", name)
			continue
		}
		if err := r.Render(container); err != nil {
			return fmt.Errorf("charts: render %q: %w", name, err)
		}
	}
	return nil
}
