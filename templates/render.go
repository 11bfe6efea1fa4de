// Package templates adapts gomponents trees to the templ.Component
// interface the handlers render.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component wraps a static node as a templ component
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// ComponentFunc builds the node at render time, with access to the request
// context (CSP nonce, cancellation).
func ComponentFunc(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return build(ctx).Render(w)
	})
}
