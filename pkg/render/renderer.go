package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Renderer converts a form into a byte representation (HTML, ANSI text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, options Options) ([]byte, error)
}
