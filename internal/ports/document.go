package ports

import (
	"context"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

// DocumentLoader materialises a design document from an external source.
// Implementations translate infrastructure failures into domain error codes:
//   - missing files -> design.ErrCodeNotFound
//   - decode or schema failures -> design.ErrCodeValidation
//   - ctx cancellation -> design.ErrCodeCancelled
//   - unexpected I/O -> design.ErrCodeInternal with the cause wrapped
type DocumentLoader interface {
	Load(ctx context.Context, path string) (design.Document, error)
}

// DocumentWriter serialises a document. The format is chosen by the
// implementation, usually from the path extension.
type DocumentWriter interface {
	Save(ctx context.Context, path string, doc design.Document) error
}

// Renderer turns a resolved tree into a textual preview. Leaf primitives are
// opaque to the core; only resolved styles, properties and editor state cross
// this boundary.
type Renderer interface {
	Render(nodes []design.ResolvedNode, state design.EditorState) string
}
