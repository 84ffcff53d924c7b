package interfaces

import (
	"context"
	"io"
)

// IPDFTextExtractor abstracts the PDF text-extraction provider.
//
// The import use case only needs the plain text of the document; how it is
// obtained (library, external service) stays behind this port so the flow is
// testable without real PDF files.
type IPDFTextExtractor interface {
	ExtractText(ctx context.Context, r io.ReaderAt, size int64) (string, error)
}
