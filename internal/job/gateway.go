package job

import (
	"context"
	"io"

	"github.com/kavyabhat/scanlate/internal/domain"
)

// Gateway is the outbound chat capability jobs report through. Progress
// reports are plain text sends; artifacts go out as documents.
type Gateway interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, filename, caption string, r io.Reader) error
}

// Extractor is the opaque OCR capability, already unified over both
// backends. It returns text only; failures surface as page content.
type Extractor interface {
	Extract(ctx context.Context, path string, mode domain.OCRMode) string
}
