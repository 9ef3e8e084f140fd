package ocr

import (
	"context"
	"log/slog"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// LocalEngine runs Tesseract in-process. Extract never fails for a
// decodable image; any internal error degrades silently to "", which
// callers must treat as "no text found".
type LocalEngine struct{}

func NewLocalEngine() *LocalEngine {
	return &LocalEngine{}
}

func (e *LocalEngine) Extract(_ context.Context, path string) string {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		slog.Error("local ocr: set image", "path", path, "error", err)
		return ""
	}
	text, err := client.Text()
	if err != nil {
		slog.Error("local ocr: extract", "path", path, "error", err)
		return ""
	}
	return strings.TrimSpace(text)
}
