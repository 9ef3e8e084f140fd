package config

import "time"

const (
	// Default translation model
	DefaultModel = "gemini-2.5-flash"

	// Model listing cache freshness window
	ModelCacheTTL = 300 * time.Second

	// OCR results longer than this are delivered as a document
	InlineTextLimit = 3500

	// Maximum .txt upload size accepted for direct translation
	MaxTxtChars = 15000

	// Per-page progress reports are sent only for the first pages of an archive
	ProgressReportPages = 2

	// Per-call timeouts for external backends
	OCRRequestTimeout       = 120 * time.Second
	TranslateRequestTimeout = 90 * time.Second
	ModelListTimeout        = 30 * time.Second
)

// ImageExtensions lists the file extensions treated as archive pages.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".webp", ".gif"}

// ArchiveExtensions lists the accepted archive container formats.
var ArchiveExtensions = []string{".zip", ".cbz", ".7z"}
