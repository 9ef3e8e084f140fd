package domain

// JobKind discriminates the two OCR job shapes.
type JobKind string

const (
	JobArchive JobKind = "archive"
	JobImage   JobKind = "image"
)
