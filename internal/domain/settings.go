package domain

import "fmt"

// OCRMode selects the text extraction backend.
type OCRMode string

const (
	OCRLocal  OCRMode = "local"
	OCROnline OCRMode = "online"
)

// ParseOCRMode validates a user-supplied mode string.
func ParseOCRMode(s string) (OCRMode, error) {
	switch OCRMode(s) {
	case OCRLocal, OCROnline:
		return OCRMode(s), nil
	default:
		return "", Validationf(fmt.Sprintf("unknown OCR mode %q, use local or online", s))
	}
}

// Settings holds a chat's translation preferences. Jobs snapshot a copy
// at start and never re-read, so a concurrent /model or /ocrmode command
// cannot change an in-flight job's behavior.
type Settings struct {
	OCRMode    OCRMode
	Model      string
	StyleGuide string
}
