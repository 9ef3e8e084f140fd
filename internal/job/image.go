package job

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kavyabhat/scanlate/internal/config"
	"github.com/kavyabhat/scanlate/internal/domain"
)

// ImageJob OCRs a single photo. Results past the inline message ceiling
// are delivered as a document; chat messages have a practical size
// limit the core must respect.
type ImageJob struct {
	job       *Job
	gw        Gateway
	ocr       Extractor
	settings  domain.Settings
	imagePath string
}

func NewImageJob(j *Job, gw Gateway, ocr Extractor, settings domain.Settings, imagePath string) *ImageJob {
	return &ImageJob{
		job:       j,
		gw:        gw,
		ocr:       ocr,
		settings:  settings,
		imagePath: imagePath,
	}
}

func (j *ImageJob) Run(ctx context.Context) {
	chatID := j.job.ChatID

	text := j.ocr.Extract(ctx, j.imagePath, j.settings.OCRMode)
	if strings.TrimSpace(text) == "" {
		j.gw.SendText(ctx, chatID, "No text detected in the image.")
		return
	}

	if utf8.RuneCountInString(text) > config.InlineTextLimit {
		base := filepath.Base(j.imagePath)
		docName := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
		if err := j.gw.SendDocument(ctx, chatID, docName, "OCR result (full text)", strings.NewReader(text)); err != nil {
			slog.Error("deliver ocr document", "chat_id", chatID, "error", err)
			j.gw.SendText(ctx, chatID, "Could not deliver the result document.")
		}
		return
	}

	j.gw.SendText(ctx, chatID, fmt.Sprintf("Extracted Text:\n\n%s", text))
}
