package job

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kavyabhat/scanlate/internal/archive"
	"github.com/kavyabhat/scanlate/internal/config"
	"github.com/kavyabhat/scanlate/internal/domain"
)

// ArchiveJob walks an unpacked archive page by page: extract, scan,
// sequential OCR with cancellation checks at page boundaries,
// aggregation, delivery of the transcript as a document. Settings are a
// snapshot taken when the upload was accepted, never re-read mid-run.
type ArchiveJob struct {
	job         *Job
	gw          Gateway
	ocr         Extractor
	settings    domain.Settings
	archivePath string
	scratchDir  string
}

func NewArchiveJob(j *Job, gw Gateway, ocr Extractor, settings domain.Settings, archivePath, scratchDir string) *ArchiveJob {
	return &ArchiveJob{
		job:         j,
		gw:          gw,
		ocr:         ocr,
		settings:    settings,
		archivePath: archivePath,
		scratchDir:  scratchDir,
	}
}

// Run drives the job to completion. Scratch removal and registry
// deregistration belong to the runner, not to Run, so every exit path
// below is just a return.
func (a *ArchiveJob) Run(ctx context.Context) {
	chatID := a.job.ChatID
	mode := strings.ToUpper(string(a.settings.OCRMode))

	a.gw.SendText(ctx, chatID, fmt.Sprintf("Extracting archive — using %s OCR...", mode))

	extractDir := filepath.Join(a.scratchDir, "extracted")
	if err := archive.Unpack(a.archivePath, extractDir); err != nil {
		slog.Error("archive extraction failed", "chat_id", chatID, "error", err)
		a.gw.SendText(ctx, chatID, fmt.Sprintf("Error extracting archive: %v", err))
		return
	}

	pages, err := archive.ScanImages(extractDir)
	if err != nil {
		slog.Error("archive scan failed", "chat_id", chatID, "error", err)
		a.gw.SendText(ctx, chatID, fmt.Sprintf("Error reading archive contents: %v", err))
		return
	}
	if len(pages) == 0 {
		a.gw.SendText(ctx, chatID, "No images found inside the archive.")
		return
	}

	var transcript strings.Builder
	for i, page := range pages {
		if a.job.Cancelled() {
			slog.Info("archive job cancelled", "chat_id", chatID, "done_pages", i, "total_pages", len(pages))
			a.gw.SendText(ctx, chatID, "OCR cancelled.")
			return
		}

		text := a.ocr.Extract(ctx, page, a.settings.OCRMode)
		name := filepath.Base(page)
		fmt.Fprintf(&transcript, "\n\n--- %s ---\n%s", name, text)

		// Only the first pages get immediate reports, to avoid flooding
		// long archives.
		if i < config.ProgressReportPages {
			a.gw.SendText(ctx, chatID, fmt.Sprintf("%s (%d/%d):\n\n%s", name, i+1, len(pages), text))
		}
	}

	result := transcript.String()
	if strings.TrimSpace(result) == "" {
		a.gw.SendText(ctx, chatID, "OCR complete, but no text detected.")
		return
	}

	base := filepath.Base(a.archivePath)
	docName := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
	caption := fmt.Sprintf("OCR complete in %s mode.", mode)
	if err := a.gw.SendDocument(ctx, chatID, docName, caption, strings.NewReader(result)); err != nil {
		slog.Error("deliver transcript", "chat_id", chatID, "error", err)
		a.gw.SendText(ctx, chatID, "Could not deliver the result document.")
	}
}
