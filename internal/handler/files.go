package handler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kavyabhat/scanlate/internal/config"
	"github.com/kavyabhat/scanlate/internal/domain"
	"github.com/kavyabhat/scanlate/internal/job"
	tg "github.com/kavyabhat/scanlate/internal/telegram"
)

const unsupportedFileText = "Unsupported file.\n\n" +
	"Send:\n" +
	"• `.zip`, `.cbz`, `.7z` (image archives)\n" +
	"• Images (JPG, PNG, etc.)\n" +
	"• `.txt` files for direct translation"

// HandleDocument dispatches an uploaded file: archives start an
// ArchiveJob, .txt goes straight to translation, anything else gets a
// usage message.
func (h *Handler) HandleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Document == nil {
		return
	}
	chatID := msg.Chat.ID
	doc := msg.Document
	name := strings.ToLower(doc.FileName)

	switch {
	case isArchiveName(name):
		h.startArchiveJob(ctx, b, chatID, doc)
	case strings.HasSuffix(name, ".txt"):
		h.translateTxtUpload(ctx, b, chatID, doc)
	default:
		tg.SendLongMessage(ctx, b, chatID, unsupportedFileText)
	}
}

// checkTxtContent gates direct translation of .txt uploads. It runs
// before the translator is ever invoked.
func checkTxtContent(content string) error {
	if utf8.RuneCountInString(content) > config.MaxTxtChars {
		return domain.Validationf("File too large. Max 15,000 characters.")
	}
	if strings.TrimSpace(content) == "" {
		return domain.Validationf("File is empty or contains no readable text.")
	}
	return nil
}

func isArchiveName(name string) bool {
	for _, ext := range config.ArchiveExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (h *Handler) startArchiveJob(ctx context.Context, b *bot.Bot, chatID int64, doc *models.Document) {
	j, err := h.registry.Begin(chatID, domain.JobArchive)
	if err != nil {
		tg.SendLongMessage(ctx, b, chatID, "A job is already running for this chat. Use /cancel first.")
		return
	}

	scratch, err := os.MkdirTemp("", "scanlate-*")
	if err != nil {
		h.registry.Finish(j)
		slog.Error("create scratch dir", "chat_id", chatID, "error", err)
		tg.SendLongMessage(ctx, b, chatID, "Could not prepare a workspace for your file.")
		return
	}

	archivePath, err := tg.DownloadToPath(ctx, b, doc.FileID, scratch, filepath.Base(doc.FileName))
	if err != nil {
		os.RemoveAll(scratch)
		h.registry.Finish(j)
		slog.Error("download archive", "chat_id", chatID, "error", err)
		tg.SendLongMessage(ctx, b, chatID, "Could not download your file, please try again.")
		return
	}

	// Snapshot the settings now; the job never re-reads them.
	settings := h.settings.Get(chatID)
	tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf(
		"Received *%s*\nExtracting images and running *%s OCR*...\n\nYou'll get results page by page.",
		doc.FileName, strings.ToUpper(string(settings.OCRMode))))

	aj := job.NewArchiveJob(j, h.gateway, h.ocr, settings, archivePath, scratch)
	h.runner.Launch(ctx, j, scratch, aj.Run)
}

// HandlePhoto runs an ImageJob on the largest size of an uploaded photo.
func (h *Handler) HandlePhoto(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || len(msg.Photo) == 0 {
		return
	}
	chatID := msg.Chat.ID
	photo := msg.Photo[len(msg.Photo)-1]

	j, err := h.registry.Begin(chatID, domain.JobImage)
	if err != nil {
		tg.SendLongMessage(ctx, b, chatID, "A job is already running for this chat. Use /cancel first.")
		return
	}

	scratch, err := os.MkdirTemp("", "scanlate-*")
	if err != nil {
		h.registry.Finish(j)
		slog.Error("create scratch dir", "chat_id", chatID, "error", err)
		tg.SendLongMessage(ctx, b, chatID, "Could not prepare a workspace for your image.")
		return
	}

	imagePath, err := tg.DownloadToPath(ctx, b, photo.FileID, scratch, "image.jpg")
	if err != nil {
		os.RemoveAll(scratch)
		h.registry.Finish(j)
		slog.Error("download photo", "chat_id", chatID, "error", err)
		tg.SendLongMessage(ctx, b, chatID, "Could not download your image, please try again.")
		return
	}

	settings := h.settings.Get(chatID)
	tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf(
		"Running *%s OCR* on your image...\nPlease wait...",
		strings.ToUpper(string(settings.OCRMode))))

	ij := job.NewImageJob(j, h.gateway, h.ocr, settings, imagePath)
	h.runner.Launch(ctx, j, scratch, ij.Run)
}

// translateTxtUpload handles direct translation of a .txt upload. The
// size cap and emptiness check run before the translator is ever invoked.
func (h *Handler) translateTxtUpload(ctx context.Context, b *bot.Bot, chatID int64, doc *models.Document) {
	tg.SendLongMessage(ctx, b, chatID, "Reading your .txt file...")

	data, _, err := tg.DownloadFile(ctx, b, doc.FileID)
	if err != nil {
		slog.Error("download txt", "chat_id", chatID, "error", err)
		tg.SendLongMessage(ctx, b, chatID, "Could not download your file, please try again.")
		return
	}

	content := string(data)
	if err := checkTxtContent(content); err != nil {
		tg.SendLongMessage(ctx, b, chatID, err.Error())
		return
	}

	settings := h.settings.Get(chatID)
	credential := h.creds.GetActive(chatID)

	tg.SendLongMessage(ctx, b, chatID, "Translating your text to Hinglish...")
	translated := h.translator.Translate(ctx, content, settings.Model, settings.StyleGuide, credential)

	style := "Default"
	if h.settings.IsCustomStyle(chatID) {
		style = "Custom"
	}
	resultName := strings.TrimSuffix(doc.FileName, filepath.Ext(doc.FileName)) + "_hinglish.txt"
	caption := fmt.Sprintf("Hinglish Translation (%s)\nStyle: %s", settings.Model, style)
	if err := tg.SendDocument(ctx, b, chatID, resultName, caption, strings.NewReader(translated)); err != nil {
		slog.Error("deliver translation", "chat_id", chatID, "error", err)
		tg.SendLongMessage(ctx, b, chatID, "Could not deliver the translated document.")
	}
}

func (h *Handler) handleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	jobCancelled, inputCancelled := h.cancelAll(chatID)
	switch {
	case jobCancelled:
		tg.SendLongMessage(ctx, b, chatID, "OCR task cancelled. You can send a new file.")
	case inputCancelled:
		tg.SendLongMessage(ctx, b, chatID, "Cancelled. Nothing is waiting on your input now.")
	default:
		tg.SendLongMessage(ctx, b, chatID, "No active OCR task to cancel.")
	}
}
