package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kavyabhat/scanlate/internal/domain"
	tg "github.com/kavyabhat/scanlate/internal/telegram"
)

func (h *Handler) handleOCRMode(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	_, arg, _ := strings.Cut(update.Message.Text, " ")
	arg = strings.ToLower(strings.TrimSpace(arg))

	if arg == "" {
		current := h.settings.Get(chatID).OCRMode
		tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf(
			"Current OCR mode: *%s*\n\n"+
				"• `local` – Tesseract (free, fast, offline)\n"+
				"• `online` – OCRWebService (more accurate)\n\n"+
				"Change with: `/ocrmode local` or `/ocrmode online`",
			strings.ToUpper(string(current))))
		return
	}

	if err := h.settings.SetOCRMode(chatID, arg); err != nil {
		tg.SendLongMessage(ctx, b, chatID, "Please use `local` or `online`.")
		return
	}

	engine := "Tesseract (local)"
	if domain.OCRMode(arg) == domain.OCROnline {
		engine = "OCRWebService (online)"
	}
	tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf(
		"OCR mode set to *%s*\n\n%s will now extract text from images.",
		strings.ToUpper(arg), engine))
}

func (h *Handler) handleStyle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	_, arg, _ := strings.Cut(update.Message.Text, " ")
	arg = strings.TrimSpace(arg)

	if strings.EqualFold(arg, "default") {
		h.settings.ResetStyleGuide(chatID)
		h.clearPending(chatID)
		tg.SendLongMessage(ctx, b, chatID,
			"Style guide reset to *default manga/manhwa tone*.\n"+
				"Your translations are now natural and emotional.")
		return
	}

	current := h.settings.Get(chatID).StyleGuide
	preview := current
	if len(preview) > 250 {
		preview = preview[:250] + "\n..."
	}

	h.setPending(chatID, pendingStyle, "")
	tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf(
		"*Your Current Style Guide:*\n\n```%s```\n\n"+
			"Send a *new prompt* to customize Hinglish style.\n"+
			"Or type `/style default` to reset.\n\n"+
			"_Example:_ `Make it fun and Gen-Z style`",
		preview))
}

// receiveStyle stores a new style guide and shows a sample translation
// so the user can judge the vibe immediately.
func (h *Handler) receiveStyle(ctx context.Context, b *bot.Bot, chatID int64, guide string) {
	h.settings.SetStyleGuide(chatID, guide)

	settings := h.settings.Get(chatID)
	credential := h.creds.GetActive(chatID)
	example := "I'm so done with this."
	translated := h.translator.Translate(ctx, example, settings.Model, settings.StyleGuide, credential)

	tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf(
		"*Style Saved!*\n\nEN: `%s`\nHI: `%s`\n\n"+
			"All future translations will follow this vibe!",
		example, translated))
}
