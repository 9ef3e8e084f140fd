package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/kavyabhat/scanlate/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	name := "there"
	if update.Message.From != nil && update.Message.From.FirstName != "" {
		name = update.Message.From.FirstName
	}

	text := fmt.Sprintf(
		"Hello %s!\n\n"+
			"Send `.zip/.cbz/.7z`, images, or text.\n"+
			"Use /translate, /model, /style, /ocrmode, /api to customize.\n\n"+
			"_You need your own Gemini API key! Use /api_",
		name,
	)
	tg.SendLongMessage(ctx, b, update.Message.Chat.ID, text)
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "*Commands:*\n" +
		"`/translate` – English → Hinglish\n" +
		"`/ocrmode local|online` – OCR engine\n" +
		"`/model` – pick Gemini model\n" +
		"`/style` – custom translation style\n" +
		"`/api` – *manage your Gemini API keys (required!)*\n" +
		"`/cancel` – stop OCR\n\n" +
		"_Get a free key: https://aistudio.google.com/app/apikey_"
	tg.SendLongMessage(ctx, b, update.Message.Chat.ID, text)
}
