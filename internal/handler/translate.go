package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/kavyabhat/scanlate/internal/telegram"
)

func (h *Handler) handleTranslate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	msg := update.Message
	chatID := msg.Chat.ID

	// Inline argument, or the replied-to message
	_, text, _ := strings.Cut(msg.Text, " ")
	text = strings.TrimSpace(text)
	if text == "" && msg.ReplyToMessage != nil {
		text = msg.ReplyToMessage.Text
		if text == "" {
			text = msg.ReplyToMessage.Caption
		}
	}

	if text == "" {
		tg.SendLongMessage(ctx, b, chatID,
			"How to use `/translate`:\n\n"+
				"1. Reply to a message + type `/translate`\n"+
				"2. Or: `/translate your text here`\n\n"+
				"_Translates English → Casual Hinglish_")
		return
	}

	settings := h.settings.Get(chatID)
	credential := h.creds.GetActive(chatID)

	tg.SendLongMessage(ctx, b, chatID, "Translating to Hinglish...")
	translated := h.translator.Translate(ctx, text, settings.Model, settings.StyleGuide, credential)
	tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf("*Hinglish* (`%s`):\n\n%s", settings.Model, translated))
}
