package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kavyabhat/scanlate/internal/translate"
	tg "github.com/kavyabhat/scanlate/internal/telegram"
)

func (h *Handler) handleModel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	current := h.settings.Get(chatID).Model

	loading, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      fmt.Sprintf("Fetching latest Gemini models from Google...\n\nYour current model: *%s*", current),
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		slog.Error("send model loading message", "chat_id", chatID, "error", err)
		return
	}

	catalog := h.catalog.Fetch(ctx, chatID, h.creds.GetActive(chatID))
	if len(catalog) == 0 {
		tg.EditMessage(ctx, b, chatID, loading.ID,
			"Could not fetch models right now. Please try again in a minute.", nil)
		return
	}

	menu := "*Gemini Model Selector*\n\n" +
		fmt.Sprintf("Current model: *%s*\n\n", current) +
		"Tap any button to switch instantly:\n" +
		"• *Flash* – Fast & lightweight\n" +
		"• *Pro* – More accurate, handles complex text\n\n" +
		"_You can change anytime with /model_"

	tg.EditMessage(ctx, b, chatID, loading.ID, menu, modelKeyboard(catalog, current))
}

// selectModel stores the chat's model choice and rebuilds the menu with
// the new current marker.
func (h *Handler) selectModel(ctx context.Context, b *bot.Bot, chatID int64, messageID int, name string) {
	h.settings.SetModel(chatID, name)

	catalog := h.catalog.Fetch(ctx, chatID, h.creds.GetActive(chatID))
	desc := "Text model"
	for _, m := range catalog {
		if m.Name == name {
			desc = m.Description
			break
		}
	}

	confirm := "*Model Updated!*\n\n" +
		fmt.Sprintf("Now using: *%s*\n_%s_\n\n", name, desc) +
		"All OCR → Hinglish translations will use this model.\n" +
		"Change anytime with /model"

	tg.EditMessage(ctx, b, chatID, messageID, confirm, modelKeyboard(catalog, name))
}

func modelKeyboard(catalog []translate.ModelInfo, current string) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for _, m := range catalog {
		rows = append(rows, tg.ButtonRow(
			tg.InlineButton(modelButtonLabel(m, m.Name == current), "model|"+m.Name),
		))
	}
	return tg.InlineKeyboard(rows...)
}

// modelButtonLabel builds a button caption inside Telegram's 64-char
// limit: a Current/Select prefix, the model's last name segment, and a
// short hint from the description when there is room.
func modelButtonLabel(m translate.ModelInfo, current bool) string {
	prefix := "Select"
	if current {
		prefix = "Current"
	}

	short := m.Name
	if idx := strings.LastIndex(short, "-"); idx >= 0 {
		short = short[idx+1:]
	}
	short = strings.ToUpper(short)

	label := fmt.Sprintf("%s: %s", prefix, short)

	hint, _, _ := strings.Cut(m.Description, "|")
	hint = strings.TrimSpace(hint)
	if len(hint) > 25 {
		hint = hint[:22] + "..."
	}
	if hint != "" && !current {
		withHint := label + " | " + hint
		if len(withHint) <= 64 {
			label = withHint
		}
	}
	return label
}
