package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"

	tg "github.com/kavyabhat/scanlate/internal/telegram"
)

const keyMenuText = "*Gemini API Keys*\n\n" +
	"You need a key to translate!\n" +
	"Get a free one: https://aistudio.google.com/app/apikey\n\n" +
	"_Only one key can be active at a time_\n" +
	"_Tap a key to manage_"

func (h *Handler) handleAPIMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        keyMenuText,
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: h.keyMenuKeyboard(chatID),
	})
	if err != nil {
		tg.SendLongMessage(ctx, b, chatID, "Could not open the key menu, try /api again.")
	}
}

// renderKeyMenu redraws the key menu in place after a mutation.
func (h *Handler) renderKeyMenu(ctx context.Context, b *bot.Bot, chatID int64, messageID int) {
	tg.EditMessage(ctx, b, chatID, messageID, keyMenuText, h.keyMenuKeyboard(chatID))
}

func (h *Handler) keyMenuKeyboard(chatID int64) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for _, info := range h.creds.List(chatID) {
		label := info.Name
		if info.Active {
			label += " (active)"
		}
		rows = append(rows, tg.ButtonRow(tg.InlineButton(label, "keyinfo|"+info.Name)))
	}
	rows = append(rows,
		tg.ButtonRow(tg.InlineButton("Add Key", "add_key")),
		tg.ButtonRow(tg.InlineButton("Refresh", "refresh")),
		tg.ButtonRow(tg.URLButton("Get a free key", "https://aistudio.google.com/app/apikey")),
	)
	return tg.InlineKeyboard(rows...)
}

func (h *Handler) showKeyActions(ctx context.Context, b *bot.Bot, chatID int64, messageID int, name string) {
	if !h.creds.Has(chatID, name) {
		tg.EditMessage(ctx, b, chatID, messageID, "Key not found.", nil)
		return
	}

	status := "Inactive"
	for _, info := range h.creds.List(chatID) {
		if info.Name == name && info.Active {
			status = "Active"
		}
	}

	markup := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("Set Active", "set|"+name)),
		tg.ButtonRow(tg.InlineButton("Rename", "rename|"+name)),
		tg.ButtonRow(tg.InlineButton("Delete", "del|"+name)),
		tg.ButtonRow(tg.InlineButton("Back", "back")),
	)
	text := fmt.Sprintf("*Key: `%s`*\n\nStatus: *%s*\n\nChoose action:", name, status)
	tg.EditMessage(ctx, b, chatID, messageID, text, markup)
}

func (h *Handler) setActiveKey(ctx context.Context, b *bot.Bot, chatID int64, messageID int, name string) {
	if !h.creds.SetActive(chatID, name) {
		tg.EditMessage(ctx, b, chatID, messageID, "Key not found.", nil)
		return
	}
	h.renderKeyMenu(ctx, b, chatID, messageID)
}

func (h *Handler) deleteKey(ctx context.Context, b *bot.Bot, chatID int64, messageID int, name string) {
	if !h.creds.Delete(chatID, name) {
		tg.EditMessage(ctx, b, chatID, messageID, "Key not found.", nil)
		return
	}
	h.renderKeyMenu(ctx, b, chatID, messageID)
}

func (h *Handler) startAddKey(ctx context.Context, b *bot.Bot, chatID int64, messageID int) {
	name := "key_" + uuid.NewString()[:8]
	h.setPending(chatID, pendingAPIKey, name)

	text := fmt.Sprintf(
		"*Add New Key*\n\nSend your Gemini API key.\nIt will be saved as: `%s`\n\n_Tip: paste it directly_",
		name)
	tg.EditMessage(ctx, b, chatID, messageID, text, nil)
}

func (h *Handler) startRenameKey(ctx context.Context, b *bot.Bot, chatID int64, messageID int, name string) {
	h.setPending(chatID, pendingRename, name)
	text := fmt.Sprintf("*Rename Key*\n\nCurrent: `%s`\n\nSend the new name:", name)
	tg.EditMessage(ctx, b, chatID, messageID, text, nil)
}
