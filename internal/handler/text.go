package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kavyabhat/scanlate/internal/domain"
	tg "github.com/kavyabhat/scanlate/internal/telegram"
)

// HandleText consumes plain (non-command) text. It completes any menu
// flow waiting on input; otherwise it nudges toward usage.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}
	chatID := msg.Chat.ID

	p, ok := h.takePending(chatID)
	if !ok {
		tg.SendLongMessage(ctx, b, chatID,
			"Send an archive (`.zip/.cbz/.7z`), an image, or a `.txt` file — or use /translate, /help.")
		return
	}

	switch p.kind {
	case pendingAPIKey:
		h.receiveAPIKey(ctx, b, chatID, p.arg, msg.Text)
	case pendingRename:
		h.receiveRename(ctx, b, chatID, p.arg, msg.Text)
	case pendingStyle:
		h.receiveStyle(ctx, b, chatID, msg.Text)
	}
}

func (h *Handler) receiveAPIKey(ctx context.Context, b *bot.Bot, chatID int64, name, secret string) {
	if err := h.creds.Add(chatID, name, secret); err != nil {
		if domain.IsValidation(err) {
			tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf("%v. Use /api → Add Key to retry.", err))
		} else {
			tg.SendLongMessage(ctx, b, chatID, "Could not save the key, please try /api again.")
		}
		return
	}
	tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf("Key saved as `%s`\nUse /api to manage.", name))
}

func (h *Handler) receiveRename(ctx context.Context, b *bot.Bot, chatID int64, oldName, newName string) {
	newName = strings.TrimSpace(newName)
	err := h.creds.Rename(chatID, oldName, newName)
	switch {
	case domain.IsValidation(err):
		h.setPending(chatID, pendingRename, oldName)
		tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf("%v. Send another name.", err))
	case errors.Is(err, domain.ErrNameTaken):
		// Keep waiting; the user can try another name.
		h.setPending(chatID, pendingRename, oldName)
		tg.SendLongMessage(ctx, b, chatID, "Name already exists. Choose another.")
	case errors.Is(err, domain.ErrKeyNotFound):
		tg.SendLongMessage(ctx, b, chatID, "Key not found.")
	case err != nil:
		tg.SendLongMessage(ctx, b, chatID, "Could not rename the key, please try /api again.")
	default:
		tg.SendLongMessage(ctx, b, chatID, fmt.Sprintf("Renamed `%s` → `%s`\nUse /api to manage.", oldName, newName))
	}
}
