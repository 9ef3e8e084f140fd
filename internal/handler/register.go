package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/kavyabhat/scanlate/internal/telegram"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/translate", bot.MatchTypePrefix, h.handleTranslate)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/ocrmode", bot.MatchTypePrefix, h.handleOCRMode)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/model", bot.MatchTypePrefix, h.handleModel)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/style", bot.MatchTypePrefix, h.handleStyle)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/api", bot.MatchTypePrefix, h.handleAPIMenu)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypePrefix, h.handleCancel)

	// Every button press goes through one decode step
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, h.handleCallback)
}

// handleCallback decodes the wire string once and dispatches on the
// resulting command.
func (h *Handler) handleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	q := update.CallbackQuery
	if q == nil || q.Message.Message == nil {
		return
	}
	tg.AnswerCallback(ctx, b, q.ID)

	chatID := q.Message.Message.Chat.ID
	messageID := q.Message.Message.ID
	cmd := ParseCallback(q.Data)

	switch cmd.Action {
	case ActionSelectModel:
		h.selectModel(ctx, b, chatID, messageID, cmd.Arg)
	case ActionKeyInfo:
		h.showKeyActions(ctx, b, chatID, messageID, cmd.Arg)
	case ActionSetActive:
		h.setActiveKey(ctx, b, chatID, messageID, cmd.Arg)
	case ActionDeleteKey:
		h.deleteKey(ctx, b, chatID, messageID, cmd.Arg)
	case ActionRenameKey:
		h.startRenameKey(ctx, b, chatID, messageID, cmd.Arg)
	case ActionAddKey:
		h.startAddKey(ctx, b, chatID, messageID)
	case ActionRefresh, ActionBack:
		h.renderKeyMenu(ctx, b, chatID, messageID)
	}
}
