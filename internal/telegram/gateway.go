package telegram

import (
	"context"
	"io"

	"github.com/go-telegram/bot"
)

// Gateway adapts the bot API to the three outbound capabilities job code
// needs: deliver text, deliver a document, report progress.
type Gateway struct {
	bot *bot.Bot
}

func NewGateway(b *bot.Bot) *Gateway {
	return &Gateway{bot: b}
}

func (g *Gateway) SendText(ctx context.Context, chatID int64, text string) error {
	return SendLongMessage(ctx, g.bot, chatID, text)
}

func (g *Gateway) SendDocument(ctx context.Context, chatID int64, filename, caption string, r io.Reader) error {
	return SendDocument(ctx, g.bot, chatID, filename, caption, r)
}
