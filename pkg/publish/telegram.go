package publish

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram publishes report images as photos to a single chat or channel.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram authorizes the bot and binds it to the target chat.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// Publish sends the PNG with the given caption. The bot API has no
// context-aware send, so cancellation is honored up front only.
func (t *Telegram) Publish(ctx context.Context, filename string, png []byte, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	photo := tgbotapi.NewPhoto(t.chatID, tgbotapi.FileBytes{Name: filename, Bytes: png})
	photo.Caption = caption
	if _, err := t.bot.Send(photo); err != nil {
		return fmt.Errorf("send photo to chat %d: %w", t.chatID, err)
	}
	return nil
}

var _ Publisher = (*Telegram)(nil)
