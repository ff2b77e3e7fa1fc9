package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (tg *TelegramImpl) Enabled() bool {
	return tg.TgBot != nil && tg.Config.Telegram.User != 0
}

// SendMessageToUser sends a text message to the configured user
func (tg *TelegramImpl) SendMessageToUser(message string) {
	if !tg.Enabled() {
		return
	}

	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, message)
	msg.DisableWebPagePreview = true
	_, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
		return
	}

	tg.Logger.Info("Message sent to user",
		"userID", tg.Config.Telegram.User)
}
