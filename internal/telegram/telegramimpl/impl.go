package telegramimpl

import (
	"github.com/DrSleep16/comics-vk/internal/telegram"
	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/DrSleep16/comics-vk/pkg/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// TelegramImpl notifies the operator. TgBot is nil when no token is configured
// or the bot could not be reached at startup.
type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) (*TelegramImpl, error) {
	impl := &TelegramImpl{
		Logger: opts.Logger,
		Config: opts.Config,
	}
	if opts.Config.Telegram.Token == "" {
		opts.Logger.Debug("Telegram notifications disabled, TELEGRAM_TOKEN is not set")
		return impl, nil
	}

	endpoint := opts.Config.Telegram.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	tgBot, err := tgbotapi.NewBotAPIWithAPIEndpoint(opts.Config.Telegram.Token, endpoint)
	if err != nil {
		opts.Logger.Error("Error creating bot, notifications disabled", "Error", err)
		return impl, nil
	}
	impl.TgBot = tgBot

	return impl, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)
