package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

type Config struct {
	App struct {
		Env         string        `env:"APP_ENV" env-default:"development" env-description:"development or production"`
		LogLevel    string        `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
		SentryUrl   string        `env:"SENTRY_URL" env-description:"sentry DSN, error logs are forwarded when set"`
		ImageDir    string        `env:"COMICS_IMAGE_DIR" env-default:"comics" env-description:"directory for the temporary comic image"`
		HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" env-default:"30s" env-description:"per-request timeout"`
	}
	VK struct {
		AccessToken       string `env:"VK_ACCESS_TOKEN" env-description:"VK access token"`
		GroupID           int64  `env:"VK_GROUP_ID" env-description:"target group id, first managed group when empty"`
		APIVersion        string `env:"VK_API_VERSION" env-default:"5.131"`
		BaseURL           string `env:"VK_API_URL" env-default:"https://api.vk.com/method"`
		RequestsPerSecond int    `env:"VK_REQUESTS_PER_SECOND" env-default:"3"`
	}
	XKCD struct {
		BaseURL  string `env:"XKCD_URL" env-default:"https://xkcd.com"`
		MaxComic int    `env:"XKCD_MAX_COMIC" env-description:"upper bound for the random pick, latest comic when 0"`
	}
	Telegram struct {
		User        int64  `env:"TELEGRAM_USER" env-description:"chat id receiving run notifications"`
		Token       string `env:"TELEGRAM_TOKEN" env-description:"bot token, notifications are off when empty"`
		APIEndpoint string `env:"TELEGRAM_API_ENDPOINT" env-default:"https://api.telegram.org/bot%s/%s"`
	}
}

var ErrMissingToken = errors.New("VK_ACCESS_TOKEN is not set")

// New loads envFile, when it exists, into the process environment and then
// reads the configuration from the environment. Variables that are already
// set keep their values, the file only fills in the missing ones.
func New(envFile string) (*Config, error) {
	if _, err := os.Stat(envFile); envFile != "" && err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}

	return cfg, nil
}

// Validate checks the settings a real (non dry-run) publication needs.
func (c *Config) Validate() error {
	if c.VK.AccessToken == "" {
		return ErrMissingToken
	}
	if c.VK.GroupID < 0 {
		return fmt.Errorf("VK_GROUP_ID must be positive, got %d: use the group id without the minus sign of its wall owner id", c.VK.GroupID)
	}
	return nil
}
