package app

import (
	"context"
	"fmt"
	"time"

	"github.com/DrSleep16/comics-vk/internal/domain"
	"github.com/DrSleep16/comics-vk/internal/publisher"
	"github.com/DrSleep16/comics-vk/internal/publisher/publisherimpl"
	"github.com/DrSleep16/comics-vk/internal/ratelimit"
	"github.com/DrSleep16/comics-vk/internal/telegram"
	"github.com/DrSleep16/comics-vk/internal/telegram/telegramimpl"
	"github.com/DrSleep16/comics-vk/internal/vk"
	"github.com/DrSleep16/comics-vk/internal/vk/vkimpl"
	"github.com/DrSleep16/comics-vk/internal/xkcd"
	"github.com/DrSleep16/comics-vk/internal/xkcd/xkcdimpl"
	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/DrSleep16/comics-vk/pkg/logger"
	"go.uber.org/fx"
)

const stopTimeout = 5 * time.Second

var Module = fx.Options(
	fx.Provide(
		logger.FxOption,
		newLimiter,
	),
	fx.Provide(
		fx.Annotate(
			xkcdimpl.New,
			fx.As(new(xkcd.Client)),
		), fx.Annotate(
			vkimpl.New,
			fx.As(new(vk.Client)),
		), fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			publisherimpl.New,
			fx.As(new(publisher.Client)),
		),
	),
)

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewTokenBucket(cfg.VK.RequestsPerSecond, time.Second, 1)
}

// Run starts the application, publishes one comic and stops the application again.
func Run(ctx context.Context, cfg *config.Config, opts publisher.Options) (*domain.Publication, error) {
	log := logger.New(logger.Opts{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	var pub publisher.Client
	app := fx.New(
		fx.Logger(log),
		fx.Supply(cfg),
		Module,
		fx.Populate(&pub),
	)

	if err := app.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start application: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			log.Error("Failed to stop application", "error", err)
		}
	}()

	return pub.Publish(ctx, opts)
}
