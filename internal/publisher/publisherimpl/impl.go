package publisherimpl

import (
	"math/rand"
	"os"

	"github.com/DrSleep16/comics-vk/internal/publisher"
	"github.com/DrSleep16/comics-vk/internal/telegram"
	"github.com/DrSleep16/comics-vk/internal/vk"
	"github.com/DrSleep16/comics-vk/internal/xkcd"
	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/DrSleep16/comics-vk/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	VK       vk.Client
	Xkcd     xkcd.Client
	Telegram telegram.Client
	Logger   logger.Logger
	Config   *config.Config
}

type PublisherImpl struct {
	VK       vk.Client
	Xkcd     xkcd.Client
	Telegram telegram.Client
	Logger   logger.Logger
	Config   *config.Config

	randIntN   func(n int) int
	removeFile func(path string) error
}

func New(opts Opts) *PublisherImpl {
	return &PublisherImpl{
		VK:         opts.VK,
		Xkcd:       opts.Xkcd,
		Telegram:   opts.Telegram,
		Logger:     opts.Logger,
		Config:     opts.Config,
		randIntN:   rand.Intn,
		removeFile: os.Remove,
	}
}

var _ publisher.Client = (*PublisherImpl)(nil)
