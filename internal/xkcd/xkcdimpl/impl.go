package xkcdimpl

import (
	"strings"

	"github.com/DrSleep16/comics-vk/internal/xkcd"
	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/DrSleep16/comics-vk/pkg/logger"
	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

const userAgent = "comics-vk (+https://github.com/DrSleep16/comics-vk)"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type XkcdImpl struct {
	http   *resty.Client
	logger logger.Logger
}

func New(opts Opts) *XkcdImpl {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(opts.Config.XKCD.BaseURL, "/"))
	client.SetTimeout(opts.Config.App.HTTPTimeout)
	client.SetHeader("user-agent", userAgent)
	if l, ok := opts.Logger.(resty.Logger); ok {
		client.SetLogger(l)
	}

	return &XkcdImpl{
		http:   client,
		logger: opts.Logger,
	}
}

var _ xkcd.Client = (*XkcdImpl)(nil)
