package vkimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DrSleep16/comics-vk/internal/ratelimit"
	"github.com/DrSleep16/comics-vk/internal/vk"
	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/DrSleep16/comics-vk/pkg/errors"
	"github.com/DrSleep16/comics-vk/pkg/logger"
	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Limiter ratelimit.Limiter `optional:"true"`
}

type VkImpl struct {
	api    *resty.Client
	upload *resty.Client
	logger logger.Logger
}

func New(opts Opts) *VkImpl {
	limiter := opts.Limiter
	if limiter == nil {
		limiter = ratelimit.NewTokenBucket(opts.Config.VK.RequestsPerSecond, time.Second, 1)
	}

	api := resty.New()
	api.SetBaseURL(strings.TrimRight(opts.Config.VK.BaseURL, "/"))
	api.SetTimeout(opts.Config.App.HTTPTimeout)
	api.SetAuthToken(opts.Config.VK.AccessToken)
	api.SetQueryParam("v", opts.Config.VK.APIVersion)
	api.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		return limiter.Wait(r.Context())
	})

	// upload servers live on a different host and must not see the token
	upload := resty.New()
	upload.SetTimeout(opts.Config.App.HTTPTimeout)

	if l, ok := opts.Logger.(resty.Logger); ok {
		api.SetLogger(l)
		upload.SetLogger(l)
	}

	return &VkImpl{
		api:    api,
		upload: upload,
		logger: opts.Logger,
	}
}

var _ vk.Client = (*VkImpl)(nil)

type envelope[T any] struct {
	Response *T          `json:"response"`
	Error    *vk.APIError `json:"error"`
}

// callMethod invokes an API method, GET with query params or POST with a form body,
// and unwraps the response envelope.
func callMethod[T any](ctx context.Context, api *resty.Client, httpMethod, method string, params map[string]string) (T, error) {
	var zero T

	req := api.R().SetContext(ctx)

	var (
		res *resty.Response
		err error
	)
	switch httpMethod {
	case http.MethodGet:
		res, err = req.SetQueryParams(params).Get(method)
	case http.MethodPost:
		res, err = req.SetFormData(params).Post(method)
	default:
		return zero, fmt.Errorf("unsupported http method %s", httpMethod)
	}
	if err != nil {
		return zero, errors.Wrap(err, "failed to call "+method)
	}

	if !res.IsSuccess() {
		return zero, errors.UnexpectedStatus(httpMethod, res.Request.URL, res.StatusCode())
	}

	var env envelope[T]
	if err := json.Unmarshal(res.Body(), &env); err != nil {
		return zero, errors.Wrap(err, "failed to decode "+method+" response")
	}
	if env.Error != nil {
		return zero, env.Error
	}
	if env.Response == nil {
		return zero, errors.MissingField("response")
	}

	return *env.Response, nil
}
