package xkcdimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/DrSleep16/comics-vk/internal/domain"
	"github.com/DrSleep16/comics-vk/pkg/errors"
)

type comicResponse struct {
	Num        int     `json:"num"`
	Title      string  `json:"title"`
	SafeTitle  string  `json:"safe_title"`
	Img        string  `json:"img"`
	Alt        *string `json:"alt"`
	Transcript string  `json:"transcript"`
	Year       string  `json:"year"`
	Month      string  `json:"month"`
	Day        string  `json:"day"`
}

// Latest fetches /info.0.json
func (x *XkcdImpl) Latest(ctx context.Context) (domain.Comic, error) {
	return x.getComic(ctx, "/info.0.json")
}

// Comic fetches /{num}/info.0.json
func (x *XkcdImpl) Comic(ctx context.Context, num int) (domain.Comic, error) {
	if num <= 0 {
		return domain.Comic{}, fmt.Errorf("invalid comic number %d", num)
	}
	return x.getComic(ctx, fmt.Sprintf("/%d/info.0.json", num))
}

func (x *XkcdImpl) getComic(ctx context.Context, path string) (domain.Comic, error) {
	res, err := x.http.R().
		SetContext(ctx).
		SetHeader("accept", "application/json").
		Get(path)
	if err != nil {
		return domain.Comic{}, errors.Wrap(err, "failed to request "+path)
	}

	if res.StatusCode() == http.StatusNotFound {
		return domain.Comic{}, fmt.Errorf("%w: %w", errors.ErrComicDoesNotExist,
			errors.UnexpectedStatus(http.MethodGet, res.Request.URL, res.StatusCode()))
	}
	if !res.IsSuccess() {
		return domain.Comic{}, errors.UnexpectedStatus(http.MethodGet, res.Request.URL, res.StatusCode())
	}

	var body comicResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return domain.Comic{}, errors.Wrap(err, "failed to decode comic metadata")
	}

	switch {
	case body.Num == 0:
		return domain.Comic{}, errors.MissingField("num")
	case body.Img == "":
		return domain.Comic{}, errors.MissingField("img")
	case body.Alt == nil:
		return domain.Comic{}, errors.MissingField("alt")
	}

	x.logger.Debug("Fetched comic metadata", "num", body.Num, "title", body.SafeTitle)

	return domain.Comic{
		Num:        body.Num,
		Title:      body.Title,
		SafeTitle:  body.SafeTitle,
		ImageURL:   body.Img,
		Alt:        *body.Alt,
		Transcript: body.Transcript,
		Year:       body.Year,
		Month:      body.Month,
		Day:        body.Day,
	}, nil
}

// DownloadImage copies the image body into dst without buffering it in memory
func (x *XkcdImpl) DownloadImage(ctx context.Context, imageURL string, dst io.Writer) (int64, error) {
	res, err := x.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(imageURL)
	if err != nil {
		return 0, errors.Wrap(err, "failed to download image "+imageURL)
	}
	body := res.RawBody()
	defer safeClose(body, x)

	if !res.IsSuccess() {
		return 0, errors.UnexpectedStatus(http.MethodGet, imageURL, res.StatusCode())
	}

	n, err := io.Copy(dst, body)
	if err != nil {
		return n, errors.Wrap(err, "failed to read image "+imageURL)
	}
	if n == 0 {
		return 0, fmt.Errorf("received empty image data from %s", imageURL)
	}

	x.logger.Debug("Downloaded comic image", "url", imageURL, "bytes", n)
	return n, nil
}

// safeClose safely closes an io.ReadCloser and logs any errors
func safeClose(closer io.ReadCloser, x *XkcdImpl) {
	if err := closer.Close(); err != nil {
		x.logger.Error("Error closing response body", "error", err)
	}
}
