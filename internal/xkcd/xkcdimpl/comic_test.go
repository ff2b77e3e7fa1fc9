package xkcdimpl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/DrSleep16/comics-vk/pkg/errors"
	"github.com/DrSleep16/comics-vk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-image-data")

func newTestClient(t *testing.T, handler http.Handler) (*XkcdImpl, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.XKCD.BaseURL = srv.URL + "/"
	cfg.App.HTTPTimeout = 5 * time.Second

	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{Writer: io.Discard})}), srv
}

func comicHandler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/353/info.0.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		fmt.Fprintf(w, `{"num":353,"title":"Python","safe_title":"Python","img":"http://%s/comics/python.png","alt":"I wrote 20 short programs in Python yesterday.","year":"2007","month":"12","day":"5"}`, r.Host)
	})
	mux.HandleFunc("/info.0.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"num":2808,"safe_title":"Latest","img":"http://%s/comics/latest.png","alt":""}`, r.Host)
	})
	mux.HandleFunc("/comics/python.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	})
	return mux
}

func TestComic_Success(t *testing.T) {
	client, srv := newTestClient(t, comicHandler(t))

	comic, err := client.Comic(context.Background(), 353)
	require.NoError(t, err)

	assert.Equal(t, 353, comic.Num)
	assert.Equal(t, "Python", comic.SafeTitle)
	assert.Equal(t, srv.URL+"/comics/python.png", comic.ImageURL)
	assert.Equal(t, "I wrote 20 short programs in Python yesterday.", comic.Alt)
	assert.Equal(t, "2007", comic.Year)
}

func TestLatest_EmptyAltIsPresent(t *testing.T) {
	client, _ := newTestClient(t, comicHandler(t))

	comic, err := client.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2808, comic.Num)
	assert.Empty(t, comic.Alt)
}

func TestComic_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.Comic(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrComicDoesNotExist)
	assert.True(t, errors.IsUnexpectedStatus(err))
}

func TestComic_ServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.Comic(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.IsUnexpectedStatus(err))
	assert.Contains(t, err.Error(), "503")
}

func TestComic_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"no img", `{"num":1,"alt":"caption"}`, "img"},
		{"no alt", `{"num":1,"img":"https://imgs.xkcd.com/comics/barrel.jpg"}`, "alt"},
		{"no num", `{"img":"https://imgs.xkcd.com/comics/barrel.jpg","alt":"x"}`, "num"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))

			_, err := client.Comic(context.Background(), 1)
			require.Error(t, err)
			assert.True(t, errors.IsMissingField(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestComic_InvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))

	_, err := client.Comic(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestComic_InvalidNumber(t *testing.T) {
	client, _ := newTestClient(t, comicHandler(t))

	_, err := client.Comic(context.Background(), 0)
	assert.Error(t, err)
}

func TestDownloadImage_Success(t *testing.T) {
	client, srv := newTestClient(t, comicHandler(t))

	var buf bytes.Buffer
	n, err := client.DownloadImage(context.Background(), srv.URL+"/comics/python.png", &buf)
	require.NoError(t, err)

	assert.Equal(t, int64(len(pngBytes)), n)
	assert.Equal(t, pngBytes, buf.Bytes())
}

func TestDownloadImage_HTTPError(t *testing.T) {
	client, srv := newTestClient(t, comicHandler(t))

	var buf bytes.Buffer
	_, err := client.DownloadImage(context.Background(), srv.URL+"/comics/missing.png", &buf)
	require.Error(t, err)
	assert.True(t, errors.IsUnexpectedStatus(err))
	assert.Zero(t, buf.Len())
}

func TestDownloadImage_Empty(t *testing.T) {
	client, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.DownloadImage(context.Background(), srv.URL+"/empty.png", io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty image")
}
