package telegramimpl

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/DrSleep16/comics-vk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBotAPI struct {
	mu       sync.Mutex
	messages []string
	chatIDs  []string
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"comics","username":"comics_bot"}}`)
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		_ = r.ParseForm()
		f.mu.Lock()
		f.messages = append(f.messages, r.Form.Get("text"))
		f.chatIDs = append(f.chatIDs, r.Form.Get("chat_id"))
		f.mu.Unlock()
		io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":99,"type":"private"}}}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"ok":false,"error_code":404,"description":"Not Found"}`)
	}
}

func newConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.Telegram.Token = "123:abc"
	cfg.Telegram.User = 99
	cfg.Telegram.APIEndpoint = endpoint
	return cfg
}

func quietLogger() logger.Logger {
	return logger.New(logger.Opts{Writer: io.Discard})
}

func TestNew_DisabledWithoutToken(t *testing.T) {
	tg, err := New(Opts{Config: &config.Config{}, Logger: quietLogger()})
	require.NoError(t, err)

	assert.False(t, tg.Enabled())
	tg.SendMessageToUser("ignored")
}

func TestSendMessageToUser(t *testing.T) {
	fake := &fakeBotAPI{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	tg, err := New(Opts{Config: newConfig(srv.URL + "/bot%s/%s"), Logger: quietLogger()})
	require.NoError(t, err)
	require.True(t, tg.Enabled())

	tg.SendMessageToUser("Published xkcd #353")

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, []string{"Published xkcd #353"}, fake.messages)
	assert.Equal(t, []string{"99"}, fake.chatIDs)
}

func TestSendMessageToUser_NoRecipient(t *testing.T) {
	fake := &fakeBotAPI{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	cfg := newConfig(srv.URL + "/bot%s/%s")
	cfg.Telegram.User = 0
	tg, err := New(Opts{Config: cfg, Logger: quietLogger()})
	require.NoError(t, err)

	assert.False(t, tg.Enabled())
	tg.SendMessageToUser("dropped")
	assert.Empty(t, fake.messages)
}

func TestNew_InvalidTokenDisablesNotifications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
	}))
	defer srv.Close()

	tg, err := New(Opts{Config: newConfig(srv.URL + "/bot%s/%s"), Logger: quietLogger()})
	require.NoError(t, err)

	assert.False(t, tg.Enabled())
	tg.SendMessageToUser("dropped")
}

func TestNew_BotUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/bot%s/%s"
	srv.Close()

	tg, err := New(Opts{Config: newConfig(endpoint), Logger: quietLogger()})
	require.NoError(t, err)
	assert.False(t, tg.Enabled())
}
