package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func TestRootCommand_RequiresToken(t *testing.T) {
	t.Setenv("VK_ACCESS_TOKEN", "")

	err := runRoot(t, "--env-file", filepath.Join(t.TempDir(), "none.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingToken)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Setenv("VK_GROUP_ID", "abc")

	err := runRoot(t, "--env-file", filepath.Join(t.TempDir(), "none.env"), "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	assert.Error(t, runRoot(t, "extra"))
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"env-file", "comic", "dry-run"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, config.DefaultEnvFile, cmd.Flags().Lookup("env-file").DefValue)
}

func TestRootCommand_DryRun(t *testing.T) {
	var xkcdCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/353/info.0.json", func(w http.ResponseWriter, r *http.Request) {
		xkcdCalls.Add(1)
		fmt.Fprintf(w, `{"num":353,"safe_title":"Python","img":"http://%s/comics/python.png","alt":"I wrote 20 short programs in Python yesterday."}`, r.Host)
	})
	mux.HandleFunc("/comics/python.png", func(w http.ResponseWriter, r *http.Request) {
		xkcdCalls.Add(1)
		w.Write([]byte("\x89PNG\r\n\x1a\nimage"))
	})
	xkcd := httptest.NewServer(mux)
	defer xkcd.Close()

	var vkCalls atomic.Int32
	vk := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vkCalls.Add(1)
	}))
	defer vk.Close()

	imageDir := filepath.Join(t.TempDir(), "comics")
	t.Setenv("VK_ACCESS_TOKEN", "")
	t.Setenv("VK_API_URL", vk.URL)
	t.Setenv("XKCD_URL", xkcd.URL)
	t.Setenv("COMICS_IMAGE_DIR", imageDir)
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("LOG_LEVEL", "error")

	err := runRoot(t, "--env-file", filepath.Join(t.TempDir(), "none.env"), "--dry-run", "--comic", "353")
	require.NoError(t, err)

	assert.Equal(t, int32(2), xkcdCalls.Load())
	assert.Zero(t, vkCalls.Load())

	entries, err := os.ReadDir(imageDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
