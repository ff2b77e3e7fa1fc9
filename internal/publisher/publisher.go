package publisher

import (
	"context"

	"github.com/DrSleep16/comics-vk/internal/domain"
)

type Options struct {
	// ComicNum forces a comic, 0 picks one at random
	ComicNum int
	// DryRun downloads the comic but makes no VK calls
	DryRun bool
}

type Client interface {
	Publish(ctx context.Context, opts Options) (*domain.Publication, error)
}
