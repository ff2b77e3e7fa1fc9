package xkcd

import (
	"context"
	"io"

	"github.com/DrSleep16/comics-vk/internal/domain"
)

// NotExisting is the one comic number the archive skips.
const NotExisting = 404

//go:generate go run go.uber.org/mock/mockgen -source=xkcd.go -destination=mocks/mock.go
type Client interface {
	// Latest returns the metadata of the newest comic
	Latest(ctx context.Context) (domain.Comic, error)

	// Comic returns the metadata of comic num
	Comic(ctx context.Context, num int) (domain.Comic, error)

	// DownloadImage streams the image at imageURL into dst and returns the number of bytes written
	DownloadImage(ctx context.Context, imageURL string, dst io.Writer) (int64, error)
}
