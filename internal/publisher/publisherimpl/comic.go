package publisherimpl

import (
	"context"
	"fmt"
	"os"

	"github.com/DrSleep16/comics-vk/internal/domain"
	"github.com/DrSleep16/comics-vk/internal/xkcd"
	"github.com/DrSleep16/comics-vk/pkg/formatter"
)

// pickComicNum draws uniformly from [1, max] without the missing comic 404.
// max is XKCD_MAX_COMIC or, when unset, the number of the latest comic.
func (p *PublisherImpl) pickComicNum(ctx context.Context) (int, error) {
	upper := p.Config.XKCD.MaxComic
	if upper <= 0 {
		latest, err := p.Xkcd.Latest(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest comic: %w", err)
		}
		upper = latest.Num
	}
	if upper < 1 {
		return 0, fmt.Errorf("no comics to pick from, upper bound is %d", upper)
	}

	if upper < xkcd.NotExisting {
		return p.randIntN(upper) + 1, nil
	}

	num := p.randIntN(upper-1) + 1
	if num >= xkcd.NotExisting {
		num++
	}
	return num, nil
}

// fetchComic downloads the metadata and image of a comic into a temporary file.
// The caller owns the file and must remove it.
func (p *PublisherImpl) fetchComic(ctx context.Context, num int) (domain.ComicImage, error) {
	if num == 0 {
		var err error
		if num, err = p.pickComicNum(ctx); err != nil {
			return domain.ComicImage{}, err
		}
	}

	comic, err := p.Xkcd.Comic(ctx, num)
	if err != nil {
		return domain.ComicImage{}, err
	}

	dir := p.Config.App.ImageDir
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.ComicImage{}, fmt.Errorf("failed to create image directory: %w", err)
		}
	}

	file, err := os.CreateTemp(dir, fmt.Sprintf("comic_%d_*%s", comic.Num, formatter.ImageExt(comic.ImageURL)))
	if err != nil {
		return domain.ComicImage{}, fmt.Errorf("failed to create image file: %w", err)
	}

	_, err = p.Xkcd.DownloadImage(ctx, comic.ImageURL, file)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write image file: %w", closeErr)
	}
	if err != nil {
		p.removeImage(file.Name())
		return domain.ComicImage{}, err
	}

	p.Logger.Info("Comic downloaded", "num", comic.Num, "title", comic.SafeTitle, "path", file.Name())

	return domain.ComicImage{
		Comic: comic,
		Path:  file.Name(),
	}, nil
}

// removeImage is the single cleanup step of a run; failures are logged only.
func (p *PublisherImpl) removeImage(path string) {
	if err := p.removeFile(path); err != nil {
		p.Logger.Warn("Failed to remove temporary image", "path", path, "error", err)
		return
	}
	p.Logger.Debug("Removed temporary image", "path", path)
}
