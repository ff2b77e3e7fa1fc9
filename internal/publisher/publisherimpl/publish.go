package publisherimpl

import (
	"context"
	"fmt"

	"github.com/DrSleep16/comics-vk/internal/domain"
	"github.com/DrSleep16/comics-vk/internal/publisher"
	"github.com/DrSleep16/comics-vk/pkg/errors"
	"github.com/DrSleep16/comics-vk/pkg/formatter"
)

// Publish runs the whole sequence once: pick and download a comic, upload the
// image to the group wall album, confirm it and post it with the caption.
// The first failing stage aborts the run and nothing is retried.
func (p *PublisherImpl) Publish(ctx context.Context, opts publisher.Options) (*domain.Publication, error) {
	pub, err := p.publish(ctx, opts)
	if err != nil {
		p.Logger.Error("Comic publication failed", "stage", errors.GetCode(err), "error", err)
		p.Telegram.SendMessageToUser(fmt.Sprintf("Comic publication failed at %s: %s", errors.GetCode(err), errors.GetMessage(err)))
		return nil, err
	}

	if pub.DryRun {
		return pub, nil
	}

	link := formatter.WallPostURL(pub.Post.GroupID, pub.Post.PostID)
	p.Logger.Info("Comic published",
		"num", pub.Comic.Num,
		"post_id", pub.Post.PostID,
		"attachment", pub.Post.Attachment,
		"url", link)
	p.Telegram.SendMessageToUser(fmt.Sprintf("Published xkcd #%d %q: %s", pub.Comic.Num, pub.Comic.SafeTitle, link))

	return pub, nil
}

func (p *PublisherImpl) publish(ctx context.Context, opts publisher.Options) (*domain.Publication, error) {
	var groupID int64
	if !opts.DryRun {
		var err error
		if groupID, err = p.resolveGroup(ctx); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeResolveGroup, "failed to resolve group")
		}
	}

	image, err := p.fetchComic(ctx, opts.ComicNum)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFetchComic, "failed to fetch comic")
	}
	defer p.removeImage(image.Path)

	if opts.DryRun {
		p.Logger.Info("Dry run, skipping VK upload",
			"num", image.Comic.Num,
			"image", image.Comic.ImageURL,
			"message", image.Comic.Alt)
		return &domain.Publication{
			Comic:  image.Comic,
			Post:   domain.Post{Message: image.Comic.Alt},
			DryRun: true,
		}, nil
	}

	server, err := p.VK.GetWallUploadServer(ctx, groupID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUploadServer, "failed to get wall upload server")
	}

	uploaded, err := p.VK.UploadPhoto(ctx, server.UploadURL, image.Path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUploadPhoto, "failed to upload photo")
	}

	saved, err := p.VK.SaveWallPhoto(ctx, groupID, uploaded)
	if err == nil && len(saved) == 0 {
		err = errors.MissingField("response[0]")
	}
	if err != nil {
		p.Logger.Warn("Uploaded photo left unsaved", "group_id", groupID, "server", uploaded.Server)
		return nil, errors.WrapWithCode(err, errors.CodeSavePhoto, "failed to save wall photo")
	}

	attachment := formatter.PhotoAttachment(saved[0].OwnerID, saved[0].ID)

	postID, err := p.VK.WallPost(ctx, groupID, []string{attachment}, image.Comic.Alt)
	if err != nil {
		p.Logger.Warn("Saved photo is not attached to any post", "attachment", attachment)
		return nil, errors.WrapWithCode(err, errors.CodeWallPost, "failed to publish wall post")
	}

	return &domain.Publication{
		Comic: image.Comic,
		Post: domain.Post{
			PostID:     postID,
			GroupID:    groupID,
			Attachment: attachment,
			Message:    image.Comic.Alt,
		},
	}, nil
}

// resolveGroup returns VK_GROUP_ID, or the first group the token owner belongs to.
func (p *PublisherImpl) resolveGroup(ctx context.Context) (int64, error) {
	if p.Config.VK.GroupID != 0 {
		return p.Config.VK.GroupID, nil
	}

	groups, err := p.VK.GetGroups(ctx)
	if err != nil {
		return 0, err
	}
	if len(groups) == 0 {
		return 0, errors.ErrNoGroup
	}

	p.Logger.Info("VK_GROUP_ID is not set, using the first group of the token owner", "group_id", groups[0])
	return groups[0], nil
}
