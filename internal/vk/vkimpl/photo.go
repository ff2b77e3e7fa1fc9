package vkimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DrSleep16/comics-vk/internal/domain"
	"github.com/DrSleep16/comics-vk/pkg/errors"
)

type uploadServerResponse struct {
	UploadURL string `json:"upload_url"`
	AlbumID   int64  `json:"album_id"`
	UserID    int64  `json:"user_id"`
}

type uploadResponse struct {
	Server int64  `json:"server"`
	Photo  string `json:"photo"`
	Hash   string `json:"hash"`
}

type savedPhotoResponse struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"owner_id"`
	AlbumID int64  `json:"album_id"`
	Text    string `json:"text"`
}

// GetWallUploadServer calls photos.getWallUploadServer
func (v *VkImpl) GetWallUploadServer(ctx context.Context, groupID int64) (domain.UploadServer, error) {
	resp, err := callMethod[uploadServerResponse](ctx, v.api, http.MethodGet, "photos.getWallUploadServer", map[string]string{
		"group_id": strconv.FormatInt(groupID, 10),
	})
	if err != nil {
		return domain.UploadServer{}, err
	}
	if resp.UploadURL == "" {
		return domain.UploadServer{}, errors.MissingField("response.upload_url")
	}

	v.logger.Debug("Got wall upload server", "group_id", groupID, "album_id", resp.AlbumID)

	return domain.UploadServer{
		UploadURL: resp.UploadURL,
		AlbumID:   resp.AlbumID,
		UserID:    resp.UserID,
	}, nil
}

// UploadPhoto sends the file to the upload server. The server answers with a
// bare JSON object, not an API envelope.
func (v *VkImpl) UploadPhoto(ctx context.Context, uploadURL, path string) (domain.UploadedPhoto, error) {
	res, err := v.upload.R().
		SetContext(ctx).
		SetFile("photo", path).
		Post(uploadURL)
	if err != nil {
		return domain.UploadedPhoto{}, errors.Wrap(err, "failed to upload "+path)
	}
	if !res.IsSuccess() {
		return domain.UploadedPhoto{}, errors.UnexpectedStatus(http.MethodPost, uploadURL, res.StatusCode())
	}

	var body uploadResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return domain.UploadedPhoto{}, errors.Wrap(err, "failed to decode upload response")
	}

	// a rejected file comes back as "photo": "[]"
	if body.Photo == "" || body.Photo == "[]" {
		return domain.UploadedPhoto{}, errors.MissingField("photo")
	}
	if body.Hash == "" {
		return domain.UploadedPhoto{}, errors.MissingField("hash")
	}

	v.logger.Debug("Uploaded photo", "server", body.Server)

	return domain.UploadedPhoto{
		Photo:  body.Photo,
		Server: body.Server,
		Hash:   body.Hash,
	}, nil
}

// SaveWallPhoto calls photos.saveWallPhoto
func (v *VkImpl) SaveWallPhoto(ctx context.Context, groupID int64, photo domain.UploadedPhoto) ([]domain.SavedPhoto, error) {
	resp, err := callMethod[[]savedPhotoResponse](ctx, v.api, http.MethodPost, "photos.saveWallPhoto", map[string]string{
		"group_id": strconv.FormatInt(groupID, 10),
		"photo":    photo.Photo,
		"server":   strconv.FormatInt(photo.Server, 10),
		"hash":     photo.Hash,
	})
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		return nil, errors.MissingField("response[0]")
	}

	saved := make([]domain.SavedPhoto, 0, len(resp))
	for _, p := range resp {
		saved = append(saved, domain.SavedPhoto{
			ID:      p.ID,
			OwnerID: p.OwnerID,
			AlbumID: p.AlbumID,
			Text:    p.Text,
		})
	}
	return saved, nil
}
