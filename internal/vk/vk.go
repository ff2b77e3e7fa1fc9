package vk

import (
	"context"
	"fmt"

	"github.com/DrSleep16/comics-vk/internal/domain"
)

// APIError is the error object VK returns with a 200 status.
type APIError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vk api error %d: %s", e.Code, e.Message)
}

//go:generate go run go.uber.org/mock/mockgen -source=vk.go -destination=mocks/mock.go
type Client interface {
	// GetWallUploadServer asks for an upload endpoint bound to the group's wall album
	GetWallUploadServer(ctx context.Context, groupID int64) (domain.UploadServer, error)

	// UploadPhoto posts the file at path to uploadURL as multipart field "photo"
	UploadPhoto(ctx context.Context, uploadURL, path string) (domain.UploadedPhoto, error)

	// SaveWallPhoto confirms an upload and returns the permanent photo descriptors
	SaveWallPhoto(ctx context.Context, groupID int64, photo domain.UploadedPhoto) ([]domain.SavedPhoto, error)

	// WallPost publishes message with attachments on the group wall and returns the post id
	WallPost(ctx context.Context, groupID int64, attachments []string, message string) (int64, error)

	// GetGroups lists the ids of the groups the token owner is a member of
	GetGroups(ctx context.Context) ([]int64, error)
}
