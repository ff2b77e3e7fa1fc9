package vkimpl

import (
	"context"
	"net/http"
	"strings"

	"github.com/DrSleep16/comics-vk/pkg/errors"
	"github.com/DrSleep16/comics-vk/pkg/formatter"
)

type wallPostResponse struct {
	PostID int64 `json:"post_id"`
}

type groupsResponse struct {
	Count int64   `json:"count"`
	Items []int64 `json:"items"`
}

// WallPost calls wall.post on behalf of the group owner id
func (v *VkImpl) WallPost(ctx context.Context, groupID int64, attachments []string, message string) (int64, error) {
	resp, err := callMethod[wallPostResponse](ctx, v.api, http.MethodPost, "wall.post", map[string]string{
		"owner_id":    formatter.GroupOwnerID(groupID),
		"attachments": strings.Join(attachments, ","),
		"message":     message,
	})
	if err != nil {
		return 0, err
	}
	if resp.PostID == 0 {
		return 0, errors.MissingField("response.post_id")
	}

	v.logger.Debug("Published wall post", "group_id", groupID, "post_id", resp.PostID)
	return resp.PostID, nil
}

// GetGroups calls groups.get for the token owner
func (v *VkImpl) GetGroups(ctx context.Context) ([]int64, error) {
	resp, err := callMethod[groupsResponse](ctx, v.api, http.MethodGet, "groups.get", nil)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
