package formatter

import (
	"fmt"
	"path"
	"strings"
)

// PhotoAttachment builds the attachment reference of a saved photo.
// Example: (-123, 456) -> "photo-123_456"
func PhotoAttachment(ownerID, photoID int64) string {
	return fmt.Sprintf("photo%d_%d", ownerID, photoID)
}

// GroupOwnerID returns the wall owner id of a community, which VK expects negated.
// Example: 123 -> "-123"
func GroupOwnerID(groupID int64) string {
	return fmt.Sprintf("-%d", groupID)
}

// WallPostURL returns the public link of a post on a community wall.
func WallPostURL(groupID, postID int64) string {
	return fmt.Sprintf("https://vk.com/wall-%d_%d", groupID, postID)
}

// ImageExt returns the lower-cased extension of an image URL, ".png" when it has none.
func ImageExt(imageURL string) string {
	if i := strings.IndexAny(imageURL, "?#"); i >= 0 {
		imageURL = imageURL[:i]
	}
	ext := strings.ToLower(path.Ext(imageURL))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
		return ext
	default:
		return ".png"
	}
}
