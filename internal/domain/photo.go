package domain

// UploadServer is the transient endpoint VK issues for a direct wall photo upload.
type UploadServer struct {
	UploadURL string
	AlbumID   int64
	UserID    int64
}

// UploadedPhoto is what the upload server returns. It has to be confirmed
// with photos.saveWallPhoto before it can be attached.
type UploadedPhoto struct {
	Photo  string
	Server int64
	Hash   string
}

type SavedPhoto struct {
	ID      int64
	OwnerID int64
	AlbumID int64
	Text    string
}
