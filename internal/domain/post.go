package domain

type Post struct {
	PostID     int64
	GroupID    int64
	Attachment string
	Message    string
}

// Publication is the outcome of one run.
type Publication struct {
	Comic  Comic
	Post   Post
	DryRun bool
}
