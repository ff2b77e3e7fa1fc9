package domain

type Comic struct {
	Num        int    // xkcd comic number
	Title      string // Display title
	SafeTitle  string // Title without markup
	ImageURL   string // Direct link to the image
	Alt        string // Caption, used as the post message
	Transcript string
	Year       string
	Month      string
	Day        string
}

// ComicImage is a comic whose image has been written to a local temporary file.
type ComicImage struct {
	Comic Comic
	Path  string
}
