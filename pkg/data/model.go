package data

import "time"

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type Comic struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ReleaseDate string  `json:"release_date"`
	Author      string  `json:"author"`
	Thumbnail   string  `json:"thumbnail"`
	Categories  []int   `json:"categories"`
	Rating      float64 `json:"rating"`
	Pages       []Page  `json:"pages"`
}

type Page struct {
	PageNumber int    `json:"page_number"`
	ImageURL   string `json:"image_url"`
}

type Comment struct {
	ID        int    `json:"id"`
	User      string `json:"user"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// ReadProgress is the last page a user stopped at in a comic.
// Kept locally only; the server never sees it.
type ReadProgress struct {
	ComicID   int
	Title     string
	Page      int
	UpdatedAt time.Time
}
