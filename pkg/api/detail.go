package api

import (
	"errors"
	"strconv"

	"github.com/timothyds/uas-stimp/pkg/data"
)

// Local rejections: no request is made for these.
var (
	ErrNoRating      = errors.New("pilih rating dulu")
	ErrEmptyComment  = errors.New("komentar masih kosong")
	ErrRatingOutside = errors.New("rating must be between 1 and 5")
)

// ComicContent is everything the reader needs in one round-trip.
type ComicContent struct {
	Pages    []data.Page    `json:"pages"`
	Comments []data.Comment `json:"comments"`
}

// Content fetches a comic's pages and comments together.
func (c *Client) Content(comicID int) (*ComicContent, error) {
	form := map[string]string{"id": strconv.Itoa(comicID)}
	var content ComicContent
	if err := c.postForm("/get_comic_pages.php", form, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// SubmitRating posts a 1-5 rating. A zero value is rejected before any
// network call. The server only acknowledges; callers re-fetch content to
// see the updated aggregate rating.
func (c *Client) SubmitRating(comicID int, userID string, rating int) error {
	if rating == 0 {
		return ErrNoRating
	}
	if rating < 1 || rating > 5 {
		return ErrRatingOutside
	}
	form := map[string]string{
		"comic_id": strconv.Itoa(comicID),
		"rating":   strconv.Itoa(rating),
		"user_id":  userID,
	}
	return c.postForm("/submit_rating.php", form, nil)
}

// SubmitComment posts a comment. Empty text is rejected before any network
// call. The server assigns id and created_at, so callers re-fetch instead of
// appending locally.
func (c *Client) SubmitComment(comicID int, userID, text string) error {
	if text == "" {
		return ErrEmptyComment
	}
	form := map[string]string{
		"comic_id": strconv.Itoa(comicID),
		"comment":  text,
		"user_id":  userID,
	}
	return c.postForm("/submit_comment.php", form, nil)
}
