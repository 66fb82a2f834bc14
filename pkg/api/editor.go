package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/timothyds/uas-stimp/pkg/data"
)

// ComicDetail fetches one comic with its category ids and page list, for
// pre-filling the update form.
func (c *Client) ComicDetail(comicID int) (*data.Comic, error) {
	var comic data.Comic
	query := map[string]string{"id": strconv.Itoa(comicID)}
	if err := c.get("/detailcomic.php", query, &comic); err != nil {
		return nil, err
	}
	return &comic, nil
}

// CreateComic submits a new comic. The values come from editor.Form and
// already carry the categories and pages fields as JSON blobs.
func (c *Client) CreateComic(form url.Values) error {
	return c.submitComic("/newcomic.php", form)
}

// UpdateComic submits changed fields for an existing comic. Same payload
// shape as create plus the id field.
func (c *Client) UpdateComic(form url.Values) error {
	if form.Get("id") == "" {
		return fmt.Errorf("update payload is missing the comic id")
	}
	return c.submitComic("/updatecomic.php", form)
}

func (c *Client) submitComic(path string, form url.Values) error {
	resp, err := c.http.R().SetFormDataFromValues(form).Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return decodeEnvelope(path, resp.Body(), nil)
}
