package api

import (
	"strconv"

	"github.com/timothyds/uas-stimp/pkg/data"
)

// Categories fetches the category list. An empty list is a valid result.
func (c *Client) Categories() ([]data.Category, error) {
	var categories []data.Category
	if err := c.get("/get_categories.php", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Comics fetches the comics of one category. Both the category id and name
// are required by the endpoint; search, when non-empty, is passed through as
// the "cari" filter. Result order is whatever the server returns.
func (c *Client) Comics(categoryID int, categoryName, search string) ([]data.Comic, error) {
	form := map[string]string{
		"id":   strconv.Itoa(categoryID),
		"name": categoryName,
	}
	if search != "" {
		form["cari"] = search
	}

	var comics []data.Comic
	if err := c.postForm("/get_comics.php", form, &comics); err != nil {
		return nil, err
	}
	return comics, nil
}
