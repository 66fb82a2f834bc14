// Package editor holds the create/update comic form: its field state, the
// category selection, the ordered page list, the validation gate and the
// final form-encoded payload.
package editor

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/timothyds/uas-stimp/pkg/data"
)

type Mode int

const (
	Create Mode = iota
	Update
)

// Form is the editable state behind the add/update screens. All fields
// default to empty strings and empty lists so inputs are always bound to a
// concrete value.
type Form struct {
	ComicID     int // only set in Update mode
	Title       string
	Description string
	ReleaseDate string
	Author      string
	Image       string

	selected []int // category ids, insertion order, no duplicates
	pages    []data.Page
}

// NewForm starts a create form with a single empty page, matching the
// original entry screen.
func NewForm() *Form {
	return &Form{pages: []data.Page{{PageNumber: 1, ImageURL: ""}}}
}

// FromComic flattens a fetched comic into an update form. Missing lists
// become empty, never nil slices exposed to callers.
func FromComic(c *data.Comic) *Form {
	f := &Form{
		ComicID:     c.ID,
		Title:       c.Title,
		Description: c.Description,
		ReleaseDate: c.ReleaseDate,
		Author:      c.Author,
		Image:       c.Thumbnail,
		selected:    append([]int{}, c.Categories...),
		pages:       append([]data.Page{}, c.Pages...),
	}
	if len(f.pages) == 0 {
		f.pages = []data.Page{{PageNumber: 1, ImageURL: ""}}
	}
	return f
}

// ToggleCategory adds the id if absent and removes it if present. Insertion
// order is kept for serialization; duplicates cannot occur.
func (f *Form) ToggleCategory(id int) {
	for i, v := range f.selected {
		if v == id {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			return
		}
	}
	f.selected = append(f.selected, id)
}

// HasCategory reports whether the id is currently selected.
func (f *Form) HasCategory(id int) bool {
	for _, v := range f.selected {
		if v == id {
			return true
		}
	}
	return false
}

// Categories returns the selection in insertion order.
func (f *Form) Categories() []int {
	return append([]int{}, f.selected...)
}

// Pages returns the ordered page list.
func (f *Form) Pages() []data.Page {
	return append([]data.Page{}, f.pages...)
}

// AppendPage adds one empty page numbered after the last. Existing pages are
// never renumbered.
func (f *Form) AppendPage() {
	f.pages = append(f.pages, data.Page{PageNumber: len(f.pages) + 1, ImageURL: ""})
}

// SetPageImage replaces the image URL at index. An out-of-range index is a
// caller bug and panics like any slice access.
func (f *Form) SetPageImage(index int, imageURL string) {
	f.pages[index].ImageURL = imageURL
}

// Values serializes the form into the single POST payload both endpoints
// expect: scalar fields plus categories and pages as JSON blobs. Update
// payloads additionally carry the comic id.
func (f *Form) Values(mode Mode) url.Values {
	selected := f.selected
	if selected == nil {
		selected = []int{}
	}
	cats, _ := json.Marshal(selected)
	pages, _ := json.Marshal(f.pages)

	v := url.Values{}
	if mode == Update {
		v.Set("id", strconv.Itoa(f.ComicID))
	}
	v.Set("title", f.Title)
	v.Set("description", f.Description)
	v.Set("release_date", f.ReleaseDate)
	v.Set("author", f.Author)
	v.Set("image", f.Image)
	v.Set("categories", string(cats))
	v.Set("pages", string(pages))
	return v
}
