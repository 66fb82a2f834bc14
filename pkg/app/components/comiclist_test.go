package components

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/timothyds/uas-stimp/pkg/data"
)

func sampleItems() []ComicListItem {
	return []ComicListItem{
		{Comic: data.Comic{ID: 1, Title: "Alpha"}},
		{Comic: data.Comic{ID: 2, Title: "Beta"}},
		{Comic: data.Comic{ID: 3, Title: "Gamma"}},
	}
}

func TestComicListNavigationWraps(t *testing.T) {
	l := NewComicList()
	l.SetItems(sampleItems())

	if l.SelectedIndex != 0 {
		t.Fatalf("expected initial selection 0, got %d", l.SelectedIndex)
	}

	l.Next()
	l.Next()
	if l.SelectedIndex != 2 {
		t.Errorf("expected selection 2, got %d", l.SelectedIndex)
	}

	l.Next()
	if l.SelectedIndex != 0 {
		t.Errorf("expected wrap to 0, got %d", l.SelectedIndex)
	}

	l.Prev()
	if l.SelectedIndex != 2 {
		t.Errorf("expected wrap back to 2, got %d", l.SelectedIndex)
	}
}

func TestComicListNavigationEmpty(t *testing.T) {
	l := NewComicList()

	l.Next()
	l.Prev()
	if l.SelectedIndex != 0 {
		t.Errorf("navigation on empty list moved selection to %d", l.SelectedIndex)
	}
	if l.Selected() != nil {
		t.Error("Selected on empty list should be nil")
	}
}

func TestComicListSelected(t *testing.T) {
	l := NewComicList()
	l.SetItems(sampleItems())
	l.Next()

	sel := l.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Comic.ID != 2 {
		t.Errorf("expected comic 2 selected, got %d", sel.Comic.ID)
	}
}

func TestComicListSetItemsResetsStaleSelection(t *testing.T) {
	l := NewComicList()
	l.SetItems(sampleItems())
	l.Next()
	l.Next()

	l.SetItems(sampleItems()[:1])
	if l.SelectedIndex != 0 {
		t.Errorf("expected selection reset to 0, got %d", l.SelectedIndex)
	}
}

func TestComicListViewShowsLastReadPage(t *testing.T) {
	l := NewComicList()
	l.SetItems([]ComicListItem{
		{Comic: data.Comic{ID: 1, Title: "Alpha"}, LastPage: 4},
	})

	view := l.View()
	if !strings.Contains(view, "terakhir dibaca hal. 4") {
		t.Error("expected reading position in card view")
	}
}

func TestComicListViewTruncatesDescriptionOnRuneBoundary(t *testing.T) {
	l := NewComicList()
	l.SetItems([]ComicListItem{
		{Comic: data.Comic{ID: 1, Title: "Alpha", Description: strings.Repeat("é", 130)}},
	})

	view := l.View()
	if !utf8.ValidString(view) {
		t.Error("truncated card view contains invalid UTF-8")
	}
	if !strings.Contains(view, "...") {
		t.Error("expected an ellipsis after truncation")
	}
}

func TestComicListViewEmpty(t *testing.T) {
	l := NewComicList()
	if !strings.Contains(l.View(), "Tidak ada komik") {
		t.Error("expected empty-state message")
	}
}
