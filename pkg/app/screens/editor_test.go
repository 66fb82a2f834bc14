package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/data"
)

func loadedComic() *data.Comic {
	return &data.Comic{
		ID:          42,
		Title:       "Dragon Tale",
		Description: strings.Repeat("deskripsi ", 6),
		ReleaseDate: "2024-01-01",
		Author:      "Pengarang",
		Pages:       []data.Page{{PageNumber: 1, ImageURL: "u1"}},
	}
}

func TestEditorUpdateSubmitBlockedBeforeComicLoads(t *testing.T) {
	s := NewEditorScreen(api.NewClient(""), EditorParams{ComicID: 42})

	// ctrl+s before the detail fetch completes: the form still holds no
	// comic, so nothing may be sent.
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatal("submit before the comic loads must not produce a command")
	}
	if s.err == nil {
		t.Error("expected a visible error explaining the blocked submit")
	}
}

func TestEditorUpdateSubmitBlockedAfterLoadFailure(t *testing.T) {
	s := NewEditorScreen(api.NewClient(""), EditorParams{ComicID: 42})

	s.Update(editorComicMsg{err: &api.ServerError{Message: "komik tidak ditemukan"}})

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatal("submit after a failed load must not produce a command")
	}
}

func TestEditorUpdateSubmitAfterComicLoads(t *testing.T) {
	s := NewEditorScreen(api.NewClient(""), EditorParams{ComicID: 42})

	s.Update(editorComicMsg{comic: loadedComic()})

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected a submit command once the comic is loaded and valid")
	}
	if s.err != nil {
		t.Errorf("unexpected error: %v", s.err)
	}
}

func TestEditorCreateSubmitValidatesWithoutLoad(t *testing.T) {
	s := NewEditorScreen(api.NewClient(""), EditorParams{})

	// Create mode has nothing to wait for; an empty form fails validation
	// rather than being blocked.
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatal("an empty create form must not submit")
	}
	if len(s.errs) == 0 {
		t.Error("expected per-field validation errors")
	}
}
