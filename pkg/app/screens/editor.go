package screens

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/app/styles"
	"github.com/timothyds/uas-stimp/pkg/data"
	"github.com/timothyds/uas-stimp/pkg/editor"
)

// EditorParams selects the mode: a zero ComicID creates a new comic, a
// non-zero one loads that comic for update.
type EditorParams struct {
	ComicID int
}

const (
	fieldTitle = iota
	fieldDescription
	fieldReleaseDate
	fieldAuthor
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Judul Komik",
	"Deskripsi Komik",
	"Tanggal Rilis (YYYY-MM-DD)",
	"Nama Pengarang",
	"Gambar (URL)",
}

type EditorScreen struct {
	client  *api.Client
	mode    editor.Mode
	comicID int
	form    *editor.Form

	categories  []data.Category
	fieldInputs []textinput.Model
	pageInputs  []textinput.Model
	focus       int
	browsing    bool // category/page section has the keyboard
	catIdx      int

	loading    bool
	submitting bool
	errs       editor.ValidationErrors
	err        error

	width  int
	height int
}

func NewEditorScreen(client *api.Client, params EditorParams) *EditorScreen {
	mode := editor.Create
	if params.ComicID != 0 {
		mode = editor.Update
	}

	s := &EditorScreen{
		client:  client,
		mode:    mode,
		comicID: params.ComicID,
		form:    editor.NewForm(),
		loading: true,
	}
	s.seedInputs()
	return s
}

func (s *EditorScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.loadCategories, textinput.Blink}
	if s.mode == editor.Update {
		cmds = append(cmds, s.loadComic)
	}
	return tea.Batch(cmds...)
}

func (s *EditorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}

		switch msg.String() {
		case "ctrl+s":
			return s, s.submit()
		case "esc":
			s.browsing = !s.browsing
			if s.browsing {
				s.blurAll()
			} else {
				s.focusCurrent()
				return s, textinput.Blink
			}
			return s, nil
		}

		if s.browsing {
			switch msg.String() {
			case "up", "k":
				if s.catIdx > 0 {
					s.catIdx--
				}
			case "down", "j":
				if s.catIdx < len(s.categories)-1 {
					s.catIdx++
				}
			case " ", "enter":
				if len(s.categories) > 0 {
					s.form.ToggleCategory(s.categories[s.catIdx].ID)
				}
			case "p":
				// Tambah halaman: one more page input, numbered after the
				// last, existing pages untouched.
				s.form.AppendPage()
				s.pageInputs = append(s.pageInputs, newPageInput())
			case "backspace":
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "categories"}
				}
			}
			return s, nil
		}

		switch msg.String() {
		case "tab", "down":
			s.moveFocus(1)
			return s, textinput.Blink
		case "shift+tab", "up":
			s.moveFocus(-1)
			return s, textinput.Blink
		}

		cmd = s.updateFocused(msg)
		return s, cmd

	case editorCategoriesMsg:
		s.categories = msg.categories
		if msg.err != nil {
			s.err = msg.err
		}
		if s.mode == editor.Create {
			s.loading = false
		}

	case editorComicMsg:
		s.loading = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.err = nil
		s.form = editor.FromComic(msg.comic)
		s.seedInputs()
		s.focusCurrent()

	case editorSubmittedMsg:
		s.submitting = false
		if msg.err != nil {
			// Leave every field as-is so the user can correct and retry.
			s.err = msg.err
			return s, nil
		}
		// No local catalog mutation: navigate back and let the next fetch
		// show the new state.
		return s, func() tea.Msg {
			return SwitchScreenMsg{Screen: "categories"}
		}
	}

	return s, nil
}

func (s *EditorScreen) View() string {
	title := "➕ Komik Baru"
	if s.mode == editor.Update {
		title = fmt.Sprintf("✏️ Perbarui Komik #%d", s.comicID)
	}
	header := styles.TitleStyle.Render(title)

	if s.loading {
		return fmt.Sprintf("%s\n%s", header, styles.StatusLoading.Render("Loading..."))
	}

	var sections []string
	sections = append(sections, header)

	for i := range s.fieldInputs {
		sections = append(sections, s.renderInput(fieldLabels[i], s.fieldInputs[i], s.focus == i && !s.browsing))
		if s.errs != nil {
			if m, ok := s.errs[fieldErrKey(i)]; ok {
				sections = append(sections, styles.StatusError.Render("  "+m))
			}
		}
	}

	sections = append(sections, styles.SubtitleStyle.Render("Pilih Kategori:"), s.renderCategories())

	sections = append(sections, styles.SubtitleStyle.Render("Halaman Komik:"))
	for i := range s.pageInputs {
		label := fmt.Sprintf("Halaman %d", i+1)
		sections = append(sections, s.renderInput(label, s.pageInputs[i], s.focus == fieldCount+i && !s.browsing))
	}

	if s.err != nil {
		sections = append(sections, styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
	}
	if s.submitting {
		sections = append(sections, styles.StatusLoading.Render("Menyimpan..."))
	}

	mode := "fields"
	if s.browsing {
		mode = "kategori"
	}
	sections = append(sections, styles.HelpStyle.Render(fmt.Sprintf(
		"[%s] esc: ganti mode • tab: next field • space: toggle kategori • p: tambah halaman • ctrl+s: simpan • backspace: kembali",
		mode,
	)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *EditorScreen) renderInput(label string, input textinput.Model, focused bool) string {
	style := styles.InputStyle
	if focused {
		style = styles.FocusedInputStyle
	}
	return fmt.Sprintf("%s\n%s", styles.MutedStyle.Render(label), style.Render(input.View()))
}

func (s *EditorScreen) renderCategories() string {
	if len(s.categories) == 0 {
		return styles.MutedStyle.Render("Belum ada kategori")
	}
	chips := make([]string, len(s.categories))
	for i, cat := range s.categories {
		style := styles.ChipStyle
		if s.form.HasCategory(cat.ID) {
			style = styles.ChipSelectedStyle
		}
		name := cat.Name
		if s.browsing && i == s.catIdx {
			name = "› " + name
		}
		chips[i] = style.Render(name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (s *EditorScreen) seedInputs() {
	s.fieldInputs = make([]textinput.Model, fieldCount)
	values := [fieldCount]string{s.form.Title, s.form.Description, s.form.ReleaseDate, s.form.Author, s.form.Image}
	for i := range s.fieldInputs {
		input := textinput.New()
		input.Placeholder = fieldLabels[i]
		input.CharLimit = 500
		input.Width = 50
		input.SetValue(values[i])
		s.fieldInputs[i] = input
	}
	s.fieldInputs[0].Focus()
	s.focus = 0

	pages := s.form.Pages()
	s.pageInputs = make([]textinput.Model, len(pages))
	for i, page := range pages {
		input := newPageInput()
		input.SetValue(page.ImageURL)
		s.pageInputs[i] = input
	}
}

func newPageInput() textinput.Model {
	input := textinput.New()
	input.Placeholder = "URL Gambar"
	input.CharLimit = 500
	input.Width = 50
	return input
}

func (s *EditorScreen) inputCount() int {
	return len(s.fieldInputs) + len(s.pageInputs)
}

func (s *EditorScreen) moveFocus(delta int) {
	s.blurAll()
	s.focus = (s.focus + delta + s.inputCount()) % s.inputCount()
	s.focusCurrent()
}

func (s *EditorScreen) blurAll() {
	for i := range s.fieldInputs {
		s.fieldInputs[i].Blur()
	}
	for i := range s.pageInputs {
		s.pageInputs[i].Blur()
	}
}

func (s *EditorScreen) focusCurrent() {
	if s.focus < fieldCount {
		s.fieldInputs[s.focus].Focus()
	} else if s.focus-fieldCount < len(s.pageInputs) {
		s.pageInputs[s.focus-fieldCount].Focus()
	}
}

func (s *EditorScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.focus < fieldCount {
		s.fieldInputs[s.focus], cmd = s.fieldInputs[s.focus].Update(msg)
	} else if s.focus-fieldCount < len(s.pageInputs) {
		i := s.focus - fieldCount
		s.pageInputs[i], cmd = s.pageInputs[i].Update(msg)
	}
	return cmd
}

// syncForm copies the input widgets back into the form state.
func (s *EditorScreen) syncForm() {
	s.form.Title = s.fieldInputs[fieldTitle].Value()
	s.form.Description = s.fieldInputs[fieldDescription].Value()
	s.form.ReleaseDate = s.fieldInputs[fieldReleaseDate].Value()
	s.form.Author = s.fieldInputs[fieldAuthor].Value()
	s.form.Image = s.fieldInputs[fieldImage].Value()
	for i := range s.pageInputs {
		s.form.SetPageImage(i, s.pageInputs[i].Value())
	}
}

func (s *EditorScreen) submit() tea.Cmd {
	// In update mode nothing may go out until the comic's current state has
	// been loaded into the form; a bare form would serialize id=0.
	if s.mode == editor.Update && s.form.ComicID != s.comicID {
		s.err = errComicNotLoaded
		return nil
	}

	s.syncForm()
	s.errs = nil
	s.err = nil

	// Same gate for create and update.
	if err := s.form.Validate(); err != nil {
		var verrs editor.ValidationErrors
		if errors.As(err, &verrs) {
			s.errs = verrs
		} else {
			s.err = err
		}
		return nil
	}

	s.submitting = true
	values := s.form.Values(s.mode)
	mode := s.mode
	return func() tea.Msg {
		var err error
		if mode == editor.Update {
			err = s.client.UpdateComic(values)
		} else {
			err = s.client.CreateComic(values)
		}
		return editorSubmittedMsg{err: err}
	}
}

func fieldErrKey(i int) string {
	switch i {
	case fieldTitle:
		return "title"
	case fieldDescription:
		return "description"
	case fieldReleaseDate:
		return "release_date"
	case fieldAuthor:
		return "author"
	case fieldImage:
		return "image"
	}
	return ""
}

var errComicNotLoaded = errors.New("data komik belum dimuat, coba lagi")

type editorCategoriesMsg struct {
	categories []data.Category
	err        error
}

type editorComicMsg struct {
	comic *data.Comic
	err   error
}

type editorSubmittedMsg struct{ err error }

func (s *EditorScreen) loadCategories() tea.Msg {
	categories, err := s.client.Categories()
	return editorCategoriesMsg{categories: categories, err: err}
}

func (s *EditorScreen) loadComic() tea.Msg {
	comic, err := s.client.ComicDetail(s.comicID)
	return editorComicMsg{comic: comic, err: err}
}
