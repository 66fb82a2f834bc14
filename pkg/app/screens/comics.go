package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/app/components"
	"github.com/timothyds/uas-stimp/pkg/app/styles"
	"github.com/timothyds/uas-stimp/pkg/data"
)

// ComicsParams are the navigation parameters this screen needs before it may
// fetch anything.
type ComicsParams struct {
	CategoryID   int
	CategoryName string
}

func (p ComicsParams) resolved() bool {
	return p.CategoryID != 0 && p.CategoryName != ""
}

type ComicsScreen struct {
	client *api.Client
	repo   *data.Repository
	params ComicsParams

	search  textinput.Model
	list    *components.ComicList
	loading bool
	err     error

	// fetchSeq guards overlapping fetches: only the latest issued request
	// may update the list.
	fetchSeq uint64

	width  int
	height int
}

func NewComicsScreen(client *api.Client, repo *data.Repository, params ComicsParams) *ComicsScreen {
	search := textinput.New()
	search.Placeholder = "Cari komik..."
	search.CharLimit = 100
	search.Width = 40

	return &ComicsScreen{
		client: client,
		repo:   repo,
		params: params,
		search: search,
		list:   components.NewComicList(),
	}
}

func (s *ComicsScreen) Init() tea.Cmd {
	// Without both the category id and name there is nothing to fetch.
	if !s.params.resolved() {
		return nil
	}
	s.loading = true
	return s.loadComics(s.search.Value())
}

func (s *ComicsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if s.search.Focused() {
				// Explicit search submission re-invokes the same endpoint.
				s.loading = true
				return s, s.loadComics(s.search.Value())
			}
			if selected := s.list.Selected(); selected != nil {
				comic := selected.Comic
				return s, func() tea.Msg {
					return SwitchScreenMsg{
						Screen: "reader",
						Data:   ReaderParams{ComicID: comic.ID, ComicTitle: comic.Title},
					}
				}
			}

		case "esc":
			if s.search.Focused() {
				s.search.Blur()
			} else {
				s.search.Focus()
				cmd = textinput.Blink
			}

		case "up", "k":
			if !s.search.Focused() {
				s.list.Prev()
			}
		case "down", "j":
			if !s.search.Focused() {
				s.list.Next()
			}
		case "e":
			if !s.search.Focused() {
				if selected := s.list.Selected(); selected != nil {
					id := selected.Comic.ID
					return s, func() tea.Msg {
						return SwitchScreenMsg{Screen: "editor", Data: EditorParams{ComicID: id}}
					}
				}
			}
		case "backspace":
			if !s.search.Focused() {
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "categories"}
				}
			}
		}

	case comicsLoadedMsg:
		if msg.seq != s.fetchSeq {
			// A newer request is in flight; drop this stale response.
			return s, nil
		}
		s.loading = false
		s.err = msg.err
		items := make([]components.ComicListItem, len(msg.comics))
		for i, comic := range msg.comics {
			lastPage, _ := s.repo.GetProgress(comic.ID)
			items[i] = components.ComicListItem{Comic: comic, LastPage: lastPage}
		}
		s.list.SetItems(items)
	}

	if s.search.Focused() {
		s.search, cmd = s.search.Update(msg)
	}

	return s, cmd
}

func (s *ComicsScreen) View() string {
	if !s.params.resolved() {
		return styles.StatusLoading.Render("Loading...")
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📖 Daftar Komik - %s", s.params.CategoryName))

	searchStyle := styles.InputStyle
	if s.search.Focused() {
		searchStyle = styles.FocusedInputStyle
	}
	searchView := searchStyle.Render(s.search.View())

	var body string
	switch {
	case s.loading:
		body = styles.StatusLoading.Render("Loading...")
	case s.err != nil:
		body = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	default:
		body = s.list.View()
	}

	help := styles.HelpStyle.Render(
		"esc: fokus cari • enter: baca/cari • e: edit komik • backspace: kategori • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, searchView, body, help)
}

type comicsLoadedMsg struct {
	seq    uint64
	comics []data.Comic
	err    error
}

func (s *ComicsScreen) loadComics(search string) tea.Cmd {
	s.fetchSeq++
	seq := s.fetchSeq
	params := s.params
	return func() tea.Msg {
		comics, err := s.client.Comics(params.CategoryID, params.CategoryName, search)
		return comicsLoadedMsg{seq: seq, comics: comics, err: err}
	}
}
