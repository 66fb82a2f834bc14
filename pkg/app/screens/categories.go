package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/app/styles"
	"github.com/timothyds/uas-stimp/pkg/data"
	"github.com/timothyds/uas-stimp/pkg/session"
)

type CategoriesScreen struct {
	client   *api.Client
	sessions *session.Controller
	repo     *data.Repository

	categories []data.Category
	selected   int
	loading    bool
	err        error
	width      int
	height     int
}

func NewCategoriesScreen(client *api.Client, sessions *session.Controller, repo *data.Repository) *CategoriesScreen {
	return &CategoriesScreen{
		client:   client,
		sessions: sessions,
		repo:     repo,
		loading:  true,
	}
}

func (s *CategoriesScreen) Init() tea.Cmd {
	return s.loadCategories
}

func (s *CategoriesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.categories)-1 {
				s.selected++
			}
		case "enter":
			if len(s.categories) > 0 {
				cat := s.categories[s.selected]
				return s, func() tea.Msg {
					return SwitchScreenMsg{
						Screen: "comics",
						Data:   ComicsParams{CategoryID: cat.ID, CategoryName: cat.Name},
					}
				}
			}
		case "n":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "editor", Data: EditorParams{}}
			}
		case "r":
			s.loading = true
			return s, s.loadCategories
		case "L":
			// The controller notifies the root, which routes to login.
			s.sessions.Logout()
			return s, nil
		}

	case categoriesLoadedMsg:
		s.loading = false
		s.categories = msg.categories
		s.err = msg.err
		if s.selected >= len(s.categories) {
			s.selected = 0
		}
	}

	return s, nil
}

func (s *CategoriesScreen) View() string {
	username := s.sessions.Current().Username
	header := styles.TitleStyle.Render(fmt.Sprintf("📚 Halo, %s! Pilih Kategori Komik:", username))

	var body string
	switch {
	case s.loading:
		body = styles.StatusLoading.Render("Loading...")
	case s.err != nil:
		body = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	case len(s.categories) == 0:
		body = styles.MutedStyle.Render("Belum ada kategori")
	default:
		var b strings.Builder
		for i, cat := range s.categories {
			line := cat.Name
			if i == s.selected {
				b.WriteString(styles.SelectedStyle.Render(line))
			} else {
				b.WriteString(styles.TextStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
		body = b.String()
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: lihat komik • n: komik baru • r: refresh • L: logout • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}

type categoriesLoadedMsg struct {
	categories []data.Category
	err        error
}

func (s *CategoriesScreen) loadCategories() tea.Msg {
	categories, err := s.client.Categories()
	return categoriesLoadedMsg{categories: categories, err: err}
}
