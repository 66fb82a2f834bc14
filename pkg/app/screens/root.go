package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/data"
	"github.com/timothyds/uas-stimp/pkg/session"
)

type screenType int

const (
	loginView screenType = iota
	categoriesView
	comicsView
	readerView
	editorView
)

// SwitchScreenMsg asks the root to show another screen. Data carries the
// navigation parameters the target screen needs.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type sessionStateMsg struct {
	state session.State
}

type RootScreen struct {
	client   *api.Client
	sessions *session.Controller
	repo     *data.Repository
	states   <-chan session.State

	currentView screenType
	login       *LoginScreen
	categories  *CategoriesScreen
	comics      *ComicsScreen
	reader      *ReaderScreen
	editor      *EditorScreen

	width  int
	height int
}

func NewRootScreen(client *api.Client, sessions *session.Controller, repo *data.Repository) *RootScreen {
	r := &RootScreen{
		client:   client,
		sessions: sessions,
		repo:     repo,
	}

	// Route on startup: an unreadable or absent session means login.
	// Subscribe after resolving so the initial transition is not replayed.
	if _, ok := sessions.Resolve(); ok {
		r.currentView = categoriesView
		r.categories = NewCategoriesScreen(client, sessions, repo)
	} else {
		r.currentView = loginView
		r.login = NewLoginScreen(sessions)
	}
	r.states = sessions.Subscribe()

	return r
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.active().Init(), r.listenForSession)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}

	case sessionStateMsg:
		// One-way redirect, evaluated on every transition.
		var cmd tea.Cmd
		if msg.state == session.LoggedIn {
			r.categories = NewCategoriesScreen(r.client, r.sessions, r.repo)
			r.currentView = categoriesView
			cmd = r.categories.Init()
		} else {
			r.login = NewLoginScreen(r.sessions)
			r.currentView = loginView
			cmd = r.login.Init()
		}
		return r, tea.Batch(cmd, r.listenForSession)

	case SwitchScreenMsg:
		var cmd tea.Cmd
		switch msg.Screen {
		case "categories":
			r.categories = NewCategoriesScreen(r.client, r.sessions, r.repo)
			r.currentView = categoriesView
			cmd = r.categories.Init()
		case "comics":
			if params, ok := msg.Data.(ComicsParams); ok {
				r.comics = NewComicsScreen(r.client, r.repo, params)
				r.currentView = comicsView
				cmd = r.comics.Init()
			}
		case "reader":
			if params, ok := msg.Data.(ReaderParams); ok {
				r.reader = NewReaderScreen(r.client, r.sessions, r.repo, params)
				r.currentView = readerView
				cmd = r.reader.Init()
			}
		case "editor":
			if params, ok := msg.Data.(EditorParams); ok {
				r.editor = NewEditorScreen(r.client, params)
				r.currentView = editorView
				cmd = r.editor.Init()
			}
		}
		return r, cmd
	}

	// Forward everything else to the active screen.
	switch r.currentView {
	case loginView:
		newModel, cmd := r.login.Update(msg)
		r.login = newModel.(*LoginScreen)
		return r, cmd
	case categoriesView:
		newModel, cmd := r.categories.Update(msg)
		r.categories = newModel.(*CategoriesScreen)
		return r, cmd
	case comicsView:
		newModel, cmd := r.comics.Update(msg)
		r.comics = newModel.(*ComicsScreen)
		return r, cmd
	case readerView:
		newModel, cmd := r.reader.Update(msg)
		r.reader = newModel.(*ReaderScreen)
		return r, cmd
	case editorView:
		newModel, cmd := r.editor.Update(msg)
		r.editor = newModel.(*EditorScreen)
		return r, cmd
	}

	return r, nil
}

func (r *RootScreen) View() string {
	return r.active().View()
}

func (r *RootScreen) active() tea.Model {
	switch r.currentView {
	case categoriesView:
		return r.categories
	case comicsView:
		return r.comics
	case readerView:
		return r.reader
	case editorView:
		return r.editor
	default:
		return r.login
	}
}

func (r *RootScreen) listenForSession() tea.Msg {
	return sessionStateMsg{state: <-r.states}
}
