package screens

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/app/styles"
	"github.com/timothyds/uas-stimp/pkg/session"
)

type LoginScreen struct {
	sessions *session.Controller

	username   textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	err        error
	notice     string
	width      int
	height     int
}

func NewLoginScreen(sessions *session.Controller) *LoginScreen {
	user := textinput.New()
	user.Placeholder = "Username"
	user.Focus()
	user.CharLimit = 64
	user.Width = 30

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.EchoMode = textinput.EchoPassword
	pass.CharLimit = 64
	pass.Width = 30

	return &LoginScreen{
		sessions: sessions,
		username: user,
		password: pass,
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *LoginScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			s.focus = (s.focus + 1) % 2
			if s.focus == 0 {
				s.username.Focus()
				s.password.Blur()
			} else {
				s.username.Blur()
				s.password.Focus()
			}
			return s, textinput.Blink

		case "enter":
			if s.username.Value() == "" || s.password.Value() == "" {
				s.notice = "Isi username dan password dulu"
				return s, nil
			}
			s.notice = ""
			s.err = nil
			s.submitting = true
			return s, s.doLogin(s.username.Value(), s.password.Value())
		}

	case loginResultMsg:
		s.submitting = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		// The session controller notifies the root, which swaps screens.
		return s, nil
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.username, cmd = s.username.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) View() string {
	header := styles.TitleStyle.Render("🔐 Silakan Login")

	userStyle := styles.InputStyle
	passStyle := styles.InputStyle
	if s.focus == 0 {
		userStyle = styles.FocusedInputStyle
	} else {
		passStyle = styles.FocusedInputStyle
	}

	var status string
	if s.submitting {
		status = styles.StatusLoading.Render("Logging in...")
	} else if s.err != nil {
		status = styles.StatusError.Render(loginErrorText(s.err))
	} else if s.notice != "" {
		status = styles.StatusError.Render(s.notice)
	}

	help := styles.HelpStyle.Render("tab: switch field • enter: login • ctrl+c: quit")

	form := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		userStyle.Render(s.username.View()),
		passStyle.Render(s.password.View()),
		status,
		help,
	)

	if s.width == 0 {
		return form
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, form)
}

type loginResultMsg struct {
	err error
}

func (s *LoginScreen) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := s.sessions.Login(username, password)
		return loginResultMsg{err: err}
	}
}

// A rejection envelope means wrong credentials; anything else is transport.
func loginErrorText(err error) string {
	var serverErr *api.ServerError
	if errors.As(err, &serverErr) {
		return "Username atau password salah"
	}
	return fmt.Sprintf("Login gagal: %s", err)
}
