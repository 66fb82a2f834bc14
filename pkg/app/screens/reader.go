package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/app/components"
	"github.com/timothyds/uas-stimp/pkg/app/styles"
	"github.com/timothyds/uas-stimp/pkg/data"
	"github.com/timothyds/uas-stimp/pkg/log"
	"github.com/timothyds/uas-stimp/pkg/session"
)

type ReaderParams struct {
	ComicID    int
	ComicTitle string
}

type ReaderScreen struct {
	client   *api.Client
	sessions *session.Controller
	repo     *data.Repository
	params   ReaderParams

	pages    []data.Page
	comments []data.Comment
	pageIdx  int

	stars        *components.StarPicker
	commentInput textinput.Model

	loading    bool
	submitting bool
	status     string
	err        error
	fetchSeq   uint64

	width  int
	height int
}

func NewReaderScreen(client *api.Client, sessions *session.Controller, repo *data.Repository, params ReaderParams) *ReaderScreen {
	input := textinput.New()
	input.Placeholder = "Add a comment..."
	input.CharLimit = 280
	input.Width = 50

	return &ReaderScreen{
		client:       client,
		sessions:     sessions,
		repo:         repo,
		params:       params,
		stars:        components.NewStarPicker(),
		commentInput: input,
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	if s.params.ComicID == 0 {
		return nil
	}
	s.loading = true
	return s.loadContent()
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}

		if s.commentInput.Focused() {
			switch msg.String() {
			case "esc":
				s.commentInput.Blur()
				return s, nil
			case "enter":
				return s, s.submitComment()
			}
			s.commentInput, cmd = s.commentInput.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "left", "h":
			if s.pageIdx > 0 {
				s.pageIdx--
				return s, s.saveProgress()
			}
		case "right", "l":
			if s.pageIdx < len(s.pages)-1 {
				s.pageIdx++
				return s, s.saveProgress()
			}
		case "1", "2", "3", "4", "5":
			s.stars.Set(int(msg.String()[0] - '0'))
		case "s":
			return s, s.submitRating()
		case "c":
			s.commentInput.Focus()
			return s, textinput.Blink
		case "r":
			s.loading = true
			return s, s.loadContent()
		case "backspace", "esc":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "categories"}
			}
		}

	case contentLoadedMsg:
		if msg.seq != s.fetchSeq {
			return s, nil
		}
		s.loading = false
		s.err = msg.err
		if msg.content != nil {
			s.pages = msg.content.Pages
			s.comments = msg.content.Comments
			if s.pageIdx >= len(s.pages) {
				s.pageIdx = 0
			}
		}

	case ratingSubmittedMsg:
		s.submitting = false
		if msg.err != nil {
			s.status = styles.StatusError.Render(fmt.Sprintf("Failed to submit rating: %s", msg.err))
			return s, nil
		}
		// Reset the picker and reload so the aggregate rating comes from the
		// server, not a local guess.
		s.stars.Reset()
		s.status = styles.StatusOK.Render("Rating submitted!")
		s.loading = true
		return s, s.loadContent()

	case commentSubmittedMsg:
		s.submitting = false
		if msg.err != nil {
			s.status = styles.StatusError.Render(fmt.Sprintf("Failed to submit comment: %s", msg.err))
			return s, nil
		}
		// The server assigns id and created_at; re-fetch rather than append.
		s.commentInput.Reset()
		s.commentInput.Blur()
		s.status = ""
		s.loading = true
		return s, s.loadContent()

	case progressSavedMsg:
		// best effort; nothing to show in the UI
		if msg.err != nil {
			log.L().Warn("failed to save reading position", "comic_id", s.params.ComicID, "err", msg.err)
		}
	}

	return s, nil
}

func (s *ReaderScreen) View() string {
	if s.params.ComicID == 0 {
		return styles.StatusLoading.Render("Loading...")
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📖 %s", s.params.ComicTitle))

	var body string
	switch {
	case s.loading:
		body = styles.StatusLoading.Render("Loading...")
	case s.err != nil:
		body = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	default:
		body = s.renderPage()
	}

	rating := fmt.Sprintf("%s  %s",
		styles.SubtitleStyle.Render("Rate this comic:"),
		s.stars.View(),
	)

	commentStyle := styles.InputStyle
	if s.commentInput.Focused() {
		commentStyle = styles.FocusedInputStyle
	}

	sections := []string{
		header,
		body,
		"",
		rating,
		s.status,
		styles.SubtitleStyle.Render("Komentar"),
		s.renderComments(),
		commentStyle.Render(s.commentInput.View()),
		styles.HelpStyle.Render(
			"←/h →/l: halaman • 1-5: rating • s: kirim rating • c: komentar • r: refresh • esc: kembali",
		),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *ReaderScreen) renderPage() string {
	if len(s.pages) == 0 {
		return styles.MutedStyle.Render("Komik ini belum punya halaman")
	}
	page := s.pages[s.pageIdx]
	info := styles.SubtitleStyle.Render(
		fmt.Sprintf("Halaman %d dari %d", page.PageNumber, len(s.pages)),
	)
	// Image rendering stays outside this client; show the page source.
	img := styles.TextStyle.Render(page.ImageURL)
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, info, img))
}

func (s *ReaderScreen) renderComments() string {
	if len(s.comments) == 0 {
		return styles.MutedStyle.Render("Belum ada komentar")
	}
	var b strings.Builder
	for _, c := range s.comments {
		b.WriteString(styles.TextStyle.Render(c.Comment))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%s, %s", c.User, c.CreatedAt)))
		b.WriteString("\n")
	}
	return b.String()
}

type contentLoadedMsg struct {
	seq     uint64
	content *api.ComicContent
	err     error
}

type ratingSubmittedMsg struct{ err error }

type commentSubmittedMsg struct{ err error }

type progressSavedMsg struct{ err error }

func (s *ReaderScreen) loadContent() tea.Cmd {
	s.fetchSeq++
	seq := s.fetchSeq
	comicID := s.params.ComicID
	return func() tea.Msg {
		content, err := s.client.Content(comicID)
		return contentLoadedMsg{seq: seq, content: content, err: err}
	}
}

func (s *ReaderScreen) submitRating() tea.Cmd {
	rating := s.stars.Value
	if rating == 0 {
		// Rejected locally; nothing goes on the wire.
		s.status = styles.StatusError.Render("Please select a rating!")
		return nil
	}
	s.submitting = true
	comicID := s.params.ComicID
	userID := s.sessions.Current().Username
	return func() tea.Msg {
		return ratingSubmittedMsg{err: s.client.SubmitRating(comicID, userID, rating)}
	}
}

func (s *ReaderScreen) submitComment() tea.Cmd {
	text := s.commentInput.Value()
	if text == "" {
		return nil
	}
	s.submitting = true
	comicID := s.params.ComicID
	userID := s.sessions.Current().Username
	return func() tea.Msg {
		return commentSubmittedMsg{err: s.client.SubmitComment(comicID, userID, text)}
	}
}

func (s *ReaderScreen) saveProgress() tea.Cmd {
	comicID := s.params.ComicID
	title := s.params.ComicTitle
	page := s.pageIdx + 1
	return func() tea.Msg {
		return progressSavedMsg{err: s.repo.SaveProgress(comicID, title, page)}
	}
}
