package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#7AA2F7")
	Secondary  = lipgloss.Color("#BB9AF7")
	Success    = lipgloss.Color("#9ECE6A")
	Warning    = lipgloss.Color("#E0AF68")
	Error      = lipgloss.Color("#F7768E")
	Muted      = lipgloss.Color("#565F89")
	Foreground = lipgloss.Color("#C0CAF5")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			BorderStyle(RoundedBorder).
			BorderForeground(Primary).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(1, 2).
			MarginBottom(1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(1, 2).
			MarginBottom(1)

	StatusOK = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	StatusLoading = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)

	// Category chips in the editor and the category picker
	ChipStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Border(RoundedBorder).
			BorderForeground(Muted).
			Padding(0, 1)

	ChipSelectedStyle = lipgloss.NewStyle().
				Foreground(Success).
				Border(RoundedBorder).
				BorderForeground(Success).
				Padding(0, 1)

	// Rating stars
	StarOn  = lipgloss.NewStyle().Foreground(Warning)
	StarOff = lipgloss.NewStyle().Foreground(Muted)
)
