package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/app/screens"
	"github.com/timothyds/uas-stimp/pkg/config"
	"github.com/timothyds/uas-stimp/pkg/data"
	"github.com/timothyds/uas-stimp/pkg/log"
	"github.com/timothyds/uas-stimp/pkg/session"
)

type App struct {
	cfg config.Config
}

func NewApp(cfg config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	log.L().Info("starting komik", "base_url", a.cfg.BaseURL, "timeout", a.cfg.Timeout())

	client := api.NewClient(a.cfg.BaseURL)
	client.SetTimeout(a.cfg.Timeout())

	sessions := session.NewController(session.NewKeyringStore(), client)
	repo := data.NewDuckDBRepository(a.cfg.DBPath)

	model := screens.NewRootScreen(client, sessions, repo)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
