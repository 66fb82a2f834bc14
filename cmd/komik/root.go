package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timothyds/uas-stimp/pkg/api"
	"github.com/timothyds/uas-stimp/pkg/app"
	"github.com/timothyds/uas-stimp/pkg/config"
	"github.com/timothyds/uas-stimp/pkg/log"
	"github.com/timothyds/uas-stimp/pkg/session"
)

var (
	cfg      config.Config
	client   *api.Client
	sessions *session.Controller
)

var rootCmd = &cobra.Command{
	Use:   "komik",
	Short: "Baca dan kelola katalog komik",
	Long:  "Browse the comic catalog, read pages, rate and comment, and manage comics with a TUI and CLI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	cobra.OnInitialize(initDeps)

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(comicsCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(historyCmd)
}

func initDeps() {
	cfg = config.Load()
	log.Init(log.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	client = api.NewClient(cfg.BaseURL)
	client.SetTimeout(cfg.Timeout())
	sessions = session.NewController(session.NewKeyringStore(), client)
}

// requireLogin resolves the persisted session and aborts the command when
// there is none.
func requireLogin() session.Session {
	s, ok := sessions.Resolve()
	if !ok {
		fmt.Println("❌ Belum login. Jalankan: komik login <username> <password>")
		os.Exit(1)
	}
	return s
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// truncateString shortens s to max runes, keeping multi-byte text valid.
func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
