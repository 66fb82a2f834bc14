package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/timothyds/uas-stimp/pkg/data"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently read comics",
	Long:  "Display local reading history with the last page read per comic",
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository(cfg.DBPath)
		entries, err := repo.ListRecent(historyLimit)
		cobra.CheckErr(err)

		if len(entries) == 0 {
			fmt.Println("📚 Belum ada riwayat baca.")
			return
		}

		columns := []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Title", Width: 40},
			{Title: "Page", Width: 6},
			{Title: "Last read", Width: 20},
		}

		rows := []table.Row{}
		for _, e := range entries {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", e.ComicID),
				truncateString(e.Title, 38),
				fmt.Sprintf("%d", e.Page),
				e.UpdatedAt.Format("2006-01-02 15:04"),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Riwayat baca (%d komik)\n\n", len(entries))
		fmt.Println(t.View())
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max entries to show")
}
