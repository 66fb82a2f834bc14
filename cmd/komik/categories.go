package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List comic categories",
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin()

		categories, err := client.Categories()
		cobra.CheckErr(err)

		if len(categories) == 0 {
			fmt.Println("Belum ada kategori.")
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("ID", "Name")

		for _, cat := range categories {
			t.Row(fmt.Sprintf("%d", cat.ID), cat.Name)
		}

		fmt.Println(t)
	},
}
