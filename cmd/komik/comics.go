package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var comicsSearch string

var comicsCmd = &cobra.Command{
	Use:   "comics [category-id] [category-name]",
	Short: "List comics in a category",
	Long:  "List the comics of one category, optionally filtered server-side with --search",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin()

		categoryID, err := strconv.Atoi(args[0])
		cobra.CheckErr(err)

		comics, err := client.Comics(categoryID, args[1], comicsSearch)
		cobra.CheckErr(err)

		if len(comics) == 0 {
			fmt.Println("Tidak ada komik.")
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("ID", "Title", "Author", "Rating")

		for _, comic := range comics {
			t.Row(
				fmt.Sprintf("%d", comic.ID),
				truncateString(comic.Title, 40),
				truncateString(comic.Author, 20),
				fmt.Sprintf("%.1f", comic.Rating),
			)
		}

		fmt.Printf("\n📖 %s (%d komik)\n", args[1], len(comics))
		fmt.Println(t)
	},
}

func init() {
	comicsCmd.Flags().StringVarP(&comicsSearch, "search", "s", "", "filter comics server-side")
}
