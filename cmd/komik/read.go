package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [comic-id]",
	Short: "Show a comic's pages and comments",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin()

		comicID, err := strconv.Atoi(args[0])
		cobra.CheckErr(err)

		content, err := client.Content(comicID)
		cobra.CheckErr(err)

		fmt.Printf("\n📖 Halaman (%d):\n", len(content.Pages))
		for _, page := range content.Pages {
			fmt.Printf("  %3d. %s\n", page.PageNumber, page.ImageURL)
		}

		fmt.Printf("\n💬 Komentar (%d):\n", len(content.Comments))
		for _, c := range content.Comments {
			fmt.Printf("  %s — %s, %s\n", c.Comment, c.User, c.CreatedAt)
		}
	},
}
