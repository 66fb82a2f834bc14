package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment [comic-id] [text...]",
	Short: "Comment on a comic",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := requireLogin()

		comicID, err := strconv.Atoi(args[0])
		cobra.CheckErr(err)
		text := strings.Join(args[1:], " ")

		if err := client.SubmitComment(comicID, s.Username, text); err != nil {
			fmt.Printf("❌ Failed to submit comment: %s\n", err)
			return
		}
		fmt.Println("✅ Komentar terkirim!")
	},
}
