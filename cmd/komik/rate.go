package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate [comic-id] [1-5]",
	Short: "Rate a comic",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := requireLogin()

		comicID, err := strconv.Atoi(args[0])
		cobra.CheckErr(err)
		rating, err := strconv.Atoi(args[1])
		cobra.CheckErr(err)

		if err := client.SubmitRating(comicID, s.Username, rating); err != nil {
			fmt.Printf("❌ Failed to submit rating: %s\n", err)
			return
		}
		fmt.Println("✅ Rating submitted!")
	},
}
