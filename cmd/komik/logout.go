package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Run: func(cmd *cobra.Command, args []string) {
		sessions.Logout()
		fmt.Println("✅ Logged out")
	},
}
