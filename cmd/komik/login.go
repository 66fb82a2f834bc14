package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timothyds/uas-stimp/pkg/api"
)

var loginCmd = &cobra.Command{
	Use:   "login [username] [password]",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := sessions.Login(args[0], args[1])
		if err != nil {
			var serverErr *api.ServerError
			if errors.As(err, &serverErr) {
				fmt.Println("❌ Username atau password salah")
			} else {
				fmt.Printf("❌ Login gagal: %s\n", err)
			}
			return
		}
		fmt.Printf("✅ Login berhasil. Halo, %s!\n", s.Username)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Run: func(cmd *cobra.Command, args []string) {
		s, ok := sessions.Resolve()
		if !ok {
			fmt.Println("Belum login")
			return
		}
		fmt.Println(s.Username)
	},
}
