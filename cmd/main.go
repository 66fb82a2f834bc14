package main

import (
	cmd "github.com/timothyds/uas-stimp/cmd/komik"
)

func main() {
	cmd.Execute()
}
