package main

import (
	"os"

	"github.com/dddshop/backend/cmd/shopctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
