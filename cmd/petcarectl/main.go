package main

import (
	"os"

	"petcare-marketplace/cmd/petcarectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
