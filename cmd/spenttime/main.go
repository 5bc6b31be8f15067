package main

import (
	"os"

	"github.com/NBISweden/redmine-spent-time/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
