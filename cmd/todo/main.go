package main

import (
	"os"

	"github.com/idilsaglam/tasklist/internal/cli"
	"github.com/idilsaglam/tasklist/internal/ui"
)

func main() {
	if err := cli.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		ui.Hint(os.Stderr, "Hint: run `todo --help` to see commands and flags")
		os.Exit(1)
	}
}
