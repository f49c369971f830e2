package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/codetree/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := cli.NewApp()

	// Edits render a tree for terminals and emit a snapshot into pipes.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
