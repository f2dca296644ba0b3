package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/ironsheep/image-renamer/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	root := cli.NewRootCmd()

	// fang adds --version, completions and a signal-aware context; Ctrl+C
	// stops dispatching new files and lets in-flight renames finish.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(Version+" ("+GitCommit+")"),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
