package cmd

import (
	"io"
	"log"
	"os"
)

// Globals contains values that apply to every command.
type Globals struct {
	// Dir is the root of the game project whose assets are shuffled.
	Dir string `short:"d" default:"." type:"path" help:"Root directory of the game project."`
	// Verbose enables progress logging to stderr.
	Verbose bool `short:"v" help:"Log progress to stderr."`
}

// Logger returns the logger commands should pass to the shuffler: one writing
// to stderr when verbose output was requested and a silent one otherwise.
func (g Globals) Logger() *log.Logger {
	if !g.Verbose {
		return log.New(io.Discard, "", 0)
	}

	return log.New(os.Stderr, "rmcorrupt: ", log.Ltime)
}
