package main

import (
	"context"
	"os"
	"os/signal"

	"mtoohey.com/rmcorrupt/internal/category"
	"mtoohey.com/rmcorrupt/internal/cmd"
	"mtoohey.com/rmcorrupt/internal/notify"
	"mtoohey.com/rmcorrupt/internal/shuffle"

	"github.com/alecthomas/kong"
)

type cli struct {
	cmd.Globals

	Shuffle    shuffle.Cmd        `cmd:"" help:"Shuffle asset contents, backing up the originals first."`
	Restore    shuffle.RestoreCmd `cmd:"" help:"Restore the backed up originals and remove the backup."`
	Categories category.Cmd       `cmd:"" help:"List the known asset categories."`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// stop between files on interrupt rather than mid-copy
	sigCh := make(chan os.Signal, 1)
	go func() {
		<-sigCh
		cancel()
	}()
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	var c cli
	parser := kong.Must(&c, append([]kong.Option{
		kong.Name("rmcorrupt"),
		kong.Description("Shuffle the graphics, audio and map files of an RPG Maker 2000 project."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	}, cmd.TypeMappers...)...)

	cfgArgs, err := cmd.LoadGlobalsConfig()
	parser.FatalIfErrorf(err)

	kctx, err := parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	if err := kctx.Run(c.Globals); err != nil {
		notify.Error(os.Stderr, err)
		os.Exit(1)
	}
}
