package shuffle

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"mtoohey.com/rmcorrupt/internal/category"
	"mtoohey.com/rmcorrupt/internal/cmd"
	"mtoohey.com/rmcorrupt/internal/notify"
	"mtoohey.com/rmcorrupt/internal/table"
)

// Cmd contains all possible options for a shuffle.
type Cmd struct {
	// Categories are the names of the categories to shuffle. All categories
	// are shuffled when none are given.
	Categories []string `short:"c" placeholder:"CATEGORY" help:"Category to shuffle, by name or folder; may be repeated. Defaults to all categories."`
	// Percent is the share of each group's files to shuffle.
	Percent int `short:"p" type:"percent" default:"100" help:"Percentage of each category's files to shuffle (1-100)."`
	// Seed makes runs reproducible. Zero picks a seed from the clock.
	Seed int64 `help:"Random seed; 0 picks one from the clock."`
	// DryRun only prints what would be shuffled.
	DryRun bool `short:"n" help:"Print the planned shuffle without changing any files."`
}

func (c *Cmd) Run(ctx context.Context, g cmd.Globals) error {
	path, err := cmd.CategoriesPath()
	if err != nil {
		return err
	}

	all, err := category.Table(path)
	if err != nil {
		return err
	}

	cats, err := category.Lookup(all, c.Categories)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := g.Logger()
	logger.Printf("seed %d", seed)

	s := New(logger, rand.New(rand.NewSource(seed)))
	r, err := s.Shuffle(ctx, Config{
		Root:       g.Dir,
		Categories: cats,
		Ratio:      c.Percent,
		DryRun:     c.DryRun,
	})
	if err != nil {
		return err
	}

	if err := printReport(os.Stdout, r, seed); err != nil {
		return err
	}

	switch {
	case r.DryRun:
		return notify.Warning(os.Stdout, "Dry run, no files were changed.")
	case len(r.Groups) == 0:
		return notify.Warning(os.Stdout, "Nothing to shuffle: no category has at least two files.")
	default:
		return notify.Success(os.Stdout, "Files shuffled successfully!\nOriginal files backed up in 'backup' folder.")
	}
}

// printReport writes the run ID and seed, which together identify the run in
// verbose logs and reproduce it, followed by the per-group counts and, for a
// dry run, the planned swaps.
func printReport(w io.Writer, r Report, seed int64) error {
	if _, err := fmt.Fprintf(w, "run %s, seed %d\n\n", r.ID, seed); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	rows := [][]string{{"group", "files", "shuffled"}}
	for _, g := range r.Groups {
		rows = append(rows, []string{g.Key, strconv.Itoa(g.Total), strconv.Itoa(len(g.Swaps))})
	}
	for _, g := range r.Skipped {
		rows = append(rows, []string{g.Key, strconv.Itoa(g.Total), "0"})
	}
	if err := table.Write(w, rows); err != nil {
		return err
	}

	if !r.DryRun {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	rows = [][]string{{"file", "gets contents of"}}
	for _, g := range r.Groups {
		for _, sw := range g.Swaps {
			rows = append(rows, []string{sw.Path, sw.From})
		}
	}

	return table.Write(w, rows)
}

// RestoreCmd restores the backup of a previous shuffle.
type RestoreCmd struct{}

func (c *RestoreCmd) Run(ctx context.Context, g cmd.Globals) error {
	r, err := New(g.Logger(), nil).Restore(ctx, g.Dir)
	if err != nil {
		return err
	}

	return notify.Success(os.Stdout, fmt.Sprintf("Backup restored successfully! (%d files)", len(r.Files)))
}
