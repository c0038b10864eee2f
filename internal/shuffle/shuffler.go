package shuffle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"mtoohey.com/rmcorrupt/internal/category"
)

// Config describes one shuffle.
type Config struct {
	// Root is the game project directory.
	Root string
	// Categories are the enabled categories.
	Categories []category.Category
	// Ratio is the percentage, in [1, 100], of each group's files to
	// shuffle. At least two files of a group are always shuffled.
	Ratio int
	// DryRun plans the shuffle without touching the file system.
	DryRun bool
}

func (c Config) validate() error {
	if c.Ratio < 1 || c.Ratio > 100 {
		return fmt.Errorf("%w, got %d", ErrInvalidRatio, c.Ratio)
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, c.Root)
		}

		return fmt.Errorf("failed to stat %s: %w", c.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, c.Root)
	}

	return nil
}

// Shuffler shuffles and restores asset files. It is not safe for concurrent
// use, and a project root must not be shuffled or restored by two callers at
// once.
type Shuffler struct {
	log *log.Logger
	rng *rand.Rand
}

// New creates a Shuffler that logs progress to logger and draws randomness
// from rng.
func New(logger *log.Logger, rng *rand.Rand) *Shuffler {
	return &Shuffler{log: logger, rng: rng}
}

// Shuffle exchanges the contents of a random sample of files within each
// group matched by c, after backing the sampled files up. Groups are
// processed one after another; ctx is checked between groups.
//
// A failure part way through a group leaves that group partially shuffled.
// Its backups are still in place, so Restore recovers from it.
func (s *Shuffler) Shuffle(ctx context.Context, c Config) (Report, error) {
	r := Report{ID: uuid.New(), DryRun: c.DryRun}

	if err := c.validate(); err != nil {
		return r, err
	}

	groups, err := Resolve(c.Root, c.Categories)
	if err != nil {
		return r, err
	}

	s.log.Printf("run %s: %d groups in %s at %d%%", r.ID, len(groups), c.Root, c.Ratio)

	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return r, err
		}

		if len(g.Files) < minGroupSize {
			s.log.Printf("run %s: skipping %s with %d files", r.ID, g.Key, len(g.Files))
			r.Skipped = append(r.Skipped, GroupReport{Key: g.Key, Total: len(g.Files)})
			continue
		}

		gr, err := s.shuffleGroup(c, g)
		if err != nil {
			return r, fmt.Errorf("failed to shuffle %s: %w", g.Key, err)
		}
		r.Groups = append(r.Groups, gr)
	}

	return r, nil
}

func (s *Shuffler) shuffleGroup(c Config, g Group) (GroupReport, error) {
	sample := Sample(s.rng, g.Files, SampleSize(len(g.Files), c.Ratio))
	perm := Derange(s.rng, len(sample))

	gr := GroupReport{Key: g.Key, Total: len(g.Files), Swaps: make([]Swap, len(sample))}
	for i, f := range sample {
		gr.Swaps[i] = Swap{Path: f, From: sample[perm[i]]}
	}

	if c.DryRun {
		return gr, nil
	}

	backedUp, err := Backup(c.Root, sample)
	gr.BackedUp = backedUp
	if err != nil {
		return gr, err
	}
	s.log.Printf("backed up %d of %d sampled files in %s", len(backedUp), len(sample), g.Key)

	if err := Apply(c.Root, g.Key, sample, perm); err != nil {
		return gr, err
	}
	for _, sw := range gr.Swaps {
		s.log.Printf("%s <- %s", sw.Path, sw.From)
	}

	return gr, nil
}
