package shuffle

import "github.com/google/uuid"

// Swap records that the file at Path received the original contents of the
// file at From.
type Swap struct {
	Path string
	From string
}

// GroupReport describes what happened to one group during a shuffle.
type GroupReport struct {
	Key string
	// Total is the number of files matched in the group.
	Total int
	// Swaps has one entry per shuffled file, in listing order.
	Swaps []Swap
	// BackedUp lists the files that got a new backup entry. Files that
	// already had one from an earlier shuffle are not repeated here.
	BackedUp []string
}

// Report describes a completed (or, with DryRun, planned) shuffle.
type Report struct {
	// ID identifies the run. It is printed with the seed and prefixes the
	// run's verbose log lines.
	ID     uuid.UUID
	DryRun bool
	// Groups contains the groups that were shuffled. Groups with fewer than
	// two files are left out.
	Groups []GroupReport
	// Skipped are the groups with too few files to shuffle. Only Key and
	// Total are set.
	Skipped []GroupReport
}

// Shuffled returns the total number of files whose contents were exchanged.
func (r Report) Shuffled() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Swaps)
	}

	return n
}

// RestoreReport describes a completed restore.
type RestoreReport struct {
	// Files are the restored paths relative to the project root, in walk
	// order.
	Files []string
}
