package shuffle

import (
	"fmt"

	"mtoohey.com/rmcorrupt/internal/category"
)

// Group is a set of files whose contents are shuffled among each other.
type Group struct {
	// Key is the folder name for folder categories, or the extension for
	// flat ones.
	Key string
	// Files are paths relative to the project root in directory listing
	// order.
	Files []string
}

// Resolve matches every category against root and gathers the results into
// groups, ordered by the first category contributing to each group. A path
// is only included once per group.
func Resolve(root string, cats []category.Category) ([]Group, error) {
	var groups []Group
	index := map[string]int{}
	seen := map[string]bool{}

	for _, c := range cats {
		paths, err := c.Match(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", c.ID(), err)
		}

		key := c.GroupKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}

		for _, p := range paths {
			if seen[p] {
				continue
			}
			seen[p] = true
			groups[i].Files = append(groups[i].Files, p)
		}
	}

	return groups, nil
}
