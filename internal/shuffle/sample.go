package shuffle

import (
	"fmt"
	"math/rand"
	"sort"

	"mtoohey.com/rmcorrupt/internal/util"
)

// minGroupSize is the smallest group that can be shuffled; a single file has
// nothing to trade contents with.
const minGroupSize = 2

// SampleSize returns how many of n files are shuffled at the given
// percentage: max(2, floor(n*percent/100)), never more than n. Expects
// n >= 2.
func SampleSize(n, percent int) int {
	return util.Clamp(minGroupSize, util.Percent(n, percent), n)
}

// Sample returns k files chosen uniformly at random without replacement. The
// chosen files keep their relative order from files.
func Sample(rng *rand.Rand, files []string, k int) []string {
	if k < 0 || k > len(files) {
		panic(fmt.Sprintf("cannot sample %d of %d files", k, len(files)))
	}

	indices := rng.Perm(len(files))[:k]
	sort.Ints(indices)

	sample := make([]string, k)
	for i, j := range indices {
		sample[i] = files[j]
	}

	return sample
}
