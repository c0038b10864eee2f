package shuffle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Apply exchanges the contents of files, relative to root, so that files[i]
// receives what files[perm[i]] held before the call. File names never change.
//
// Every original is first snapshotted into the group's staging directory so
// that chains of copies never read an already-overwritten file. The staging
// directory is removed before returning, whether or not the exchange
// succeeded. The files must have distinct base names.
func Apply(root, key string, files []string, perm []int) (err error) {
	if len(perm) != len(files) {
		return fmt.Errorf("permutation of length %d for %d files", len(perm), len(files))
	}

	staging := stagingDir(root, key)
	if err := os.Mkdir(staging, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrStagingExists, staging)
		}

		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() {
		removeErr := os.RemoveAll(staging)

		if err == nil && removeErr != nil {
			err = fmt.Errorf("failed to remove staging directory: %w", removeErr)
		}
	}()

	snapshot := func(f string) string {
		return filepath.Join(staging, filepath.Base(f))
	}

	for _, f := range files {
		if err := copyFile(filepath.Join(root, f), snapshot(f)); err != nil {
			return err
		}
	}

	for i, f := range files {
		if err := copyFile(snapshot(files[perm[i]]), filepath.Join(root, f)); err != nil {
			return err
		}
	}

	return nil
}
