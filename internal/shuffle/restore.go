package shuffle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Restore copies every file in root's backup tree back to the same relative
// path under root, then deletes the backup tree. If there is no backup tree,
// ErrBackupNotFound is returned and nothing is changed.
//
// Restore is not transactional: a failure part way through leaves the files
// restored so far in place and keeps the backup tree.
func (s *Shuffler) Restore(ctx context.Context, root string) (RestoreReport, error) {
	var r RestoreReport

	backupRoot := filepath.Join(root, BackupDir)
	info, err := os.Stat(backupRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, fmt.Errorf("%w: %s", ErrBackupNotFound, backupRoot)
		}

		return r, fmt.Errorf("failed to stat backup folder: %w", err)
	}
	if !info.IsDir() {
		return r, fmt.Errorf("%w: %s is not a directory", ErrBackupNotFound, backupRoot)
	}

	err = fs.WalkDir(os.DirFS(backupRoot), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel := filepath.FromSlash(path)
		if err := copyFile(filepath.Join(backupRoot, rel), filepath.Join(root, rel)); err != nil {
			return err
		}
		s.log.Printf("restored %s", rel)
		r.Files = append(r.Files, rel)

		return nil
	})
	if err != nil {
		return r, fmt.Errorf("failed to restore backup: %w", err)
	}

	if err := os.RemoveAll(backupRoot); err != nil {
		return r, fmt.Errorf("failed to remove backup folder: %w", err)
	}
	s.log.Printf("restored %d files, removed %s", len(r.Files), backupRoot)

	return r, nil
}
