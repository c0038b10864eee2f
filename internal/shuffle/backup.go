package shuffle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Backup copies each of files, relative to root, into the same relative
// location under root's backup tree. It returns the files that were newly
// backed up.
//
// A file that already has a backup entry is skipped: the entry was taken
// before an earlier shuffle touched the file, so it is the pristine
// original, while the live file may already hold another file's contents.
func Backup(root string, files []string) ([]string, error) {
	backupRoot := filepath.Join(root, BackupDir)

	var added []string
	for _, f := range files {
		dst := filepath.Join(backupRoot, f)

		_, err := os.Lstat(dst)
		if err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return added, fmt.Errorf("failed to check backup of %s: %w", f, err)
		}

		if err := copyFile(filepath.Join(root, f), dst); err != nil {
			return added, err
		}
		added = append(added, f)
	}

	return added, nil
}
