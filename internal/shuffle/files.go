package shuffle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"

	"mtoohey.com/rmcorrupt/internal/category"
)

const (
	// BackupDir is the name of the backup tree inside the project root.
	BackupDir = category.BackupDir
	// stagingPrefix is prepended to a group key to name the group's staging
	// directory inside the project root.
	stagingPrefix = category.StagingPrefix

	dirPerm = 0o755
)

// copyOptions keep modification times, and by default permission bits, of
// the copied files.
var copyOptions = copy.Options{PreserveTimes: true}

// copyFile copies the regular file src to dst, creating dst's parent
// directories and replacing dst if it exists.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	if err := copy.Copy(src, dst, copyOptions); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	return nil
}

// keyReplacer flattens group keys of nested folders so that every staging
// directory sits directly inside the project root.
var keyReplacer = strings.NewReplacer("/", "_", `\`, "_")

func stagingDir(root, key string) string {
	return filepath.Join(root, stagingPrefix+keyReplacer.Replace(key))
}
