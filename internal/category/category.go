package category

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// BackupDir is the folder inside the project root holding the backup
	// tree.
	BackupDir = "backup"
	// StagingPrefix starts the name of every staging folder inside the
	// project root.
	StagingPrefix = "temp_"
)

// Category is a logical grouping of asset files whose contents are shuffled
// among each other. It is implemented by Folder and Flat.
type Category interface {
	// ID is the display name of the category, which is also how it is
	// selected on the command line.
	ID() string
	// GroupKey identifies the group that the category's files are shuffled
	// within. Categories with the same key share a group.
	GroupKey() string
	// Match returns the paths, relative to root, of the files in the
	// category, in directory listing order.
	Match(root string) ([]string, error)
}

// Folder is a category whose files live directly inside a subfolder of the
// project root.
type Folder struct {
	Name string
	// Dir is the subfolder relative to the project root.
	Dir string
	// Extensions are the accepted extensions, lower-case and including the
	// leading dot.
	Extensions []string
}

// ID implements Category.
func (f Folder) ID() string { return f.Name }

// GroupKey implements Category.
func (f Folder) GroupKey() string { return f.Dir }

// Match implements Category. A missing folder matches nothing.
func (f Folder) Match(root string) ([]string, error) {
	names, err := listFiles(filepath.Join(root, f.Dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var paths []string
	for _, name := range names {
		if f.accepts(Ext(name)) {
			paths = append(paths, filepath.Join(f.Dir, name))
		}
	}

	return paths, nil
}

func (f Folder) accepts(ext string) bool {
	for _, e := range f.Extensions {
		if e == ext {
			return true
		}
	}

	return false
}

// Flat is a category of files with a single extension that live directly in
// the project root.
type Flat struct {
	Name string
	// Extension is lower-case and includes the leading dot.
	Extension string
}

// ID implements Category.
func (f Flat) ID() string { return f.Name }

// GroupKey implements Category.
func (f Flat) GroupKey() string { return f.Extension }

// Match implements Category.
func (f Flat) Match(root string) ([]string, error) {
	names, err := listFiles(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, name := range names {
		if Ext(name) == f.Extension {
			paths = append(paths, name)
		}
	}

	return paths, nil
}

var (
	_ Category = Folder{}
	_ Category = Flat{}
)

// Ext returns the lower-cased extension of name including the leading dot,
// or "" if it has none. Leading dots do not start an extension, so ".lmu"
// has none.
func Ext(name string) string {
	if !strings.Contains(strings.TrimLeft(name, "."), ".") {
		return ""
	}

	return strings.ToLower(filepath.Ext(name))
}

// listFiles returns the names of the regular files directly inside dir,
// sorted by name.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}

	return names, nil
}
