package category

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownCategory is returned when a category name cannot be resolved.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidFolder is returned for a user-defined folder outside of the
	// project root or one reserved for backups and staging.
	ErrInvalidFolder = errors.New("invalid category folder")
)

var (
	graphicsExts = []string{".xyz", ".bmp", ".png"}
	musicExts    = []string{".mid", ".wav", ".mp3"}
	soundExts    = []string{".wav", ".mp3"}
)

// Builtin returns the categories of an RPG Maker 2000 project, in the order
// they are presented to the user.
func Builtin() []Category {
	return []Category{
		Folder{Name: "Graphics - Charset", Dir: "CharSet", Extensions: graphicsExts},
		Folder{Name: "Graphics - Faceset", Dir: "FaceSet", Extensions: graphicsExts},
		Folder{Name: "Graphics - Chipset", Dir: "ChipSet", Extensions: graphicsExts},
		Folder{Name: "Graphics - Picture", Dir: "Picture", Extensions: graphicsExts},
		Folder{Name: "Graphics - Title", Dir: "Title", Extensions: graphicsExts},
		Folder{Name: "Graphics - Monster", Dir: "Monster", Extensions: graphicsExts},
		Folder{Name: "Graphics - System", Dir: "System", Extensions: graphicsExts},
		Folder{Name: "Graphics - Backdrop", Dir: "Backdrop", Extensions: graphicsExts},
		Folder{Name: "Graphics - Battle", Dir: "Battle", Extensions: graphicsExts},
		Folder{Name: "Graphics - Panorama", Dir: "Panorama", Extensions: graphicsExts},
		Folder{Name: "Graphics - GameOver", Dir: "GameOver", Extensions: graphicsExts},
		Folder{Name: "Music", Dir: "Music", Extensions: musicExts},
		Folder{Name: "Sound", Dir: "Sound", Extensions: soundExts},
		Flat{Name: "Maps (.lmu)", Extension: ".lmu"},
	}
}

// entry is the on-disk form of a user-defined category.
type entry struct {
	Name       string   `yaml:"name"`
	Folder     string   `yaml:"folder"`
	Extensions []string `yaml:"extensions"`
	Extension  string   `yaml:"extension"`
}

func (e entry) category() (Category, error) {
	if e.Name == "" {
		return nil, errors.New("category without a name")
	}

	if e.Folder != "" {
		if err := checkFolder(e.Folder); err != nil {
			return nil, fmt.Errorf("category %q: %w", e.Name, err)
		}

		exts := make([]string, 0, len(e.Extensions)+1)
		for _, ext := range append(e.Extensions, e.Extension) {
			if ext != "" {
				exts = append(exts, normalizeExt(ext))
			}
		}
		if len(exts) == 0 {
			return nil, fmt.Errorf("category %q has no extensions", e.Name)
		}

		return Folder{Name: e.Name, Dir: e.Folder, Extensions: exts}, nil
	}

	if e.Extension == "" || len(e.Extensions) != 0 {
		return nil, fmt.Errorf(`category %q needs either a "folder" or a single "extension"`, e.Name)
	}

	return Flat{Name: e.Name, Extension: normalizeExt(e.Extension)}, nil
}

// checkFolder rejects folders that would make backups land outside of the
// backup tree, or that would shuffle the backup tree or a staging folder.
func checkFolder(dir string) error {
	if !filepath.IsLocal(dir) {
		return fmt.Errorf("%w: %q is not inside the project root", ErrInvalidFolder, dir)
	}

	first := strings.SplitN(filepath.ToSlash(filepath.Clean(dir)), "/", 2)[0]
	if strings.EqualFold(first, BackupDir) || strings.HasPrefix(strings.ToLower(first), StagingPrefix) {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidFolder, dir)
	}

	return nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// Load reads a YAML list of user-defined categories from r.
func Load(r io.Reader) ([]Category, error) {
	var entries []entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file
			return nil, nil
		}

		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	cats := make([]Category, 0, len(entries))
	for _, e := range entries {
		c, err := e.category()
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}

	return cats, nil
}

// Table returns the builtin categories followed by those defined in the file
// at path. A missing file is not an error. Names must be unique,
// case-insensitively.
func Table(path string) ([]Category, error) {
	cats := Builtin()
	if path == "" {
		return cats, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cats, nil
		}

		return nil, fmt.Errorf("failed to open categories file: %w", err)
	}
	defer f.Close()

	extra, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for _, c := range extra {
		if slices.IndexFunc(cats, func(o Category) bool { return strings.EqualFold(o.ID(), c.ID()) }) >= 0 {
			return nil, fmt.Errorf("%s: duplicate category %q", path, c.ID())
		}
		cats = append(cats, c)
	}

	return cats, nil
}

// Lookup resolves names against cats. Each name is matched, in order of
// preference, case-insensitively against a category's ID, then against its
// group key (so "charset" or ".lmu" work), then fuzzily against IDs. A fuzzy
// match must be unambiguous. The result preserves the order of names and
// contains no duplicates. No names selects every category.
func Lookup(cats []Category, names []string) ([]Category, error) {
	if len(names) == 0 {
		return cats, nil
	}

	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID()
	}

	var selected []Category
	seen := map[int]bool{}
	for _, name := range names {
		i, err := lookupOne(cats, ids, name)
		if err != nil {
			return nil, err
		}

		if !seen[i] {
			seen[i] = true
			selected = append(selected, cats[i])
		}
	}

	return selected, nil
}

func lookupOne(cats []Category, ids []string, name string) (int, error) {
	name = strings.TrimSpace(name)

	if i := slices.IndexFunc(ids, func(id string) bool { return strings.EqualFold(id, name) }); i >= 0 {
		return i, nil
	}

	if i := slices.IndexFunc(cats, func(c Category) bool { return strings.EqualFold(c.GroupKey(), name) }); i >= 0 {
		return i, nil
	}

	ranks := fuzzy.RankFindNormalizedFold(name, ids)
	sort.Sort(ranks)
	switch {
	case len(ranks) == 0:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)

	case len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance:
		return 0, fmt.Errorf(`%w: %q is ambiguous, could be "%s" or "%s"`,
			ErrUnknownCategory, name, ranks[0].Target, ranks[1].Target)
	}

	return ranks[0].OriginalIndex, nil
}
