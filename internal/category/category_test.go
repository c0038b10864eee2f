package category

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mtoohey.com/rmcorrupt/internal/testutil/assert"
)

func touch(t *testing.T, root string, paths ...string) {
	t.Helper()

	for _, p := range paths {
		full := filepath.Join(root, p)
		assert.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		assert.NoError(t, os.WriteFile(full, []byte(p), 0o644))
	}
}

func TestFolder_Match(t *testing.T) {
	charset := Folder{Name: "Graphics - Charset", Dir: "CharSet", Extensions: graphicsExts}

	t.Run("missing folder", func(t *testing.T) {
		paths, err := charset.Match(t.TempDir())
		assert.NoError(t, err)
		assert.Zero(t, paths)
	})

	t.Run("filters", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root,
			"CharSet/b.PNG",
			"CharSet/a.bmp",
			"CharSet/notes.txt",
			"CharSet/nested/c.png",
			"d.png",
		)
		assert.NoError(t, os.Mkdir(filepath.Join(root, "CharSet", "dir.png"), 0o755))

		paths, err := charset.Match(root)
		assert.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join("CharSet", "a.bmp"),
			filepath.Join("CharSet", "b.PNG"),
		}, paths)
	})

	assert.Equal(t, "CharSet", charset.GroupKey())
	assert.Equal(t, "Graphics - Charset", charset.ID())
}

func TestFlat_Match(t *testing.T) {
	maps := Flat{Name: "Maps (.lmu)", Extension: ".lmu"}

	root := t.TempDir()
	touch(t, root, "Map0002.lmu", "Map0001.LMU", "RPG_RT.ldb", "Music/x.lmu", ".lmu")

	paths, err := maps.Match(root)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Map0001.LMU", "Map0002.lmu"}, paths)
	assert.Equal(t, ".lmu", maps.GroupKey())

	t.Run("missing root", func(t *testing.T) {
		_, err := maps.Match(filepath.Join(root, "nope"))
		assert.True(t, err != nil)
	})
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".png", Ext("Hero.PNG"))
	assert.Equal(t, "", Ext("README"))
	assert.Equal(t, ".lmu", Ext("Map.0001.lmu"))
	assert.Equal(t, "", Ext(".lmu"))
	assert.Equal(t, "", Ext("..lmu"))
	assert.Equal(t, ".png", Ext(".hidden.png"))
}

func TestBuiltin(t *testing.T) {
	cats := Builtin()
	assert.Equal(t, 14, len(cats))

	folders := 0
	for _, c := range cats {
		if _, ok := c.(Folder); ok {
			folders++
		}
	}
	assert.Equal(t, 13, folders)
	assert.Equal(t, Category(Flat{Name: "Maps (.lmu)", Extension: ".lmu"}), cats[13])
}

func TestLookup(t *testing.T) {
	cats := Builtin()

	t.Run("all", func(t *testing.T) {
		selected, err := Lookup(cats, nil)
		assert.NoError(t, err)
		assert.Equal(t, cats, selected)
	})

	t.Run("exact and key", func(t *testing.T) {
		selected, err := Lookup(cats, []string{"music", "charset", ".LMU", "Graphics - Charset"})
		assert.NoError(t, err)
		assert.Equal(t, []Category{cats[11], cats[0], cats[13]}, selected)
	})

	t.Run("fuzzy", func(t *testing.T) {
		selected, err := Lookup(cats, []string{"gameov", "maps"})
		assert.NoError(t, err)
		assert.Equal(t, []Category{cats[10], cats[13]}, selected)
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := Lookup(cats, []string{"set"})
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Lookup(cats, []string{"zzz"})
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		cats, err := Load(strings.NewReader(""))
		assert.NoError(t, err)
		assert.Zero(t, cats)
	})

	t.Run("both kinds", func(t *testing.T) {
		cats, err := Load(strings.NewReader(`
- name: Graphics - Chipset2
  folder: ChipSet2
  extensions: [PNG, .bmp]
- name: Database
  extension: ldb
`))
		assert.NoError(t, err)
		assert.Equal(t, []Category{
			Folder{Name: "Graphics - Chipset2", Dir: "ChipSet2", Extensions: []string{".png", ".bmp"}},
			Flat{Name: "Database", Extension: ".ldb"},
		}, cats)
	})

	for name, doc := range map[string]string{
		"no name":          "- folder: X\n  extensions: [.png]\n",
		"no extensions":    "- name: X\n  folder: X\n",
		"flat with list":   "- name: X\n  extensions: [.png]\n",
		"not a list":       "name: X\n",
		"flat without ext": "- name: X\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.True(t, err != nil)
		})
	}

	t.Run("nested folder", func(t *testing.T) {
		cats, err := Load(strings.NewReader("- name: X\n  folder: Extra/Backup\n  extension: png\n"))
		assert.NoError(t, err)
		assert.Equal(t, []Category{Folder{Name: "X", Dir: "Extra/Backup", Extensions: []string{".png"}}}, cats)
	})

	for _, folder := range []string{
		"../x",
		"/abs",
		"a/../../x",
		"backup",
		"Backup/CharSet",
		"temp_CharSet",
		"./temp_x/y",
	} {
		t.Run("folder "+folder, func(t *testing.T) {
			_, err := Load(strings.NewReader(fmt.Sprintf("- name: X\n  folder: %q\n  extension: png\n", folder)))
			assert.ErrorIs(t, err, ErrInvalidFolder)
		})
	}
}

func TestTable(t *testing.T) {
	dir := t.TempDir()

	t.Run("no file", func(t *testing.T) {
		cats, err := Table(filepath.Join(dir, "categories.yaml"))
		assert.NoError(t, err)
		assert.Equal(t, Builtin(), cats)
	})

	t.Run("extra", func(t *testing.T) {
		path := filepath.Join(dir, "extra.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("- name: Database\n  extension: .ldb\n"), 0o644))

		cats, err := Table(path)
		assert.NoError(t, err)
		assert.Equal(t, 15, len(cats))
		assert.Equal(t, Category(Flat{Name: "Database", Extension: ".ldb"}), cats[14])
	})

	t.Run("duplicate", func(t *testing.T) {
		path := filepath.Join(dir, "dup.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("- name: music\n  folder: Music2\n  extensions: [.mid]\n"), 0o644))

		_, err := Table(path)
		assert.True(t, err != nil)
	})
}
