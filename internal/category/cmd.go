package category

import (
	"os"
	"strings"

	"mtoohey.com/rmcorrupt/internal/cmd"
	"mtoohey.com/rmcorrupt/internal/table"
)

var header = [...]string{"category", "folder", "extensions"}

// Cmd lists the known categories.
type Cmd struct{}

func (c *Cmd) Run() error {
	path, err := cmd.CategoriesPath()
	if err != nil {
		return err
	}

	cats, err := Table(path)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(cats)+1)
	rows = append(rows, header[:])
	for _, cat := range cats {
		switch cat := cat.(type) {
		case Folder:
			rows = append(rows, []string{cat.Name, cat.Dir, strings.Join(cat.Extensions, " ")})
		case Flat:
			rows = append(rows, []string{cat.Name, "-", cat.Extension})
		}
	}

	return table.Write(os.Stdout, rows)
}
