package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const appName = "rmcorrupt"

// LoadGlobalsConfig returns the arguments stored in the globals config file,
// which are meant to be placed before the command line arguments. Only
// global flags make sense there since they come before the subcommand.
func LoadGlobalsConfig() ([]string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appName, "globals.conf"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve globals config path: %w", err)
	}

	return readArgs(path)
}

func readArgs(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// return no error when the file doesn't exist
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read globals config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}

// CategoriesPath returns the location of the user-defined categories file.
// The file may not exist.
func CategoriesPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appName, "categories.yaml"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve categories path: %w", err)
	}

	return path, nil
}
