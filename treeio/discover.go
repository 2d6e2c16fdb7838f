package treeio

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks root recursively and returns every tree description file
// (.json, .yaml, .yml) beneath it, lexically sorted for reproducible
// processing order. Finding nothing at all is ErrNoFilesFound; an
// unreadable root propagates the walk error.
func Discover(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json", ".yaml", ".yml":
			found = append(found, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("treeio: walking %q: %w", root, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: under %q", ErrNoFilesFound, root)
	}

	// WalkDir is already lexical per directory; sort anyway so the contract
	// does not depend on traversal internals.
	sort.Strings(found)

	return found, nil
}
