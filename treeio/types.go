// Package treeio defines sentinel errors for description I/O.
package treeio

import "errors"

var (
	// ErrDecode indicates that the raw description bytes could not be
	// parsed as the requested format (JSON/YAML syntax error).
	ErrDecode = errors.New("treeio: description decode failed")

	// ErrUnsupportedFormat indicates a file whose extension maps to no
	// known description format.
	ErrUnsupportedFormat = errors.New("treeio: unsupported file format")

	// ErrNoFilesFound indicates that Discover walked the whole root
	// directory without finding a single description file.
	ErrNoFilesFound = errors.New("treeio: no tree description files found")
)
