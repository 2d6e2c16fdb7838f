// Package treeio is the I/O glue around the gametree core: it decodes
// serialized tree descriptions, discovers description files on disk, and
// renders evaluated trees for humans.
//
// What:
//
//   - DecodeJSON / DecodeYAML: reader → builder.Description, preserving the
//     builder's error taxonomy (syntax failures are ErrDecode; shape
//     failures come back from builder.FromMap)
//   - DecodeFile: extension-dispatched file decoding (.json, .yaml, .yml)
//   - Discover: recursive collection of description files under a root,
//     lexically sorted; an empty result is ErrNoFilesFound
//   - WriteTree: indented textual dump, two spaces per level, showing
//     backed-up values where evaluation has populated them
//   - WriteLeaves: flat "id: value" listing of a subtree's terminal nodes
//
// The core packages (core, builder, minimax) never touch the filesystem;
// everything byte-shaped lives here or in the caller.
//
// Errors:
//
//   - ErrDecode             description bytes failed to parse
//   - ErrUnsupportedFormat  file extension outside .json/.yaml/.yml
//   - ErrNoFilesFound       discovery walked the root and found nothing
package treeio
