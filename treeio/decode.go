package treeio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gametree/builder"
)

// DecodeJSON reads a JSON tree description from r and returns the decoded
// Description. JSON syntax errors surface as ErrDecode; shape errors come
// from builder.FromMap unchanged (branch with builder.ErrMalformedDescription).
func DecodeJSON(r io.Reader) (builder.Description, error) {
	var data map[string]any
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return builder.Description{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return builder.FromMap(data)
}

// DecodeYAML reads a YAML tree description from r. Same contract as
// DecodeJSON; untagged YAML integers widen to float64 in FromMap.
func DecodeYAML(r io.Reader) (builder.Description, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return builder.Description{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var data map[string]any
	if err = yaml.Unmarshal(raw, &data); err != nil {
		return builder.Description{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return builder.FromMap(data)
}

// DecodeFile opens path and decodes it according to its extension:
// .json → JSON, .yaml/.yml → YAML, anything else → ErrUnsupportedFormat.
func DecodeFile(path string) (builder.Description, error) {
	var decode func(io.Reader) (builder.Description, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = DecodeJSON
	case ".yaml", ".yml":
		decode = DecodeYAML
	default:
		return builder.Description{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return builder.Description{}, err
	}
	defer f.Close()

	d, err := decode(f)
	if err != nil {
		return builder.Description{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
