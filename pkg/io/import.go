package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dmrender/pkg/errors"
)

// ReadJSON decodes a JSON document from r.
//
// The input must be a JSON object with a "rows" array of '0'/'1' strings
// and a "regions" integer. ReadJSON validates the decoded document but does
// not materialize the grid; call [Document.Grid] for that.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "failed to decode JSON document")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadTOML decodes a TOML document from r. It accepts the same fields as
// [ReadJSON] in TOML form.
func ReadTOML(r io.Reader) (*Document, error) {
	var d Document
	if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "failed to decode TOML document")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ImportJSON reads a JSON document from the file at path.
func ImportJSON(path string) (*Document, error) {
	return importWith(path, ReadJSON)
}

// ImportTOML reads a TOML document from the file at path.
func ImportTOML(path string) (*Document, error) {
	return importWith(path, ReadTOML)
}

// Import reads a document from the file at path, choosing the decoder by
// the file extension (.json or .toml).
func Import(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ImportJSON(path)
	case ".toml":
		return ImportTOML(path)
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported document extension %q, want .json or .toml", filepath.Ext(path))
	}
}

func importWith(path string, read func(io.Reader) (*Document, error)) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to open %s", path)
	}
	defer f.Close()

	d, err := read(f)
	if err != nil {
		return nil, errors.Wrap(errors.CodeOrInternal(err), err, "document %s", path)
	}
	return d, nil
}
