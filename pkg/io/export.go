package io

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/render"
)

// WriteJSON encodes a document as indented JSON and writes it to w. The
// output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to encode document")
	}
	return nil
}

// ExportJSON writes a document to a JSON file at path. The file is written
// atomically: on failure the destination is left untouched.
func ExportJSON(path string, d *Document) error {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, d); err != nil {
		return err
	}
	return render.WriteFileAtomic(path, buf.Bytes(), 0o644)
}
