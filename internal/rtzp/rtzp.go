// Package rtzp reads and writes RTZP containers: zip archives holding a
// single RTZ route document.
package rtzp

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/antarctica/mdlib/pkg/mdlib"
)

// Extension is the file extension of the route entry inside a container.
const Extension = ".rtz"

// Pack returns a container holding rtz as <name>.rtz.
func Pack(name string, rtz []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name + Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to add route entry: %w", err)
	}
	if _, err := w.Write(rtz); err != nil {
		return nil, fmt.Errorf("failed to write route entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish container: %w", err)
	}
	return buf.Bytes(), nil
}

// Unpack returns the contents of the only entry in the container, whatever
// its name.
func Unpack(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mdlib.ErrInvalidContainer, err)
	}

	var files []*zip.File
	for _, f := range zr.File {
		if !f.FileInfo().IsDir() {
			files = append(files, f)
		}
	}
	if len(files) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one entry, found %d", mdlib.ErrInvalidContainer, len(files))
	}

	rc, err := files[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mdlib.ErrInvalidContainer, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
