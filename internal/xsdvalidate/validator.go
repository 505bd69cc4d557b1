// Package xsdvalidate checks generated records against their XML Schemas
// using xmllint.
package xsdvalidate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/antarctica/mdlib/internal/logging"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// Validator implements mdlib.XSDValidator by running xmllint.
type Validator struct {
	xmllint    string
	schemasDir string
	logger     mdlib.Logger
}

// New returns a validator resolving schema paths under schemasDir.
// xmllint is the binary name or path; "" uses mdlib.DefaultXMLLint.
func New(schemasDir, xmllint string, logger mdlib.Logger) *Validator {
	if xmllint == "" {
		xmllint = mdlib.DefaultXMLLint
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Validator{xmllint: xmllint, schemasDir: schemasDir, logger: logger}
}

// Available reports whether the xmllint binary can be found.
func (v *Validator) Available() bool {
	_, err := exec.LookPath(v.xmllint)
	return err == nil
}

// Validate writes document to a temporary file and validates it against
// schemaPath. Any non-zero exit is reported as a *mdlib.RecordValidationError
// carrying xmllint's output.
func (v *Validator) Validate(ctx context.Context, standard string, document []byte, schemaPath string) error {
	dir, err := os.MkdirTemp("", "mdlib-xsd-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	docPath := filepath.Join(dir, "record.xml")
	if err := os.WriteFile(docPath, document, 0o600); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	schema := filepath.Join(v.schemasDir, filepath.FromSlash(schemaPath))
	v.logger.Verbose("Validating %s record against %s", standard, schema)

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, v.xmllint, "--noout", "--schema", schema, docPath)
	cmd.Stdout = &out
	cmd.Stderr = &out

	err = cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("failed to run %s: %w", v.xmllint, err)
	}
	return &mdlib.RecordValidationError{Standard: standard, Output: out.String()}
}
