package xsdvalidate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarctica/mdlib/internal/xsdvalidate"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

const noteXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="note">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="to" type="xs:string"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func newValidator(t *testing.T) *xsdvalidate.Validator {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "note"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note", "note.xsd"), []byte(noteXSD), 0o644))

	v := xsdvalidate.New(dir, "", nil)
	if !v.Available() {
		t.Skip("xmllint not found on PATH")
	}
	return v
}

func TestValidate_Valid(t *testing.T) {
	v := newValidator(t)
	err := v.Validate(context.Background(), "note", []byte(`<note><to>Halley</to></note>`), "note/note.xsd")
	assert.NoError(t, err)
}

func TestValidate_Invalid(t *testing.T) {
	v := newValidator(t)
	err := v.Validate(context.Background(), "note", []byte(`<note><from>Rothera</from></note>`), "note/note.xsd")

	var rve *mdlib.RecordValidationError
	require.ErrorAs(t, err, &rve)
	assert.Equal(t, "note", rve.Standard)
	assert.Contains(t, rve.Output, "from")
	assert.ErrorIs(t, err, mdlib.ErrInvalidRecord)
}

func TestValidate_MissingBinary(t *testing.T) {
	v := xsdvalidate.New(t.TempDir(), "mdlib-no-such-xmllint", nil)
	assert.False(t, v.Available())

	err := v.Validate(context.Background(), "note", []byte(`<note/>`), "note.xsd")
	require.Error(t, err)
	assert.NotErrorIs(t, err, mdlib.ErrInvalidRecord)
}
