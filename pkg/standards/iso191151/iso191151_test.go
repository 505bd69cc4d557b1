package iso191151_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarctica/mdlib/internal/fixtures"
	"github.com/antarctica/mdlib/pkg/iso19115"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/standards/iso191151"
)

func loadFixture(t *testing.T, name string) *iso191151.Config {
	t.Helper()
	data, err := fixtures.Config(iso191151.ID, name)
	require.NoError(t, err)
	cfg, err := iso191151.Loads(data)
	require.NoError(t, err)
	return cfg
}

func TestConfig_DumpLoad(t *testing.T) {
	cfg := loadFixture(t, "complete")
	path := filepath.Join(t.TempDir(), "config.json")

	require.NoError(t, cfg.Dump(path))
	got, err := iso191151.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])
	assert.Contains(t, string(data), "\n  \"metadata\": {")
}

func TestConfig_Validate(t *testing.T) {
	cfg := loadFixture(t, "minimal")
	require.NoError(t, cfg.Validate())

	cfg.Metadata.Language = "fre"
	err := cfg.Validate()
	assert.ErrorIs(t, err, mdlib.ErrInvalidConfig)
}

func TestLoads_RejectsInvalid(t *testing.T) {
	_, err := iso191151.Loads([]byte(`{"$schema": "x"}`))
	assert.ErrorIs(t, err, mdlib.ErrInvalidConfig)
}

func TestMetadataRecord_FromConfig(t *testing.T) {
	cfg := loadFixture(t, "base-simple")
	record := iso191151.NewMetadataRecord(cfg)

	root, err := record.MakeElement()
	require.NoError(t, err)
	assert.Equal(t, "gmd:MD_Metadata", root.FullTag())

	got, err := record.MakeConfig()
	require.NoError(t, err)
	assert.NotSame(t, cfg, got)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestMetadataRecord_MakeConfigMatchesParsedRecord(t *testing.T) {
	cfg := loadFixture(t, "minimal")
	cfg.Identification.Constraints = []iso19115.Constraint{{
		Type:             iso19115.ConstraintUsage,
		RestrictionCode:  "license",
		CopyrightLicence: &iso19115.CopyrightLicence{Code: "OGL-UK-3.0"},
	}}
	record := iso191151.NewMetadataRecord(cfg)

	fromConfig, err := record.MakeConfig()
	require.NoError(t, err)

	doc, err := record.GenerateXMLDocument()
	require.NoError(t, err)
	parsed, err := iso191151.ParseMetadataRecord(doc)
	require.NoError(t, err)
	fromRecord, err := parsed.MakeConfig()
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(fromRecord, fromConfig))
	assert.Equal(t, iso19115.Licences["OGL-UK-3.0"], *fromConfig.Identification.Constraints[0].CopyrightLicence)
	assert.Equal(t, "OGL-UK-3.0", cfg.Identification.Constraints[0].CopyrightLicence.Code)
	assert.Empty(t, cfg.Identification.Constraints[0].CopyrightLicence.Statement, "input must not be modified")
}

func TestMetadataRecord_FromRecord(t *testing.T) {
	cfg := loadFixture(t, "complete")
	doc, err := iso191151.NewMetadataRecord(cfg).GenerateXMLDocument()
	require.NoError(t, err)

	record, err := iso191151.ParseMetadataRecord(doc)
	require.NoError(t, err)
	got, err := record.MakeConfig()
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	again, err := record.GenerateXMLDocument()
	require.NoError(t, err)
	reparsed, err := iso191151.ParseMetadataRecord(again)
	require.NoError(t, err)
	final, err := reparsed.MakeConfig()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(cfg, final))
}

type stubValidator struct{ called bool }

func (v *stubValidator) Validate(_ context.Context, standard string, document []byte, schemaPath string) error {
	v.called = true
	return nil
}

func TestMetadataRecord_Validate(t *testing.T) {
	cfg := loadFixture(t, "minimal")

	err := iso191151.NewMetadataRecord(cfg).Validate(context.Background())
	assert.ErrorIs(t, err, mdlib.ErrNoValidator)

	v := &stubValidator{}
	require.NoError(t, iso191151.NewMetadataRecord(cfg, iso191151.WithXSDValidator(v)).Validate(context.Background()))
	assert.True(t, v.called)
}
