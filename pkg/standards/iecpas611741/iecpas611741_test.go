package iecpas611741_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarctica/mdlib/internal/fixtures"
	"github.com/antarctica/mdlib/internal/rtzp"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/standards/iecpas611741"
)

func loadFixture(t *testing.T, name string) *iecpas611741.Config {
	t.Helper()
	data, err := fixtures.Config(iecpas611741.ID, name)
	require.NoError(t, err)
	cfg, err := iecpas611741.Loads(data)
	require.NoError(t, err)
	return cfg
}

func TestGenerateXMLDocument(t *testing.T) {
	doc, err := iecpas611741.NewMetadataRecord(loadFixture(t, "complete")).GenerateXMLDocument()
	require.NoError(t, err)

	s := string(doc)
	assert.Contains(t, s, `<route xmlns="http://www.cirm.org/RTZ/1/1"`)
	assert.Contains(t, s, `version="1.1"`)
	assert.Contains(t, s, `vesselMMSI="235116178"`)
	assert.Contains(t, s, `validityPeriodStop="2022-04-01T12:00:00+00:00"`)
}

func TestRTZP_RoundTrip(t *testing.T) {
	cfg := loadFixture(t, "complete")

	data, err := iecpas611741.DumpRTZP(iecpas611741.NewMetadataRecord(cfg), "rothera-halley")
	require.NoError(t, err)

	record, err := iecpas611741.LoadRTZP(data)
	require.NoError(t, err)
	got, err := record.MakeConfig()
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpRTZP_DefaultsToRouteName(t *testing.T) {
	cfg := loadFixture(t, "complete")

	data, err := iecpas611741.DumpRTZP(iecpas611741.NewMetadataRecord(cfg), "")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, cfg.RouteName+".rtz", zr.File[0].Name)
}

func TestLoadRTZP_Invalid(t *testing.T) {
	_, err := iecpas611741.LoadRTZP([]byte("not a zip"))
	assert.ErrorIs(t, err, mdlib.ErrInvalidContainer)

	packed, err := rtzp.Pack("x", []byte("<route/>"))
	require.NoError(t, err)
	_, err = iecpas611741.LoadRTZP(packed)
	assert.ErrorIs(t, err, mdlib.ErrInvalidRecord)
}
