package standards_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarctica/mdlib/internal/fixtures"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/standards"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
)

func decodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestFixtures_RoundTrip(t *testing.T) {
	for _, id := range fixtures.Standards() {
		std, err := standards.Lookup(id)
		require.NoError(t, err)

		for _, name := range fixtures.Names(id) {
			t.Run(id+"/"+name, func(t *testing.T) {
				config, err := fixtures.Config(id, name)
				require.NoError(t, err)
				require.NoError(t, std.ValidateConfig(config))

				record, err := std.Generate(context.Background(), config)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(string(record), `<?xml version="1.0" encoding="utf-8"?>`))

				parsed, err := std.Parse(record)
				require.NoError(t, err)
				require.NoError(t, std.ValidateConfig(parsed))

				if diff := cmp.Diff(decodeJSON(t, config), decodeJSON(t, parsed)); diff != "" {
					t.Errorf("round trip mismatch (-fixture +parsed):\n%s", diff)
				}
			})
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := standards.Lookup("iso-19139")
	assert.ErrorIs(t, err, mdlib.ErrUnknownStandard)
	assert.ErrorContains(t, err, "iso-19115-1")
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"iec-pas-61174-0", "iec-pas-61174-1", "iso-19115-1", "iso-19115-2", "test-standard"}, standards.IDs())
}

func TestSchemaID(t *testing.T) {
	std, err := standards.Lookup("iso-19115-2")
	require.NoError(t, err)
	assert.Equal(t, "https://metadata-resources.data.bas.ac.uk/bas-metadata-generator-configuration-schemas/v2/iso-19115-2-v4.json", std.SchemaID())
}

func TestGenerate_InvalidConfig(t *testing.T) {
	std, err := standards.Lookup("test-standard")
	require.NoError(t, err)

	_, err = std.Generate(context.Background(), []byte(`{"$schema": "x", "title": {"href": "https://example.com"}}`))
	var cve *mdlib.ConfigValidationError
	require.ErrorAs(t, err, &cve)
	assert.Equal(t, "test-standard-v1", cve.Schema)
	assert.ErrorIs(t, err, mdlib.ErrInvalidConfig)
}

func TestParse_WrongRoot(t *testing.T) {
	rtz, err := standards.Lookup("iec-pas-61174-1")
	require.NoError(t, err)
	iso, err := standards.Lookup("iso-19115-1")
	require.NoError(t, err)

	config, err := fixtures.Config("iso-19115-1", "minimal")
	require.NoError(t, err)
	record, err := iso.Generate(context.Background(), config)
	require.NoError(t, err)

	_, err = rtz.Parse(record)
	assert.ErrorIs(t, err, mdlib.ErrInvalidRecord)
}

func TestParse_RouteVersionMismatch(t *testing.T) {
	v10, err := standards.Lookup("iec-pas-61174-0")
	require.NoError(t, err)
	v11, err := standards.Lookup("iec-pas-61174-1")
	require.NoError(t, err)

	config, err := fixtures.Config("iec-pas-61174-0", "minimal")
	require.NoError(t, err)
	record, err := v10.Generate(context.Background(), config)
	require.NoError(t, err)

	_, err = v11.Parse(record)
	assert.ErrorIs(t, err, mdlib.ErrInvalidRecord)
}

type stubResolver struct{ calls int }

func (s *stubResolver) Resolve(_ context.Context, doi string) (string, error) {
	s.calls++
	return "Watson, C. (2018). Test Record [Data set].", nil
}

func withDOI(t *testing.T) []byte {
	t.Helper()
	config, err := fixtures.Config("iso-19115-1", "minimal")
	require.NoError(t, err)
	doc := decodeJSON(t, config)
	doc["identification"].(map[string]any)["constraints"] = []any{
		map[string]any{"type": "usage", "required_citation": map[string]any{"doi": "https://doi.org/10.5285/b1a7d1b5"}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func TestGenerate_ResolvesCitations(t *testing.T) {
	std, err := standards.Lookup("iso-19115-1")
	require.NoError(t, err)
	resolver := &stubResolver{}

	record, err := std.Generate(context.Background(), withDOI(t), stdrecord.WithCitationResolver(resolver))
	require.NoError(t, err)
	assert.Equal(t, 1, resolver.calls)
	assert.Contains(t, string(record), "Cite this information as &quot;Watson, C. (2018). Test Record [Data set].&quot;")
}

func TestGenerate_UnresolvedCitation(t *testing.T) {
	std, err := standards.Lookup("iso-19115-1")
	require.NoError(t, err)

	_, err = std.Generate(context.Background(), withDOI(t))
	assert.ErrorIs(t, err, mdlib.ErrUnresolvedCitation)
}

func TestValidateRecord_NoValidator(t *testing.T) {
	std, err := standards.Lookup("test-standard")
	require.NoError(t, err)

	err = std.ValidateRecord(context.Background(), []byte("<ts:record/>"))
	assert.ErrorIs(t, err, mdlib.ErrNoValidator)
}

type recordingValidator struct {
	standard, schema string
}

func (v *recordingValidator) Validate(_ context.Context, standard string, _ []byte, schemaPath string) error {
	v.standard, v.schema = standard, schemaPath
	return &mdlib.RecordValidationError{Standard: standard, Output: "element title: missing"}
}

func TestValidateRecord_UsesStandardXSD(t *testing.T) {
	std, err := standards.Lookup("iso-19115-2")
	require.NoError(t, err)
	v := &recordingValidator{}

	err = std.ValidateRecord(context.Background(), []byte("<x/>"), stdrecord.WithXSDValidator(v))
	assert.ErrorIs(t, err, mdlib.ErrInvalidRecord)
	assert.Equal(t, "iso-19115-2", v.standard)
	assert.Equal(t, "iso-19139-2/gmi/gmi.xsd", v.schema)
}
