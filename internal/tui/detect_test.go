package tui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyled_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "MDLIB_NO_COLOR", env: map[string]string{"MDLIB_NO_COLOR": "1"}},
		{name: "CI", env: map[string]string{"CI": "true"}},
		{name: "NO_COLOR", env: map[string]string{"NO_COLOR": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"MDLIB_NO_COLOR", "CI", "NO_COLOR"} {
				t.Setenv(k, tt.env[k])
			}
			assert.False(t, Styled(os.Stdout))
		})
	}
}

func TestStyled_NotATerminal(t *testing.T) {
	t.Setenv("MDLIB_NO_COLOR", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	assert.False(t, Styled(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()
	assert.False(t, Styled(f))
}

func TestPrinter_Unstyled(t *testing.T) {
	p := NewPrinter(false)
	diff := "  map[string]any{\n-   \"a\": 1,\n+   \"a\": 2,\n  }\n"

	assert.Equal(t, diff, p.Diff(diff))
	assert.Equal(t, "Routes", p.Title("Routes"))
}
