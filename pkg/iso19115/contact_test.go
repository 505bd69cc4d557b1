package iso19115_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antarctica/mdlib/pkg/iso19115"
)

func TestCondenseExpandRoles(t *testing.T) {
	a := iso19115.Contact{Individual: &iso19115.Party{Name: "Watson, Constance"}, Email: "conwat@bas.ac.uk"}
	b := iso19115.Contact{Organisation: &iso19115.Party{Name: "British Antarctic Survey"}}

	tests := []struct {
		name      string
		in        []iso19115.Contact
		condensed []iso19115.Contact
		expanded  []iso19115.Contact
	}{
		{
			name:      "single role",
			in:        []iso19115.Contact{withRoles(a, "author")},
			condensed: []iso19115.Contact{withRoles(a, "author")},
			expanded:  []iso19115.Contact{withRoles(a, "author")},
		},
		{
			name:      "several roles",
			in:        []iso19115.Contact{withRoles(a, "author", "pointOfContact")},
			condensed: []iso19115.Contact{withRoles(a, "author", "pointOfContact")},
			expanded:  []iso19115.Contact{withRoles(a, "author"), withRoles(a, "pointOfContact")},
		},
		{
			name:      "split contact merges at first position",
			in:        []iso19115.Contact{withRoles(a, "author"), withRoles(b, "publisher"), withRoles(a, "pointOfContact")},
			condensed: []iso19115.Contact{withRoles(a, "author", "pointOfContact"), withRoles(b, "publisher")},
			expanded:  []iso19115.Contact{withRoles(a, "author"), withRoles(b, "publisher"), withRoles(a, "pointOfContact")},
		},
		{
			name:      "contacts differing beyond role stay apart",
			in:        []iso19115.Contact{withRoles(a, "author"), withRoles(b, "author")},
			condensed: []iso19115.Contact{withRoles(a, "author"), withRoles(b, "author")},
			expanded:  []iso19115.Contact{withRoles(a, "author"), withRoles(b, "author")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			condensed := iso19115.CondenseRoles(tt.in)
			assert.Equal(t, tt.condensed, condensed)
			assert.Equal(t, condensed, iso19115.CondenseRoles(condensed), "condense is idempotent")
			assert.Equal(t, condensed, iso19115.CondenseRoles(iso19115.ExpandRoles(condensed)), "expand then condense restores")

			expanded := iso19115.ExpandRoles(tt.in)
			assert.Equal(t, tt.expanded, expanded)
			assert.Equal(t, expanded, iso19115.ExpandRoles(expanded), "expand is idempotent")
		})
	}
}

func TestCondenseRoles_DoesNotModifyInput(t *testing.T) {
	in := []iso19115.Contact{withRoles(bas, "author"), withRoles(bas, "publisher")}

	got := iso19115.CondenseRoles(in)
	assert.Equal(t, []string{"author", "publisher"}, got[0].Role)
	assert.Equal(t, []string{"author"}, in[0].Role)
}
