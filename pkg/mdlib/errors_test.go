package mdlib_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/antarctica/mdlib/pkg/mdlib"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, mdlib.ExitSuccess},
		{"general error", errors.New("something went wrong"), mdlib.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), mdlib.ExitUsageError},
		{"accepts args", errors.New("accepts 2 arg(s), received 0"), mdlib.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <standard>"), mdlib.ExitUsageError},
		{"invalid config", mdlib.ErrInvalidConfig, mdlib.ExitConfigError},
		{"config validation", &mdlib.ConfigValidationError{Schema: "x", Message: "y"}, mdlib.ExitConfigError},
		{"record validation", &mdlib.RecordValidationError{Standard: "iso-19115-1"}, mdlib.ExitRecordError},
		{"wrapped container", fmt.Errorf("unpack: %w", mdlib.ErrInvalidContainer), mdlib.ExitRecordError},
		{"citation lookup", fmt.Errorf("doi: %w", mdlib.ErrCitationLookup), mdlib.ExitCitationError},
		{"unknown standard", mdlib.ErrUnknownStandard, mdlib.ExitUnknownError},
		{"unsupported version", mdlib.ErrUnsupportedVersion, mdlib.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mdlib.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRecordValidationError_Message(t *testing.T) {
	err := &mdlib.RecordValidationError{Standard: "iec-pas-61174-0", Output: "  doc.xml:3: element route: Schemas validity error\n"}

	want := "record not valid against iec-pas-61174-0 schema:\ndoc.xml:3: element route: Schemas validity error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, mdlib.ErrInvalidRecord) {
		t.Error("expected errors.Is(err, ErrInvalidRecord)")
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	err := &mdlib.DecodeError{Message: "Datestamp could not be parsed as an ISO date value", Err: mdlib.ErrInvalidDate}

	if !errors.Is(err, mdlib.ErrInvalidDate) {
		t.Error("expected errors.Is(err, ErrInvalidDate)")
	}
	if got := (&mdlib.DecodeError{Message: "m"}).Error(); got != "m" {
		t.Errorf("Error() = %q, want %q", got, "m")
	}
}
