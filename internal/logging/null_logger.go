package logging

import "github.com/antarctica/mdlib/pkg/mdlib"

var (
	_ mdlib.Logger = (*NullLogger)(nil)
	_ mdlib.Logger = (*ConsoleLogger)(nil)
)

// NullLogger discards all log messages. Library packages fall back to it
// when no logger option is given.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}

func (*NullLogger) Info(string, ...interface{}) {}

func (*NullLogger) Error(string, ...interface{}) {}
