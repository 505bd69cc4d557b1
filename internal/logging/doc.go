// Package logging provides implementations of the mdlib.Logger interface.
//
//   - ConsoleLogger writes prefixed lines to an io.Writer (stderr by default)
//   - NullLogger discards everything and is the library default
//
// Both are safe for concurrent use.
package logging
