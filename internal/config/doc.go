// Package config loads the tool settings file, mdlib.yaml, shared by the
// CLI and the HTTP front-end.
package config
