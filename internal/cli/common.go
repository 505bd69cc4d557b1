package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/internal/citation"
	"github.com/antarctica/mdlib/internal/config"
	"github.com/antarctica/mdlib/internal/logging"
	"github.com/antarctica/mdlib/internal/xsdvalidate"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
)

// newLogger returns a console logger writing to the command's stderr.
func newLogger(cmd *cobra.Command) mdlib.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// loadSettings loads mdlib.yaml and the environment from the working directory.
func loadSettings(logger mdlib.Logger) (*config.Settings, error) {
	settings, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	logger.Verbose("Settings: schemas_dir=%s xmllint=%s", settings.SchemasDir, settings.XMLLint)
	return settings, nil
}

// newResolver builds the DOI citation resolver from settings.
func newResolver(settings *config.Settings, logger mdlib.Logger) (*citation.DOIResolver, error) {
	timeout, err := settings.CitationTimeout()
	if err != nil {
		return nil, err
	}
	opts := []citation.Option{
		citation.WithTimeout(timeout),
		citation.WithRetries(settings.CitationRetries(), mdlib.DefaultCitationRetryDelay),
		citation.WithLogger(logger),
	}
	if settings.Citation.BaseURL != "" {
		opts = append(opts, citation.WithBaseURL(settings.Citation.BaseURL))
	}
	if settings.Citation.UserAgent != "" {
		opts = append(opts, citation.WithUserAgent(settings.Citation.UserAgent))
	}
	return citation.NewDOIResolver(opts...), nil
}

// recordOptions builds the options shared by commands that handle records.
func recordOptions(settings *config.Settings, logger mdlib.Logger, resolveCitations bool) ([]stdrecord.Option, error) {
	opts := []stdrecord.Option{
		stdrecord.WithLogger(logger),
		stdrecord.WithXSDValidator(xsdvalidate.New(settings.SchemasDir, settings.XMLLint, logger)),
	}
	if resolveCitations {
		resolver, err := newResolver(settings, logger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, stdrecord.WithCitationResolver(resolver))
	}
	return opts, nil
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
