package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/antarctica/mdlib/pkg/mdlib"
)

// ErrConfigNotFound is returned by Read when the settings file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "mdlib.yaml"
	EnvFileName    = ".env"
	EnvPrefix      = "MDLIB_"
)

type CitationConfig struct {
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
	Retries   *int   `yaml:"retries,omitempty"`
	UserAgent string `yaml:"user_agent,omitempty"`
}

type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Settings are the tool settings shared by the CLI and the HTTP front-end.
type Settings struct {
	SchemasDir string         `yaml:"schemas_dir,omitempty"`
	XMLLint    string         `yaml:"xmllint,omitempty"`
	Citation   CitationConfig `yaml:"citation,omitempty"`
	Server     ServerConfig   `yaml:"server,omitempty"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	retries := mdlib.DefaultCitationRetries
	return Settings{
		SchemasDir: "schemas",
		XMLLint:    mdlib.DefaultXMLLint,
		Citation: CitationConfig{
			Timeout: mdlib.DefaultCitationTimeout.String(),
			Retries: &retries,
		},
		Server: ServerConfig{Addr: mdlib.DefaultServerAddr},
	}
}

// Read parses the settings file at path without applying defaults.
func Read(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &s, nil
}

// Load resolves settings for dir: defaults, then mdlib.yaml, then MDLIB_*
// environment variables (including any set by dir/.env).
func Load(dir string) (*Settings, error) {
	if err := godotenv.Load(filepath.Join(dir, EnvFileName)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", EnvFileName, err)
	}

	s := Defaults()
	file, err := Read(filepath.Join(dir, ConfigFileName))
	switch {
	case errors.Is(err, ErrConfigNotFound):
	case err != nil:
		return nil, err
	default:
		s.merge(file)
	}

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if _, err := s.CitationTimeout(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) merge(o *Settings) {
	set(&s.SchemasDir, o.SchemasDir)
	set(&s.XMLLint, o.XMLLint)
	set(&s.Citation.BaseURL, o.Citation.BaseURL)
	set(&s.Citation.Timeout, o.Citation.Timeout)
	set(&s.Citation.UserAgent, o.Citation.UserAgent)
	set(&s.Server.Addr, o.Server.Addr)
	if o.Citation.Retries != nil {
		s.Citation.Retries = o.Citation.Retries
	}
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"SCHEMAS_DIR":         &s.SchemasDir,
		"XMLLINT":             &s.XMLLint,
		"CITATION_BASE_URL":   &s.Citation.BaseURL,
		"CITATION_TIMEOUT":    &s.Citation.Timeout,
		"CITATION_USER_AGENT": &s.Citation.UserAgent,
		"SERVER_ADDR":         &s.Server.Addr,
	}
	for name, field := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			set(field, v)
		}
	}

	if v, ok := lookup(EnvPrefix + "CITATION_RETRIES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %sCITATION_RETRIES %q", EnvPrefix, v)
		}
		s.Citation.Retries = &n
	}
	return nil
}

// CitationTimeout parses the configured DOI request timeout.
func (s *Settings) CitationTimeout() (time.Duration, error) {
	if s.Citation.Timeout == "" {
		return mdlib.DefaultCitationTimeout, nil
	}
	d, err := time.ParseDuration(s.Citation.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid citation timeout in %s: %w", ConfigFileName, err)
	}
	return d, nil
}

// CitationRetries returns the configured retry count.
func (s *Settings) CitationRetries() int {
	if s.Citation.Retries == nil {
		return mdlib.DefaultCitationRetries
	}
	return *s.Citation.Retries
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
