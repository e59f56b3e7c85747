package config

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/teamupapp/teamup/internal/errors"
)

// Default values applied when neither the config file nor the environment
// provides a setting.
const (
	DefaultAPIURL = "http://localhost:8080/api"

	configDirName   = ".teamup"
	configFileName  = "config.yaml"
	credentialsName = "credentials.json"
)

// Config holds client configuration for the teamup CLI
type Config struct {
	// APIURL is the base URL of the TeamMaker backend, including the /api prefix
	APIURL string `yaml:"api_url"`

	// CredentialsFile is where the bearer token is persisted between runs
	CredentialsFile string `yaml:"credentials_file"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// LogFormat is one of text, json
	LogFormat string `yaml:"log_format"`
}

// Dir returns the teamup configuration directory under the user's home,
// falling back to the working directory when home cannot be resolved.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(Dir(), configFileName)
}

// defaults returns a Config with all defaults applied
func defaults() Config {
	return Config{
		APIURL:          DefaultAPIURL,
		CredentialsFile: filepath.Join(Dir(), credentialsName),
		LogLevel:        "warn",
		LogFormat:       "text",
	}
}

// Load reads configuration with the following precedence, lowest first:
// built-in defaults, the YAML config file (optional), a .env file in the
// working directory (optional), then process environment variables.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeConfigRead, "invalid config file", err).
				WithSuggestion("check the YAML syntax in " + path)
		}
	case os.IsNotExist(err):
		// No config file is fine; defaults and env apply.
	default:
		return Config{}, errors.Wrap(errors.ErrCodeConfigRead, "failed to read config file", err)
	}

	// .env is a development convenience and never required.
	_ = godotenv.Load()

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TEAMUP_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("TEAMUP_CREDENTIALS_FILE"); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("TEAMUP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TEAMUP_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// Validate checks the configuration for values that would break every request
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url must be an absolute http(s) URL").
			WithSuggestion("set TEAMUP_API_URL or api_url in " + DefaultPath())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url scheme must be http or https")
	}
	if c.CredentialsFile == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "credentials_file must not be empty")
	}
	return nil
}
