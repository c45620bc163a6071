package app

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string
	DryRun  bool

	// Config file
	ConfigFile string

	// Directory connection
	URL                string        `validate:"required,url"`
	Token              string
	TokenFile          string
	CACert             string
	InsecureSkipVerify bool
	Timeout            time.Duration `validate:"gt=0"`
	RateLimit          float64       `validate:"gte=0"`
	RateBurst          int           `validate:"gte=0"`

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (ROSTER_URL, ROSTER_TOKEN, ...)
// 3. .env files
// 4. Config file (~/.roster.yaml or --config)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("url", constants.DefaultBaseURL)
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("rate_limit", constants.DefaultRateLimit)
	v.SetDefault("rate_burst", constants.DefaultRateBurst)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config file", configFile, err)
		}
	} else {
		// Search for config in standard locations
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigName)

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		URL:                v.GetString("url"),
		Token:              v.GetString("token"),
		TokenFile:          v.GetString("token_file"),
		CACert:             v.GetString("ca_cert"),
		InsecureSkipVerify: v.GetBool("insecure_skip_verify"),
		Timeout:            v.GetDuration("timeout"),
		RateLimit:          v.GetFloat64("rate_limit"),
		RateBurst:          v.GetInt("rate_burst"),

		// Logging configuration
		LogLevel:  v.GetString("log_level"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", v.GetString("log_format"), "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output"), "stderr"),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor, dryRun bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	c.DryRun = dryRun
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// Validate checks the directory connection settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.NewValidationError(strings.ToLower(fe.Field()), fe.Value(), "failed "+fe.Tag()+" check")
		}
		return errors.NewConfigError("validation", err.Error(), err)
	}
	return nil
}

// ResolveToken returns the API token, reading TokenFile when no token was
// given directly.
func (c *Config) ResolveToken() (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}
	if c.TokenFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		return "", &errors.AuthenticationError{Method: "token_file", Message: "cannot read " + c.TokenFile, Err: err}
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", &errors.AuthenticationError{Method: "token_file", Message: c.TokenFile + " is empty"}
	}
	return token, nil
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value, then the
// configured value, then the default.
func getEnvOrDefault(key, configured, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if configured != "" {
		return configured
	}
	return defaultValue
}
