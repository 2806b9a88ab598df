package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultDocketURL   = "https://www.sbcourts.org/dockets/civil/debt-collection.pdf"
	DefaultCourtroom   = "S34"
	DefaultWeekday     = "Wednesday"
	DefaultHearingTime = "13:00"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the docket scanner
type Config struct {
	// Source configuration
	DocketURL string

	// Filter configuration
	Courtroom   string
	Weekday     string
	HearingTime string

	// Output configuration
	OutputDir string
	KeepPDF   bool

	// Application configuration
	Version     string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		DocketURL:   DefaultDocketURL,
		Courtroom:   DefaultCourtroom,
		Weekday:     DefaultWeekday,
		HearingTime: DefaultHearingTime,
		OutputDir:   currentDir,
		KeepPDF:     true,
		Version:     "1.0.0",
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.OutputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.OutputDir); err == nil {
			cfg.OutputDir = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("DOCKETSCAN")
	viper.AutomaticEnv()

	viper.SetDefault("url", cfg.DocketURL)
	viper.SetDefault("courtroom", cfg.Courtroom)
	viper.SetDefault("weekday", cfg.Weekday)
	viper.SetDefault("hearingtime", cfg.HearingTime)
	viper.SetDefault("out", cfg.OutputDir)
	viper.SetDefault("keeppdf", cfg.KeepPDF)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("url", cfg.DocketURL, "URL of the court docket PDF")
	pflag.String("courtroom", cfg.Courtroom, "Courtroom identifier to report on")
	pflag.String("weekday", cfg.Weekday, "Hearing weekday to report on")
	pflag.String("hearingtime", cfg.HearingTime, "Hearing time to report on (HH:MM, 24-hour)")
	pflag.String("out", cfg.OutputDir, "Directory for the downloaded PDF and generated report")
	pflag.Bool("keeppdf", cfg.KeepPDF, "Keep the downloaded PDF after the run")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("url", pflag.Lookup("url"))
	_ = viper.BindPFlag("courtroom", pflag.Lookup("courtroom"))
	_ = viper.BindPFlag("weekday", pflag.Lookup("weekday"))
	_ = viper.BindPFlag("hearingtime", pflag.Lookup("hearingtime"))
	_ = viper.BindPFlag("out", pflag.Lookup("out"))
	_ = viper.BindPFlag("keeppdf", pflag.Lookup("keeppdf"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ndocketscan - debt-collection hearing report from the court docket PDF\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # report into the current directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --out=/tmp/reports               # custom output directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --courtroom=S12 --weekday=Monday # different calendar\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_URL          Docket PDF URL\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_COURTROOM    Courtroom identifier\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_WEEKDAY      Hearing weekday\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_HEARINGTIME  Hearing time (HH:MM)\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_OUT          Output directory\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.DocketURL = viper.GetString("url")
	cfg.Courtroom = viper.GetString("courtroom")
	cfg.Weekday = viper.GetString("weekday")
	cfg.HearingTime = viper.GetString("hearingtime")
	cfg.OutputDir = viper.GetString("out")
	cfg.KeepPDF = viper.GetBool("keeppdf")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// weekdays maps accepted weekday names to their time package values.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DocketURL == "" {
		return errors.New("docket URL cannot be empty")
	}
	if !strings.HasPrefix(c.DocketURL, "http://") && !strings.HasPrefix(c.DocketURL, "https://") {
		return fmt.Errorf("docket URL must be http or https: %s", c.DocketURL)
	}

	if c.Courtroom == "" {
		return errors.New("courtroom cannot be empty")
	}

	if _, ok := weekdays[strings.ToLower(c.Weekday)]; !ok {
		return fmt.Errorf("invalid weekday: %s", c.Weekday)
	}

	if _, _, err := c.hearingClock(); err != nil {
		return err
	}

	// Validate output directory
	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// HearingWeekday returns the configured weekday as a time.Weekday.
func (c *Config) HearingWeekday() time.Weekday {
	return weekdays[strings.ToLower(c.Weekday)]
}

// HearingClock returns the configured hearing time as hour and minute.
func (c *Config) HearingClock() (hour, minute int) {
	hour, minute, _ = c.hearingClock()
	return hour, minute
}

func (c *Config) hearingClock() (hour, minute int, err error) {
	t, err := time.Parse("15:04", c.HearingTime)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hearing time %q (want HH:MM, 24-hour)", c.HearingTime)
	}
	return t.Hour(), t.Minute(), nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{DocketURL: %s, Courtroom: %s, Weekday: %s, HearingTime: %s, OutputDir: %s, LogLevel: %s, MaxFileSize: %d}",
		c.DocketURL, c.Courtroom, c.Weekday, c.HearingTime, c.OutputDir, c.LogLevel, c.MaxFileSize)
}
