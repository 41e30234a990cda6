package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the gateway configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Man    ManConfig         `yaml:"man"`
	Mandoc MandocConfig      `yaml:"mandoc"`
	Page   PageConfig        `yaml:"page"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Man.Validate(); err != nil {
		return err
	}
	if err := c.Mandoc.Validate(); err != nil {
		return err
	}
	return c.Page.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	// Workers bounds how many blocking operations (stat, decompression,
	// formatter subprocesses) may run at once.
	Workers int `yaml:"workers"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(64)),
	)
}

// ManConfig holds the path to the manual-page hierarchy.
type ManConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the man configuration.
func (c *ManConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// MandocConfig holds the external formatter invocation.
type MandocConfig struct {
	Bin string `yaml:"bin"`
}

// Validate validates the mandoc configuration.
func (c *MandocConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Bin, validation.Required),
	)
}

// PageConfig holds the document-shell settings.
type PageConfig struct {
	Stylesheet string `yaml:"stylesheet"`
}

// Validate validates the page configuration.
func (c *PageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Stylesheet, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			Workers:  4,
		},
		Man: ManConfig{
			Dir: "/usr/share/man",
		},
		Mandoc: MandocConfig{
			Bin: "mandoc",
		},
		Page: PageConfig{
			Stylesheet: "/style.css",
		},
	}
}
