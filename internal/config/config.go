package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Images ImagesConfig `yaml:"images"`
	Report ReportConfig `yaml:"report"`
	SMTP   SMTPConfig   `yaml:"smtp"`
}

// ImagesConfig drives the favicon, PWA icon and logo commands.
type ImagesConfig struct {
	Source       string `yaml:"source"`
	Filter       string `yaml:"filter" default:"lanczos" validate:"oneof=lanczos catmullrom linear nearest"`
	FaviconPath  string `yaml:"favicon_path" default:"public/favicon.ico" validate:"required"`
	FaviconSizes []int  `yaml:"favicon_sizes" default:"[16,32,48,64]" validate:"min=1,dive,min=1,max=256"`
	PWADir       string `yaml:"pwa_dir" default:"public" validate:"required"`
	PWASizes     []int  `yaml:"pwa_sizes" default:"[192,512]" validate:"min=1,dive,min=1"`
	LogoPath     string `yaml:"logo_path" default:"public/logo_cryptofolio_defi.png" validate:"required"`
	LogoMaxWidth int    `yaml:"logo_max_width" default:"1000" validate:"min=1"`
}

// ReportConfig locates the report inputs and output.
type ReportConfig struct {
	Output   string `yaml:"output" default:"relatorio_cryptfolio_arcade.pdf" validate:"required"`
	Logo     string `yaml:"logo" default:"logo.png"`
	DataFile string `yaml:"data_file"`
}

// SMTPConfig holds the mail endpoint and any injected credentials.
// Empty credential fields are collected interactively.
type SMTPConfig struct {
	Host     string        `yaml:"host" default:"smtp.gmail.com" validate:"required,hostname"`
	Port     int           `yaml:"port" default:"465" validate:"min=1,max=65535"`
	Timeout  time.Duration `yaml:"timeout" default:"30s"`
	From     string        `yaml:"from" validate:"omitempty,email"`
	Password string        `yaml:"password"`
	To       string        `yaml:"to" validate:"omitempty,email"`
}

var validate = validator.New()

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		panic(fmt.Sprintf("invalid config defaults: %v", err))
	}
	return c
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() {
	if v := os.Getenv("CRYPTFOLIO_SOURCE_IMAGE"); v != "" {
		c.Images.Source = v
	}

	if v := os.Getenv("CRYPTFOLIO_RESAMPLE_FILTER"); v != "" {
		c.Images.Filter = strings.ToLower(v)
	}

	if v := os.Getenv("CRYPTFOLIO_REPORT_OUTPUT"); v != "" {
		c.Report.Output = v
	}

	if v := os.Getenv("CRYPTFOLIO_REPORT_LOGO"); v != "" {
		c.Report.Logo = v
	}

	if v := os.Getenv("CRYPTFOLIO_REPORT_DATA"); v != "" {
		c.Report.DataFile = v
	}

	if v := os.Getenv("CRYPTFOLIO_SMTP_HOST"); v != "" {
		c.SMTP.Host = v
	}

	if v := os.Getenv("CRYPTFOLIO_SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.SMTP.Port = p
		}
	}

	if v := os.Getenv("CRYPTFOLIO_SMTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SMTP.Timeout = d
		}
	}

	if v := os.Getenv("CRYPTFOLIO_SMTP_FROM"); v != "" {
		c.SMTP.From = v
	}

	if v := os.Getenv("CRYPTFOLIO_SMTP_PASSWORD"); v != "" {
		c.SMTP.Password = v
	}

	if v := os.Getenv("CRYPTFOLIO_SMTP_TO"); v != "" {
		c.SMTP.To = v
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// RequireSource reports an error when no source image is configured.
func (c *Config) RequireSource() error {
	if c.Images.Source == "" {
		return fmt.Errorf("source image is required (--source or CRYPTFOLIO_SOURCE_IMAGE)")
	}
	return nil
}
