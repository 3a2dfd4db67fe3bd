package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := NewConfig()

	if c.Images.FaviconPath != "public/favicon.ico" {
		t.Errorf("FaviconPath = %q", c.Images.FaviconPath)
	}
	if len(c.Images.FaviconSizes) != 4 || c.Images.FaviconSizes[0] != 16 || c.Images.FaviconSizes[3] != 64 {
		t.Errorf("FaviconSizes = %v; want [16 32 48 64]", c.Images.FaviconSizes)
	}
	if len(c.Images.PWASizes) != 2 || c.Images.PWASizes[0] != 192 || c.Images.PWASizes[1] != 512 {
		t.Errorf("PWASizes = %v; want [192 512]", c.Images.PWASizes)
	}
	if c.Images.LogoMaxWidth != 1000 {
		t.Errorf("LogoMaxWidth = %d; want 1000", c.Images.LogoMaxWidth)
	}
	if c.Report.Output != "relatorio_cryptfolio_arcade.pdf" {
		t.Errorf("Report.Output = %q", c.Report.Output)
	}
	if c.SMTP.Host != "smtp.gmail.com" || c.SMTP.Port != 465 {
		t.Errorf("SMTP endpoint = %s:%d; want smtp.gmail.com:465", c.SMTP.Host, c.SMTP.Port)
	}
	if c.SMTP.Timeout != 30*time.Second {
		t.Errorf("SMTP.Timeout = %v; want 30s", c.SMTP.Timeout)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CRYPTFOLIO_SOURCE_IMAGE", "/tmp/source.png")
	t.Setenv("CRYPTFOLIO_SMTP_PORT", "587")
	t.Setenv("CRYPTFOLIO_SMTP_FROM", "me@example.com")
	t.Setenv("CRYPTFOLIO_SMTP_TIMEOUT", "5s")
	t.Setenv("CRYPTFOLIO_RESAMPLE_FILTER", "CatmullRom")

	c := NewConfig()
	c.LoadFromEnvironment()

	if c.Images.Source != "/tmp/source.png" {
		t.Errorf("Source = %q", c.Images.Source)
	}
	if c.SMTP.Port != 587 {
		t.Errorf("Port = %d; want 587", c.SMTP.Port)
	}
	if c.SMTP.From != "me@example.com" {
		t.Errorf("From = %q", c.SMTP.From)
	}
	if c.SMTP.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v; want 5s", c.SMTP.Timeout)
	}
	if c.Images.Filter != "catmullrom" {
		t.Errorf("Filter = %q; want catmullrom", c.Images.Filter)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cryptfolio.yaml")
	content := `
images:
  source: uploaded.png
  pwa_sizes: [96]
report:
  output: out.pdf
smtp:
  to: friend@example.com
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c := NewConfig()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if c.Images.Source != "uploaded.png" {
		t.Errorf("Source = %q", c.Images.Source)
	}
	if len(c.Images.PWASizes) != 1 || c.Images.PWASizes[0] != 96 {
		t.Errorf("PWASizes = %v; want [96]", c.Images.PWASizes)
	}
	if c.Report.Output != "out.pdf" {
		t.Errorf("Output = %q", c.Report.Output)
	}
	// untouched keys keep their defaults
	if c.Images.FaviconPath != "public/favicon.ico" {
		t.Errorf("FaviconPath = %q", c.Images.FaviconPath)
	}
	if c.SMTP.To != "friend@example.com" {
		t.Errorf("To = %q", c.SMTP.To)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.SMTP.Port = 70000 }, true},
		{"bad sender", func(c *Config) { c.SMTP.From = "not-an-address" }, true},
		{"unknown filter", func(c *Config) { c.Images.Filter = "bicubic" }, true},
		{"empty favicon sizes", func(c *Config) { c.Images.FaviconSizes = nil }, true},
		{"zero logo width", func(c *Config) { c.Images.LogoMaxWidth = 0 }, true},
	}

	for _, test := range tests {
		c := NewConfig()
		test.mutate(c)
		err := c.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Validate() error = %v; wantErr %v", test.name, err, test.wantErr)
		}
	}
}

func TestRequireSource(t *testing.T) {
	c := NewConfig()
	if err := c.RequireSource(); err == nil {
		t.Error("expected error without source")
	}
	c.Images.Source = "a.png"
	if err := c.RequireSource(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
