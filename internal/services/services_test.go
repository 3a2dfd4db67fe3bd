package services

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cryptfolio/cryptfolio-tools/internal/config"
	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
	"github.com/cryptfolio/cryptfolio-tools/internal/mailer"
	"github.com/cryptfolio/cryptfolio-tools/internal/models"
	"github.com/cryptfolio/cryptfolio-tools/internal/storage"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type answerPrompter struct {
	answer string
	asked  int
}

func (p *answerPrompter) Input(string) (string, error) {
	p.asked++
	return p.answer, nil
}

func (p *answerPrompter) Secret(string) (string, error) {
	p.asked++
	return "", nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.NewConfig()
	cfg.Report.Output = filepath.Join(dir, "relatorio.pdf")
	cfg.Report.Logo = filepath.Join(dir, "logo.png")
	cfg.Images.FaviconPath = filepath.Join(dir, "public", "favicon.ico")
	cfg.Images.PWADir = filepath.Join(dir, "public")
	cfg.Images.LogoPath = filepath.Join(dir, "public", "logo.png")

	if err := os.MkdirAll(filepath.Join(dir, "public"), 0755); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestReportService_RunWithSampleData(t *testing.T) {
	cfg := testConfig(t)
	prompter := &answerPrompter{answer: "n"}
	dispatcher := mailer.NewDispatcher(prompter, mailer.NewSMTPSender(cfg.SMTP), mailer.Envelope{})

	res, outcome, err := NewReportService(cfg, dispatcher).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if outcome != mailer.Declined {
		t.Errorf("outcome = %v; want declined", outcome)
	}
	if prompter.asked != 1 {
		t.Errorf("prompted %d times; want only the confirmation", prompter.asked)
	}
	if res.Pages < 1 {
		t.Errorf("Pages = %d", res.Pages)
	}
	if _, err := os.Stat(cfg.Report.Output); err != nil {
		t.Errorf("report not written: %v", err)
	}
}

func TestReportService_DataFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Report.DataFile = filepath.Join(t.TempDir(), "portfolio.yaml")

	p := models.SamplePortfolio()
	p.Assets = p.Assets[:1]
	if err := storage.SavePortfolio(cfg.Report.DataFile, p); err != nil {
		t.Fatal(err)
	}

	svc := NewReportService(cfg, nil)
	loaded, err := svc.LoadPortfolio()
	if err != nil {
		t.Fatalf("LoadPortfolio: %v", err)
	}
	if len(loaded.Assets) != 1 || loaded.Assets[0].Name != "Bitcoin" {
		t.Errorf("assets = %+v", loaded.Assets)
	}

	if _, outcome, err := svc.Run(context.Background()); err != nil || outcome != mailer.Declined {
		t.Errorf("Run() = %v, %v", outcome, err)
	}
}

func TestReportService_MissingDataFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Report.DataFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, _, err := NewReportService(cfg, nil).Run(context.Background()); err == nil {
		t.Error("expected error for a missing data file")
	}
	if _, err := os.Stat(cfg.Report.Output); !os.IsNotExist(err) {
		t.Error("report written despite a data error")
	}
}

func writeSource(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 20, G: 241, B: 149, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImageService(t *testing.T) {
	cfg := testConfig(t)
	cfg.Images.Source = writeSource(t, 1200, 600)
	svc := NewImageService(cfg)

	if err := svc.GenerateFavicon(); err != nil {
		t.Fatalf("GenerateFavicon: %v", err)
	}
	if _, err := os.Stat(cfg.Images.FaviconPath); err != nil {
		t.Errorf("favicon not written: %v", err)
	}

	paths, err := svc.GeneratePWAIcons()
	if err != nil {
		t.Fatalf("GeneratePWAIcons: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("icons = %v; want 2", paths)
	}

	size, err := svc.ResizeLogo()
	if err != nil {
		t.Fatalf("ResizeLogo: %v", err)
	}
	if size != image.Pt(1000, 500) {
		t.Errorf("logo size = %v; want 1000x500", size)
	}
}

func TestImageService_Errors(t *testing.T) {
	cfg := testConfig(t)
	svc := NewImageService(cfg)

	if err := svc.GenerateFavicon(); err == nil {
		t.Error("expected error without a source image")
	}

	cfg.Images.Source = filepath.Join(t.TempDir(), "missing.png")
	if _, err := svc.GeneratePWAIcons(); err == nil {
		t.Error("expected error for a missing source image")
	}

	cfg.Images.Source = writeSource(t, 10, 10)
	cfg.Images.Filter = "bicubic"
	if _, err := svc.ResizeLogo(); err == nil {
		t.Error("expected error for an unknown filter")
	}
}
