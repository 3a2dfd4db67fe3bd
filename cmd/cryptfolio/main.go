package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cryptfolio/cryptfolio-tools/internal/config"
	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
	"github.com/cryptfolio/cryptfolio-tools/internal/mailer"
	"github.com/cryptfolio/cryptfolio-tools/internal/models"
	"github.com/cryptfolio/cryptfolio-tools/internal/services"
	"github.com/cryptfolio/cryptfolio-tools/internal/storage"
	"github.com/cryptfolio/cryptfolio-tools/internal/tui"
	"github.com/cryptfolio/cryptfolio-tools/internal/utils"
)

var (
	configPath string
	cfg        *config.Config
)

// setup loads .env files, the optional YAML config, environment overrides
// and finally any flags set on the command line.
func setup(cmd *cobra.Command, _ []string) error {
	loaded := utils.LoadEnvironment()
	logger.Init()

	for _, path := range loaded {
		logger.Debug("Loaded environment from %s", path)
	}

	cfg = config.NewConfig()
	if configPath != "" {
		if err := cfg.LoadFile(configPath); err != nil {
			return err
		}
	}
	cfg.LoadFromEnvironment()
	applyFlags(cmd, cfg)

	return cfg.Validate()
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()

	stringFlags := map[string]*string{
		"source":   &cfg.Images.Source,
		"filter":   &cfg.Images.Filter,
		"favicon":  &cfg.Images.FaviconPath,
		"dir":      &cfg.Images.PWADir,
		"logo-out": &cfg.Images.LogoPath,
		"data":     &cfg.Report.DataFile,
		"output":   &cfg.Report.Output,
		"logo":     &cfg.Report.Logo,
	}
	for name, dst := range stringFlags {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}

	if f.Changed("max-width") {
		cfg.Images.LogoMaxWidth, _ = f.GetInt("max-width")
	}
}

func addImageFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("source", "s", "", "Source image (env CRYPTFOLIO_SOURCE_IMAGE)")
	cmd.Flags().StringP("filter", "f", "lanczos", "Resampling filter: lanczos, catmullrom, linear or nearest")
}

func main() {
	rootCmd := &cobra.Command{
		Use:               "cryptfolio",
		Short:             "Asset and report tooling for Cryptfolio Arcade",
		Long:              `cryptfolio generates the web icons and logo of the Cryptfolio Arcade site and renders the portfolio PDF report.`,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")

	faviconCmd := &cobra.Command{
		Use:   "favicon",
		Short: "Replace the multi-resolution favicon.ico",
		Run: func(cmd *cobra.Command, args []string) {
			if err := services.NewImageService(cfg).GenerateFavicon(); err != nil {
				logger.Fatal("Failed to generate favicon: %v", err)
			}
		},
	}
	addImageFlags(faviconCmd)
	faviconCmd.Flags().String("favicon", "", "Output path (default public/favicon.ico)")

	pwaCmd := &cobra.Command{
		Use:   "pwa-icons",
		Short: "Create the square PWA icons",
		Run: func(cmd *cobra.Command, args []string) {
			paths, err := services.NewImageService(cfg).GeneratePWAIcons()
			if err != nil {
				logger.Fatal("Failed to generate PWA icons: %v", err)
			}
			logger.Info("Generated %d PWA icons", len(paths))
		},
	}
	addImageFlags(pwaCmd)
	pwaCmd.Flags().String("dir", "", "Output directory (default public)")

	logoCmd := &cobra.Command{
		Use:   "logo",
		Short: "Replace the site logo, capping its width",
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := services.NewImageService(cfg).ResizeLogo(); err != nil {
				logger.Fatal("Failed to replace logo: %v", err)
			}
		},
	}
	addImageFlags(logoCmd)
	logoCmd.Flags().String("logo-out", "", "Output path (default public/logo_cryptofolio_defi.png)")
	logoCmd.Flags().Int("max-width", 1000, "Maximum logo width in pixels")

	var noEmail bool
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Render the portfolio PDF report and optionally email it",
		Run: func(cmd *cobra.Command, args []string) {
			var dispatcher *mailer.Dispatcher
			if !noEmail {
				sender := tui.NewSendMonitor(mailer.NewSMTPSender(cfg.SMTP), os.Stdin, os.Stdout)
				preset := mailer.Envelope{
					From:     cfg.SMTP.From,
					Password: cfg.SMTP.Password,
					To:       cfg.SMTP.To,
				}
				dispatcher = mailer.NewDispatcher(tui.NewPrompter(os.Stdin, os.Stdout), sender, preset)
			}

			_, outcome, err := services.NewReportService(cfg, dispatcher).Run(cmd.Context())
			if err != nil {
				logger.Fatal("Failed to build report: %v", err)
			}
			logger.Debug("Email step finished: %s", outcome)
		},
	}
	reportCmd.Flags().String("data", "", "Portfolio data file (.yaml, .yml or .json); sample data when empty")
	reportCmd.Flags().StringP("output", "o", "", "Output PDF path (default relatorio_cryptfolio_arcade.pdf)")
	reportCmd.Flags().String("logo", "", "Header logo (default logo.png, skipped when missing)")
	reportCmd.Flags().BoolVar(&noEmail, "no-email", false, "Skip the email step")

	var samplePath string
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the sample portfolio to a data file for editing",
		Run: func(cmd *cobra.Command, args []string) {
			if err := storage.SavePortfolio(samplePath, models.SamplePortfolio()); err != nil {
				logger.Fatal("Failed to write sample portfolio: %v", err)
			}
			logger.Info("Sample portfolio written to %s", samplePath)
		},
	}
	sampleCmd.Flags().StringVarP(&samplePath, "path", "p", "portfolio.yaml", "Destination file (.yaml, .yml or .json)")

	rootCmd.AddCommand(faviconCmd, pwaCmd, logoCmd, reportCmd, sampleCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Fatal("Failed to execute command: %v", err)
	}
}
