package services

import (
	"context"
	"fmt"

	"github.com/cryptfolio/cryptfolio-tools/internal/config"
	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
	"github.com/cryptfolio/cryptfolio-tools/internal/mailer"
	"github.com/cryptfolio/cryptfolio-tools/internal/models"
	"github.com/cryptfolio/cryptfolio-tools/internal/report"
	"github.com/cryptfolio/cryptfolio-tools/internal/storage"
)

// ReportService orchestrates data loading, PDF generation and the optional
// email step.
type ReportService struct {
	config     *config.Config
	generator  *report.Generator
	dispatcher *mailer.Dispatcher
}

// NewReportService creates the service. A nil dispatcher skips the email step.
func NewReportService(cfg *config.Config, dispatcher *mailer.Dispatcher) *ReportService {
	return &ReportService{
		config:     cfg,
		generator:  report.NewGenerator(cfg.Report.Logo),
		dispatcher: dispatcher,
	}
}

// LoadPortfolio reads the configured data file, falling back to the
// built-in sample portfolio.
func (s *ReportService) LoadPortfolio() (*models.Portfolio, error) {
	if s.config.Report.DataFile == "" {
		logger.Debug("No data file configured, using sample portfolio")
		return models.SamplePortfolio(), nil
	}

	p, err := storage.LoadPortfolio(s.config.Report.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	logger.Info("Loaded portfolio from %s (%d assets)", s.config.Report.DataFile, len(p.Assets))
	return p, nil
}

// Run writes the report and then hands it to the dispatcher. Only data and
// PDF errors are returned; email failures end up in the outcome.
func (s *ReportService) Run(ctx context.Context) (report.Result, mailer.Outcome, error) {
	p, err := s.LoadPortfolio()
	if err != nil {
		return report.Result{}, mailer.Declined, err
	}

	res, err := s.generator.WriteFile(s.config.Report.Output, p)
	if err != nil {
		return res, mailer.Declined, fmt.Errorf("failed to generate report: %w", err)
	}

	if s.dispatcher == nil {
		return res, mailer.Declined, nil
	}

	return res, s.dispatcher.Dispatch(ctx, s.config.Report.Output), nil
}
