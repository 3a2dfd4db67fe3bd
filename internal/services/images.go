package services

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/cryptfolio/cryptfolio-tools/internal/config"
	"github.com/cryptfolio/cryptfolio-tools/internal/imageops"
	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
)

// ImageService produces the web assets derived from the source artwork.
type ImageService struct {
	config *config.Config
}

func NewImageService(cfg *config.Config) *ImageService {
	return &ImageService{config: cfg}
}

// source opens the configured source image and resolves the filter.
func (s *ImageService) source() (image.Image, imaging.ResampleFilter, error) {
	if err := s.config.RequireSource(); err != nil {
		return nil, imaging.ResampleFilter{}, err
	}

	filter, err := imageops.ParseFilter(s.config.Images.Filter)
	if err != nil {
		return nil, imaging.ResampleFilter{}, err
	}

	src, err := imageops.Open(s.config.Images.Source)
	if err != nil {
		return nil, imaging.ResampleFilter{}, err
	}

	logger.Debug("Loaded %s (%dx%d) with %s filter",
		s.config.Images.Source, src.Bounds().Dx(), src.Bounds().Dy(), s.config.Images.Filter)
	return src, filter, nil
}

// GenerateFavicon writes the multi-resolution favicon.
func (s *ImageService) GenerateFavicon() error {
	src, filter, err := s.source()
	if err != nil {
		return err
	}

	cfg := s.config.Images
	if err := imageops.WriteFavicon(src, cfg.FaviconPath, cfg.FaviconSizes, filter); err != nil {
		return fmt.Errorf("favicon: %w", err)
	}
	return nil
}

// GeneratePWAIcons writes one square PNG per configured size.
func (s *ImageService) GeneratePWAIcons() ([]string, error) {
	src, filter, err := s.source()
	if err != nil {
		return nil, err
	}

	cfg := s.config.Images
	paths, err := imageops.WritePWAIcons(src, cfg.PWADir, cfg.PWASizes, filter)
	if err != nil {
		return paths, fmt.Errorf("pwa icons: %w", err)
	}
	return paths, nil
}

// ResizeLogo replaces the site logo, capping its width.
func (s *ImageService) ResizeLogo() (image.Point, error) {
	src, filter, err := s.source()
	if err != nil {
		return image.Point{}, err
	}

	cfg := s.config.Images
	size, err := imageops.ReplaceLogo(src, cfg.LogoPath, cfg.LogoMaxWidth, filter)
	if err != nil {
		return size, fmt.Errorf("logo: %w", err)
	}
	return size, nil
}
