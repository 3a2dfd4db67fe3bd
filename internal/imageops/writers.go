package imageops

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
)

// WriteFavicon resamples src into every size and packs them into one ICO file.
func WriteFavicon(src image.Image, dst string, sizes []int, filter imaging.ResampleFilter) error {
	if len(sizes) == 0 {
		return fmt.Errorf("no favicon sizes given")
	}

	frames := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		frame, err := Apply(src, Spec{Width: size, Height: size, Mode: Contain, Filter: filter})
		if err != nil {
			return fmt.Errorf("failed to resample favicon to %dx%d: %w", size, size, err)
		}
		frames = append(frames, frame)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return fmt.Errorf("failed to encode favicon: %w", err)
	}

	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	logger.Info("Successfully replaced %s", dst)
	return nil
}

// PWAIconName returns the file name used for a PWA icon of the given size.
func PWAIconName(size int) string {
	return fmt.Sprintf("pwa-icon-%d.png", size)
}

// WritePWAIcons writes one square PNG per size into dir and returns their paths.
// Icons written before a failure are left in place.
func WritePWAIcons(src image.Image, dir string, sizes []int, filter imaging.ResampleFilter) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	var written []string
	for _, size := range sizes {
		out := filepath.Join(dir, PWAIconName(size))

		resized, err := Apply(src, Square(size, filter))
		if err != nil {
			return written, fmt.Errorf("failed to create %s: %w", out, err)
		}

		if err := imaging.Save(resized, out); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", out, err)
		}

		logger.Info("Created %s (%dx%d)", out, size, size)
		written = append(written, out)
	}

	return written, nil
}

// ReplaceLogo writes src as a PNG at dst, downsampled to maxWidth when wider.
func ReplaceLogo(src image.Image, dst string, maxWidth int, filter imaging.ResampleFilter) (image.Point, error) {
	b := src.Bounds()
	logger.Info("Original size: %dx%d", b.Dx(), b.Dy())

	out, err := Apply(src, Spec{Width: maxWidth, Mode: FitWidth, Filter: filter})
	if err != nil {
		return image.Point{}, fmt.Errorf("failed to resize logo: %w", err)
	}

	size := out.Bounds().Size()
	if size != b.Size() {
		logger.Info("Resized to: %dx%d", size.X, size.Y)
	}

	f, err := os.Create(dst)
	if err != nil {
		return image.Point{}, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer f.Close()

	if err := imaging.Encode(f, out, imaging.PNG); err != nil {
		return image.Point{}, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	logger.Info("Successfully replaced %s", dst)
	return size, nil
}
