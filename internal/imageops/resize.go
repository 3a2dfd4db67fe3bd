// Package imageops turns one source image into the icon and logo assets
// served by the web app.
package imageops

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
)

// Mode selects how a source is fitted into the target dimensions.
type Mode int

const (
	// Stretch resamples to exactly Width x Height.
	Stretch Mode = iota
	// Contain scales to fit inside Width x Height keeping the aspect ratio and
	// centres the result on a transparent Width x Height canvas.
	Contain
	// FitWidth downsamples to Width keeping the aspect ratio, only when the
	// source is wider than Width. Height is ignored.
	FitWidth
)

// Spec describes one resample operation.
type Spec struct {
	Width  int
	Height int
	Mode   Mode
	Filter imaging.ResampleFilter
}

// Square returns a Stretch spec for a size x size output.
func Square(size int, filter imaging.ResampleFilter) Spec {
	return Spec{Width: size, Height: size, Mode: Stretch, Filter: filter}
}

// ParseFilter maps a filter name to a resampling filter. Empty means Lanczos.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	switch strings.ToLower(name) {
	case "", "lanczos":
		return imaging.Lanczos, nil
	case "catmullrom":
		return imaging.CatmullRom, nil
	case "linear":
		return imaging.Linear, nil
	case "nearest":
		return imaging.NearestNeighbor, nil
	default:
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter %q", name)
	}
}

// Apply resamples src according to spec.
func Apply(src image.Image, spec Spec) (image.Image, error) {
	if spec.Width <= 0 {
		return nil, fmt.Errorf("invalid target width %d", spec.Width)
	}

	switch spec.Mode {
	case Stretch:
		if spec.Height <= 0 {
			return nil, fmt.Errorf("invalid target height %d", spec.Height)
		}
		return imaging.Resize(src, spec.Width, spec.Height, spec.Filter), nil

	case Contain:
		if spec.Height <= 0 {
			return nil, fmt.Errorf("invalid target height %d", spec.Height)
		}
		b := src.Bounds()
		scale := math.Min(float64(spec.Width)/float64(b.Dx()), float64(spec.Height)/float64(b.Dy()))
		w := max(1, int(math.Round(float64(b.Dx())*scale)))
		h := max(1, int(math.Round(float64(b.Dy())*scale)))
		fitted := imaging.Resize(src, w, h, spec.Filter)
		if w == spec.Width && h == spec.Height {
			return fitted, nil
		}
		canvas := imaging.New(spec.Width, spec.Height, color.Transparent)
		return imaging.PasteCenter(canvas, fitted), nil

	case FitWidth:
		b := src.Bounds()
		if b.Dx() <= spec.Width {
			return src, nil
		}
		return imaging.Resize(src, spec.Width, scaledHeight(b.Dx(), b.Dy(), spec.Width), spec.Filter), nil

	default:
		return nil, fmt.Errorf("unknown resize mode %d", spec.Mode)
	}
}

// scaledHeight truncates like the web tooling did, so a 3000x1001 logo maps to 1000x333.
func scaledHeight(width, height, targetWidth int) int {
	h := int(float64(height) * (float64(targetWidth) / float64(width)))
	if h < 1 {
		return 1
	}
	return h
}

// Open decodes the image at path, honouring EXIF orientation.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	return img, nil
}
