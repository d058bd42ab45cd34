// Package summary renders the refresh summary artifact: a fixed-layout PNG
// with the total country count, the top five countries by estimated GDP and
// the run timestamp. The artifact lives at a fixed path and is overwritten
// on every successful refresh.
package summary

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	countryrepo "github.com/amirasaad/countrypulse/pkg/repository/country"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	imageWidth  = 800
	imageHeight = 600
	topN        = 5
)

// Service generates the summary image from the current persisted state.
type Service struct {
	repo   countryrepo.Repository
	path   string
	logger *slog.Logger
}

// New creates a summary renderer writing to path.
func New(repo countryrepo.Repository, path string, logger *slog.Logger) *Service {
	return &Service{repo: repo, path: path, logger: logger}
}

// Path returns the artifact location.
func (s *Service) Path() string { return s.path }

// Render reads the aggregate state and overwrites the artifact. The file is
// written to a temp name and renamed so readers never observe a half-written
// image.
func (s *Service) Render(ctx context.Context, now time.Time) error {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}
	top, err := s.repo.TopByGDP(ctx, topN)
	if err != nil {
		return fmt.Errorf("failed to read top countries: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawText(img, 50, 50, "Country Summary")
	drawText(img, 50, 100, fmt.Sprintf("Total Countries: %d", stats.TotalCountries))

	y := 150
	for _, entry := range top {
		drawText(img, 50, y, fmt.Sprintf("%s: %.2f", entry.Name, entry.EstimatedGDP))
		y += 30
	}
	drawText(img, 50, y+50, fmt.Sprintf("Last Refreshed: %s", now.Format(time.RFC3339)))

	if err := s.write(img); err != nil {
		return err
	}
	s.logger.Info("summary image rendered", "path", s.path, "total", stats.TotalCountries)
	return nil
}

func (s *Service) write(img image.Image) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "summary-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("failed to encode summary image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace artifact: %w", err)
	}
	return nil
}

func drawText(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
