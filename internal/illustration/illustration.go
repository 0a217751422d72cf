// Package illustration produces scene images, either through a remote
// image provider or a locally rendered placeholder when no provider is
// available.
package illustration

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fogleman/gg"
)

// Generator renders one PNG image for a textual prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) ([]byte, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) ([]byte, error) {
	return f(ctx, prompt)
}

// Placeholder renders the prompt text onto a plain canvas. It is used
// when no image provider is configured so video jobs can still finish.
type Placeholder struct {
	Width  int
	Height int
}

// NewPlaceholder returns a placeholder renderer at the given canvas size.
func NewPlaceholder(width, height int) *Placeholder {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	return &Placeholder{Width: width, Height: height}
}

// Generate draws the prompt centered on a white canvas and returns the
// encoded PNG.
func (p *Placeholder) Generate(_ context.Context, prompt string) ([]byte, error) {
	dc := gg.NewContext(p.Width, p.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.25, 0.25, 0.25)
	text := strings.TrimSpace(prompt)
	if text == "" {
		text = "Illustration"
	}
	margin := float64(p.Width) / 10
	dc.DrawStringWrapped(text, float64(p.Width)/2, float64(p.Height)/2,
		0.5, 0.5, float64(p.Width)-2*margin, 1.5, gg.AlignCenter)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("placeholder: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WithFallback returns a generator that tries primary first and falls
// back to the placeholder when primary is nil or fails.
func WithFallback(primary Generator, fallback Generator) Generator {
	return GeneratorFunc(func(ctx context.Context, prompt string) ([]byte, error) {
		if primary != nil {
			img, err := primary.Generate(ctx, prompt)
			if err == nil {
				return img, nil
			}
			if ctx.Err() != nil {
				return nil, err
			}
		}
		return fallback.Generate(ctx, prompt)
	})
}
