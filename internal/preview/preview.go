// Package preview plots the clipping rectangle together with the input and output paths, for visually checking a clip.
package preview

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tdewolff/rectclip"
)

var (
	rectColor   = color.RGBA{220, 50, 47, 255}
	inputColor  = color.RGBA{160, 160, 160, 255}
	outputColor = color.RGBA{38, 139, 210, 255}
)

// Options control the plot.
type Options struct {
	Title  string
	Closed bool // draw the paths as polygons
	FlipY  bool // y axis pointing down, as in SVG
	Size   vg.Length
}

// Plot returns a plot of the rectangle in red, the input paths in grey and the output paths in blue.
func Plot(rect rectclip.Rect[float64], input, output rectclip.Paths[float64], opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	if opts.FlipY {
		p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	}
	p.Add(plotter.NewGrid())

	if err := addPath(p, rect.AsPath(), true, rectColor, 1.5); err != nil {
		return nil, err
	}
	for _, path := range input {
		if err := addPath(p, path, opts.Closed, inputColor, 1.0); err != nil {
			return nil, err
		}
	}
	for _, path := range output {
		if err := addPath(p, path, opts.Closed, outputColor, 2.0); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// addPath draws the path as a line of the given width in points.
func addPath(p *plot.Plot, path rectclip.Path[float64], closed bool, c color.Color, width float64) error {
	if len(path) == 0 {
		return nil
	}
	xys := make(plotter.XYs, 0, len(path)+1)
	for _, pt := range path {
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if closed {
		xys = append(xys, xys[0])
	}

	l, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("preview line: %w", err)
	}
	l.Color = c
	l.Width = vg.Points(width)
	p.Add(l)
	return nil
}

// Save writes the plot to filename, the image format follows from its extension (png, svg, pdf, ...).
func Save(filename string, rect rectclip.Rect[float64], input, output rectclip.Paths[float64], opts Options) error {
	p, err := Plot(rect, input, output, opts)
	if err != nil {
		return err
	}

	size := opts.Size
	if size == 0 {
		size = 12 * vg.Centimeter
	}
	if err := p.Save(size, size, filename); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	return nil
}
