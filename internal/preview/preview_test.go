package preview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/rectclip"
	"github.com/tdewolff/test"
	"gonum.org/v1/plot"
)

func TestPlot(t *testing.T) {
	rect := rectclip.Rect[float64]{Left: 0, Top: 0, Right: 10, Bottom: 10}
	input := rectclip.MustParseSVGPath("M-5 5L5 5L5 15L-5 15z")
	output := rectclip.Clip(input, rect)

	p, err := Plot(rect, input, output, Options{Title: "clip", Closed: true, FlipY: true})
	test.Error(t, err)
	test.T(t, p.Title.Text, "clip")
	test.Float(t, p.X.Min, -5.0)
	test.Float(t, p.X.Max, 10.0)

	filename := filepath.Join(t.TempDir(), "preview.svg")
	test.Error(t, Save(filename, rect, input, output, Options{Closed: true}))
	info, err := os.Stat(filename)
	test.Error(t, err)
	test.That(t, 0 < info.Size())
}

func TestAddPath(t *testing.T) {
	p := plot.New()
	test.Error(t, addPath(p, nil, true, rectColor, 1.5))
	test.Error(t, addPath(p, rectclip.Path[float64]{{X: 2, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 8}}, false, outputColor, 2.0))
	test.Float(t, p.X.Min, 2.0)
	test.Float(t, p.X.Max, 7.0)
	test.Float(t, p.Y.Min, 3.0)
	test.Float(t, p.Y.Max, 8.0)
}
