package confmat

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

const colorBarLabel = "1 / (time + opt. gap)"

// RenderOptions controls the heatmap layout.
type RenderOptions struct {
	Transpose bool      // policy dataset on the x-axis
	Width     vg.Length // defaults to 8in
	Height    vg.Length // defaults to 6in
}

// scoreGrid adapts a square score matrix to plotter.GridXYZ. Grid rows count
// upwards, so matrix row 0 is drawn at the top like the printed matrix.
type scoreGrid struct {
	m         mat.Matrix
	transpose bool
}

func (g scoreGrid) Dims() (c, r int) {
	n, _ := g.m.Dims()
	return n, n
}

func (g scoreGrid) Z(c, r int) float64 {
	n, _ := g.m.Dims()
	if g.transpose {
		return g.m.At(c, n-1-r)
	}
	return g.m.At(n-1-r, c)
}

func (g scoreGrid) X(c int) float64 { return float64(c) }
func (g scoreGrid) Y(r int) float64 { return float64(r) }

// Render writes the score heatmap as a PDF to path, creating parent
// directories as needed.
func Render(path string, score mat.Matrix, labels []string, opts RenderOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteHeatmap(file, score, labels, opts); err != nil {
		_ = file.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	logrus.Infof("wrote heatmap to %s", path)
	return nil
}

// WriteHeatmap draws the score heatmap with a colorbar and writes the PDF to w.
// The colormap spans [min(score), max(score)].
func WriteHeatmap(w io.Writer, score mat.Matrix, labels []string, opts RenderOptions) error {
	n, cols := score.Dims()
	if n != cols {
		return fmt.Errorf("score matrix must be square, got %dx%d", n, cols)
	}
	if len(labels) != n {
		return fmt.Errorf("got %d labels for %d datasets", len(labels), n)
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 6 * vg.Inch
	}

	lo, hi := mat.Min(score), mat.Max(score)
	if hi <= lo {
		hi = lo + 1
	}
	cmap := moreland.ExtendedBlackBody()
	cmap.SetMin(lo)
	cmap.SetMax(hi)

	heat := plotter.NewHeatMap(scoreGrid{m: score, transpose: opts.Transpose}, cmap.Palette(255))
	heat.Min, heat.Max = lo, hi

	p := plot.New()
	p.Add(heat)
	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, l := range labels {
		xTicks[i] = plot.Tick{Value: float64(i), Label: l}
		yTicks[i] = plot.Tick{Value: float64(n - 1 - i), Label: l}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Tick.Label.Rotation = math.Pi / 9
	p.X.Label.Text, p.Y.Label.Text = "Test Dataset", "Policy Dataset"
	if opts.Transpose {
		p.X.Label.Text, p.Y.Label.Text = p.Y.Label.Text, p.X.Label.Text
	}
	p.X.Label.TextStyle.Font.Size = vg.Points(16)
	p.Y.Label.TextStyle.Font.Size = vg.Points(16)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})
	bar.HideX()
	bar.Y.Padding = 0
	bar.Y.Label.Text = colorBarLabel
	bar.Y.Label.TextStyle.Font.Size = vg.Points(14)

	c := vgpdf.New(width, height)
	dc := draw.New(c)
	barWidth := width / 5
	p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, width-barWidth, 0, 0, 0))

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
