// Package ainplot renders asymmetric interval numbers as density and
// cumulative distribution plots.
//
// PDFPlot draws the two-piece density as a step outline and CDFPlot the
// piecewise-linear distribution function, both with a dashed marker at
// the expected value. SavePDF and SaveCDF render straight to disk; the
// output format follows the file extension (png, svg, pdf, and the other
// formats gonum/plot registers).
package ainplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/GriffinCanCode/asymintervals/ain"
)

var (
	curveColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	markerColor = color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
)

// pdfPoints traces the density outline, including the vertical jumps at
// the bounds and at the expected value. A margin of 10% of the width on
// each side shows the zero tails.
func pdfPoints(x ain.AIN) plotter.XYs {
	margin := 0.1 * x.Width()
	return plotter.XYs{
		{X: x.Lower() - margin, Y: 0},
		{X: x.Lower(), Y: 0},
		{X: x.Lower(), Y: x.Alpha()},
		{X: x.Expected(), Y: x.Alpha()},
		{X: x.Expected(), Y: x.Beta()},
		{X: x.Upper(), Y: x.Beta()},
		{X: x.Upper(), Y: 0},
		{X: x.Upper() + margin, Y: 0},
	}
}

// cdfPoints traces the distribution function. The CDF of a two-piece
// uniform density is linear on each piece, so the exact curve needs only
// the breakpoints.
func cdfPoints(x ain.AIN) plotter.XYs {
	margin := 0.1 * x.Width()
	return plotter.XYs{
		{X: x.Lower() - margin, Y: 0},
		{X: x.Lower(), Y: 0},
		{X: x.Expected(), Y: x.Alpha() * (x.Expected() - x.Lower())},
		{X: x.Upper(), Y: 1},
		{X: x.Upper() + margin, Y: 1},
	}
}

// expectedMarker is the dashed vertical line at the expected value.
func expectedMarker(x ain.AIN, top float64) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{
		{X: x.Expected(), Y: 0},
		{X: x.Expected(), Y: top},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = markerColor
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return line, nil
}

func newPlot(x ain.AIN, title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s of AIN %v", title, x)
	p.X.Label.Text = "x"
	p.Y.Label.Text = yLabel
	p.Y.Min = 0
	return p
}

// PDFPlot builds the density plot for x. Degenerate values are rejected:
// a point mass has no density curve to draw.
func PDFPlot(x ain.AIN) (*plot.Plot, error) {
	if x.IsDegenerate() {
		return nil, fmt.Errorf("%w: degenerate interval has no density curve", ain.ErrDomain)
	}
	p := newPlot(x, "PDF", "f(x)")

	curve, err := plotter.NewLine(pdfPoints(x))
	if err != nil {
		return nil, fmt.Errorf("density series: %w", err)
	}
	curve.LineStyle.Color = curveColor
	curve.LineStyle.Width = vg.Points(1.5)

	marker, err := expectedMarker(x, max(x.Alpha(), x.Beta()))
	if err != nil {
		return nil, fmt.Errorf("expected marker: %w", err)
	}

	p.Add(curve, marker)
	return p, nil
}

// CDFPlot builds the cumulative distribution plot for x. Degenerate
// values are rejected for symmetry with PDFPlot.
func CDFPlot(x ain.AIN) (*plot.Plot, error) {
	if x.IsDegenerate() {
		return nil, fmt.Errorf("%w: degenerate interval has no distribution curve", ain.ErrDomain)
	}
	p := newPlot(x, "CDF", "F(x)")

	curve, err := plotter.NewLine(cdfPoints(x))
	if err != nil {
		return nil, fmt.Errorf("distribution series: %w", err)
	}
	curve.LineStyle.Color = curveColor
	curve.LineStyle.Width = vg.Points(1.5)

	marker, err := expectedMarker(x, 1)
	if err != nil {
		return nil, fmt.Errorf("expected marker: %w", err)
	}

	p.Add(curve, marker)
	return p, nil
}

func save(p *plot.Plot, path string, w, h float64) error {
	if !(w > 0) || !(h > 0) {
		return fmt.Errorf("%w: plot dimensions must be positive, got %gx%g", ain.ErrRange, w, h)
	}
	return p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path)
}

// SavePDF renders the density plot of x to path at w by h inches.
func SavePDF(x ain.AIN, path string, w, h float64) error {
	p, err := PDFPlot(x)
	if err != nil {
		return err
	}
	return save(p, path, w, h)
}

// SaveCDF renders the cumulative distribution plot of x to path at w by
// h inches.
func SaveCDF(x ain.AIN, path string, w, h float64) error {
	p, err := CDFPlot(x)
	if err != nil {
		return err
	}
	return save(p, path, w, h)
}
