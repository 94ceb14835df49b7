// Package pdf renders plot requests to PDF documents with gonum/plot.
package pdf

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/josebatistam/Astroinformatics-II/internal/ui/style"
	"go.trai.ch/zerr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Page sizes.
const (
	singleWidth  = 10 * vg.Inch
	singleHeight = 5.5 * vg.Inch
	wideWidth    = 14 * vg.Inch
	wideHeight   = 6 * vg.Inch
)

const (
	glyphRadius = vg.Length(1.5)
	titleSize   = 14
	titlePad    = vg.Length(8)
)

// Renderer implements ports.Renderer by writing one PDF per request.
// It holds no mutable state and is safe for concurrent use.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws req and writes it to req.Target(), creating parent directories.
func (r *Renderer) Render(ctx context.Context, req domain.PlotRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		canvas *vgpdf.Canvas
		err    error
	)
	switch q := req.(type) {
	case domain.SingleSeries:
		canvas, err = renderSingle(q)
	case domain.DualSeries:
		left, lerr := panelPlot(q.Left.Axes, false, q.Left.Series)
		right, rerr := panelPlot(q.Right.Axes, false, q.Right.Series)
		if err = cmp.Or(lerr, rerr); err == nil {
			canvas = renderSideBySide(q.Title, left, right)
		}
	case domain.QuadSeries:
		left, lerr := panelPlot(q.Left.Axes, true, q.Left.Primary, q.Left.Secondary)
		right, rerr := panelPlot(q.Right.Axes, true, q.Right.Primary, q.Right.Secondary)
		if err = cmp.Or(lerr, rerr); err == nil {
			canvas = renderSideBySide(q.Title, left, right)
		}
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownPlotKind, "pdf renderer"), "request", fmt.Sprintf("%T", req))
	}
	if err != nil {
		return zerr.With(renderFailed(err), "plot", req.Name())
	}

	return write(canvas, req.Target())
}

func renderSingle(q domain.SingleSeries) (*vgpdf.Canvas, error) {
	var (
		p   *plot.Plot
		err error
	)
	if q.Projection == domain.Hammer {
		p, err = skyPlot(q.Panel.Axes, q.Panel.Series)
	} else {
		p, err = panelPlot(q.Panel.Axes, false, q.Panel.Series)
	}
	if err != nil {
		return nil, err
	}
	p.Title.Text = q.Title
	p.Title.TextStyle.Font.Size = titleSize
	p.Title.Padding = titlePad

	c := vgpdf.New(singleWidth, singleHeight)
	p.Draw(draw.New(c))
	return c, nil
}

func renderSideBySide(title string, left, right *plot.Plot) *vgpdf.Canvas {
	c := vgpdf.New(wideWidth, wideHeight)
	dc := draw.New(c)

	sty := titleStyle()
	dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - titlePad}, title)
	body := draw.Crop(dc, 0, 0, 0, -(sty.Height(title) + 2*titlePad))

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Centimeter,
		PadTop:    vg.Millimeter,
		PadBottom: vg.Millimeter,
		PadLeft:   vg.Millimeter,
		PadRight:  vg.Millimeter,
	}
	plots := [][]*plot.Plot{{left, right}}
	canvases := plot.Align(plots, tiles, body)
	for i, p := range plots[0] {
		p.Draw(canvases[0][i])
	}
	return c
}

// panelPlot builds a rectangular scatter panel with one or more series.
// Only panels that overlay subsets get a legend.
func panelPlot(axes domain.Axes, legend bool, series ...domain.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = axes.Title
	p.X.Label.Text = axes.XLabel
	p.Y.Label.Text = axes.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = style.RGBA(style.Grid)
	grid.Horizontal.Color = style.RGBA(style.Grid)
	p.Add(grid)

	if err := addSeries(p, legend, series...); err != nil {
		return nil, err
	}
	return p, nil
}

// skyPlot builds an all-sky Hammer-Aitoff map. Series hold (longitude, latitude)
// in radians.
func skyPlot(axes domain.Axes, series domain.Series) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()
	p.X.Min, p.X.Max = -2*math.Sqrt2, 2*math.Sqrt2
	p.Y.Min, p.Y.Max = -math.Sqrt2, math.Sqrt2

	for _, pts := range graticule() {
		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			xys[i].X, xys[i].Y = pt[0], pt[1]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, zerr.Wrap(renderFailed(err), "graticule")
		}
		l.Color = style.RGBA(style.Grid)
		l.Width = vg.Points(0.5)
		p.Add(l)
	}

	projected := domain.Series{
		Label: series.Label,
		Tone:  series.Tone,
		X:     make([]float64, series.Len()),
		Y:     make([]float64, series.Len()),
	}
	for i := range series.X {
		projected.X[i], projected.Y[i] = Hammer(series.X[i], series.Y[i])
	}
	if err := addSeries(p, false, projected); err != nil {
		return nil, err
	}

	p.X.Label.Text = axes.XLabel
	p.Y.Label.Text = axes.YLabel
	return p, nil
}

func addSeries(p *plot.Plot, legend bool, series ...domain.Series) error {
	p.Legend.Top = true
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return zerr.With(zerr.Wrap(domain.ErrRenderFailed, "series columns differ in length"), "series", s.Label)
		}
		xys := make(plotter.XYs, s.Len())
		for i := range s.X {
			xys[i].X, xys[i].Y = s.X[i], s.Y[i]
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return zerr.With(renderFailed(err), "series", s.Label)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  toneColor(s.Tone),
			Radius: glyphRadius,
			Shape:  draw.CircleGlyph{},
		}
		if s.Len() > 0 {
			p.Add(sc)
		}
		if legend && s.Label != "" {
			p.Legend.Add(s.Label, sc)
		}
	}
	return nil
}

func toneColor(t domain.Tone) color.Color {
	if t == domain.ToneFaint {
		return style.RGBA(style.Faint)
	}
	return style.RGBA(style.Bright)
}

func titleStyle() text.Style {
	return text.Style{
		Color:   style.RGBA(style.Ink),
		Font:    font.From(plot.DefaultFont, titleSize),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
}

func write(c *vgpdf.Canvas, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(writeFailed(err, "failed to create output directory"), "path", path)
	}

	f, err := os.Create(path) //nolint:gosec // path is built from the configured output dir
	if err != nil {
		return zerr.With(writeFailed(err, "failed to create output file"), "path", path)
	}
	if _, err := c.WriteTo(f); err != nil {
		_ = f.Close()
		return zerr.With(writeFailed(err, "failed to write pdf"), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(writeFailed(err, "failed to close output file"), "path", path)
	}
	return nil
}

func renderFailed(err error) error {
	if errors.Is(err, domain.ErrRenderFailed) {
		return err
	}
	return errors.Join(domain.ErrRenderFailed, err)
}

func writeFailed(err error, msg string) error {
	return zerr.Wrap(errors.Join(domain.ErrRenderFailed, err), msg)
}
