// Package plan resolves the fixed set of catalog figures into plot requests.
package plan

import (
	"path/filepath"
	"slices"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
)

// Figure titles.
const (
	TitleSky      = "AbellN1989 Galaxy Clusters Positions on the Sky"
	TitleBright   = TitleSky + " (m10 < 17.0)"
	TitleFaint    = TitleSky + " (m10 >= 17.0)"
	TitleBoth     = "AbellN1989 Bright and Faint Galaxy Clusters"
	TitleRichness = "AbellN1989 Galaxy Clusters Richness vs. Luminosity Distance"
)

// Artifact stems, in render order.
const (
	StemAllSky   = "clusters_all_sky"
	StemAll      = "clusters_xy_xz_all"
	StemBright   = "clusters_xy_xz_bright"
	StemFaint    = "clusters_xy_xz_faint"
	StemBoth     = "clusters_xy_xz_both"
	StemRichness = "clusters_richness_lumdist"
)

// Series labels.
const (
	LabelAll      = "All clusters"
	LabelValid    = "Clusters with distance"
	LabelBright   = "Bright (m10 < 17.0)"
	LabelFaint    = "Faint (m10 >= 17.0)"
	labelLon      = "Galactic Longitude [degrees]"
	labelLat      = "Galactic Latitude [degrees]"
	labelX        = "X [Mpc]"
	labelY        = "Y [Mpc]"
	labelZ        = "Z [Mpc]"
	labelDistance = "Luminosity Distance [Mpc]"
	labelRichness = "Richness"
)

// Extension is the file extension of rendered artifacts.
const Extension = ".pdf"

var (
	xyAxes = domain.Axes{Title: "X-Y Projection", XLabel: labelX, YLabel: labelY}
	xzAxes = domain.Axes{Title: "X-Z Projection", XLabel: labelX, YLabel: labelZ}
)

type column func(domain.Row) float64

func lonOf(r domain.Row) float64      { return r.LonRad }
func latOf(r domain.Row) float64      { return r.LatRad }
func xOf(r domain.Row) float64        { return r.X }
func yOf(r domain.Row) float64        { return r.Y }
func zOf(r domain.Row) float64        { return r.Z }
func distanceOf(r domain.Row) float64 { return r.LuminosityDistance }
func richnessOf(r domain.Row) float64 { return float64(r.Richness) }

// Build returns the six figures of the catalog, in order:
// the all-sky map, the X-Y/X-Z projections of the distance-valid, bright and
// faint subsets, the bright and faint subsets overlaid, and richness against
// luminosity distance. Artifacts are placed in outDir.
func Build(b *domain.Bundle, outDir string) []domain.PlotRequest {
	target := func(stem string) string {
		return filepath.Join(outDir, stem+Extension)
	}

	all := slices.Collect(b.Rows())
	valid := slices.Collect(b.Select(domain.SubsetValid))
	bright := slices.Collect(b.Select(domain.SubsetBright))
	faint := slices.Collect(b.Select(domain.SubsetFaint))

	return []domain.PlotRequest{
		domain.SingleSeries{
			Stem:       StemAllSky,
			Title:      TitleSky,
			Path:       target(StemAllSky),
			Projection: domain.Hammer,
			Panel: domain.Panel{
				Axes:   domain.Axes{XLabel: labelLon, YLabel: labelLat},
				Series: series(LabelAll, domain.ToneNeutral, all, lonOf, latOf),
			},
		},
		dual(StemAll, TitleSky, target(StemAll), LabelValid, domain.ToneNeutral, valid),
		dual(StemBright, TitleBright, target(StemBright), LabelBright, domain.ToneBright, bright),
		dual(StemFaint, TitleFaint, target(StemFaint), LabelFaint, domain.ToneFaint, faint),
		domain.QuadSeries{
			Stem:  StemBoth,
			Title: TitleBoth,
			Path:  target(StemBoth),
			Left: domain.OverlayPanel{
				Axes:      xyAxes,
				Primary:   series(LabelBright, domain.ToneBright, bright, xOf, yOf),
				Secondary: series(LabelFaint, domain.ToneFaint, faint, xOf, yOf),
			},
			Right: domain.OverlayPanel{
				Axes:      xzAxes,
				Primary:   series(LabelBright, domain.ToneBright, bright, xOf, zOf),
				Secondary: series(LabelFaint, domain.ToneFaint, faint, xOf, zOf),
			},
		},
		domain.SingleSeries{
			Stem:       StemRichness,
			Title:      TitleRichness,
			Path:       target(StemRichness),
			Projection: domain.Rectangular,
			Panel: domain.Panel{
				Axes:   domain.Axes{XLabel: labelDistance, YLabel: labelRichness},
				Series: series(LabelValid, domain.ToneNeutral, valid, distanceOf, richnessOf),
			},
		},
	}
}

func dual(stem, title, path, label string, tone domain.Tone, rows []domain.Row) domain.DualSeries {
	return domain.DualSeries{
		Stem:  stem,
		Title: title,
		Path:  path,
		Left:  domain.Panel{Axes: xyAxes, Series: series(label, tone, rows, xOf, yOf)},
		Right: domain.Panel{Axes: xzAxes, Series: series(label, tone, rows, xOf, zOf)},
	}
}

func series(label string, tone domain.Tone, rows []domain.Row, fx, fy column) domain.Series {
	s := domain.Series{
		Label: label,
		Tone:  tone,
		X:     make([]float64, len(rows)),
		Y:     make([]float64, len(rows)),
	}
	for i, r := range rows {
		s.X[i] = fx(r)
		s.Y[i] = fy(r)
	}
	return s
}
