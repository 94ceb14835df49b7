package domain

// PlotKind discriminates plot requests.
type PlotKind int

const (
	// KindSingle is one series on one panel.
	KindSingle PlotKind = iota + 1
	// KindDual is one series on each of two side-by-side panels.
	KindDual
	// KindQuad is two overlaid series on each of two side-by-side panels.
	KindQuad
)

// String returns the kind name.
func (k PlotKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindDual:
		return "dual"
	case KindQuad:
		return "quad"
	default:
		return "unknown"
	}
}

// Projection selects how a panel maps its series onto the page.
type Projection int

const (
	// Rectangular plots x and y as given.
	Rectangular Projection = iota
	// Hammer plots (longitude, latitude) in radians on a Hammer-Aitoff ellipse.
	Hammer
)

// Tone selects the palette entry a series is drawn with.
type Tone int

const (
	// ToneNeutral is used for series that are not split by brightness.
	ToneNeutral Tone = iota
	// ToneBright is used for the bright subset.
	ToneBright
	// ToneFaint is used for the faint subset.
	ToneFaint
)

// Series is an aligned pair of coordinate columns.
type Series struct {
	Label string
	Tone  Tone
	X     []float64
	Y     []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.X)
}

// Axes holds the labelling of one panel.
type Axes struct {
	Title  string
	XLabel string
	YLabel string
}

// Panel is one panel with a single series.
type Panel struct {
	Axes   Axes
	Series Series
}

// OverlayPanel is one panel with two overlaid series.
type OverlayPanel struct {
	Axes      Axes
	Primary   Series
	Secondary Series
}

// PlotRequest is the tagged union of plot requests accepted by renderers.
// The concrete types are SingleSeries, DualSeries and QuadSeries.
type PlotRequest interface {
	// Kind reports which concrete request this is.
	Kind() PlotKind
	// Name is the file stem of the artifact, e.g. "clusters_all_sky".
	Name() string
	// Heading is the figure title.
	Heading() string
	// Target is the output path of the artifact.
	Target() string

	isPlotRequest()
}

// SingleSeries draws one series on one panel.
type SingleSeries struct {
	Stem       string
	Title      string
	Path       string
	Projection Projection
	Panel      Panel
}

// DualSeries draws two panels side by side, one series each.
type DualSeries struct {
	Stem  string
	Title string
	Path  string
	Left  Panel
	Right Panel
}

// QuadSeries draws two panels side by side, two overlaid series each.
type QuadSeries struct {
	Stem  string
	Title string
	Path  string
	Left  OverlayPanel
	Right OverlayPanel
}

// Kind implements PlotRequest.
func (SingleSeries) Kind() PlotKind { return KindSingle }

// Name implements PlotRequest.
func (r SingleSeries) Name() string { return r.Stem }

// Heading implements PlotRequest.
func (r SingleSeries) Heading() string { return r.Title }

// Target implements PlotRequest.
func (r SingleSeries) Target() string { return r.Path }

func (SingleSeries) isPlotRequest() {}

// Kind implements PlotRequest.
func (DualSeries) Kind() PlotKind { return KindDual }

// Name implements PlotRequest.
func (r DualSeries) Name() string { return r.Stem }

// Heading implements PlotRequest.
func (r DualSeries) Heading() string { return r.Title }

// Target implements PlotRequest.
func (r DualSeries) Target() string { return r.Path }

func (DualSeries) isPlotRequest() {}

// Kind implements PlotRequest.
func (QuadSeries) Kind() PlotKind { return KindQuad }

// Name implements PlotRequest.
func (r QuadSeries) Name() string { return r.Stem }

// Heading implements PlotRequest.
func (r QuadSeries) Heading() string { return r.Title }

// Target implements PlotRequest.
func (r QuadSeries) Target() string { return r.Path }

func (QuadSeries) isPlotRequest() {}

// Format names an output format.
type Format string

const (
	// FormatPDF renders plots to PDF documents.
	FormatPDF Format = "pdf"
	// FormatSummary prints a text summary of each plot request.
	FormatSummary Format = "summary"
)
