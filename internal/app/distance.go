package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/josebatistam/Astroinformatics-II/internal/core/ports"
	"go.trai.ch/zerr"
)

// StageDistance is the span name of the luminosity distance stage.
const StageDistance = "distance"

// DistanceHeader is the first line of the distance table.
const DistanceHeader = "ID\tDistance(Mpc)"

// DistanceOptions configuration for the Distances method.
type DistanceOptions struct {
	// Input is the path of the ra, dec, z table.
	Input string
	// Cosmology defaults to domain.DefaultCosmology when zero.
	Cosmology domain.Cosmology
	// Out receives the table. Nil means standard output.
	Out     io.Writer
	Timings bool
}

// Distances computes the luminosity distance of every object in a redshift table.
// Objects are numbered from 1 in file order.
func (a *App) Distances(ctx context.Context, opts DistanceOptions) error {
	cosmo := opts.Cosmology
	if cosmo == (domain.Cosmology{}) {
		cosmo = domain.DefaultCosmology
	}
	if err := cosmo.Validate(); err != nil {
		return err
	}
	defer a.reportTimings(opts.Timings)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	n, err := a.writeDistances(ctx, out, opts.Input, cosmo)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("computed %d luminosity distances from %s (H0=%g, Ωm=%g, ΩΛ=%g)",
		n, opts.Input, cosmo.H0, cosmo.OmegaM, cosmo.OmegaV))
	return nil
}

func (a *App) writeDistances(ctx context.Context, out io.Writer, input string, cosmo domain.Cosmology) (int, error) {
	ctx, span := a.tracer.Start(ctx, StageDistance, ports.WithAttribute("abell.input", input))
	defer span.End()

	fail := func(err error) (int, error) {
		span.RecordError(err)
		return 0, err
	}

	records, err := a.catalogLoader.LoadRedshifts(input)
	if err != nil {
		return fail(err)
	}
	span.SetAttribute("abell.objects", len(records))

	w := bufio.NewWriter(out)
	if _, err := fmt.Fprintln(w, DistanceHeader); err != nil {
		return fail(zerr.Wrap(err, "failed to write distances"))
	}
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if _, err := fmt.Fprintf(w, "%d\t%.3f\n", i+1, cosmo.LuminosityDistance(rec.Z)); err != nil {
			return fail(zerr.Wrap(err, "failed to write distances"))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(zerr.Wrap(err, "failed to write distances"))
	}
	return len(records), nil
}
