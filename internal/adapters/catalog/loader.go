// Package catalog implements the readers for the Abell cluster catalog and redshift text tables.
package catalog

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"go.trai.ch/zerr"
)

// fieldCount is the number of leading fields read from each data row.
const fieldCount = 6

// redshiftFieldCount is the number of leading fields read from each redshift row.
const redshiftFieldCount = 3

// maxLineSize bounds a single catalog line.
const maxLineSize = 1 << 20

// Loader implements ports.CatalogLoader for whitespace-delimited tables.
type Loader struct{}

// NewLoader creates a new catalog Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the catalog file at path.
func (l *Loader) Load(path string) ([]domain.CatalogRecord, error) {
	return load(path, Parse)
}

// LoadRedshifts reads the redshift table at path.
func (l *Loader) LoadRedshifts(path string) ([]domain.RedshiftRecord, error) {
	return load(path, ParseRedshifts)
}

func load[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	//nolint:gosec // Path is provided by the user on purpose.
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrSourceUnavailable, err), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := parse(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return records, nil
}

// Parse reads a catalog table from r.
// The first line is a header and is skipped, as are blank lines. Each remaining
// line must hold at least six whitespace-separated fields in the order glon, glat,
// richness, distance class, m10, luminosity distance. Extra fields are ignored.
func Parse(r io.Reader) ([]domain.CatalogRecord, error) {
	return scanRows(r, parseRow)
}

// ParseRedshifts reads a redshift table from r.
// The layout follows Parse: one header line, then rows of ra, dec and z.
func ParseRedshifts(r io.Reader) ([]domain.RedshiftRecord, error) {
	return scanRows(r, parseRedshiftRow)
}

func scanRows[T any](r io.Reader, parse func([]string) (T, error)) ([]T, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []T
	line := 0
	row := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row++

		rec, err := parse(fields)
		if err != nil {
			return nil, rowError(err, row, line)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		// The scanner stops on the line it could not hold.
		if errors.Is(err, bufio.ErrTooLong) {
			err = zerr.With(errors.Join(domain.ErrMalformedRow, err), "limit", maxLineSize)
			return nil, rowError(err, row+1, line+1)
		}
		return nil, errors.Join(domain.ErrSourceUnavailable, err)
	}

	return records, nil
}

func rowError(err error, row, line int) error {
	err = zerr.With(err, "row", row)
	return zerr.With(err, "line", line)
}

func tooFewFields(n int) error {
	err := zerr.Wrap(domain.ErrMalformedRow, "too few fields")
	return zerr.With(err, "fields", n)
}

func parseRow(fields []string) (domain.CatalogRecord, error) {
	var rec domain.CatalogRecord
	if len(fields) < fieldCount {
		return rec, tooFewFields(len(fields))
	}

	var err error
	if rec.GLon, err = parseFloat(fields[0], "glon"); err != nil {
		return rec, err
	}
	if rec.GLat, err = parseFloat(fields[1], "glat"); err != nil {
		return rec, err
	}
	if rec.Richness, err = parseRank(fields[2], "rich"); err != nil {
		return rec, err
	}
	if rec.DistanceClass, err = parseRank(fields[3], "dclass"); err != nil {
		return rec, err
	}
	if rec.M10, err = parseFloat(fields[4], "m10"); err != nil {
		return rec, err
	}
	if rec.LuminosityDistance, err = parseFloat(fields[5], "lumdist"); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseRedshiftRow(fields []string) (domain.RedshiftRecord, error) {
	var rec domain.RedshiftRecord
	if len(fields) < redshiftFieldCount {
		return rec, tooFewFields(len(fields))
	}

	var err error
	if rec.RA, err = parseFloat(fields[0], "ra"); err != nil {
		return rec, err
	}
	if rec.Dec, err = parseFloat(fields[1], "dec"); err != nil {
		return rec, err
	}
	if rec.Z, err = parseFloat(fields[2], "z"); err != nil {
		return rec, err
	}
	if !(rec.Z > -1) {
		err := zerr.With(zerr.Wrap(domain.ErrMalformedRow, "redshift must be greater than -1"), "column", "z")
		return rec, zerr.With(err, "value", fields[2])
	}
	return rec, nil
}

func parseFloat(s, column string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fieldError(err, column, s)
	}
	return v, nil
}

func parseRank(s, column string) (int8, error) {
	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0, fieldError(err, column, s)
	}
	return int8(v), nil
}

func fieldError(err error, column, value string) error {
	e := zerr.With(errors.Join(domain.ErrMalformedRow, err), "column", column)
	return zerr.With(e, "value", value)
}
