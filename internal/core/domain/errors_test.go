package domain_test

import (
	"errors"
	"testing"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestRowOf(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantRow int
		wantOK  bool
	}{
		{
			name:    "wrapped sentinel with row",
			err:     zerr.With(zerr.Wrap(domain.ErrMalformedRow, "bad m10"), "row", 7),
			wantRow: 7,
			wantOK:  true,
		},
		{
			name:    "joined sentinel with row",
			err:     zerr.With(errors.Join(domain.ErrMalformedRow, errors.New("strconv")), "row", 3),
			wantRow: 3,
			wantOK:  true,
		},
		{
			name:   "sentinel without row",
			err:    zerr.Wrap(domain.ErrMalformedRow, "bad m10"),
			wantOK: false,
		},
		{
			name:   "other error with row",
			err:    zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "x"), "row", 1),
			wantOK: false,
		},
		{
			name:   "nil",
			err:    nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := domain.RowOf(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRow, row)
		})
	}
}

func TestMetadataValue(t *testing.T) {
	err := zerr.With(zerr.Wrap(domain.ErrSourceUnavailable, "open"), "path", "data/abell.dat")
	wrapped := zerr.Wrap(err, "prepare")

	v, ok := domain.MetadataValue(wrapped, "path")
	assert.True(t, ok)
	assert.Equal(t, "data/abell.dat", v)

	_, ok = domain.MetadataValue(wrapped, "missing")
	assert.False(t, ok)
	assert.ErrorIs(t, wrapped, domain.ErrSourceUnavailable)
}
