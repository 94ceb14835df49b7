package cas

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/golang/snappy"
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// Magic identifies a bundle artifact.
	Magic = "ABELLBDL"

	// FormatVersion is the current artifact layout version.
	FormatVersion uint16 = 1

	headerSize = len(Magic) + 2 + 8
)

// Codec converts bundles to and from the artifact layout:
//
//	magic [8]byte | version uint16 | xxhash64(payload) uint64 | payload
//
// where payload is the snappy block encoding of the bundle in deterministic CBOR.
// Integers are big endian.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCodec creates a Codec.
func NewCodec() (*Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build cbor encoder")
	}
	dec, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build cbor decoder")
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Encode serializes the bundle. Equal bundles encode to identical bytes.
func (c *Codec) Encode(b *domain.Bundle) ([]byte, error) {
	if b == nil {
		return nil, zerr.Wrap(domain.ErrInvalidBundle, "nil bundle")
	}
	raw, err := c.enc.Marshal(b)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode bundle")
	}
	payload := snappy.Encode(nil, raw)

	out := make([]byte, headerSize, headerSize+len(payload))
	copy(out, Magic)
	binary.BigEndian.PutUint16(out[len(Magic):], FormatVersion)
	binary.BigEndian.PutUint64(out[len(Magic)+2:], xxhash.Sum64(payload))
	return append(out, payload...), nil
}

// Decode parses an artifact and validates the resulting bundle.
// Every failure is reported as domain.ErrCacheCorrupt.
func (c *Codec) Decode(data []byte) (*domain.Bundle, error) {
	if len(data) < headerSize {
		return nil, corrupt("truncated header")
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, corrupt("bad magic")
	}
	if v := binary.BigEndian.Uint16(data[len(Magic):]); v != FormatVersion {
		return nil, zerr.With(corrupt("unsupported format version"), "version", v)
	}

	payload := data[headerSize:]
	if sum := binary.BigEndian.Uint64(data[len(Magic)+2:]); sum != xxhash.Sum64(payload) {
		return nil, corrupt("checksum mismatch")
	}

	raw, err := snappy.Decode(nil, payload)
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrCacheCorrupt, err), "decompress")
	}

	var b domain.Bundle
	if err := c.dec.Unmarshal(raw, &b); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrCacheCorrupt, err), "decode")
	}
	if err := b.Validate(); err != nil {
		return nil, errors.Join(domain.ErrCacheCorrupt, err)
	}
	return &b, nil
}

func corrupt(reason string) error {
	return zerr.Wrap(domain.ErrCacheCorrupt, reason)
}
