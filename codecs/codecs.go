// Package codecs maps record file encodings to streaming decompressors and
// compressors. Archived client logs are commonly gzip'd, but snappy and
// zstandard archives are also understood.
package codecs

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
)

// Codec is a compression encoding of a record file.
type Codec int

const (
	NONE Codec = iota
	GZIP
	SNAPPY
	ZSTANDARD
)

func (c Codec) String() string {
	switch c {
	case NONE:
		return "NONE"
	case GZIP:
		return "GZIP"
	case SNAPPY:
		return "SNAPPY"
	case ZSTANDARD:
		return "ZSTANDARD"
	default:
		return fmt.Sprintf("Codec(%d)", int(c))
	}
}

// ParseCodec parses a Codec from its String form, ignoring case.
func ParseCodec(s string) (Codec, error) {
	switch strings.ToUpper(s) {
	case "", "NONE":
		return NONE, nil
	case "GZIP":
		return GZIP, nil
	case "SNAPPY":
		return SNAPPY, nil
	case "ZSTANDARD", "ZSTD":
		return ZSTANDARD, nil
	default:
		return NONE, fmt.Errorf("unknown codec %q", s)
	}
}

// CodecForPath returns the Codec implied by the file extension of |path|.
// Unrecognized extensions map to NONE.
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return GZIP
	case ".sz", ".snappy":
		return SNAPPY
	case ".zst", ".zstd":
		return ZSTANDARD
	default:
		return NONE
	}
}

// Decompressor is a ReadCloser where Close closes and releases Decompressor
// state, but does not Close or affect the underlying Reader.
type Decompressor io.ReadCloser

// Compressor is a WriteCloser where Close closes and releases Compressor
// state, potentially flushing final content to the underlying Writer,
// but does not Close or otherwise affect the underlying Writer.
type Compressor io.WriteCloser

// NewCodecReader returns a Decompressor of the Reader encoded with Codec.
func NewCodecReader(r io.Reader, codec Codec) (Decompressor, error) {
	switch codec {
	case NONE:
		return io.NopCloser(r), nil
	case GZIP:
		return gzip.NewReader(r)
	case SNAPPY:
		return io.NopCloser(snappy.NewReader(r)), nil
	case ZSTANDARD:
		return zstdNewReader(r)
	default:
		return nil, fmt.Errorf("unsupported codec %s", codec.String())
	}
}

// NewCodecWriter returns a Compressor wrapping the Writer encoding with Codec.
func NewCodecWriter(w io.Writer, codec Codec) (Compressor, error) {
	switch codec {
	case NONE:
		return nopWriteCloser{w}, nil
	case GZIP:
		return gzip.NewWriter(w), nil
	case SNAPPY:
		return snappy.NewBufferedWriter(w), nil
	case ZSTANDARD:
		return zstdNewWriter(w)
	default:
		return nil, fmt.Errorf("unsupported codec %s", codec.String())
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

var (
	zstdNewReader = func(io.Reader) (io.ReadCloser, error) {
		return nil, fmt.Errorf("ZSTANDARD was not enabled at compile time")
	}
	zstdNewWriter = func(io.Writer) (io.WriteCloser, error) {
		return nil, fmt.Errorf("ZSTANDARD was not enabled at compile time")
	}
)
