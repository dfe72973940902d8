package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/antalos/mtgatracker/codecs"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// DecodeError is returned by Reader.Next when a line could not be decoded
// into a Record. The Reader remains usable, and a subsequent call to Next
// continues with the following line.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Err) }

// Cause returns the underlying decoding error.
func (e *DecodeError) Cause() error { return e.Err }

// Reader reads newline-delimited JSON Records. Each non-blank line must hold
// exactly one JSON object.
type Reader struct {
	br     *bufio.Reader
	line   int   // Line number of the last line read.
	offset int64 // Byte offset through the last line read.
}

// NewReader returns a Reader of JSON-lines Records from |r|.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{br: br}
	}
	return &Reader{br: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next Record of the stream. It returns io.EOF when the
// stream is exhausted. A final line which lacks a trailing newline is still
// decoded, as the client may not have finished writing it. Malformed lines
// produce a *DecodeError and do not end the stream.
func (r *Reader) Next() (Record, error) {
	for {
		var line, err = UnpackLine(r.br)

		if err == io.ErrUnexpectedEOF {
			err = nil // Decode the partial final line.
		} else if err != nil {
			return nil, err
		}
		r.line++
		r.offset += int64(len(line))

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var rec, decodeErr = decodeLine(line)
		if decodeErr != nil {
			return nil, &DecodeError{Line: r.line, Err: decodeErr}
		}
		return rec, nil
	}
}

// Line returns the 1-indexed line number of the most recently read line.
func (r *Reader) Line() int { return r.line }

// Offset returns the number of bytes consumed from the stream.
func (r *Reader) Offset() int64 { return r.offset }

func decodeLine(line []byte) (Record, error) {
	var dec = json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	} else if dec.More() {
		return nil, errors.New("unexpected content following JSON object")
	}
	if rec, ok := asRecord(v); ok {
		return rec, nil
	}
	return nil, errors.Errorf("expected a JSON object (got %T)", v)
}

// Open opens the record file at |path| of the Fs, decompressing it with the
// Codec implied by its file extension.
func Open(fs afero.Fs, path string) (io.ReadCloser, error) {
	var f, err = fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	var codec = codecs.CodecForPath(path)

	dec, err := codecs.NewCodecReader(f, codec)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "building %s reader of %s", codec, path)
	}
	return &decompressedFile{Decompressor: dec, file: f}, nil
}

type decompressedFile struct {
	codecs.Decompressor
	file afero.File
}

func (d *decompressedFile) Close() error {
	var err = d.Decompressor.Close()
	if fileErr := d.file.Close(); err == nil {
		err = fileErr
	}
	return err
}
