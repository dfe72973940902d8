package record

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/antalos/mtgatracker/codecs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderDecodesLinesAndRecoversFromMalformed(t *testing.T) {
	var fixture = `{"block_title":"Rank.Updated","playerId":"p1"}
` + "\r\n" + `   
{"block_title": "missing quote}
[1, 2, 3]
{"a":1} {"b":2}
{"foo": 1, "n": 12.5}
{"partial": "final line"}`

	var r = NewReader(strings.NewReader(fixture))

	var rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, Record{"block_title": "Rank.Updated", "playerId": "p1"}, rec)
	assert.Equal(t, 1, r.Line())

	// Blank lines are skipped. The malformed line is reported with its number.
	_, err = r.Next()
	require.IsType(t, &DecodeError{}, err)
	assert.Equal(t, 4, err.(*DecodeError).Line)
	assert.Regexp(t, "^line 4: unexpected EOF", err.Error())

	_, err = r.Next()
	assert.EqualError(t, err, "line 5: expected a JSON object (got []interface {})")

	_, err = r.Next()
	assert.EqualError(t, err, "line 6: unexpected content following JSON object")

	// The stream continues after errors.
	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "12.5", rec["n"].(interface{ String() string }).String())

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "final line", rec["partial"])
	assert.Equal(t, int64(len(fixture)), r.Offset())

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderHandlesLinesLargerThanBuffer(t *testing.T) {
	var big = strings.Repeat("x", 100)
	var fixture = `{"big":"` + big + `"}` + "\n" + `{"small":1}` + "\n"

	var r = NewReader(bufio.NewReaderSize(strings.NewReader(fixture), 16))

	var rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, big, rec["big"])

	rec, err = r.Next()
	require.NoError(t, err)
	assert.True(t, rec.Has("small"))

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestOpenSelectsCodecByExtension(t *testing.T) {
	var fs = afero.NewMemMapFs()
	var content = `{"block_title":"Inventory.Updated"}` + "\n"

	var buf bytes.Buffer
	var w, err = codecs.NewCodecWriter(&buf, codecs.GZIP)
	require.NoError(t, err)
	_, _ = w.Write([]byte(content))
	require.NoError(t, w.Close())

	require.NoError(t, afero.WriteFile(fs, "/logs/records.jsonl.gz", buf.Bytes(), 0644))
	require.NoError(t, afero.WriteFile(fs, "/logs/records.jsonl", []byte(content), 0644))

	for _, path := range []string{"/logs/records.jsonl.gz", "/logs/records.jsonl"} {
		var rc, err = Open(fs, path)
		require.NoError(t, err, path)

		rec, err := NewReader(rc).Next()
		require.NoError(t, err, path)
		assert.Equal(t, Record{"block_title": "Inventory.Updated"}, rec)
		assert.NoError(t, rc.Close())
	}

	_, err = Open(fs, "/logs/missing.jsonl")
	assert.Regexp(t, "^opening /logs/missing.jsonl: ", err.Error())
}

func TestLineUnpackingCases(t *testing.T) {
	const bsize = 16
	var buf = bytes.NewBufferString("a line\n" + strings.Repeat("x", bsize*3/2) + "\nextra")
	var br = bufio.NewReaderSize(buf, bsize)

	var p, _ = br.Peek(1)

	// Case 1: line fits in buffer.
	var line, err = UnpackLine(br)
	assert.NoError(t, err)
	assert.Equal(t, cap(p), cap(line)) // |line| references internal buffer.

	// Case 2: line doesn't fit in buffer.
	line, err = UnpackLine(br)
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", bsize*3/2)+"\n", string(line))
	assert.NotEqual(t, cap(p), cap(line)) // |line| *does not* reference internal buffer.

	// Case 3: EOF without newline and read content is mapped to ErrUnexpectedEOF.
	line, err = UnpackLine(br)
	assert.Equal(t, io.ErrUnexpectedEOF, err)
	assert.Equal(t, "extra", string(line))

	// Case 4: EOF without any read content is passed through.
	line, err = UnpackLine(br)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "", string(line))
}

func stringsReader(s string) io.Reader { return strings.NewReader(s) }
