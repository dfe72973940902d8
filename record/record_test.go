package record

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAccessors(t *testing.T) {
	var rec = mustDecode(t, `{
		"block_title": "Rank.Updated",
		"playerId": "p1",
		"count": 3,
		"greToClientEvent": {"greToClientMessages": [{"type": "GREMessageType_UIMessage"}]}
	}`)

	assert.True(t, rec.Has("block_title"))
	assert.False(t, rec.Has("nope"))

	var s, ok = rec.String("playerId")
	assert.True(t, ok)
	assert.Equal(t, "p1", s)

	_, ok = rec.String("count") // Not a string.
	assert.False(t, ok)

	gre, ok := rec.Object("greToClientEvent")
	require.True(t, ok)
	msgs, ok := gre.Array("greToClientMessages")
	require.True(t, ok)
	require.Len(t, msgs, 1)

	msg, ok := AsRecord(msgs[0])
	require.True(t, ok)
	assert.Equal(t, "GREMessageType_UIMessage", msg["type"])

	_, ok = AsRecord("a string")
	assert.False(t, ok)
}

func TestRecordMustAccessorErrors(t *testing.T) {
	var rec = mustDecode(t, `{"a": {"b": {"c": "d"}}, "s": 1}`)

	var o, err = rec.Path("a", "b")
	assert.NoError(t, err)
	assert.Equal(t, "d", o["c"])

	_, err = rec.Path("a", "x", "y")
	assert.EqualError(t, err, `"a.x" (expected object): missing field`)
	assert.Equal(t, ErrMissingField, errors.Cause(err))

	_, err = rec.MustString("s")
	assert.EqualError(t, err, `"s" (expected string): missing field`)
	_, err = rec.MustArray("a")
	assert.EqualError(t, err, `"a" (expected array): missing field`)
	_, err = rec.MustObject("s")
	assert.Equal(t, ErrMissingField, errors.Cause(err))
}

func TestRecordTimestampForms(t *testing.T) {
	assert.Equal(t, NoTimestamp, Record{}.Timestamp())
	assert.Equal(t, Timestamp("636867000000000000"),
		mustDecode(t, `{"timestamp": "636867000000000000"}`).Timestamp())
	assert.Equal(t, Timestamp("636867000000000001"),
		mustDecode(t, `{"timestamp": 636867000000000001}`).Timestamp())
	assert.Equal(t, Timestamp("true"), Record{"timestamp": true}.Timestamp())
}

func mustDecode(t *testing.T, s string) Record {
	var v map[string]interface{}
	var dec = json.NewDecoder(stringsReader(s))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&v))
	return Record(v)
}
