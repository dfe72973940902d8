package sink

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/antalos/mtgatracker/dispatch"
	"github.com/antalos/mtgatracker/record"
	"github.com/antalos/mtgatracker/schema"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	var ev = NewEvents(&buf)

	require.NoError(t, ev.PassThrough("rank_change", "p1", record.Record{"block_title": "Rank.Updated"}))
	require.NoError(t, ev.GameState(record.Record{"gameStateId": 7}, record.Timestamp("1234")))
	require.NoError(t, ev.MulliganReq(record.Record{"type": "GREMessageType_MulliganReq"}, record.NoTimestamp))
	require.NoError(t, ev.ClientMessage("EchoRequest", &schema.EchoRequest{Message: "hi"}, "EgJoaQ=="))
	require.NoError(t, ev.GameState(record.Record{"gameStateId": 8}, record.NoTimestamp))

	assert.Equal(t, "", buf.String()) // Not yet flushed.
	require.NoError(t, ev.Flush())

	var lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, `{"event":"rank_change","owner":"p1","data":{"block_title":"Rank.Updated"}}`, lines[0])
	assert.Equal(t, `{"event":"game_state","timestamp":"1234","data":{"gameStateId":7}}`, lines[1])
	assert.Equal(t, `{"event":"mulligan_req","data":{"type":"GREMessageType_MulliganReq"}}`, lines[2])
	assert.Equal(t, `{"event":"game_state","data":{"gameStateId":8}}`, lines[4])

	var client Event
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &client))
	assert.Equal(t, "client_message", client.Event)
	assert.Equal(t, "EchoRequest", client.Tag)
	assert.Equal(t, "EgJoaQ==", client.Payload)
	assert.Contains(t, client.Message, `message:"hi"`)

	assert.Equal(t, []Count{
		{Event: "game_state", Count: 2},
		{Event: "client_message", Count: 1},
		{Event: "mulligan_req", Count: 1},
		{Event: "rank_change", Count: 1},
	}, ev.Counts())
}

func TestEventsAsDispatcherParsers(t *testing.T) {
	var buf bytes.Buffer
	var ev = NewEvents(&buf)
	var d = dispatch.NewDispatcher(ev, nil, nil, nil)

	d.Dispatch(record.Record{"block_title": "Inventory.Updated", "delta": "x"})
	d.Dispatch(record.Record{"block_title": "Event.MatchCreated"})
	d.Dispatch(record.Record{"foo": 1})
	require.NoError(t, ev.Flush())

	assert.Equal(t,
		`{"event":"inventory_update","data":{"block_title":"Inventory.Updated","delta":"x"}}`+"\n"+
			`{"event":"match_created","data":{"block_title":"Event.MatchCreated"}}`+"\n",
		buf.String())
}

func TestEventsEncodeErrorIsReturned(t *testing.T) {
	var ev = NewEvents(new(bytes.Buffer))
	var err = ev.DeckLists(record.Record{"bad": make(chan int)})
	assert.EqualError(t, err, "json: unsupported type: chan int")
	assert.Empty(t, ev.Counts())
}

func TestReporterRetainsRecentReports(t *testing.T) {
	var buf bytes.Buffer
	var r = NewReporter(&buf, 2)
	var id = uuid.New()

	r.ReportError("one")
	r.ReportFault("two", &dispatch.Fault{Incident: id, Leaf: dispatch.LeafGameState, Err: errors.New("x")})
	r.ReportError("three")

	assert.Equal(t, 3, r.Total())
	assert.Equal(t, []Report{
		{Message: "two", Leaf: "game_state", Incident: id.String()},
		{Message: "three"},
	}, r.Recent())
	assert.Equal(t, "one\ntwo (incident "+id.String()+")\nthree\n", buf.String())

	// A nil Writer and zero limit only count.
	r = NewReporter(nil, 0)
	r.ReportError("four")
	assert.Equal(t, 1, r.Total())
	assert.Empty(t, r.Recent())
}
