package dispatch

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/antalos/mtgatracker/record"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
)

// call is an observed invocation of a recordingParsers method.
type call struct {
	Method  string
	Event   string
	Owner   string
	TS      record.Timestamp
	Tag     string
	Payload string
	Rec     record.Record
	Msg     proto.Message
}

// recordingParsers is a Parsers which records its invocations. |fail| is
// consulted before each invocation is recorded: if it returns a non-nil
// error, that error is returned instead.
type recordingParsers struct {
	calls []call
	fail  func(c call) error
}

func (p *recordingParsers) observe(c call) error {
	if p.fail != nil {
		if err := p.fail(c); err != nil {
			return err
		}
	}
	p.calls = append(p.calls, c)
	return nil
}

func (p *recordingParsers) DeckLists(rec record.Record) error {
	return p.observe(call{Method: "DeckLists", Rec: rec})
}
func (p *recordingParsers) DeckSubmit(rec record.Record) error {
	return p.observe(call{Method: "DeckSubmit", Rec: rec})
}
func (p *recordingParsers) PlayerCards(rec record.Record) error {
	return p.observe(call{Method: "PlayerCards", Rec: rec})
}
func (p *recordingParsers) DraftStatus(rec record.Record) error {
	return p.observe(call{Method: "DraftStatus", Rec: rec})
}
func (p *recordingParsers) PassThrough(event, owner string, rec record.Record) error {
	return p.observe(call{Method: "PassThrough", Event: event, Owner: owner, Rec: rec})
}
func (p *recordingParsers) MatchPlaying(rec record.Record) error {
	return p.observe(call{Method: "MatchPlaying", Rec: rec})
}
func (p *recordingParsers) MatchCreated(rec record.Record) error {
	return p.observe(call{Method: "MatchCreated", Rec: rec})
}
func (p *recordingParsers) GameState(gameState record.Record, ts record.Timestamp) error {
	return p.observe(call{Method: "GameState", Rec: gameState, TS: ts})
}
func (p *recordingParsers) MulliganReq(msg record.Record, ts record.Timestamp) error {
	return p.observe(call{Method: "MulliganReq", Rec: msg, TS: ts})
}
func (p *recordingParsers) ClientMessage(tag string, msg proto.Message, payload string) error {
	return p.observe(call{Method: "ClientMessage", Tag: tag, Msg: msg, Payload: payload})
}

func (p *recordingParsers) methods() []string {
	var out []string
	for _, c := range p.calls {
		out = append(out, c.Method)
	}
	return out
}

// reportCollector is an ErrorReporter which collects reported messages.
type reportCollector struct{ messages []string }

func (r *reportCollector) ReportError(message string) { r.messages = append(r.messages, message) }

type fixture struct {
	parsers  *recordingParsers
	reports  *reportCollector
	counter  *ErrorCounter
	dispatch *Dispatcher
}

func newFixture() *fixture {
	var f = &fixture{
		parsers: new(recordingParsers),
		reports: new(reportCollector),
		counter: new(ErrorCounter),
	}
	f.dispatch = NewDispatcher(f.parsers, nil, f.counter, f.reports)
	return f
}

// parseRecord decodes a (possibly multi-line) JSON object fixture the way
// record.Reader does.
func parseRecord(t *testing.T, s string) record.Record {
	var buf bytes.Buffer
	require.NoError(t, json.Compact(&buf, []byte(s)))
	buf.WriteByte('\n')

	var rec, err = record.NewReader(&buf).Next()
	require.NoError(t, err)
	return rec
}
