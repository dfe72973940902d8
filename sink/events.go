// Package sink provides collaborators of dispatch.Dispatcher for programs
// which observe a record stream: Events writes each leaf invocation as a JSON
// line, and Reporter surfaces reported errors.
package sink

import (
	"bufio"
	"encoding/json"
	"io"
	"sort"

	"github.com/antalos/mtgatracker/record"
	"github.com/gogo/protobuf/proto"
)

// Event is the JSON-lines form of a leaf invocation.
type Event struct {
	Event     string        `json:"event"`
	Owner     string        `json:"owner,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
	Tag       string        `json:"tag,omitempty"`
	Message   string        `json:"message,omitempty"`
	Payload   string        `json:"payload,omitempty"`
	Data      record.Record `json:"data,omitempty"`
}

// Events is a dispatch.Parsers which writes each invocation as an Event to
// its Writer, and tallies written Events by name. Writes are buffered until
// Flush.
type Events struct {
	bw     *bufio.Writer
	enc    *json.Encoder
	counts map[string]int
}

// NewEvents returns Events which write to |w|.
func NewEvents(w io.Writer) *Events {
	var bw = bufio.NewWriter(w)
	return &Events{
		bw:     bw,
		enc:    json.NewEncoder(bw),
		counts: make(map[string]int),
	}
}

func (e *Events) DeckLists(rec record.Record) error {
	return e.write(Event{Event: "deck_lists", Data: rec})
}

func (e *Events) DeckSubmit(rec record.Record) error {
	return e.write(Event{Event: "deck_submit", Data: rec})
}

func (e *Events) PlayerCards(rec record.Record) error {
	return e.write(Event{Event: "player_cards", Data: rec})
}

func (e *Events) DraftStatus(rec record.Record) error {
	return e.write(Event{Event: "draft_status", Data: rec})
}

func (e *Events) PassThrough(event, owner string, rec record.Record) error {
	return e.write(Event{Event: event, Owner: owner, Data: rec})
}

func (e *Events) MatchPlaying(rec record.Record) error {
	return e.write(Event{Event: "match_playing", Data: rec})
}

func (e *Events) MatchCreated(rec record.Record) error {
	return e.write(Event{Event: "match_created", Data: rec})
}

func (e *Events) GameState(gameState record.Record, ts record.Timestamp) error {
	return e.write(Event{Event: "game_state", Timestamp: string(ts), Data: gameState})
}

func (e *Events) MulliganReq(msg record.Record, ts record.Timestamp) error {
	return e.write(Event{Event: "mulligan_req", Timestamp: string(ts), Data: msg})
}

func (e *Events) ClientMessage(tag string, msg proto.Message, payload string) error {
	return e.write(Event{
		Event:   "client_message",
		Tag:     tag,
		Message: proto.CompactTextString(msg),
		Payload: payload,
	})
}

// Flush buffered Events to the underlying Writer.
func (e *Events) Flush() error { return e.bw.Flush() }

// Count is a tally of written Events of a name.
type Count struct {
	Event string
	Count int
}

// Counts returns tallies of written Events, ordered on descending count and
// then on name.
func (e *Events) Counts() []Count {
	var out = make([]Count, 0, len(e.counts))
	for name, n := range e.counts {
		out = append(out, Count{Event: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Event < out[j].Event
	})
	return out
}

func (e *Events) write(ev Event) error {
	if err := e.enc.Encode(ev); err != nil {
		return err
	}
	e.counts[ev.Event]++
	return nil
}
