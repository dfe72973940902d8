package dispatch

import (
	"github.com/antalos/mtgatracker/record"
	"github.com/gogo/protobuf/proto"
)

// Parsers are the leaf collaborators of the Dispatcher. Each is invoked
// synchronously with the sub-structure of the Record it parses. A returned
// error or a panic is contained by the Dispatcher's Bulkhead.
type Parsers interface {
	// DeckLists parses a `Deck.GetDeckLists` response.
	DeckLists(rec record.Record) error
	// DeckSubmit parses an `Event.DeckSubmit` or `Event.GetPlayerCourse` block.
	DeckSubmit(rec record.Record) error
	// PlayerCards parses a `PlayerInventory.GetPlayerCardsV3` card inventory snapshot.
	PlayerCards(rec record.Record) error
	// DraftStatus parses a `Draft.DraftStatus` or `Draft.MakePick` block.
	DraftStatus(rec record.Record) error
	// PassThrough forwards |rec| under logical |event| name. |owner| is the
	// owning player ID, or empty if the event has no owner.
	PassThrough(event, owner string, rec record.Record) error
	// MatchPlaying parses a game room state change into the Playing state.
	MatchPlaying(rec record.Record) error
	// MatchCreated parses an `Event.MatchCreated` block.
	MatchCreated(rec record.Record) error
	// GameState parses the `gameStateMessage` of a GRE message.
	GameState(gameState record.Record, ts record.Timestamp) error
	// MulliganReq parses a GRE mulligan request message.
	MulliganReq(msg record.Record, ts record.Timestamp) error
	// ClientMessage observes a decoded client-to-match-service message,
	// alongside its raw base64 |payload|.
	ClientMessage(tag string, msg proto.Message, payload string) error
}

// ErrorReporter receives short, human-readable descriptions of contained
// failures. Reporting is best-effort.
type ErrorReporter interface {
	ReportError(message string)
}

// ReporterFunc adapts a function to an ErrorReporter.
type ReporterFunc func(message string)

// ReportError implements ErrorReporter.
func (fn ReporterFunc) ReportError(message string) { fn(message) }
