package dispatch

import (
	"github.com/antalos/mtgatracker/record"
)

// rule pairs a shape predicate with the handler of matching Records.
type rule struct {
	shape  Shape
	match  func(record.Record) bool
	handle func(*Dispatcher, record.Record)
}

// rules are evaluated in order, and the first matching rule wins. Shapes are
// not disjoint: a GRE envelope may also carry a `block_title`, and a
// `Deck.GetDeckLists` response may carry any title. Order is significant.
var rules = []rule{
	{ShapeRPCMethod, hasKeys("method", "jsonrpc"), (*Dispatcher).dispatchRPCMethod},
	{ShapeGREToClient, hasKeys("greToClientEvent"), (*Dispatcher).dispatchGREToClient},
	{ShapeClientToGRE, hasKeys("clientToMatchServiceMessageType"), (*Dispatcher).dispatchClientToGRE},
	{ShapeDeckLists, hasKeys("Deck.GetDeckLists"), leaf(LeafDeckLists, Parsers.DeckLists)},
	{ShapeDeckSubmit, blockTitleIn("Event.DeckSubmit", "Event.GetPlayerCourse"), leaf(LeafDeckSubmit, Parsers.DeckSubmit)},
	{ShapePlayerCards, blockTitleIn("PlayerInventory.GetPlayerCardsV3"), leaf(LeafPlayerCards, Parsers.PlayerCards)},
	{ShapeDraftStatus, blockTitleIn("Draft.DraftStatus", "Draft.MakePick"), leaf(LeafDraftStatus, Parsers.DraftStatus)},
	{ShapeInventory, blockTitleIn("PlayerInventory.GetPlayerInventory"), passThrough("inventory", true)},
	{ShapeRankChange, blockTitleIn("Rank.Updated"), passThrough("rank_change", true)},
	{ShapeInventoryUpdate, blockTitleIn("Inventory.Updated"), passThrough("inventory_update", false)},
	{ShapeRoomStateChanged, hasKeys("matchGameRoomStateChangedEvent"), (*Dispatcher).dispatchRoomState},
	{ShapeMatchCreated, blockTitleIn("Event.MatchCreated"), leaf(LeafMatchCreated, Parsers.MatchCreated)},
}

// Classify returns the Shape of the first rule matching |rec|, or ShapeNone.
func Classify(rec record.Record) Shape {
	if r := classify(rec); r != nil {
		return r.shape
	}
	return ShapeNone
}

func classify(rec record.Record) *rule {
	for i := range rules {
		if rules[i].match(rec) {
			return &rules[i]
		}
	}
	return nil
}

// hasKeys matches Records having all |keys|.
func hasKeys(keys ...string) func(record.Record) bool {
	return func(rec record.Record) bool {
		for _, k := range keys {
			if !rec.Has(k) {
				return false
			}
		}
		return true
	}
}

// blockTitleIn matches Records having a `block_title` equal to one of |titles|.
func blockTitleIn(titles ...string) func(record.Record) bool {
	return func(rec record.Record) bool {
		var title, ok = rec.String("block_title")
		if !ok {
			return false
		}
		for _, t := range titles {
			if title == t {
				return true
			}
		}
		return false
	}
}

// leaf handles a Record by passing it whole to a Parsers method.
func leaf(l Leaf, fn func(Parsers, record.Record) error) func(*Dispatcher, record.Record) {
	return func(d *Dispatcher, rec record.Record) {
		d.bulkhead.Run(l, func() error { return fn(d.parsers, rec) })
	}
}

// passThrough handles a Record by forwarding it to Parsers.PassThrough as
// |event|. If |owned|, the Record's `playerId` is required and is its owner.
func passThrough(event string, owned bool) func(*Dispatcher, record.Record) {
	return func(d *Dispatcher, rec record.Record) {
		d.bulkhead.Run(LeafPassThrough, func() error {
			var owner string
			if owned {
				var err error
				if owner, err = rec.MustString("playerId"); err != nil {
					return err
				}
			}
			return d.parsers.PassThrough(event, owner, rec)
		})
	}
}
