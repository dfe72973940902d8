package dispatch

import "fmt"

// Shape is the classification of a Record, determined by its key set.
type Shape int

const (
	// ShapeNone is a Record matching no rule. It's dropped without error.
	ShapeNone Shape = iota
	// ShapeRPCMethod is a JSON-RPC method envelope. Method calls carry no
	// actionable payload, and this shape is reserved with a no-op handler.
	ShapeRPCMethod
	ShapeGREToClient
	ShapeClientToGRE
	ShapeDeckLists
	ShapeDeckSubmit
	ShapePlayerCards
	ShapeDraftStatus
	ShapeInventory
	ShapeRankChange
	ShapeInventoryUpdate
	ShapeRoomStateChanged
	ShapeMatchCreated
)

var shapeNames = [...]string{
	ShapeNone:             "none",
	ShapeRPCMethod:        "rpc_method",
	ShapeGREToClient:      "gre_to_client",
	ShapeClientToGRE:      "client_to_gre",
	ShapeDeckLists:        "deck_lists",
	ShapeDeckSubmit:       "deck_submit",
	ShapePlayerCards:      "player_cards",
	ShapeDraftStatus:      "draft_status",
	ShapeInventory:        "inventory",
	ShapeRankChange:       "rank_change",
	ShapeInventoryUpdate:  "inventory_update",
	ShapeRoomStateChanged: "room_state_changed",
	ShapeMatchCreated:     "match_created",
}

func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// RoomState is the sub-classification of a ShapeRoomStateChanged Record,
// by its `gameRoomInfo.stateType`.
type RoomState int

const (
	// RoomStateOther is any state type not modeled below. It's dropped.
	RoomStateOther RoomState = iota
	// RoomStatePlaying is routed to Parsers.MatchPlaying.
	RoomStatePlaying
	// RoomStateMatchCompleted is reserved. Match results are not parsed and
	// the state is dropped, but it's counted apart from RoomStateOther.
	RoomStateMatchCompleted
)

// ParseRoomState maps a `stateType` value to its RoomState.
func ParseRoomState(stateType string) RoomState {
	switch stateType {
	case "MatchGameRoomStateType_Playing":
		return RoomStatePlaying
	case "MatchGameRoomStateType_MatchCompleted":
		return RoomStateMatchCompleted
	default:
		return RoomStateOther
	}
}

func (s RoomState) String() string {
	switch s {
	case RoomStatePlaying:
		return "playing"
	case RoomStateMatchCompleted:
		return "match_completed"
	default:
		return "other"
	}
}

// GREKind is the classification of a GRE-to-client message by its `type` tag.
type GREKind int

const (
	// GREKindUnknown is a tag which isn't modeled. It's silently ignored.
	GREKindUnknown GREKind = iota
	// GREKindIgnored is a known tag which carries nothing of interest.
	GREKindIgnored
	// GREKindSubmitDeckReq is the sideboarding deck submission request. It's
	// reserved and currently ignored.
	GREKindSubmitDeckReq
	GREKindGameState
	GREKindMulliganReq
)

// ParseGREKind maps a GRE message `type` tag to its GREKind.
func ParseGREKind(tag string) GREKind {
	switch tag {
	case "GREMessageType_UIMessage":
		return GREKindIgnored
	case "GREMessageType_SubmitDeckReq":
		return GREKindSubmitDeckReq
	case "GREMessageType_GameStateMessage", "GREMessageType_QueuedGameStateMessage":
		return GREKindGameState
	case "GREMessageType_MulliganReq":
		return GREKindMulliganReq
	default:
		return GREKindUnknown
	}
}
