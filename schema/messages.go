package schema

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
)

// Message types of messages.proto. Field tags follow the protoc-gen-gogo
// conventions, which allows the reflection-driven codecs of
// github.com/gogo/protobuf/proto to marshal and unmarshal them.

// ClientMessageType enumerates the kinds of ClientToGREMessage.
type ClientMessageType int32

const (
	ClientMessageType_None              ClientMessageType = 0
	ClientMessageType_ConcedeReq        ClientMessageType = 3
	ClientMessageType_ConnectReq        ClientMessageType = 7
	ClientMessageType_MulliganResp      ClientMessageType = 19
	ClientMessageType_PerformActionResp ClientMessageType = 23
	ClientMessageType_SubmitDeckResp    ClientMessageType = 33
	ClientMessageType_UIMessage         ClientMessageType = 35
)

var ClientMessageType_name = map[int32]string{
	0:  "ClientMessageType_None",
	3:  "ClientMessageType_ConcedeReq",
	7:  "ClientMessageType_ConnectReq",
	19: "ClientMessageType_MulliganResp",
	23: "ClientMessageType_PerformActionResp",
	33: "ClientMessageType_SubmitDeckResp",
	35: "ClientMessageType_UIMessage",
}

var ClientMessageType_value = map[string]int32{
	"ClientMessageType_None":              0,
	"ClientMessageType_ConcedeReq":        3,
	"ClientMessageType_ConnectReq":        7,
	"ClientMessageType_MulliganResp":      19,
	"ClientMessageType_PerformActionResp": 23,
	"ClientMessageType_SubmitDeckResp":    33,
	"ClientMessageType_UIMessage":         35,
}

func (x ClientMessageType) String() string {
	if s, ok := ClientMessageType_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("%d", int32(x))
}

type ClientToMatchDoorConnectRequest struct {
	McFabricId              string `protobuf:"bytes,1,opt,name=mc_fabric_id,json=mcFabricId,proto3" json:"mc_fabric_id,omitempty"`
	ClientToGreMessageBytes []byte `protobuf:"bytes,2,opt,name=client_to_gre_message_bytes,json=clientToGreMessageBytes,proto3" json:"client_to_gre_message_bytes,omitempty"`
	MatchId                 string `protobuf:"bytes,3,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
}

func (m *ClientToMatchDoorConnectRequest) Reset()         { *m = ClientToMatchDoorConnectRequest{} }
func (m *ClientToMatchDoorConnectRequest) String() string { return proto.CompactTextString(m) }
func (*ClientToMatchDoorConnectRequest) ProtoMessage()    {}

type UIMessage struct {
	SeatIds []uint32 `protobuf:"varint,1,rep,packed,name=seat_ids,json=seatIds,proto3" json:"seat_ids,omitempty"`
	OnChat  string   `protobuf:"bytes,2,opt,name=on_chat,json=onChat,proto3" json:"on_chat,omitempty"`
}

func (m *UIMessage) Reset()         { *m = UIMessage{} }
func (m *UIMessage) String() string { return proto.CompactTextString(m) }
func (*UIMessage) ProtoMessage()    {}

type ClientToGREMessage struct {
	Type         ClientMessageType `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	SystemSeatId uint32            `protobuf:"varint,2,opt,name=system_seat_id,json=systemSeatId,proto3" json:"system_seat_id,omitempty"`
	GameStateId  uint32            `protobuf:"varint,3,opt,name=game_state_id,json=gameStateId,proto3" json:"game_state_id,omitempty"`
	RespId       uint32            `protobuf:"varint,4,opt,name=resp_id,json=respId,proto3" json:"resp_id,omitempty"`
	UiMessage    *UIMessage        `protobuf:"bytes,5,opt,name=ui_message,json=uiMessage,proto3" json:"ui_message,omitempty"`
}

func (m *ClientToGREMessage) Reset()         { *m = ClientToGREMessage{} }
func (m *ClientToGREMessage) String() string { return proto.CompactTextString(m) }
func (*ClientToGREMessage) ProtoMessage()    {}

type AuthenticateRequest struct {
	ClientId      string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	PlayerName    string `protobuf:"bytes,2,opt,name=player_name,json=playerName,proto3" json:"player_name,omitempty"`
	SessionTicket string `protobuf:"bytes,3,opt,name=session_ticket,json=sessionTicket,proto3" json:"session_ticket,omitempty"`
}

func (m *AuthenticateRequest) Reset()         { *m = AuthenticateRequest{} }
func (m *AuthenticateRequest) String() string { return proto.CompactTextString(m) }
func (*AuthenticateRequest) ProtoMessage()    {}

type CreateMatchGameRoomRequest struct {
	MatchId   string   `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	EventId   string   `protobuf:"bytes,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	PlayerIds []string `protobuf:"bytes,3,rep,name=player_ids,json=playerIds,proto3" json:"player_ids,omitempty"`
}

func (m *CreateMatchGameRoomRequest) Reset()         { *m = CreateMatchGameRoomRequest{} }
func (m *CreateMatchGameRoomRequest) String() string { return proto.CompactTextString(m) }
func (*CreateMatchGameRoomRequest) ProtoMessage()    {}

type EchoRequest struct {
	EpochMillis int64  `protobuf:"varint,1,opt,name=epoch_millis,json=epochMillis,proto3" json:"epoch_millis,omitempty"`
	Message     string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *EchoRequest) Reset()         { *m = EchoRequest{} }
func (m *EchoRequest) String() string { return proto.CompactTextString(m) }
func (*EchoRequest) ProtoMessage()    {}

func init() {
	proto.RegisterEnum("mtga.ClientMessageType", ClientMessageType_name, ClientMessageType_value)
	proto.RegisterType((*ClientToMatchDoorConnectRequest)(nil), "mtga.ClientToMatchDoorConnectRequest")
	proto.RegisterType((*UIMessage)(nil), "mtga.UIMessage")
	proto.RegisterType((*ClientToGREMessage)(nil), "mtga.ClientToGREMessage")
	proto.RegisterType((*AuthenticateRequest)(nil), "mtga.AuthenticateRequest")
	proto.RegisterType((*CreateMatchGameRoomRequest)(nil), "mtga.CreateMatchGameRoomRequest")
	proto.RegisterType((*EchoRequest)(nil), "mtga.EchoRequest")
}
