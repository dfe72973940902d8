package schema

import (
	"encoding/base64"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeTagCases(t *testing.T) {
	for messageType, expect := range map[string]string{
		"ClientToMatchServiceMessageType_ClientToGREMessage": "ClientToGREMessage",
		"Xyz_EchoRequest": "EchoRequest",
		"A_B_C":           "B_C",
	} {
		var tag, err = TypeTag(messageType)
		assert.NoError(t, err)
		assert.Equal(t, expect, tag)
	}
	for _, messageType := range []string{"", "NoSeparator", "Trailing_"} {
		var _, err = TypeTag(messageType)
		assert.Equal(t, ErrUnsupportedSchema, errors.Cause(err), messageType)
	}
}

func TestDefaultRegistryInstantiatesEachSchema(t *testing.T) {
	for tag, expect := range map[string]proto.Message{
		"ClientToMatchDoorConnectRequest": &ClientToMatchDoorConnectRequest{},
		"ClientToGREMessage":              &ClientToGREMessage{},
		"ClientToGREUIMessage":            &ClientToGREMessage{},
		"AuthenticateRequest":             &AuthenticateRequest{},
		"CreateMatchGameRoomRequest":      &CreateMatchGameRoomRequest{},
		"EchoRequest":                     &EchoRequest{},
	} {
		var msg, ok = Default.New(tag)
		require.True(t, ok, tag)
		assert.IsType(t, expect, msg, tag)
	}
	var _, ok = Default.New("ClientToMatchServiceMessageType")
	assert.False(t, ok)

	// A tag mapped to an unregistered name has no schema.
	_, ok = NameRegistry{"Foo": "mtga.Foo"}.New("Foo")
	assert.False(t, ok)
}

func TestEchoRequestRoundTrip(t *testing.T) {
	var expect = &EchoRequest{EpochMillis: 1551049923000, Message: "ping"}
	var b, err = proto.Marshal(expect)
	require.NoError(t, err)

	tag, msg, err := Decode(Default, "Xyz_EchoRequest", base64.StdEncoding.EncodeToString(b))
	require.NoError(t, err)
	assert.Equal(t, "EchoRequest", tag)
	assert.Equal(t, expect, msg)
	assert.True(t, proto.Equal(expect, msg))

	// Unpadded encodings are also accepted.
	_, msg, err = Decode(Default, "Xyz_EchoRequest", base64.RawStdEncoding.EncodeToString(b))
	require.NoError(t, err)
	assert.Equal(t, expect, msg)
}

func TestClientToGREUIMessageSharesSchema(t *testing.T) {
	var expect = &ClientToGREMessage{
		Type:         ClientMessageType_UIMessage,
		SystemSeatId: 2,
		GameStateId:  41,
		UiMessage:    &UIMessage{SeatIds: []uint32{1, 2}, OnChat: "gg"},
	}
	var b, err = proto.Marshal(expect)
	require.NoError(t, err)
	var payload = base64.StdEncoding.EncodeToString(b)

	for _, messageType := range []string{
		"ClientToMatchServiceMessageType_ClientToGREMessage",
		"ClientToMatchServiceMessageType_ClientToGREUIMessage",
	} {
		var _, msg, err = Decode(Default, messageType, payload)
		require.NoError(t, err)
		assert.Equal(t, expect, msg)
		assert.Contains(t, msg.String(), "ClientMessageType_UIMessage")
	}
}

func TestDecodeErrorCases(t *testing.T) {
	var echo, _ = proto.Marshal(&EchoRequest{Message: "hi"})

	// Unknown tag.
	var tag, msg, err = Decode(Default, "ClientToMatchServiceMessageType_SomethingNew",
		base64.StdEncoding.EncodeToString(echo))
	assert.Equal(t, "SomethingNew", tag)
	assert.Nil(t, msg)
	assert.Equal(t, ErrUnsupportedSchema, errors.Cause(err))
	assert.EqualError(t, err, `"SomethingNew": unsupported schema`)

	// Malformed base64.
	_, _, err = Decode(Default, "Xyz_EchoRequest", "not*base64!")
	assert.Equal(t, ErrMalformedPayload, errors.Cause(err))
	assert.Regexp(t, "^EchoRequest base64: illegal base64 data", err.Error())

	// Truncated body: field 1 claims five bytes but only one follows.
	_, _, err = Decode(Default, "Xyz_AuthenticateRequest",
		base64.StdEncoding.EncodeToString([]byte{0x0a, 0x05, 'a'}))
	assert.Equal(t, ErrMalformedPayload, errors.Cause(err))
	assert.Regexp(t, "^AuthenticateRequest body: ", err.Error())

	// No tag separator.
	_, _, err = Decode(Default, "EchoRequest", "")
	assert.Equal(t, ErrUnsupportedSchema, errors.Cause(err))
}
