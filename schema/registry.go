// Package schema holds the binary message schemas carried base64-encoded
// within client-to-match-service records, and the Registry which selects a
// schema by its message type tag.
package schema

import (
	"encoding/base64"
	"reflect"
	"strings"

	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedSchema is the Cause of Decode errors where the message
	// type tag has no registered schema.
	ErrUnsupportedSchema = errors.New("unsupported schema")
	// ErrMalformedPayload is the Cause of Decode errors where the payload is
	// not valid base64, or its bytes are not a valid encoding of the schema.
	ErrMalformedPayload = errors.New("malformed payload")
)

// Registry maps a message type tag to a new, empty instance of its schema.
type Registry interface {
	// New returns a new instance of the |tag| schema, or false if no schema
	// is known for |tag|.
	New(tag string) (proto.Message, bool)
}

// NameRegistry is a Registry mapping tags to message names registered with
// github.com/gogo/protobuf/proto.
type NameRegistry map[string]string

// New implements Registry.
func (r NameRegistry) New(tag string) (proto.Message, bool) {
	var name, ok = r[tag]
	if !ok {
		return nil, false
	}
	var t = proto.MessageType(name)
	if t == nil || t.Kind() != reflect.Ptr {
		return nil, false
	}
	msg, ok := reflect.New(t.Elem()).Interface().(proto.Message)
	return msg, ok
}

// Default is the Registry of messages sent by the client to the match service.
// ClientToGREUIMessage shares the ClientToGREMessage schema.
var Default = NameRegistry{
	"ClientToMatchDoorConnectRequest": "mtga.ClientToMatchDoorConnectRequest",
	"ClientToGREMessage":              "mtga.ClientToGREMessage",
	"ClientToGREUIMessage":            "mtga.ClientToGREMessage",
	"AuthenticateRequest":             "mtga.AuthenticateRequest",
	"CreateMatchGameRoomRequest":      "mtga.CreateMatchGameRoomRequest",
	"EchoRequest":                     "mtga.EchoRequest",
}

// TypeTag returns the schema tag of a `clientToMatchServiceMessageType`,
// which has form "<Namespace>_<TypeName>". The tag is the substring
// following the first '_'.
func TypeTag(messageType string) (string, error) {
	var _, tag, ok = strings.Cut(messageType, "_")
	if !ok || tag == "" {
		return "", errors.WithMessagef(ErrUnsupportedSchema, "message type %q has no type tag", messageType)
	}
	return tag, nil
}

// Decode base64-decodes |payload| and unmarshals it into the schema of the
// Registry selected by the type tag of |messageType|. The returned tag is
// populated whenever it could be determined, even if decoding fails.
func Decode(reg Registry, messageType, payload string) (tag string, msg proto.Message, err error) {
	if tag, err = TypeTag(messageType); err != nil {
		return "", nil, err
	}

	var b []byte
	if b, err = decodeBase64(payload); err != nil {
		return tag, nil, errors.WithMessagef(ErrMalformedPayload, "%s base64: %s", tag, err)
	}

	var ok bool
	if msg, ok = reg.New(tag); !ok {
		return tag, nil, errors.WithMessagef(ErrUnsupportedSchema, "%q", tag)
	}
	if err = proto.Unmarshal(b, msg); err != nil {
		return tag, nil, errors.WithMessagef(ErrMalformedPayload, "%s body: %s", tag, err)
	}
	return tag, msg, nil
}

// decodeBase64 accepts both padded and unpadded standard encodings.
func decodeBase64(s string) ([]byte, error) {
	var b, err = base64.StdEncoding.DecodeString(s)
	if err != nil && !strings.HasSuffix(s, "=") {
		if raw, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
			return raw, nil
		}
	}
	return b, err
}
