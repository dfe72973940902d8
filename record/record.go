// Package record defines the Record, the unit of input to the dispatcher,
// and a Reader of JSON-lines record files. A Record is one JSON object
// extracted from the client's log output. Its shape is open: beyond the few
// keys used for classification, no field is guaranteed to be present.
package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Record is an open mapping of top-level keys to decoded JSON values.
// Nested objects are map[string]interface{} (see AsRecord), nested arrays
// are []interface{}, and numbers are json.Number.
type Record map[string]interface{}

// ErrMissingField is the Cause of errors returned by Record accessors when
// a required field is absent or has an unexpected type.
var ErrMissingField = errors.New("missing field")

// Timestamp is the textual timestamp carried by a Record. NoTimestamp is the
// explicit "absent" value.
type Timestamp string

// NoTimestamp is passed to leaf parsers when the enclosing Record has no
// `timestamp` field.
const NoTimestamp Timestamp = ""

// Has returns whether the Record has top-level |key|.
func (r Record) Has(key string) bool {
	var _, ok = r[key]
	return ok
}

// String returns the string value of |key|, and whether it was present as a string.
func (r Record) String(key string) (string, bool) {
	var s, ok = r[key].(string)
	return s, ok
}

// Object returns the nested Record at |key|, and whether it was present as an object.
func (r Record) Object(key string) (Record, bool) {
	return asRecord(r[key])
}

// Array returns the nested array at |key|, and whether it was present as an array.
func (r Record) Array(key string) ([]interface{}, bool) {
	var a, ok = r[key].([]interface{})
	return a, ok
}

// Timestamp returns the Record's `timestamp` field in textual form, or
// NoTimestamp if it's not present. Client logs carry timestamps both as
// strings and as bare integers.
func (r Record) Timestamp() Timestamp {
	switch v := r["timestamp"].(type) {
	case nil:
		return NoTimestamp
	case string:
		return Timestamp(v)
	case json.Number:
		return Timestamp(v.String())
	default:
		return Timestamp(fmt.Sprint(v))
	}
}

// MustObject returns the nested Record at |key|, or an error having Cause
// ErrMissingField.
func (r Record) MustObject(key string) (Record, error) {
	if o, ok := r.Object(key); ok {
		return o, nil
	}
	return nil, errors.WithMessagef(ErrMissingField, "%q (expected object)", key)
}

// MustArray returns the nested array at |key|, or an error having Cause
// ErrMissingField.
func (r Record) MustArray(key string) ([]interface{}, error) {
	if a, ok := r.Array(key); ok {
		return a, nil
	}
	return nil, errors.WithMessagef(ErrMissingField, "%q (expected array)", key)
}

// MustString returns the string at |key|, or an error having Cause
// ErrMissingField.
func (r Record) MustString(key string) (string, error) {
	if s, ok := r.String(key); ok {
		return s, nil
	}
	return "", errors.WithMessagef(ErrMissingField, "%q (expected string)", key)
}

// Path descends through nested objects named by |keys| and returns the
// Record found at the end. Errors name the full dotted path walked so far.
func (r Record) Path(keys ...string) (Record, error) {
	var cur = r
	for i, key := range keys {
		var next, ok = cur.Object(key)
		if !ok {
			return nil, errors.WithMessagef(ErrMissingField, "%q (expected object)", strings.Join(keys[:i+1], "."))
		}
		cur = next
	}
	return cur, nil
}

// AsRecord converts a decoded array element into a Record, if it is an object.
func AsRecord(v interface{}) (Record, bool) { return asRecord(v) }

func asRecord(v interface{}) (Record, bool) {
	switch o := v.(type) {
	case Record:
		return o, true
	case map[string]interface{}:
		return Record(o), true
	default:
		return nil, false
	}
}
