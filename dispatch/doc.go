// Package dispatch routes Records read from the client's log to leaf Parsers.
//
// A Record multiplexes three protocol layers: JSON-RPC method envelopes, the
// Game Rules Engine (GRE) event stream directed at the client, and
// client-to-match-service messages carrying base64 protobuf payloads. Other
// records are plain responses identified by a `block_title`. The Dispatcher
// classifies each Record by an ordered list of shape rules, where the first
// matching rule wins. GRE envelopes are descended into and each sub-message is
// dispatched independently. Client-to-match-service payloads are decoded into
// the schema selected by their type tag (see package schema).
//
// Every leaf invocation runs within a Bulkhead: a leaf which returns an error
// or panics is counted, logged with diagnostic context and reported, and
// dispatch continues with the next sibling message or Record.
//
// Dispatch is synchronous. A Record is fully routed, including all of its
// GRE sub-messages in array order, before Dispatch returns.
package dispatch
