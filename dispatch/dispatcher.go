package dispatch

import (
	"github.com/antalos/mtgatracker/metrics"
	"github.com/antalos/mtgatracker/record"
	"github.com/antalos/mtgatracker/schema"
	log "github.com/sirupsen/logrus"
)

// Dispatcher classifies and routes Records to Parsers. It's the sole entry
// point of the package. A Dispatcher is not safe for concurrent use: Records
// of a stream must be dispatched one at a time, in order.
type Dispatcher struct {
	parsers  Parsers
	registry schema.Registry
	bulkhead Bulkhead
}

// NewDispatcher returns a Dispatcher which routes to |parsers|, decodes
// client-to-match-service payloads using |registry|, and counts and reports
// contained failures to |counter| and |reporter|. If |registry| is nil,
// schema.Default is used. If |counter| is nil, a new ErrorCounter is used.
// |reporter| may be nil.
func NewDispatcher(parsers Parsers, registry schema.Registry, counter *ErrorCounter, reporter ErrorReporter) *Dispatcher {
	if registry == nil {
		registry = schema.Default
	}
	if counter == nil {
		counter = new(ErrorCounter)
	}
	return &Dispatcher{
		parsers:  parsers,
		registry: registry,
		bulkhead: Bulkhead{Counter: counter, Reporter: reporter},
	}
}

// Dispatch classifies |rec| and routes it to the handler of its Shape, which
// is returned. A Record of ShapeNone is dropped. Dispatch never panics due to
// a Record's content or a failing leaf Parser.
func (d *Dispatcher) Dispatch(rec record.Record) Shape {
	var shape = ShapeNone
	var r = classify(rec)

	if r != nil {
		shape = r.shape
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.WithFields(log.Fields{
			"seq":     rec["block_title_sequence"],
			"logLine": rec["log_line"],
			"shape":   shape,
		}).Trace("dispatching record")
	}
	metrics.RecordsDispatchedTotal.WithLabelValues(shape.String()).Inc()

	if r != nil {
		r.handle(d, rec)
	}
	return shape
}

// Errors returns the number of failures contained by the Dispatcher's
// ErrorCounter, which may be shared with other Dispatchers.
func (d *Dispatcher) Errors() int64 { return d.bulkhead.Counter.Count() }

// dispatchRPCMethod handles ShapeRPCMethod. JSON-RPC method calls are
// metadata about requests the client issued; their responses are handled by
// the response shapes.
func (d *Dispatcher) dispatchRPCMethod(rec record.Record) {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.WithField("method", rec["method"]).Trace("ignoring jsonrpc method")
	}
}

// dispatchRoomState handles ShapeRoomStateChanged by sub-classifying the
// Record's `gameRoomInfo.stateType`.
func (d *Dispatcher) dispatchRoomState(rec record.Record) {
	d.bulkhead.Run(LeafRoomState, func() error {
		var info, err = rec.Path("matchGameRoomStateChangedEvent", "gameRoomInfo")
		if err != nil {
			return err
		}
		stateType, err := info.MustString("stateType")
		if err != nil {
			return err
		}
		var state = ParseRoomState(stateType)
		metrics.RoomStatesTotal.WithLabelValues(state.String()).Inc()

		switch state {
		case RoomStatePlaying:
			return d.parsers.MatchPlaying(rec)
		case RoomStateMatchCompleted:
			// Reserved. Match results are not parsed.
			log.WithField("stateType", stateType).Debug("match completed state not parsed")
		}
		return nil
	})
}
