package dispatch

import (
	"github.com/antalos/mtgatracker/metrics"
	"github.com/antalos/mtgatracker/record"
	"github.com/pkg/errors"
)

// dispatchGREToClient handles ShapeGREToClient. Each of the envelope's
// `greToClientMessages` is dispatched independently and in order: a failure
// of one message is contained and doesn't affect its siblings.
func (d *Dispatcher) dispatchGREToClient(rec record.Record) {
	var messages []interface{}

	if fault := d.bulkhead.Run(LeafGREEnvelope, func() error {
		var event, err = rec.MustObject("greToClientEvent")
		if err == nil {
			messages, err = event.MustArray("greToClientMessages")
		}
		return err
	}); fault != nil {
		return
	}

	var ts = rec.Timestamp()
	for i, m := range messages {
		d.dispatchGREMessage(i, m, ts)
	}
}

func (d *Dispatcher) dispatchGREMessage(index int, m interface{}, ts record.Timestamp) {
	var msg, ok = record.AsRecord(m)
	if !ok {
		d.bulkhead.Run(LeafGREMessage, func() error {
			return errors.Errorf("greToClientMessages[%d] is not an object (got %T)", index, m)
		})
		return
	}
	tag, ok := msg.String("type")
	if !ok {
		d.bulkhead.Run(LeafGREMessage, func() error {
			return errors.WithMessagef(record.ErrMissingField, "greToClientMessages[%d] \"type\"", index)
		})
		return
	}

	var kind = ParseGREKind(tag)
	if kind == GREKindUnknown {
		metrics.GREMessagesTotal.WithLabelValues("other").Inc()
	} else {
		metrics.GREMessagesTotal.WithLabelValues(tag).Inc()
	}

	switch kind {
	case GREKindGameState:
		d.bulkhead.Run(LeafGameState, func() error {
			var gameState, err = msg.MustObject("gameStateMessage")
			if err != nil {
				return errors.WithMessagef(err, "greToClientMessages[%d]", index)
			}
			return d.parsers.GameState(gameState, ts)
		})
	case GREKindMulliganReq:
		d.bulkhead.Run(LeafMulliganReq, func() error {
			return d.parsers.MulliganReq(msg, ts)
		})
	case GREKindIgnored, GREKindSubmitDeckReq, GREKindUnknown:
		// Pass.
	}
}
