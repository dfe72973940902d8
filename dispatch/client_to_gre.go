package dispatch

import (
	"github.com/antalos/mtgatracker/metrics"
	"github.com/antalos/mtgatracker/record"
	"github.com/antalos/mtgatracker/schema"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// dispatchClientToGRE handles ShapeClientToGRE by decoding the Record's
// base64 `payload` into the schema of its `clientToMatchServiceMessageType`.
// A Record without a `payload` is not decoded. Decode failures, including a
// type tag without a known schema, are contained and reported.
func (d *Dispatcher) dispatchClientToGRE(rec record.Record) {
	d.bulkhead.Run(LeafClientMessage, func() error {
		var messageType, err = rec.MustString("clientToMatchServiceMessageType")
		if err != nil {
			return err
		}
		if !rec.Has("payload") {
			log.WithField("messageType", messageType).Debug("client message has no payload")
			return nil
		}
		payload, err := rec.MustString("payload")
		if err != nil {
			return err
		}

		tag, msg, err := schema.Decode(d.registry, messageType, payload)
		if err != nil {
			if errors.Cause(err) == schema.ErrUnsupportedSchema {
				tag = "unknown"
			}
			metrics.ClientMessagesTotal.WithLabelValues(tag, metrics.Fail).Inc()
			return err
		}
		metrics.ClientMessagesTotal.WithLabelValues(tag, metrics.Ok).Inc()

		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithFields(log.Fields{
				"tag":     tag,
				"name":    proto.MessageName(msg),
				"payload": payload,
				"message": proto.CompactTextString(msg),
			}).Debug("decoded client message")
		}
		return d.parsers.ClientMessage(tag, msg, payload)
	})
}
