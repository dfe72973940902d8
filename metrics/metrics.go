// Package metrics defines the Prometheus collectors of the record dispatcher
// and its record readers. Collectors are package-level so that any component
// may update them; programs register them with DispatchCollectors and
// ReaderCollectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Keys for metric status labels.
const (
	Fail = "fail"
	Ok   = "ok"
)

// Collectors for dispatch.Dispatcher.
var (
	RecordsDispatchedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mtga_dispatch_records_total",
		Help: "Cumulative number of dispatched records, by classified shape.",
	}, []string{"shape"})
	GREMessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mtga_dispatch_gre_messages_total",
		Help: "Cumulative number of GRE-to-client messages, by message type.",
	}, []string{"type"})
	RoomStatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mtga_dispatch_room_states_total",
		Help: "Cumulative number of match game room state changes, by state.",
	}, []string{"state"})
	ClientMessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mtga_dispatch_client_messages_total",
		Help: "Cumulative number of client-to-match-service payloads, by type tag & decode status.",
	}, []string{"tag", "status"})
	IsolatedFaultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mtga_dispatch_isolated_faults_total",
		Help: "Cumulative number of leaf failures contained by the dispatch bulkhead, by leaf.",
	}, []string{"leaf"})
)

// DispatchCollectors returns the metrics used by dispatch.Dispatcher.
func DispatchCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		RecordsDispatchedTotal,
		GREMessagesTotal,
		RoomStatesTotal,
		ClientMessagesTotal,
		IsolatedFaultsTotal,
	}
}

// Collectors for record.Reader consumers.
var (
	RecordReadBytesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mtga_record_read_bytes_total",
		Help: "Cumulative number of record file bytes read.",
	})
	RecordsReadTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mtga_records_read_total",
		Help: "Cumulative number of record lines read, by decode status.",
	}, []string{"status"})
)

// ReaderCollectors returns the metrics used by record readers.
func ReaderCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		RecordReadBytesTotal,
		RecordsReadTotal,
	}
}
