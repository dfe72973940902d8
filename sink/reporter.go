package sink

import (
	"fmt"
	"io"
	"sync"

	"github.com/antalos/mtgatracker/dispatch"
	log "github.com/sirupsen/logrus"
)

// Report is an error reported to a Reporter.
type Report struct {
	Message  string
	Leaf     string
	Incident string
}

// Reporter is a dispatch.FaultReporter which writes reported errors to a
// user-facing Writer and retains the most recent of them. It's safe for
// concurrent use.
type Reporter struct {
	out    io.Writer
	limit  int
	mu     sync.Mutex
	total  int
	recent []Report
}

// NewReporter returns a Reporter which writes to |out| (which may be nil)
// and retains up to |limit| recent Reports.
func NewReporter(out io.Writer, limit int) *Reporter {
	return &Reporter{out: out, limit: limit}
}

// ReportError implements dispatch.ErrorReporter.
func (r *Reporter) ReportError(message string) { r.add(Report{Message: message}) }

// ReportFault implements dispatch.FaultReporter.
func (r *Reporter) ReportFault(message string, fault *dispatch.Fault) {
	r.add(Report{
		Message:  message,
		Leaf:     string(fault.Leaf),
		Incident: fault.Incident.String(),
	})
}

// Total returns the number of Reports received.
func (r *Reporter) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Recent returns retained Reports, oldest first.
func (r *Reporter) Recent() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.recent...)
}

func (r *Reporter) add(rep Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total++
	if r.limit > 0 {
		if len(r.recent) == r.limit {
			r.recent = append(r.recent[:0], r.recent[1:]...)
		}
		r.recent = append(r.recent, rep)
	}
	if r.out == nil {
		return
	}

	var err error
	if rep.Incident != "" {
		_, err = fmt.Fprintf(r.out, "%s (incident %s)\n", rep.Message, rep.Incident)
	} else {
		_, err = fmt.Fprintln(r.out, rep.Message)
	}
	if err != nil {
		log.WithField("err", err).Warn("failed to write error report")
	}
}

var (
	_ dispatch.Parsers       = (*Events)(nil)
	_ dispatch.FaultReporter = (*Reporter)(nil)
)
