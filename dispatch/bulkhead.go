package dispatch

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"

	"github.com/antalos/mtgatracker/metrics"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Leaf names an operation run within a Bulkhead.
type Leaf string

const (
	LeafGREEnvelope   Leaf = "gre_envelope"
	LeafGREMessage    Leaf = "gre_message"
	LeafGameState     Leaf = "game_state"
	LeafMulliganReq   Leaf = "mulligan_req"
	LeafClientMessage Leaf = "client_message"
	LeafDeckLists     Leaf = "deck_lists"
	LeafDeckSubmit    Leaf = "deck_submit"
	LeafPlayerCards   Leaf = "player_cards"
	LeafDraftStatus   Leaf = "draft_status"
	LeafPassThrough   Leaf = "pass_through"
	LeafRoomState     Leaf = "room_state"
	LeafMatchCreated  Leaf = "match_created"
)

// subject is the Leaf as it's described to users in reported errors.
func (l Leaf) subject() string {
	switch l {
	case LeafGREEnvelope, LeafGREMessage, LeafGameState, LeafMulliganReq:
		return "game state"
	case LeafClientMessage:
		return "client message"
	case LeafDeckLists:
		return "deck lists"
	case LeafDeckSubmit:
		return "deck submission"
	case LeafPlayerCards:
		return "card collection"
	case LeafDraftStatus:
		return "draft status"
	case LeafPassThrough:
		return "event"
	case LeafRoomState:
		return "match state"
	case LeafMatchCreated:
		return "match creation"
	default:
		return string(l)
	}
}

// ErrorCounter counts failures contained by a Bulkhead. It's safe for
// concurrent use, so that Dispatchers of independent record streams may
// share one.
type ErrorCounter struct{ n atomic.Int64 }

// Inc increments the ErrorCounter and returns its new value.
func (c *ErrorCounter) Inc() int64 { return c.n.Add(1) }

// Count returns the current value of the ErrorCounter.
func (c *ErrorCounter) Count() int64 { return c.n.Load() }

// Fault is a failure contained by a Bulkhead.
type Fault struct {
	// Incident uniquely identifies the Fault across logs and reports.
	Incident uuid.UUID
	Leaf     Leaf
	Err      error
	// Count is the ErrorCounter value after this Fault was counted.
	Count int64
	// Stack is the diagnostic call stack: that of a recovered panic, of a
	// stack-carrying error, or of the Bulkhead boundary itself.
	Stack string
}

// FaultReporter is an optional extension of ErrorReporter, which is
// additionally passed the reported Fault.
type FaultReporter interface {
	ReportFault(message string, fault *Fault)
}

// Bulkhead runs leaf operations, containing their failures. A failure is an
// error returned by the operation or a panic raised from it. Contained
// failures are counted, logged with diagnostic context, and reported.
// They're never propagated to the caller of Run.
type Bulkhead struct {
	Counter  *ErrorCounter
	Reporter ErrorReporter
}

// Run invokes |fn| and returns a Fault if it failed, or nil otherwise.
func (b *Bulkhead) Run(leaf Leaf, fn func() error) *Fault {
	var panicStack, err = invoke(fn)
	if err == nil {
		return nil
	}
	var fault = &Fault{
		Incident: uuid.New(),
		Leaf:     leaf,
		Err:      err,
		Count:    b.Counter.Inc(),
		Stack:    diagnosticStack(err, panicStack),
	}
	metrics.IsolatedFaultsTotal.WithLabelValues(string(leaf)).Inc()

	log.WithFields(log.Fields{
		"err":      err,
		"leaf":     leaf,
		"incident": fault.Incident,
		"count":    fault.Count,
		"stack":    strings.Split(fault.Stack, "\n"),
	}).Error("exception during parse")

	var msg = fmt.Sprintf("Exception during parse %s. Check log for more details", leaf.subject())
	switch r := b.Reporter.(type) {
	case nil:
	case FaultReporter:
		r.ReportFault(msg, fault)
	default:
		r.ReportError(msg)
	}
	return fault
}

// invoke calls |fn|, mapping a panic into a returned error and its stack.
func invoke(fn func() error) (panicStack []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicStack = debug.Stack()

			if e, ok := r.(error); ok {
				err = errors.WithMessage(e, "panic")
			} else {
				err = errors.Errorf("panic: %v", r)
			}
		}
	}()
	return nil, fn()
}

func diagnosticStack(err error, panicStack []byte) string {
	if panicStack != nil {
		return string(panicStack)
	}
	if st, ok := err.(interface{ StackTrace() errors.StackTrace }); ok {
		return strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n")
	}
	return string(debug.Stack())
}
