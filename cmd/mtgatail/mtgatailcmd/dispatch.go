package mtgatailcmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/antalos/mtgatracker/dispatch"
	mbp "github.com/antalos/mtgatracker/mainboilerplate"
	"github.com/antalos/mtgatracker/metrics"
	"github.com/antalos/mtgatracker/record"
	"github.com/antalos/mtgatracker/schema"
	"github.com/antalos/mtgatracker/sink"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

type cmdDispatch struct {
	Output  string `long:"output" short:"o" default:"-" description:"Path to which dispatched events are written as JSON lines. '-' writes to stdout"`
	Summary bool   `long:"summary" description:"Write a summary of the run to stderr on completion"`
	Buffer  int    `long:"buffer" default:"1024" description:"Number of records read ahead of the dispatcher"`
	Recent  int    `long:"recent" default:"16" description:"Number of recently reported errors retained for the summary"`
	Args    struct {
		Paths []string `positional-arg-name:"PATH" description:"Record files to dispatch, in order. '-' reads stdin. Defaults to stdin"`
	} `positional-args:"yes"`
}

func init() {
	CommandRegistry.AddCommand("", "dispatch", "Dispatch record files", `
Read JSON-lines record files and dispatch each record in order.

Each record is classified by the keys it carries and routed to a single
handler. Handlers write the event they observe as one JSON line to --output.
Failures within a handler are isolated: they're logged, counted and reported
to stderr, and processing continues with the next message or record.

Files ending in .gz, .sz / .snappy, or .zst / .zstd are decompressed.
Lines which are not a JSON object are logged and skipped.

Dispatch a compressed capture, writing events to a file:
>    mtgatail dispatch --output events.jsonl --summary capture.jsonl.gz

Dispatch records from another process:
>    extract-records Player.log | mtgatail dispatch -
`, &cmdDispatch{})
}

// dispatchStats describes a completed dispatch run.
type dispatchStats struct {
	Files     int
	Bytes     int64
	Records   int
	Malformed int
	Shapes    map[dispatch.Shape]int
	Events    []sink.Count
	Errors    int64
	Reports   []sink.Report
	Elapsed   time.Duration
}

func (cmd *cmdDispatch) Execute([]string) error {
	defer startup()()

	var out io.Writer = os.Stdout
	if cmd.Output != "-" {
		var f, err = os.Create(cmd.Output)
		mbp.Must(err, "failed to create output", "path", cmd.Output)
		defer func() { mbp.Must(f.Close(), "failed to close output", "path", cmd.Output) }()
		out = f
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	var stats, err = cmd.run(ctx, afero.NewOsFs(), os.Stdin, out, os.Stderr)
	if cmd.Summary && stats != nil {
		writeSummary(os.Stderr, stats)
	}
	if errors.Cause(err) == context.Canceled {
		log.Info("dispatch interrupted")
		return nil
	}
	return err
}

// run dispatches records of each of the command's paths, read from |fs| or
// |stdin|. Events are written to |out| and reported errors to |errOut|.
func (cmd *cmdDispatch) run(ctx context.Context, fs afero.Fs, stdin io.Reader, out, errOut io.Writer) (*dispatchStats, error) {
	var paths = cmd.Args.Paths
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var (
		events     = sink.NewEvents(out)
		reporter   = sink.NewReporter(errOut, cmd.Recent)
		dispatcher = dispatch.NewDispatcher(events, schema.Default, nil, reporter)
		stats      = &dispatchStats{Shapes: make(map[dispatch.Shape]int)}
		recCh      = make(chan record.Record, cmd.Buffer)
		started    = time.Now()
	)
	var group, groupCtx = errgroup.WithContext(ctx)

	// Records are read ahead of the dispatcher, but dispatched strictly in
	// the order they were read.
	group.Go(func() error {
		defer close(recCh)

		for _, path := range paths {
			if err := readRecords(groupCtx, fs, stdin, path, recCh, stats); err != nil {
				return err
			}
		}
		return nil
	})
	group.Go(func() error {
		for rec := range recCh {
			stats.Shapes[dispatcher.Dispatch(rec)]++
		}
		return errors.WithMessage(events.Flush(), "flushing events")
	})
	var err = group.Wait()

	stats.Events = events.Counts()
	stats.Errors = dispatcher.Errors()
	stats.Reports = reporter.Recent()
	stats.Elapsed = time.Since(started)

	log.WithFields(log.Fields{
		"files":     stats.Files,
		"records":   stats.Records,
		"malformed": stats.Malformed,
		"errors":    stats.Errors,
		"elapsed":   stats.Elapsed,
	}).Info("dispatch finished")

	return stats, err
}

// readRecords reads Records of |path| into |ch|. Only the reading goroutine
// updates the read-side fields of |stats|.
func readRecords(ctx context.Context, fs afero.Fs, stdin io.Reader, path string, ch chan<- record.Record, stats *dispatchStats) error {
	var rc io.ReadCloser
	if path == "-" {
		rc = io.NopCloser(stdin)
	} else if f, err := record.Open(fs, path); err != nil {
		return err
	} else {
		rc = f
	}
	defer rc.Close()

	var rr = record.NewReader(rc)
	var err error

	for {
		var rec record.Record
		if rec, err = rr.Next(); err == io.EOF {
			err = nil
			break
		} else if de, ok := err.(*record.DecodeError); ok {
			log.WithFields(log.Fields{
				"path": path,
				"line": de.Line,
				"err":  de.Err,
			}).Warn("skipping malformed record")

			metrics.RecordsReadTotal.WithLabelValues(metrics.Fail).Inc()
			stats.Malformed++
			continue
		} else if err != nil {
			err = errors.WithMessagef(err, "reading %s", path)
			break
		}
		metrics.RecordsReadTotal.WithLabelValues(metrics.Ok).Inc()
		stats.Records++

		select {
		case ch <- rec:
		case <-ctx.Done():
			err = ctx.Err()
		}
		if err != nil {
			break
		}
	}

	metrics.RecordReadBytesTotal.Add(float64(rr.Offset()))
	stats.Bytes += rr.Offset()
	stats.Files++

	return err
}
