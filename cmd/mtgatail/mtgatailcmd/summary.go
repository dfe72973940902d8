package mtgatailcmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/antalos/mtgatracker/dispatch"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// writeSummary writes a human-readable description of |stats| to |w|.
func writeSummary(w io.Writer, stats *dispatchStats) {
	fmt.Fprintf(w, "Read %s from %d file(s) in %s: %s records, %s malformed, %s isolated errors.\n",
		humanize.Bytes(uint64(stats.Bytes)),
		stats.Files,
		stats.Elapsed.Round(time.Millisecond),
		humanize.Comma(int64(stats.Records)),
		humanize.Comma(int64(stats.Malformed)),
		humanize.Comma(stats.Errors),
	)

	var shapes = make([]dispatch.Shape, 0, len(stats.Shapes))
	for s := range stats.Shapes {
		shapes = append(shapes, s)
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i] < shapes[j] })

	var table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"Shape", "Records"})
	for _, s := range shapes {
		table.Append([]string{s.String(), humanize.Comma(int64(stats.Shapes[s]))})
	}
	table.Render()

	if len(stats.Events) != 0 {
		table = tablewriter.NewWriter(w)
		table.SetHeader([]string{"Event", "Count"})
		for _, c := range stats.Events {
			table.Append([]string{c.Event, humanize.Comma(int64(c.Count))})
		}
		table.Render()
	}

	if len(stats.Reports) != 0 {
		table = tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "Leaf", "Incident", "Message"})
		for i, r := range stats.Reports {
			table.Append([]string{strconv.Itoa(i + 1), r.Leaf, r.Incident, r.Message})
		}
		table.Render()
	}
}
