// Package mtgatailcmd implements the sub-commands of mtgatail, a tool which
// dispatches records extracted from the client's log and emits the parsed
// events as JSON lines.
package mtgatailcmd

import (
	"github.com/antalos/mtgatracker/metrics"
	mbp "github.com/antalos/mtgatracker/mainboilerplate"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
)

const iniFilename = "mtgatail.ini"

var (
	baseCfg = new(struct {
		Log         mbp.LogConfig         `group:"Logging" namespace:"log" env-namespace:"LOG"`
		Diagnostics mbp.DiagnosticsConfig `group:"Debug" namespace:"debug" env-namespace:"DEBUG"`
	})

	// CommandRegistry of mtgatail sub-commands, populated by the init() of
	// each command's file.
	CommandRegistry = mbp.NewCommandRegistry()
)

// startup initializes logging, metrics and diagnostics. The returned
// closure should be deferred.
func startup() func() {
	mbp.InitLog(baseCfg.Log)

	prometheus.MustRegister(metrics.DispatchCollectors()...)
	prometheus.MustRegister(metrics.ReaderCollectors()...)

	return mbp.InitDiagnosticsAndRecover(baseCfg.Diagnostics)
}

// Execute parses configuration and runs the selected sub-command.
func Execute() {
	var parser = flags.NewParser(baseCfg, flags.Default)

	mbp.AddPrintConfigCmd(parser, iniFilename)
	parser.LongDescription = `mtgatail dispatches records extracted from the client's log.

	See --help pages of each sub-command for documentation and usage examples.
	Optionally configure mtgatail with a '` + iniFilename + `' file in the current working directory,
	or with '~/.config/` + mbp.ConfigDirName + `/` + iniFilename + `'. Use the 'print-config' sub-command
	to inspect the tool's current configuration.
	`
	mbp.Must(CommandRegistry.AddCommands("", parser.Command, true), "could not add subcommand")
	mbp.MustParseConfig(parser, iniFilename)
}
