// mhdtool inspects, verifies and converts Mids Reborn powers databases
// (I12.mhd) and the compressed snapshots made from them.
//
// Configuration is read from the file named by --config or MHDTOOL_CONFIG;
// see internal/config for the keys. --log-level and --log-format override the
// file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/pflag"

	"github.com/mhdkit/netbin/codec"
	"github.com/mhdkit/netbin/internal/config"
	"github.com/mhdkit/netbin/internal/logging"
	"github.com/mhdkit/netbin/snapshot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			fmt.Fprintf(os.Stderr, "error: %v\n", exit.err)
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

// app holds the state shared by every command.
type app struct {
	cfg       *config.Config
	log       *logging.Logger
	codecOpts []codec.Option
	snapOpts  []snapshot.Option
	stdout    io.Writer
	stderr    io.Writer
}

type command struct {
	usage   string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"inspect":  {usage: "inspect FILE", summary: "print version and record counts", run: runInspect},
		"verify":   {usage: "verify FILE...", summary: "check that files decode and re-encode byte for byte", run: runVerify},
		"dump":     {usage: "dump FILE [--format yaml|cbor] [--out PATH]", summary: "render the database as YAML or CBOR", run: runDump},
		"power":    {usage: "power FILE FULL_NAME [--format yaml|cbor]", summary: "render a single power", run: runPower},
		"eclasses": {usage: "eclasses FILE", summary: "list the enhancement classes of an EClasses.mhd table", run: runEClasses},
		"schema":   {usage: "schema", summary: "print the wire layout of a database record", run: runSchema},
		"snapshot": {usage: "snapshot FILE --out PATH [--compression none|zstd|s2|lz4]", summary: "store a database as a compressed snapshot", run: runSnapshot},
		"restore":  {usage: "restore SNAPSHOT --out PATH", summary: "extract the database from a snapshot", run: runRestore},
		"bump":     {usage: "bump FILE [--out PATH]", summary: "increment the database build number", run: runBump},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var configPath, logLevel, logFormat string

	flagSet := pflag.NewFlagSet("mhdtool", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "path to the configuration file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flagSet.StringVar(&logFormat, "log-format", "", "text or json")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageError("%w", err)
	}
	if flagSet.NArg() == 0 {
		printUsage(stderr, flagSet)
		return usageError("missing command")
	}

	name := flagSet.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		return usageError("unknown command %q", name)
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return usageError("%w", err)
	}

	a, err := newApp(cfg, stdout, stderr)
	if err != nil {
		return err
	}

	err = cmd.run(ctx, a, flagSet.Args()[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}

	return err
}

func newApp(cfg *config.Config, stdout, stderr io.Writer) (*app, error) {
	log, err := cfg.Logger(stderr)
	if err != nil {
		return nil, err
	}
	codecOpts, err := cfg.CodecOptions(log.Logger)
	if err != nil {
		return nil, err
	}
	snapOpts, err := cfg.SnapshotOptions(log.Logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		log:       log,
		codecOpts: codecOpts,
		snapOpts:  snapOpts,
		stdout:    stdout,
		stderr:    stderr,
	}, nil
}

// flagSet returns a command flag set that reports errors on stderr.
func (a *app) flagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(a.stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage:\n  mhdtool %s\n\nFlags:\n", commands[name].usage)
		flagSet.PrintDefaults()
	}

	return flagSet
}

// parseArgs parses a command line and checks the positional argument count.
// A negative max means no upper bound.
func parseArgs(flagSet *pflag.FlagSet, args []string, minArgs, maxArgs int) error {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usageError("%s: %w", flagSet.Name(), err)
	}

	n := flagSet.NArg()
	if n < minArgs || (maxArgs >= 0 && n > maxArgs) {
		return usageError("usage: mhdtool %s", commands[flagSet.Name()].usage)
	}

	return nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "mhdtool works with Mids Reborn powers databases (I12.mhd).\n\nUsage:\n  mhdtool [flags] COMMAND [args]\n\nCommands:\n")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}

	fmt.Fprintf(w, "\nFlags:\n")
	flagSet.PrintDefaults()
}
