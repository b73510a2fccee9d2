package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/cali/internal/buildinfo"
	"github.com/dmitrijs2005/cali/internal/config"
)

// Request is a fully parsed invocation.
type Request struct {
	Config  *config.Config
	Command Command
}

const usageText = `
cali - personal nutrition logging.

Usage:
  cali [options] <amount>
  cali [options] <command> [arguments]

Arguments:
  <amount>
    Calories to log (shorthand for 'log calories <amount>').

Commands:
  log calories <amount>    Log calories
  log water <fl_oz>        Log water intake in fluid ounces
  log protein <grams>      Log protein intake in grams
  log carbs <grams>        Log carbohydrates intake in grams
  log fat <grams>          Log fat intake in grams
  summary [-d YYYY-MM-DD]  Show nutrition summary, defaults to today
  history                  Show all recorded nutrition data
  reset                    Reset today's nutrition data
  help                     Show this help

Options:
`

// Parse resolves configuration and the command from args. It returns
// shouldExit=true when help or version output was written to output and
// nothing else should run.
func Parse(args []string, output io.Writer) (*Request, bool, error) {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	fs := flag.NewFlagSet("cali", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	cfg.BindFlags(fs)
	showVersion := fs.Bool("version", false, "print version information and exit")

	usage := func() {
		fmt.Fprint(output, usageText)
		fs.SetOutput(output)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage()
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}

	if *showVersion {
		buildinfo.PrintBuildData(output)
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if fs.NArg() == 0 {
		usage()
		return nil, true, nil
	}

	cmd, err := parseCommand(fs.Args())
	if err != nil {
		if errors.Is(err, errShowHelp) {
			usage()
			return nil, true, nil
		}
		return nil, false, err
	}

	return &Request{Config: cfg, Command: cmd}, false, nil
}
