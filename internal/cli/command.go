package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cali/internal/nutrition"
)

// Kind is the operation a Command performs.
type Kind int

const (
	KindLog Kind = iota + 1
	KindSummary
	KindHistory
	KindReset
)

func (k Kind) String() string {
	switch k {
	case KindLog:
		return "log"
	case KindSummary:
		return "summary"
	case KindHistory:
		return "history"
	case KindReset:
		return "reset"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one parsed invocation.
type Command struct {
	Kind     Kind
	Category nutrition.Category // KindLog
	Amount   float64            // KindLog
	Date     string             // KindSummary; empty means today
}

// Mutates reports whether the store must be saved after the command.
func (c Command) Mutates() bool {
	return c.Kind == KindLog || c.Kind == KindReset
}

// errShowHelp asks Parse to print usage and exit cleanly.
var errShowHelp = errors.New("help requested")

// parseCommand interprets the arguments left after the global options.
func parseCommand(args []string) (Command, error) {
	name, rest := args[0], args[1:]

	switch name {
	case "help":
		return Command{}, errShowHelp

	case "log":
		if len(rest) == 0 {
			return Command{}, usageError("log: missing category (one of %s)", categoryNames())
		}
		cat, err := nutrition.ParseCategory(rest[0])
		if err != nil {
			return Command{}, usageError("log: %v (one of %s)", err, categoryNames())
		}
		if len(rest) < 2 {
			return Command{}, usageError("log %s: missing amount", cat)
		}
		if len(rest) > 2 {
			return Command{}, usageError("log %s: unexpected arguments: %s", cat, strings.Join(rest[2:], " "))
		}
		amount, err := parseAmount(rest[1])
		if err != nil {
			return Command{}, usageError("log %s: %v", cat, err)
		}
		return Command{Kind: KindLog, Category: cat, Amount: amount}, nil

	case "summary":
		var date string
		fs := flag.NewFlagSet("summary", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.StringVar(&date, "date", "", "date to show (YYYY-MM-DD), defaults to today")
		fs.StringVar(&date, "d", "", "date to show (shorthand)")
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return Command{}, errShowHelp
			}
			return Command{}, usageError("summary: %v", err)
		}
		if fs.NArg() > 0 {
			return Command{}, usageError("summary: unexpected arguments: %s", strings.Join(fs.Args(), " "))
		}
		return Command{Kind: KindSummary, Date: date}, nil

	case "history", "reset":
		if len(rest) > 0 {
			return Command{}, usageError("%s: unexpected arguments: %s", name, strings.Join(rest, " "))
		}
		if name == "history" {
			return Command{Kind: KindHistory}, nil
		}
		return Command{Kind: KindReset}, nil
	}

	// A bare number logs calories.
	amount, err := parseAmount(name)
	if err != nil {
		return Command{}, usageError("unknown command %q", name)
	}
	if len(rest) > 0 {
		return Command{}, usageError("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return Command{Kind: KindLog, Category: nutrition.Calories, Amount: amount}, nil
}

// parseAmount accepts any finite number, including zero and negatives.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q: must be a number", s)
	}
	return v, nil
}

func categoryNames() string {
	names := make([]string, 0, len(nutrition.Categories))
	for _, c := range nutrition.Categories {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
