// Package flagx holds helpers for picking individual flags out of an argument
// list before the full command line is parsed.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments that belong to one of allowedFlags,
// together with their values.
//
// Flag names are compared without leading dashes, so "-config" also
// matches "--config". Scanning stops at "--" and at the first positional
// argument, which is where the subcommand starts.
//
// Supported formats:
//
//	-c conf.json
//	--config=conf.json
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[strings.TrimLeft(f, "-")] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") || arg == "-" {
			break
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if _, ok := allowed[name]; !ok {
			// Skip the value of an unrelated flag so it is not mistaken for
			// the subcommand.
			if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") && !isBoolFlag(name) {
				i++
			}
			continue
		}

		filtered = append(filtered, arg)
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// boolFlags are global switches that never take a separate value.
var boolFlags = map[string]struct{}{
	"version": {},
	"h":       {},
	"help":    {},
}

func isBoolFlag(name string) bool {
	_, ok := boolFlags[name]
	return ok
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// The last occurrence wins; an empty string means no file was requested.
func JsonConfigFlags(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return config
}
