// Package flagx lets several components read their own flags from the shared
// command line without tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags and their values.
//
// Both "-c conf.json" and "-c=conf.json" forms are recognised. A following
// token is taken as the value unless it starts with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// stringFlag returns the last value given for any of names in os.Args, or "".
func stringFlag(set string, names ...string) string {
	var value string

	dashed := make([]string, 0, len(names))
	fs := flag.NewFlagSet(set, flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	for _, name := range names {
		dashed = append(dashed, "-"+name)
		fs.StringVar(&value, name, "", set)
	}

	_ = fs.Parse(FilterArgs(os.Args[1:], dashed))
	return value
}

// ConfigFileFlag returns the JSON config path given with -c or -config.
func ConfigFileFlag() string {
	return stringFlag("config file", "config", "c")
}

// EnvFileFlag returns the dotenv file path given with -env.
func EnvFileFlag() string {
	return stringFlag("env file", "env")
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
