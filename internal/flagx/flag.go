// Package flagx lets several flag sets share one argument list. Each
// consumer picks out the flags it owns and the command tree receives the
// rest.
package flagx

import (
	"flag"
	"strings"
)

// ConfigFileFlags are the names that select a JSON configuration file.
var ConfigFileFlags = []string{"-c", "-config"}

// FilterArgs returns the arguments that belong to the named flags, with
// their values. Both "-f value" and "-f=value" are recognised; a token
// starting with '-' is never taken as a value.
func FilterArgs(args []string, names []string) []string {
	owned, _ := partition(args, names)
	return owned
}

// StripArgs is the complement of FilterArgs: it drops the named flags and
// their values and keeps everything else in order.
func StripArgs(args []string, names []string) []string {
	_, rest := partition(args, names)
	return rest
}

func partition(args []string, names []string) (owned, rest []string) {
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[n] = struct{}{}
	}

	owned = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := known[name]; ok {
				owned = append(owned, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := known[arg]; !ok {
			rest = append(rest, arg)
			continue
		}

		owned = append(owned, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			owned = append(owned, args[i+1])
			i++
		}
	}

	return owned, rest
}

// ConfigFile returns the path given with -c or -config, or "" when neither
// is present. When both appear the last one wins.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFileFlags))

	return path
}
