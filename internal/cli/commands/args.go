package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

// splitLeadingFlags separates the flags defined in fs that appear before the
// first positional argument from the rest of args. Scanning stops at the
// first word that is not one of those flags, so "--", "-" and unknown
// dash-prefixed words begin the positional arguments. A flag that takes a
// value consumes the following word unless the value is attached.
func splitLeadingFlags(fs *pflag.FlagSet, args []string) (flagArgs, rest []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "-" || arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}

		n := flagWords(fs, arg)
		if n == 0 {
			break
		}
		if n == 2 && i+1 < len(args) {
			flagArgs = append(flagArgs, arg, args[i+1])
			i += 2
			continue
		}
		flagArgs = append(flagArgs, arg)
		i++
	}
	return flagArgs, args[i:]
}

// flagWords reports how many words arg occupies as a flag of fs: 0 when it
// is not one, 1 for a boolean or attached value, 2 when the value follows.
func flagWords(fs *pflag.FlagSet, arg string) int {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, attached := strings.Cut(name, "=")
		f := fs.Lookup(name)
		switch {
		case f == nil:
			return 0
		case attached || takesNoValue(f):
			return 1
		default:
			return 2
		}
	}

	shorthands := arg[1:]
	f := fs.ShorthandLookup(shorthands[:1])
	if f == nil {
		return 0
	}
	if !takesNoValue(f) {
		if len(shorthands) > 1 {
			return 1
		}
		return 2
	}
	// Grouped booleans such as -zh; every letter must be a known boolean.
	for _, c := range shorthands[1:] {
		if c >= utf8.RuneSelf {
			return 0
		}
		g := fs.ShorthandLookup(string(c))
		if g == nil || !takesNoValue(g) {
			return 0
		}
	}
	return 1
}

func takesNoValue(f *pflag.Flag) bool {
	return f.NoOptDefVal != ""
}
