// Package cli holds argument handling shared by the commands.
package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NumericArgs reorders args so that negative numbers such as -1.5 reach the
// command as positional arguments instead of being read as shorthand flags.
// Flags in fs keep their values; everything else goes after a "--".
func NumericArgs(fs *pflag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNumber(a) || !strings.HasPrefix(a, "-") || a == "-":
			positional = append(positional, a)
		default:
			flags = append(flags, a)
			if takesValue(fs, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// takesValue reports whether flag a consumes the following argument.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	if name := strings.TrimPrefix(a, "--"); name != a {
		f = fs.Lookup(name)
	} else if short := strings.TrimPrefix(a, "-"); len(short) == 1 {
		f = fs.ShorthandLookup(short)
	}
	return f != nil && f.NoOptDefVal == ""
}
