package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// PositionalNegatives rewrites args so a negative number given to done
// reaches the command as its argument instead of a shorthand flag.
// "todo done -1" becomes "todo done -- -1". Args that already contain "--"
// or run another command are returned unchanged.
func PositionalNegatives(root *cobra.Command, args []string) []string {
	i := 0
	for ; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			break
		}
		if takesValue(root, a) {
			i++
		}
	}
	if i >= len(args) || args[i] != "done" {
		return args
	}

	var rest, negatives []string
	for _, a := range args[i+1:] {
		if a == "--" {
			return args
		}
		if negativeNumber.MatchString(a) {
			negatives = append(negatives, a)
			continue
		}
		rest = append(rest, a)
	}
	if len(negatives) == 0 {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[:i+1]...)
	out = append(out, rest...)
	out = append(out, "--")
	return append(out, negatives...)
}

// takesValue reports whether arg is a persistent root flag whose value is the next arg.
func takesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	if strings.HasPrefix(arg, "--") {
		f := root.PersistentFlags().Lookup(arg[2:])
		return f != nil && f.NoOptDefVal == ""
	}
	if len(arg) == 2 {
		f := root.PersistentFlags().ShorthandLookup(arg[1:])
		return f != nil && f.NoOptDefVal == ""
	}
	return false
}
