package convert

import (
	"regexp"
	"strings"

	"github.com/RevCBH/decomposerize/internal/mapping"
)

const (
	lineSeparator      = " "
	multilineSeparator = " \\\n\t"
)

var spaceRun = regexp.MustCompile(`[ ]+`)

// flagName picks the long or short half of a "long/short" name.
func flagName(names string, long bool) string {
	e := mapping.Entry{Names: names}
	if long {
		return e.Long()
	}
	return e.Short()
}

// renderFlag spells one flag with its value. Single-letter names take one
// dash. An empty value yields the bare flag.
func renderFlag(names, value string, opts Options) string {
	name := flagName(names, opts.LongArgs)
	dash := "--"
	if len(name) == 1 {
		dash = "-"
	}
	if value == "" {
		return dash + name
	}
	return dash + name + opts.ArgValueSeparator + value
}

// joinCommand assembles one command line from its verb and argument tokens
// and squeezes runs of spaces.
func joinCommand(verb string, tokens []string, opts Options) string {
	sep := lineSeparator
	if opts.Multiline {
		sep = multilineSeparator
	}
	return spaceRun.ReplaceAllString(verb+" "+strings.Join(tokens, sep), " ")
}

// args accumulates the tokens of one command.
type args struct {
	opts   Options
	tokens []string
}

func (a *args) flag(names, value string) {
	a.tokens = append(a.tokens, renderFlag(names, value, a.opts))
}

func (a *args) raw(tokens ...string) {
	a.tokens = append(a.tokens, tokens...)
}

func (a *args) line(verb string) string {
	return joinCommand(verb, a.tokens, a.opts)
}
