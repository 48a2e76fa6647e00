package cmds

import (
	"fmt"

	"github.com/pkg/errors"

	"lesiw.io/shr3"
	"lesiw.io/shr3/internal/flag"
)

const rangeUsage = `usage: range [-n COUNT] [-s SEED | -S PHRASE] [MIN] MAX

Print random integers between MIN and MAX inclusive, one per line.
MIN defaults to 0. Every value in the range is equally likely.`

func init() {
	Cmds["range"] = Range
}

func Range(cmd *Cmd) int {
	flags := flag.NewFlagSet(cmd.Stderr, "range")
	count := flags.Int("n", "Print `count` values (default 1)")
	seed := newSeedFlags(flags)
	flags.Usage = rangeUsage
	if err := flags.Parse(cmd.Args[1:]...); err != nil {
		return 1
	}
	var lo, hi uint64
	var err error
	switch len(flags.Args) {
	case 1:
		hi, err = parseUint(flags.Arg(0), 64, "max")
	case 2:
		if lo, err = parseUint(flags.Arg(0), 64, "min"); err == nil {
			hi, err = parseUint(flags.Arg(1), 64, "max")
		}
	default:
		flags.PrintError("bad argc: want 1 or 2")
		return 1
	}
	if err == nil && hi < lo {
		err = errors.Errorf("bad range: %d > %d", lo, hi)
	}
	if err != nil {
		flags.PrintError(err.Error())
		return 1
	}
	if err := countFlag(flags, count, 1); err != nil {
		flags.PrintError(err.Error())
		return 1
	}
	rng, err := seed.generator()
	if err != nil {
		flags.PrintError(err.Error())
		return 1
	}
	for i := 0; i < *count; i++ {
		fmt.Fprintln(cmd.Stdout, shr3.MinMax(rng, lo, hi))
	}
	return 0
}
