package cmds

import (
	"fmt"

	"github.com/pkg/errors"

	"lesiw.io/shr3"
	"lesiw.io/shr3/internal/flag"
)

const bitsUsage = `usage: bits [-n COUNT] [-s SEED | -S PHRASE] WIDTH

Print values of WIDTH random bits, one per line. WIDTH is at most 64.
The first extracted bit is the most significant.`

func init() {
	Cmds["bits"] = Bits
}

func Bits(cmd *Cmd) int {
	flags := flag.NewFlagSet(cmd.Stderr, "bits")
	count := flags.Int("n", "Print `count` values (default 1)")
	seed := newSeedFlags(flags)
	flags.Usage = bitsUsage
	if err := flags.Parse(cmd.Args[1:]...); err != nil {
		return 1
	}
	if len(flags.Args) != 1 {
		flags.PrintError("bad argc: want 1")
		return 1
	}
	width, err := parseUint(flags.Arg(0), 8, "width")
	if err == nil && width > 64 {
		err = errors.Errorf("bad width: %d exceeds 64", width)
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
	digits := max(1, int(width+3)/4)
	for i := 0; i < *count; i++ {
		v := shr3.Bits[uint64](rng, uint8(width))
		fmt.Fprintf(cmd.Stdout, "0x%0*X\n", digits, v)
	}
	return 0
}
