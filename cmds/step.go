package cmds

import (
	"fmt"

	"lesiw.io/shr3"
	"lesiw.io/shr3/internal/flag"
)

const stepUsage = `usage: step [-n COUNT] STATE

Apply the SHR3 shift function to STATE and print each successive state.`

func init() {
	Cmds["step"] = Step
}

func Step(cmd *Cmd) int {
	flags := flag.NewFlagSet(cmd.Stderr, "step")
	count := flags.Int("n", "Print `count` states (default 1)")
	flags.Usage = stepUsage
	if err := flags.Parse(cmd.Args[1:]...); err != nil {
		return 1
	}
	if len(flags.Args) != 1 {
		flags.PrintError("bad argc: want 1")
		return 1
	}
	state, err := parseUint(flags.Arg(0), 32, "state")
	if err != nil {
		flags.PrintError(err.Error())
		return 1
	}
	if err := countFlag(flags, count, 1); err != nil {
		flags.PrintError(err.Error())
		return 1
	}
	x := uint32(state)
	for i := 0; i < *count; i++ {
		x = shr3.Step(x)
		fmt.Fprintf(cmd.Stdout, "0x%08X\n", x)
	}
	return 0
}
