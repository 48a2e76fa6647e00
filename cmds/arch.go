package cmds

import (
	"fmt"

	"lesiw.io/shr3"
	"lesiw.io/shr3/internal/flag"
)

const archUsage = `usage: arch [-i]

Print machine architecture.`

func init() {
	Cmds["arch"] = Arch
}

func Arch(cmd *Cmd) int {
	flags := flag.NewFlagSet(cmd.Stderr, "arch")
	impl := flags.Bool("i", "Print the SHR3 step implementation instead")
	flags.Usage = archUsage
	if err := flags.Parse(cmd.Args[1:]...); err != nil {
		return 1
	}
	if len(flags.Args) > 0 {
		flags.PrintError("bad argc: want 0")
		return 1
	}
	if *impl {
		fmt.Fprintln(cmd.Stdout, shr3.Impl)
	} else {
		fmt.Fprintln(cmd.Stdout, arch())
	}
	return 0
}
