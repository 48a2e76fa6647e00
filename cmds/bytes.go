package cmds

import (
	"encoding/hex"
	"fmt"
	"io"

	"lesiw.io/shr3/internal/bbio"
	"lesiw.io/shr3/internal/flag"
)

const bytesUsage = `usage: bytes [-r] [-n COUNT] [-w COLUMNS] [-s SEED | -S PHRASE]

Write random bytes as hex, or as raw bytes with -r.`

func init() {
	Cmds["bytes"] = Bytes
}

func Bytes(cmd *Cmd) int {
	flags := flag.NewFlagSet(cmd.Stderr, "bytes")
	raw := flags.Bool("r", "Write raw bytes")
	count := flags.Int("n", "Write `count` bytes (default 16)")
	wrap := flags.Int("w", "Wrap hex output at `columns` (default 64, 0 to disable)")
	seed := newSeedFlags(flags)
	flags.Usage = bytesUsage
	if err := flags.Parse(cmd.Args[1:]...); err != nil {
		return 1
	}
	if len(flags.Args) > 0 {
		flags.PrintError("bad argc: want 0")
		return 1
	}
	if err := countFlag(flags, count, 16); err != nil {
		flags.PrintError(err.Error())
		return 1
	}
	if !flags.Set("w") {
		*wrap = 64
	}
	rng, err := seed.generator()
	if err != nil {
		flags.PrintError(err.Error())
		return 1
	}
	if *raw {
		if _, err := io.CopyN(cmd.Stdout, rng, int64(*count)); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
			return 1
		}
		return 0
	}
	w := bbio.NewWrapWriter(cmd.Stdout, *wrap)
	if _, err := io.CopyN(hex.NewEncoder(w), rng, int64(*count)); err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		return 1
	}
	fmt.Fprintln(cmd.Stdout)
	return 0
}
