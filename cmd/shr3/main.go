package main

import (
	"os"

	"lesiw.io/shr3/cmds"
)

func main() {
	os.Exit(cmds.Command(os.Args...).Run())
}
