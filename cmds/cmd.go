package cmds

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Name is the multi-call binary name. Invoked under any other name, the
// binary runs the command of that name.
const Name = "shr3"

type Cmd struct {
	Path     string
	Args     []string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	ExitCode int
}

type CmdFunc func(*Cmd) int

var Cmds = map[string]CmdFunc{}

func Command(argv ...string) *Cmd {
	c := &Cmd{}
	c.Path = argv[0]
	c.Args = argv
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c
}

func CmdList() (cmds []string) {
	for cmd := range Cmds {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return
}

func (c *Cmd) Default() int {
	fmt.Fprintf(c.Stderr, "Usage: %s [command]\nCommands: %s\n",
		Name, strings.Join(CmdList(), ", "))
	return 1
}

func (c *Cmd) Run() int {
	cmd := progname(c.Path)
	if cmd == Name {
		if len(c.Args) < 2 {
			c.ExitCode = c.Default()
			return c.ExitCode
		}
		c.Args = c.Args[1:]
		c.Path = c.Args[0]
		cmd = progname(c.Path)
	}
	if fn, ok := Cmds[cmd]; ok {
		c.ExitCode = fn(c)
	} else {
		fmt.Fprintln(c.Stderr, "bad command:", c.Args[0])
		c.ExitCode = 1
	}
	return c.ExitCode
}

func progname(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".exe")
}
