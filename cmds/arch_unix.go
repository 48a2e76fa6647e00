//go:build unix && !tinygo
// +build unix,!tinygo

package cmds

import "golang.org/x/sys/unix"

func arch() string {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return goarch()
	}
	return unix.ByteSliceToString(uname.Machine[:])
}
