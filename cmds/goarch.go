package cmds

import "runtime"

func goarch() string {
	switch runtime.GOARCH {
	case "386":
		return "i386"
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	default:
		return runtime.GOARCH
	}
}
