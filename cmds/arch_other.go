//go:build !unix || tinygo
// +build !unix tinygo

package cmds

func arch() string {
	return goarch()
}
