//go:build !avr
// +build !avr

package shr3

// Impl names the step implementation selected for this target.
const Impl = "generic"

func step(x uint32) uint32 {
	return Step(x)
}
