//go:build avr
// +build avr

package shr3

const Impl = "avr"

func step(x uint32) uint32 {
	return stepPairs(x)
}
