package shr3

// stepPairs computes Step on two 16 bit halves.
//
// 8 bit targets keep the state in register pairs and have no barrel shifter,
// so every shift is split at the half boundary and the halves are recombined
// only once at the end. The result is identical to Step for every input.
func stepPairs(x uint32) uint32 {
	lo := uint16(x)
	hi := uint16(x >> 16)

	// x ^= x << 13
	hi ^= hi<<13 | lo>>3
	lo ^= lo << 13

	// x ^= x >> 17
	lo ^= hi >> 1

	// x ^= x << 5
	hi ^= hi<<5 | lo>>11
	lo ^= lo << 5

	return uint32(lo) | uint32(hi)<<16
}
