// Package shr3 implements the SHR3 3-shift register generator.
//
// SHR3 produces non-cryptographic random bits with very few computations,
// which makes it usable on small 8 bit microcontrollers. The shift function
// is evaluated once per extracted bit and the LSB of the new state is the
// output bit.
//
// The generator has a period of 2**32-1 bits. Do not extract more than a few
// hundred MiB from one seed if looping back to the start of the stream is a
// problem.
//
// SHR3 is not cryptographically secure.
package shr3

import "math/bits"

// DefaultSeed is the state of a generator created by New.
const DefaultSeed uint32 = 1

// zeroSeed replaces a zero state passed to NewState.
const zeroSeed uint32 = 0x7FFF_FFFF

// Step applies one round of the SHR3 shift function to x.
//
// SHR3 is from George Marsaglia's sci.math post of Feb 25 2003 describing
// the KISS generator. This is the fixed variant with a full cycle.
// Step(0) is 0; every other state stays nonzero.
func Step(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

// Unsigned is the set of integer types bits can be extracted into.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Shr3 is the generator register state.
//
// The zero value is ready to use and behaves like New.
// A Shr3 must not be used by more than one goroutine at a time.
type Shr3 struct {
	state uint32
}

// New returns a generator seeded with DefaultSeed.
func New() *Shr3 {
	return &Shr3{state: DefaultSeed}
}

// NewState returns a generator seeded with state.
// The state must not be zero; a zero state is replaced by 0x7FFFFFFF.
func NewState(state uint32) *Shr3 {
	if state == 0 {
		if debug {
			panic("shr3: zero seed")
		}
		state = zeroSeed
	}
	return &Shr3{state: state}
}

// Seed resets the generator to state.
func (r *Shr3) Seed(state uint32) {
	r.state = state
}

// State returns the current register state without advancing it.
func (r *Shr3) State() uint32 {
	if r.state == 0 {
		return DefaultSeed
	}
	return r.state
}

// Bit advances the generator once and returns the new LSB, 0 or 1.
//
// Every call compares the state against the unseeded zero value before
// stepping. Bits makes that compare once per call, not once per bit.
func (r *Shr3) Bit() uint8 {
	if r.state == 0 {
		r.state = DefaultSeed
	}
	r.state = step(r.state)
	return uint8(r.state & 1)
}

// Bits extracts n bits from r into the lower bits of the result.
// The first extracted bit is the most significant of the n.
// n must not exceed the width of T.
func Bits[T Unsigned](r *Shr3, n uint8) T {
	if debug && int(n) > width[T]() {
		panic("shr3: bit count exceeds result width")
	}
	s := r.state
	if s == 0 {
		s = DefaultSeed
	}
	var v T
	for ; n > 0; n-- {
		s = step(s)
		v = v<<1 | T(s&1)
	}
	r.state = s
	return v
}

// Get extracts as many bits as fit into T.
func Get[T Unsigned](r *Shr3) T {
	return Bits[T](r, uint8(width[T]()))
}

// Uint8 extracts 8 bits.
func (r *Shr3) Uint8() uint8 {
	return Bits[uint8](r, 8)
}

// Uint16 extracts 16 bits.
func (r *Shr3) Uint16() uint16 { return Get[uint16](r) }

// Uint32 extracts 32 bits.
func (r *Shr3) Uint32() uint32 { return Get[uint32](r) }

// Uint64 extracts 64 bits.
func (r *Shr3) Uint64() uint64 { return Get[uint64](r) }

// Read fills p with random bytes. It never fails.
func (r *Shr3) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = r.Uint8()
	}
	return len(p), nil
}

// MinMax returns a value between min and max, both inclusive.
//
// If the range size is not a power of two, values outside of it are
// discarded and drawn again, so more bits than bits.Len(max-min) may be
// extracted. The distribution is uniform.
func MinMax[T Unsigned](r *Shr3, min, max T) T {
	if debug && max < min {
		panic("shr3: max < min")
	}
	top := max - min
	n := uint8(bits.Len64(uint64(top)))
	for {
		if v := Bits[T](r, n); v <= top {
			return v + min
		}
	}
}

// Max returns a value between 0 and max, both inclusive.
func Max[T Unsigned](r *Shr3, max T) T {
	return MinMax(r, 0, max)
}

// Range returns a value in the half-open interval [lo, hi).
func Range[T Unsigned](r *Shr3, lo, hi T) T {
	if debug && hi <= lo {
		panic("shr3: empty range")
	}
	return MinMax(r, lo, hi-1)
}

func width[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}
