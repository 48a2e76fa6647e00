package cmds

import (
	"strconv"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"

	"lesiw.io/shr3"
	"lesiw.io/shr3/internal/flag"
)

type seedFlags struct {
	flags  *flag.FlagSet
	seed   *uint64
	phrase *string
}

func newSeedFlags(flags *flag.FlagSet) *seedFlags {
	return &seedFlags{
		flags:  flags,
		seed:   flags.Uint("s", 32, "Start from state `seed` (default 1)"),
		phrase: flags.String("S", "Derive the seed from `phrase`"),
	}
}

// generator returns a generator seeded as the flags ask.
func (sf *seedFlags) generator() (*shr3.Shr3, error) {
	switch {
	case sf.flags.Set("s") && sf.flags.Set("S"):
		return nil, errors.New("bad seed: -s and -S are exclusive")
	case sf.flags.Set("S"):
		return shr3.NewState(phraseSeed(*sf.phrase)), nil
	case sf.flags.Set("s"):
		if *sf.seed == 0 {
			return nil, errors.New("bad seed: must not be zero")
		}
		return shr3.NewState(uint32(*sf.seed)), nil
	}
	return shr3.New(), nil
}

// phraseSeed folds the xxhash of phrase into a nonzero state.
func phraseSeed(phrase string) uint32 {
	h := xxhash.Sum64([]byte(phrase))
	if s := uint32(h) ^ uint32(h>>32); s != 0 {
		return s
	}
	return shr3.DefaultSeed
}

// countFlag applies def when -n was not given and rejects negative counts.
func countFlag(flags *flag.FlagSet, n *int, def int) error {
	if !flags.Set("n") {
		*n = def
	}
	if *n < 0 {
		return errors.New("bad count: must not be negative")
	}
	return nil
}

func parseUint(s string, bits int, what string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, errors.Wrapf(err, "bad %s", what)
	}
	return v, nil
}
