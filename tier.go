package idle

import (
	"errors"
	"fmt"
	"math"
)

//go:generate go run scripts/tier/codegen.go

// Tier type represents a scale level of a number.
// A number with tier t and mantissa m equals m * 1000^t.
//
// The first [NumTiers] tiers have a single-character display symbol:
// tier 0 has no symbol, tiers 1 through 26 use the letters a-z, and
// tiers 27 through 52 use the letters A-Z.
// Higher tiers are fully supported by arithmetic, but print as
// "symbolUndefined".
type Tier uint64

// MaxTier is the highest tier a number can reach.
// Arithmetic saturates at this tier instead of wrapping around.
const MaxTier Tier = math.MaxUint64

const undefinedSymbol = "symbolUndefined"

var errInvalidSymbol = errors.New("invalid tier symbol")

// ParseTier converts a display symbol to a tier.
// The empty string corresponds to tier 0.
//
// ParseTier returns an error if the symbol is not a part of the alphabet.
func ParseTier(sym string) (Tier, error) {
	t, ok := tierLookup[sym]
	if !ok {
		return 0, fmt.Errorf("%w %q", errInvalidSymbol, sym)
	}
	return t, nil
}

// MustParseTier is like [ParseTier] but panics if the symbol cannot be parsed.
// It simplifies safe initialization of global variables holding tiers.
func MustParseTier(sym string) Tier {
	t, err := ParseTier(sym)
	if err != nil {
		panic(fmt.Sprintf("ParseTier(%q) failed: %v", sym, err))
	}
	return t
}

// Symbol returns the display symbol of the tier.
// If the tier has no symbol, then false is returned.
// See also constructor [ParseTier].
func (t Tier) Symbol() (sym string, ok bool) {
	if !t.IsDefined() {
		return "", false
	}
	return symbolLookup[t], true
}

// IsDefined returns:
//
//	true  if t < NumTiers
//	false otherwise
func (t Tier) IsDefined() bool {
	return t < NumTiers
}

// String method implements the [fmt.Stringer] interface and returns
// the display symbol of the tier, or "symbolUndefined" for tiers
// without a symbol.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Tier) String() string {
	sym, ok := t.Symbol()
	if !ok {
		return undefinedSymbol
	}
	return sym
}

// add returns the sum of tiers t and u.
// If the sum does not fit into a tier, then false is returned.
func (t Tier) add(u Tier) (Tier, bool) {
	if t > MaxTier-u {
		return MaxTier, false
	}
	return t + u, true
}
