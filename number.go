package idle

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

const (
	base    = 1000       // factor absorbed by one tier
	minMant = 1.0 / base // smallest mantissa kept without borrowing a tier
)

var (
	errNegativeNumber = errors.New("negative number")
	errMissingMant    = errors.New("missing mantissa")

	thousand = decimal.MustNew(base, 0)
)

// MaxNumber is the largest number that can be represented.
// Overflowing operations saturate to this value.
var MaxNumber = Number{mant: math.Nextafter(base, 0), tier: MaxTier}

// Number type represents a non-negative value equal to mant * 1000^tier.
// Its zero value corresponds to 0.
//
// Every constructor and operation returns a number in canonical form:
// either 0 <= mantissa < 1000, or the number is exactly zero with tier 0.
// Since canonical numbers with equal values have equal fields, numbers can be
// compared with == and used as map keys.
//
// Number is designed to be safe for concurrent use by multiple goroutines.
type Number struct {
	mant float64 // always < 1000
	tier Tier    // number of absorbed factors of 1000
}

// normalize brings a mantissa and tier pair into canonical form.
// The sign of the mantissa is discarded.
// NaN is treated as zero, infinity and tier overflow saturate to [MaxNumber].
func normalize(m float64, t Tier) (float64, Tier) {
	switch {
	case math.IsNaN(m), m == 0:
		return 0, 0
	case math.IsInf(m, 0):
		return MaxNumber.mant, MaxNumber.tier
	}

	// Absolute value
	m = math.Abs(m)

	// Move point left
	for m >= base {
		if t == MaxTier {
			return MaxNumber.mant, MaxNumber.tier
		}
		m /= base
		t++
	}

	// Move point right
	for m < minMant {
		if t == 0 {
			return 0, 0
		}
		m *= base
		t--
	}

	return m, t
}

// NewNumber returns a number equal to |mant| * 1000^tier in canonical form.
// For example, NewNumber(1500, 0) returns 1.5 at tier 1.
func NewNumber(mant float64, tier Tier) Number {
	m, t := normalize(mant, tier)
	return Number{mant: m, tier: t}
}

// NewNumberFromSymbol is like [NewNumber], but identifies the tier by its
// display symbol.
// For example, NewNumberFromSymbol(12, "c") returns 12 at tier 3.
//
// If the symbol is not a part of the alphabet, NewNumberFromSymbol logs a
// warning using [Logger] and falls back to tier 0.
func NewNumberFromSymbol(mant float64, sym string) Number {
	t, err := ParseTier(sym)
	if err != nil {
		Logger().Warn("invalid tier symbol, using tier 0", "symbol", sym)
		t = 0
	}
	return NewNumber(mant, t)
}

// NewNumberFromInt64 converts an integer to a number at tier 0.
// The sign of the integer is discarded.
func NewNumberFromInt64(i int64) Number {
	return NewNumber(float64(i), 0)
}

// NewNumberFromFloat64 converts a float to a number at tier 0.
// The sign of the float is discarded.
// See also method [Number.Float64].
func NewNumberFromFloat64(f float64) Number {
	return NewNumber(f, 0)
}

// NewNumberFromDecimal converts a decimal to a (possibly rounded) number
// at tier 0.
// The sign of the decimal is discarded.
// See also method [Number.Decimal].
func NewNumberFromDecimal(d decimal.Decimal) Number {
	f, ok := d.Abs().Float64()
	if !ok {
		return Number{}
	}
	return NewNumber(f, 0)
}

// Real is a constraint that permits any built-in integer or floating-point type.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Of converts a real number to a number at tier 0.
// The sign of the real number is discarded.
func Of[T Real](v T) Number {
	return NewNumber(float64(v), 0)
}

// ParseNumber converts a string in the display form to a number.
// The input string must consist of a non-negative decimal mantissa followed
// by an optional tier symbol:
//
//	1.50c
//	999
//	2.5e3a
//
// ParseNumber returns an error if:
//   - the mantissa is missing or is not a valid decimal number;
//   - the mantissa is negative.
//
// The last character is taken as a tier symbol whenever it is a letter, so an
// unknown letter is reported as an error rather than being ignored.
func ParseNumber(s string) (Number, error) {
	mant, sym := splitSymbol(s)
	if mant == "" {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, errMissingMant)
	}
	t, err := ParseTier(sym)
	if err != nil {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, err)
	}
	d, err := decimal.Parse(mant)
	if err != nil {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, err)
	}
	if d.IsNeg() {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, errNegativeNumber)
	}
	f, ok := d.Float64()
	if !ok {
		return Number{}, fmt.Errorf("parsing number %q: converting mantissa %v", s, d)
	}
	return NewNumber(f, t), nil
}

// MustParseNumber is like [ParseNumber] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParseNumber(s string) Number {
	x, err := ParseNumber(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNumber(%q) failed: %v", s, err))
	}
	return x
}

// splitSymbol splits the trailing tier symbol off the display form.
func splitSymbol(s string) (mant, sym string) {
	if s == "" {
		return "", ""
	}
	if c := s[len(s)-1]; ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
		return s[:len(s)-1], s[len(s)-1:]
	}
	return s, ""
}

// Mant returns the mantissa of the number.
// The result is either 0 or within the range [0.001, 1000).
func (x Number) Mant() float64 {
	return x.mant
}

// Tier returns the tier of the number.
func (x Number) Tier() Tier {
	return x.tier
}

// WithMant returns a number with the same tier as x and the given mantissa,
// brought into canonical form.
func (x Number) WithMant(mant float64) Number {
	return NewNumber(mant, x.tier)
}

// IsZero returns:
//
//	true  if x = 0
//	false otherwise
func (x Number) IsZero() bool {
	return x.mant == 0
}

// Float64 returns the value of the number as a float.
// The tier is expanded by repeated multiplication, so the result may differ from
// mant * math.Pow(1000, tier) in the last bits.
// See also constructor [NewNumberFromFloat64].
//
// If the result overflows a float64, then false is returned.
func (x Number) Float64() (f float64, ok bool) {
	f = x.mant
	for t := x.tier; t > 0; t-- {
		f *= base
		if math.IsInf(f, 0) {
			return 0, false
		}
	}
	return f, true
}

// Decimal returns the value of the number as a (possibly rounded) decimal.
// See also constructor [NewNumberFromDecimal].
//
// Decimal returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (x Number) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromFloat64(x.mant)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting mantissa: %w", err)
	}
	for t := x.tier; t > 0; t-- {
		d, err = d.Mul(thousand)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("expanding tier %v: %w", uint64(x.tier), err)
		}
	}
	return d, nil
}

// Add returns the (possibly rounded) sum of numbers x and y.
// The operand with the smaller tier is aligned to the larger tier by repeated
// division of its mantissa by 1000, which loses the digits shifted out.
func (x Number) Add(y Number) Number {
	m, n, t := align(x, y)
	return NewNumber(m+n, t)
}

// Sub returns the (possibly rounded) absolute difference between numbers x and y.
// Numbers carry no sign, so x.Sub(y) equals y.Sub(x).
func (x Number) Sub(y Number) Number {
	m, n, t := align(x, y)
	return NewNumber(m-n, t)
}

// Mul returns the (possibly rounded) product of numbers x and y.
// The tier of the product before normalization is the sum of the tiers.
// If the sum of the tiers overflows, then the result is [MaxNumber].
func (x Number) Mul(y Number) Number {
	if x.IsZero() || y.IsZero() {
		return Number{}
	}
	t, ok := x.tier.add(y.tier)
	if !ok {
		return MaxNumber
	}
	return NewNumber(x.mant*y.mant, t)
}

// Quo returns the (possibly rounded) quotient of numbers x and y.
// The tier of the quotient before normalization is the difference of the tiers.
//
// If y is zero, or the tier of y is greater than the tier of x, then Quo
// returns zero.
func (x Number) Quo(y Number) Number {
	if y.IsZero() || y.tier > x.tier {
		return Number{}
	}
	return NewNumber(x.mant/y.mant, x.tier-y.tier)
}

// align returns the mantissas of x and y rescaled to a common tier.
func align(x, y Number) (m, n float64, t Tier) {
	switch {
	case x.tier > y.tier:
		return x.mant, rescale(y.mant, x.tier-y.tier), x.tier
	case x.tier < y.tier:
		return rescale(x.mant, y.tier-x.tier), y.mant, y.tier
	}
	return x.mant, y.mant, x.tier
}

// rescale divides the mantissa by 1000 delta times.
func rescale(m float64, delta Tier) float64 {
	for ; delta > 0 && m != 0; delta-- {
		m /= base
	}
	return m
}

// Add returns the sum of number x and real number v, which is treated as
// a number at tier 0.
// See also method [Number.Add].
func Add[T Real](x Number, v T) Number {
	return x.Add(Of(v))
}

// Sub returns the absolute difference between number x and real number v,
// which is treated as a number at tier 0.
// See also method [Number.Sub].
func Sub[T Real](x Number, v T) Number {
	return x.Sub(Of(v))
}

// Mul returns the product of number x and real number v, which is treated as
// a number at tier 0.
// See also method [Number.Mul].
func Mul[T Real](x Number, v T) Number {
	return x.Mul(Of(v))
}

// Quo returns the quotient of number x and real number v, which is treated as
// a number at tier 0.
// See also method [Number.Quo].
func Quo[T Real](x Number, v T) Number {
	return x.Quo(Of(v))
}

// Cmp compares numbers and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
//
// Numbers are ordered by tier first and by mantissa second.
func (x Number) Cmp(y Number) int {
	switch {
	case x.tier > y.tier:
		return 1
	case x.tier < y.tier:
		return -1
	case x.mant > y.mant:
		return 1
	case x.mant < y.mant:
		return -1
	}
	return 0
}

// Equal returns true if numbers x and y have the same tier and mantissa.
func (x Number) Equal(y Number) bool {
	return x.tier == y.tier && x.mant == y.mant
}

// Less returns true if x < y.
func (x Number) Less(y Number) bool {
	return x.Cmp(y) < 0
}

// LessOrEqual returns true if x <= y.
func (x Number) LessOrEqual(y Number) bool {
	return x.Cmp(y) <= 0
}

// Greater returns true if x > y.
func (x Number) Greater(y Number) bool {
	return x.Cmp(y) > 0
}

// GreaterOrEqual returns true if x >= y.
func (x Number) GreaterOrEqual(y Number) bool {
	return x.Cmp(y) >= 0
}

// Max returns the larger number.
// See also method [Number.Cmp].
func (x Number) Max(y Number) Number {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the smaller number.
// See also method [Number.Cmp].
func (x Number) Min(y Number) Number {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// displayScale returns the number of fractional digits used for printing.
func (x Number) displayScale() int {
	if x.tier == 0 {
		return 0
	}
	return 2
}

// appendMant appends the mantissa rounded to the given number of fractional
// digits using [rounding half to even] (banker's rounding).
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (x Number) appendMant(text []byte, scale int) []byte {
	d, err := decimal.NewFromFloat64(x.mant)
	if err != nil || scale > decimal.MaxScale {
		return strconv.AppendFloat(text, x.mant, 'f', scale, 64)
	}
	return append(text, d.Round(scale).Pad(scale).String()...)
}

// String method implements the [fmt.Stringer] interface and returns
// the display form of the number: the mantissa followed by the tier symbol.
// The mantissa is printed without fractional digits at tier 0 and with
// two fractional digits otherwise.
// See also constructor [ParseNumber] and method [Number.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Number) String() string {
	text := make([]byte, 0, 24)
	text = x.appendMant(text, x.displayScale())
	text = append(text, x.tier.String()...)
	return string(text)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description               |
//	| ------ | ------- | ------------------------- |
//	| %s, %v | 1.50c   | Display form              |
//	| %q     | "1.50c" | Quoted display form       |
//	| %f     | 1.50    | Mantissa without a symbol |
//
// The precision, such as in %.4v or %.4f, overrides the number of fractional
// digits of the mantissa.
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Number) Format(state fmt.State, verb rune) {
	// Mantissa
	scale := x.displayScale()
	if p, ok := state.Precision(); ok {
		scale = p
	}
	body := x.appendMant(nil, scale)

	// Tier symbol
	switch verb {
	case 'f', 'F':
		// skip
	default:
		body = append(body, x.tier.String()...)
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + len(body) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)

	// Leading spaces
	for range lspaces {
		buf = append(buf, ' ')
	}

	// Opening quote
	for range lquote {
		buf = append(buf, '"')
	}

	buf = append(buf, body...)

	// Closing quote
	for range tquote {
		buf = append(buf, '"')
	}

	// Trailing spaces
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(idle.Number="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
