/*
Package idle implements scaled numbers for counters that grow without bound,
such as currencies in incremental games.
It trades precision for range: a [Number] keeps a float64 mantissa together
with a [Tier] that counts the factors of 1000 absorbed out of the mantissa.

# Features

  - Immutable numbers, ensuring safe usage across multiple goroutines
  - Range far beyond float64, up to 1000^18446744073709551615
  - Arithmetic and comparison operations between numbers and between numbers and Go integers or floats
  - Display form with single-letter tier symbols, such as "1.50c"
  - Conversion from and to [decimal.Decimal] values

# Representation

A Number consists of a mantissa and a tier and equals mantissa * 1000^tier.
Every operation returns a number in canonical form: the mantissa is within
the range [0, 1000), and the only representation of zero is mantissa 0 at
tier 0.
Canonical numbers with equal values have equal fields, so numbers can be
compared with == and used as map keys.

Numbers carry no sign.
Constructors discard the sign of their arguments, and subtraction returns
the absolute difference of its operands.

# Tier Symbols

Tiers 1 through 52 have single-character display symbols: 'a' through 'z',
then 'A' through 'Z'.
Tier 0 has no symbol, and tiers above 52 print as "symbolUndefined".

	| Tier | Symbol | Value       |
	| ---- | ------ | ----------- |
	|    0 |        | 1           |
	|    1 | a      | 1000        |
	|    2 | b      | 1000000     |
	|   26 | z      | 1000^26     |
	|   27 | A      | 1000^27     |
	|   52 | Z      | 1000^52     |

# Operations

The package provides methods Add, Sub, Mul, and Quo for numbers, and generic
functions [Add], [Sub], [Mul], and [Quo] that accept any Go integer or float
as the second operand, treating it as a number at tier 0.
Before adding or subtracting, the operand with the smaller tier is aligned
to the larger tier by repeated division of its mantissa by 1000.
Digits shifted out during alignment are lost, so adding a small number to a
much larger one leaves the larger number unchanged.

# Errors

Arithmetic operations never fail.
Division by zero, or by a number with a greater tier, returns zero.
Operations whose result exceeds the supported range return [MaxNumber].
Constructing a number with an unknown tier symbol falls back to tier 0 and
logs a warning using the logger configured with [SetLogger].
Only the parsing functions, [ParseTier] and [ParseNumber], return errors.
*/
package idle
