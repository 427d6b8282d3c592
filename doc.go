/*
Package num provides a uint128 (U128) type implementing most of the
big.Int API, plus BN, a 96-bit extended-range real number type spanning
magnitudes far beyond a 64-bit float, built on U128 as its fraction-field
substrate.

U128 and BN are value types; all operations return new values.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

U128 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromString(s string) (out U128, accurate bool, err error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	U128FromFloat32(f float32) (out U128, inRange bool)
	U128FromFloat64(f float64) (out U128, inRange bool)

U128 and BN support the following formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

BN additionally provides Parse/TryParse, elementary transcendentals
(Log10, Exp10, Log2, Exp2, Log, Exp, Pow), a Factorial convenience, and
the generic-numeric-tower TryConvertFrom/TryConvertTo helpers.

*/
package num
