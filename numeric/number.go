package numeric

import (
	"math/big"
	"sync/atomic"
)

// Mode selects how Div resolves a ratio. All other operations are exact
// regardless of Mode.
type Mode int32

const (
	// ModeExact performs division as exact rational arithmetic (math/big.Rat).
	ModeExact Mode = iota
	// ModeFloat performs division via IEEE-754 float64, then lifts the
	// result back into a Number. This simulates the precision loss a
	// float64-only implementation would exhibit.
	ModeFloat
)

// currentMode is the process-wide fraction mode. Defaults to ModeExact.
var currentMode atomic.Int32

// SetMode installs the process-wide numeric mode. It is not meant to be
// toggled mid-election; call it once at process start (or once per test).
func SetMode(m Mode) {
	currentMode.Store(int32(m))
}

// CurrentMode returns the active process-wide numeric mode.
func CurrentMode() Mode {
	return Mode(currentMode.Load())
}

// Fixed tolerances used throughout the CSTV engine. These do not vary with
// Mode.
const (
	// EpsilonEndowment bounds the relative difference between the largest
	// and smallest donor endowment before cstv.Cstv refuses to run.
	EpsilonEndowment = 1e-10

	// EpsilonEligibility is the slack applied to GS(p) when testing
	// eligibility: GS(p)*(1+EpsilonEligibility) >= cost(p).
	EpsilonEligibility = 1e-5

	// ExcessThreshold is the literal (non-relative) threshold above which
	// excess redistribution runs instead of a zero-out reset.
	ExcessThreshold = 0.01

	// MinimalTransferQuantum is the minimal-transfer lift loop's rounding
	// guard: a remaining slice smaller than this is folded into the last
	// move instead of left as residue.
	MinimalTransferQuantum = 1e-14

	// MinimalTransferMaxIterations bounds the minimal-transfer lift loop;
	// hitting it is treated as convergence, not an error (see
	// redistribute.MinimalTransfer).
	MinimalTransferMaxIterations = 10_000
)

// Number is an exact rational value that can optionally round-trip through
// float64 on division, depending on the active Mode.
type Number struct {
	r *big.Rat
}

// Zero is the additive identity.
var Zero = Number{r: new(big.Rat)}

// NewInt builds a Number from an integer.
func NewInt(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// NewFloat builds a Number from a float64, capturing its exact binary value.
func NewFloat(f float64) Number {
	r := new(big.Rat)
	r.SetFloat64(f)
	if r == nil {
		// SetFloat64 returns nil for NaN/Inf; callers must not pass those.
		return Zero
	}
	return Number{r: r}
}

// NewRat builds a Number representing num/den exactly (den must be nonzero).
func NewRat(num, den int64) Number {
	return Number{r: big.NewRat(num, den)}
}

func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}
	return n.r
}

// Add returns a+b.
func Add(a, b Number) Number {
	return Number{r: new(big.Rat).Add(a.rat(), b.rat())}
}

// Sub returns a-b.
func Sub(a, b Number) Number {
	return Number{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

// Mul returns a*b.
func Mul(a, b Number) Number {
	return Number{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Neg returns -a.
func Neg(a Number) Number {
	return Number{r: new(big.Rat).Neg(a.rat())}
}

// Div returns a/b. Under ModeExact this is exact rational division; under
// ModeFloat, a and b are each rounded to float64, divided in float64, and
// the result is lifted back to a Number — reproducing the precision
// characteristics of a float64-only implementation.
func Div(a, b Number) Number {
	if b.IsZero() {
		return Zero
	}
	if CurrentMode() == ModeFloat {
		return NewFloat(a.ToFloat() / b.ToFloat())
	}
	return Number{r: new(big.Rat).Quo(a.rat(), b.rat())}
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func Cmp(a, b Number) int {
	return a.rat().Cmp(b.rat())
}

// Equal reports whether a and b are exactly equal.
func Equal(a, b Number) bool {
	return Cmp(a, b) == 0
}

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool {
	return n.rat().Sign() == 0
}

// IsPositive reports whether n > 0.
func (n Number) IsPositive() bool {
	return n.rat().Sign() > 0
}

// IsNegative reports whether n < 0.
func (n Number) IsNegative() bool {
	return n.rat().Sign() < 0
}

// ToFloat converts n to the nearest float64.
func (n Number) ToFloat() float64 {
	f, _ := n.rat().Float64()
	return f
}

// String renders n in decimal form, trimmed to a reasonable precision.
func (n Number) String() string {
	return n.rat().FloatString(12)
}

// Ceil returns the smallest integer-valued Number >= n, computed exactly
// via big.Rat/big.Int (no float64 round-trip, so it behaves identically in
// both Mode values).
func Ceil(n Number) Number {
	r := n.rat()
	num := r.Num()
	den := r.Denom()
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(num, den, m)
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return Number{r: new(big.Rat).SetInt(q)}
}

// Max returns the greater of a and b.
func Max(a, b Number) Number {
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func Min(a, b Number) Number {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}
