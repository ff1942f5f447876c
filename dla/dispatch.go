package dla

import (
	"fmt"
	"os"
	"strconv"
)

// Config controls how densely the type-indexed dispatch tables are
// populated. With both switches off only the homogeneous cells (same kind
// for every operand) are filled; the mixed cells stay unpopulated so a
// lookup for them fails loudly instead of silently misrouting.
type Config struct {
	// MixedDomain allows real operands to pair with complex operands of
	// the same precision via implicit promotion.
	MixedDomain bool

	// MixedPrecision allows operands of different bit widths within the
	// same domain to pair.
	MixedPrecision bool
}

// DefaultConfig returns the process-wide dispatch configuration. Both
// switches default to off and can be enabled through the DLA_MIXED_DOMAIN
// and DLA_MIXED_PRECISION environment variables.
func DefaultConfig() Config {
	return Config{
		MixedDomain:    boolEnv("DLA_MIXED_DOMAIN"),
		MixedPrecision: boolEnv("DLA_MIXED_PRECISION"),
	}
}

func boolEnv(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// PairEnabled reports whether the configuration populates the (a, b) cell.
func (c Config) PairEnabled(a, b NumericKind) bool {
	sameDomain := a.IsComplex() == b.IsComplex()
	samePrecision := a.Precision() == b.Precision()
	switch {
	case sameDomain && samePrecision:
		return true
	case sameDomain:
		return c.MixedPrecision
	case samePrecision:
		return c.MixedDomain
	default:
		return c.MixedDomain && c.MixedPrecision
	}
}

// ForEachKind visits every supported kind.
func ForEachKind(visit func(k NumericKind)) {
	for k := NumericKind(0); k < NumKinds; k++ {
		visit(k)
	}
}

// ForEachKindPair visits exactly the kind pairs the configuration enables.
func ForEachKindPair(cfg Config, visit func(a, b NumericKind)) {
	for a := NumericKind(0); a < NumKinds; a++ {
		for b := NumericKind(0); b < NumKinds; b++ {
			if cfg.PairEnabled(a, b) {
				visit(a, b)
			}
		}
	}
}

// Table1 is a dispatch table for operations whose operands share one kind.
// It is populated once at initialization and read-only afterward, so
// concurrent lookups need no synchronization.
type Table1[F any] struct {
	cells [NumKinds]F
	set   [NumKinds]bool
}

// Insert registers the entry point for kind k.
func (t *Table1[F]) Insert(k NumericKind, f F) {
	t.cells[k] = f
	t.set[k] = true
}

// Populated reports whether kind k has an entry point.
func (t *Table1[F]) Populated(k NumericKind) bool {
	return k >= 0 && k < NumKinds && t.set[k]
}

// Lookup returns the entry point for kind k in O(1). A miss means the
// operation was invoked with a kind this build does not support; callers
// treat it as fatal.
func (t *Table1[F]) Lookup(k NumericKind) (F, error) {
	var zero F
	if !t.Populated(k) {
		return zero, fmt.Errorf("dla: no entry point registered for kind %s", k)
	}
	return t.cells[k], nil
}

// Table2 is a dispatch table for operations with two independently typed
// operands, indexed [kind of first][kind of second]. Cells excluded by the
// build configuration stay unpopulated rather than being omitted, so every
// lookup remains O(1) and a disabled combination is caught, not misrouted.
type Table2[F any] struct {
	cells [NumKinds][NumKinds]F
	set   [NumKinds][NumKinds]bool
}

// Insert registers the entry point for the (a, b) kind pair.
func (t *Table2[F]) Insert(a, b NumericKind, f F) {
	t.cells[a][b] = f
	t.set[a][b] = true
}

// Populated reports whether the (a, b) cell has an entry point.
func (t *Table2[F]) Populated(a, b NumericKind) bool {
	return a >= 0 && a < NumKinds && b >= 0 && b < NumKinds && t.set[a][b]
}

// Lookup returns the entry point for the (a, b) kind pair in O(1); a miss
// is a fatal configuration error for the caller.
func (t *Table2[F]) Lookup(a, b NumericKind) (F, error) {
	var zero F
	if !t.Populated(a, b) {
		return zero, fmt.Errorf("dla: no entry point registered for kind pair (%s, %s)", a, b)
	}
	return t.cells[a][b], nil
}
