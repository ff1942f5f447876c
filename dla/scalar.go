// Copyright 2025 go-dla Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dla

// Scalar is a scalar operand. It is either a typed value with a concrete
// NumericKind, or a named constant whose effective kind is adopted from the
// non-scalar operand it scales. The two forms are resolved identically
// through Resolve, so numeric routines never distinguish them.
type Scalar struct {
	kind     NumericKind
	value    complex128
	constant bool
}

// Process-wide named constants. Immutable after initialization; safe for
// concurrent use.
var (
	// Zero is the additive identity.
	Zero = &Scalar{value: 0, constant: true}

	// One is the multiplicative identity.
	One = &Scalar{value: 1, constant: true}

	// MinusOne is the negated multiplicative identity.
	MinusOne = &Scalar{value: -1, constant: true}

	// Two is the constant 2.
	Two = &Scalar{value: 2, constant: true}
)

// NewScalar creates a detached scalar of the given kind with value zero.
func NewScalar(kind NumericKind) *Scalar {
	return &Scalar{kind: kind}
}

// SetSc sets the scalar's value from real and imaginary components. The
// imaginary component is dropped on access when the effective kind is real.
func (s *Scalar) SetSc(re, im float64) {
	s.value = complex(re, im)
}

// GetSc returns the scalar's value as real and imaginary components.
func (s *Scalar) GetSc() (re, im float64) {
	return real(s.value), imag(s.value)
}

// Kind returns the scalar's declared kind. For named constants the declared
// kind is meaningless; use Resolve.
func (s *Scalar) Kind() NumericKind {
	return s.kind
}

// IsConst reports whether the scalar is a named constant rather than a
// typed value.
func (s *Scalar) IsConst() bool {
	return s.constant
}

// Resolve returns the scalar's effective kind and value with respect to a
// target operand kind. A named constant adopts the target kind; a typed
// scalar keeps its own.
func (s *Scalar) Resolve(target NumericKind) (NumericKind, complex128) {
	if s.constant {
		return target, s.value
	}
	return s.kind, s.value
}

// ScalarTo resolves a scalar against the element type T and narrows it.
func ScalarTo[T Elem](s *Scalar) T {
	_, v := s.Resolve(KindOf[T]())
	return CastTo[T](v)
}

// TypedValue narrows v to the concrete Go type for kind, boxed as any.
// Dispatch front ends use it to hand a correctly typed scalar to a table
// cell selected at runtime.
func TypedValue(kind NumericKind, v complex128) any {
	switch kind {
	case Float32:
		return float32(real(v))
	case Float64:
		return real(v)
	case Complex64:
		return complex64(v)
	default:
		return v
	}
}
