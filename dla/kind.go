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

// NumericKind identifies one of the supported numeric representations
// (domain x precision). Every dispatch-table cell and every kernel
// instantiation is associated with exactly one NumericKind, or a tuple of
// them for mixed-type operations.
type NumericKind int

const (
	// Float32 is real single precision.
	Float32 NumericKind = iota

	// Float64 is real double precision.
	Float64

	// Complex64 is complex single precision.
	Complex64

	// Complex128 is complex double precision.
	Complex128

	// NumKinds is the number of supported kinds; dispatch tables are
	// dimensioned by it.
	NumKinds
)

// String returns a human-readable name for the kind.
func (k NumericKind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Char returns the conventional one-letter code for the kind (s, d, c, z).
// Used in validation-report parameter strings.
func (k NumericKind) Char() byte {
	switch k {
	case Float32:
		return 's'
	case Float64:
		return 'd'
	case Complex64:
		return 'c'
	default:
		return 'z'
	}
}

// IsComplex reports whether the kind is in the complex domain.
func (k NumericKind) IsComplex() bool {
	return k == Complex64 || k == Complex128
}

// Precision returns the bit width of one real component (32 or 64).
func (k NumericKind) Precision() int {
	if k == Float32 || k == Complex64 {
		return 32
	}
	return 64
}

// ProjectToReal returns the real kind with the same precision. Real kinds
// project to themselves.
func (k NumericKind) ProjectToReal() NumericKind {
	if k.Precision() == 32 {
		return Float32
	}
	return Float64
}

// Promote returns the kind that results from combining operands of kinds a
// and b: the domain is complex if either is complex, and the precision is
// the wider of the two.
func Promote(a, b NumericKind) NumericKind {
	complexDomain := a.IsComplex() || b.IsComplex()
	wide := a.Precision() == 64 || b.Precision() == 64
	switch {
	case complexDomain && wide:
		return Complex128
	case complexDomain:
		return Complex64
	case wide:
		return Float64
	default:
		return Float32
	}
}

// Eps returns the unit roundoff for the kind's real component.
func Eps(k NumericKind) float64 {
	if k.Precision() == 32 {
		return 1.1920929e-07
	}
	return 2.220446049250313e-16
}

// KindOf returns the NumericKind corresponding to the element type T.
func KindOf[T Elem]() NumericKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	default:
		return Complex128
	}
}
