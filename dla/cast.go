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

// The mixed-type cast semantics of the whole framework live here: every
// cross-kind table cell is built from one widening conversion to complex128
// followed by one narrowing conversion to the destination kind. Projecting
// a complex value onto a real kind drops the imaginary component.

// CastOf widens an element of any supported kind to complex128.
func CastOf[T Elem](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	default:
		return x.(complex128)
	}
}

// CastTo narrows a complex128 value to the element type T. Real targets
// receive the real component only.
func CastTo[T Elem](v complex128) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(real(v))).(T)
	case float64:
		return any(real(v)).(T)
	case complex64:
		return any(complex64(v)).(T)
	default:
		return any(v).(T)
	}
}

// Conj returns the complex conjugate of v. Real kinds are unchanged.
func Conj[T Elem](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}

// AbsSq returns |v|^2 as a float64, the correct real projection for both
// domains. Norm computations accumulate in it regardless of kind.
func AbsSq[T Elem](v T) float64 {
	c := CastOf(v)
	return real(c)*real(c) + imag(c)*imag(c)
}
