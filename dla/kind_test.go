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

import "testing"

func TestKindOf(t *testing.T) {
	if got := KindOf[float32](); got != Float32 {
		t.Errorf("KindOf[float32] = %s, want float32", got)
	}
	if got := KindOf[float64](); got != Float64 {
		t.Errorf("KindOf[float64] = %s, want float64", got)
	}
	if got := KindOf[complex64](); got != Complex64 {
		t.Errorf("KindOf[complex64] = %s, want complex64", got)
	}
	if got := KindOf[complex128](); got != Complex128 {
		t.Errorf("KindOf[complex128] = %s, want complex128", got)
	}
}

func TestProjectToReal(t *testing.T) {
	cases := []struct {
		in, want NumericKind
	}{
		{Float32, Float32},
		{Float64, Float64},
		{Complex64, Float32},
		{Complex128, Float64},
	}
	for _, c := range cases {
		if got := c.in.ProjectToReal(); got != c.want {
			t.Errorf("%s.ProjectToReal() = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestPromote(t *testing.T) {
	cases := []struct {
		a, b, want NumericKind
	}{
		{Float32, Float32, Float32},
		{Float32, Float64, Float64},
		{Float32, Complex64, Complex64},
		{Float64, Complex64, Complex128},
		{Complex64, Complex128, Complex128},
		{Float64, Float64, Float64},
	}
	for _, c := range cases {
		if got := Promote(c.a, c.b); got != c.want {
			t.Errorf("Promote(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestCastRoundTrip(t *testing.T) {
	// Widening then narrowing within the same kind is exact.
	if got := CastTo[float32](CastOf(float32(1.5))); got != 1.5 {
		t.Errorf("float32 round trip = %v", got)
	}
	if got := CastTo[complex64](CastOf(complex64(complex(1, -2)))); got != complex(1, -2) {
		t.Errorf("complex64 round trip = %v", got)
	}
	// Projecting complex onto real drops the imaginary component.
	if got := CastTo[float64](CastOf(complex128(complex(3, 4)))); got != 3 {
		t.Errorf("complex128 -> float64 = %v, want 3", got)
	}
}

func TestConj(t *testing.T) {
	if got := Conj(float64(2)); got != 2 {
		t.Errorf("Conj(2) = %v", got)
	}
	if got := Conj(complex64(complex(1, 2))); got != complex(1, -2) {
		t.Errorf("Conj(1+2i) = %v", got)
	}
}
