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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairEnabled(t *testing.T) {
	none := Config{}
	// Homogeneous pairs are always enabled.
	ForEachKind(func(k NumericKind) {
		assert.True(t, none.PairEnabled(k, k), "homogeneous pair %s", k)
	})
	// Everything else is off by default.
	assert.False(t, none.PairEnabled(Float32, Float64))
	assert.False(t, none.PairEnabled(Float32, Complex64))
	assert.False(t, none.PairEnabled(Float32, Complex128))

	domain := Config{MixedDomain: true}
	assert.True(t, domain.PairEnabled(Float32, Complex64))
	assert.True(t, domain.PairEnabled(Complex128, Float64))
	assert.False(t, domain.PairEnabled(Float32, Float64), "precision mixing needs its own switch")
	assert.False(t, domain.PairEnabled(Float32, Complex128), "cross-domain cross-precision needs both switches")

	precision := Config{MixedPrecision: true}
	assert.True(t, precision.PairEnabled(Float32, Float64))
	assert.True(t, precision.PairEnabled(Complex64, Complex128))
	assert.False(t, precision.PairEnabled(Float64, Complex64))

	all := Config{MixedDomain: true, MixedPrecision: true}
	ForEachKind(func(a NumericKind) {
		ForEachKind(func(b NumericKind) {
			assert.True(t, all.PairEnabled(a, b), "(%s, %s)", a, b)
		})
	})
}

func TestTable2PopulationFollowsSwitches(t *testing.T) {
	// Populate a table from a single template the way operation packages
	// do, then verify the disabled cells are detectably unpopulated.
	var tab Table2[func() (NumericKind, NumericKind)]
	cfg := Config{}
	ForEachKindPair(cfg, func(a, b NumericKind) {
		tab.Insert(a, b, func() (NumericKind, NumericKind) { return a, b })
	})

	ForEachKind(func(a NumericKind) {
		ForEachKind(func(b NumericKind) {
			if a == b {
				f, err := tab.Lookup(a, b)
				require.NoError(t, err)
				ra, rb := f()
				// A populated cell must be its own instantiation, never an
				// alias of another kind's entry point.
				assert.Equal(t, a, ra)
				assert.Equal(t, b, rb)
			} else {
				assert.False(t, tab.Populated(a, b), "(%s, %s) should be unpopulated", a, b)
				_, err := tab.Lookup(a, b)
				assert.Error(t, err)
			}
		})
	})
}

func TestTable1LookupMiss(t *testing.T) {
	var tab Table1[func()]
	tab.Insert(Float64, func() {})

	_, err := tab.Lookup(Float64)
	assert.NoError(t, err)
	_, err = tab.Lookup(Complex64)
	assert.Error(t, err)
	assert.False(t, tab.Populated(NumericKind(-1)))
}

func TestScalarResolve(t *testing.T) {
	// Named constants adopt the target kind.
	kind, v := One.Resolve(Complex64)
	assert.Equal(t, Complex64, kind)
	assert.Equal(t, complex128(1), v)

	// Typed scalars keep their own kind and value.
	s := NewScalar(Float64)
	s.SetSc(1.2, 0.5)
	kind, v = s.Resolve(Complex128)
	assert.Equal(t, Float64, kind)
	assert.Equal(t, complex(1.2, 0.5), v)

	// Narrowing to a real element type drops the imaginary part.
	assert.Equal(t, 1.2, ScalarTo[float64](s))
	assert.Equal(t, complex64(complex(1.2, 0.5)), ScalarTo[complex64](s))
}
