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

package syrk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-dla/dla"
)

// syrkReference computes the full dense beta*C + alpha*op(A)*op(A)^T.
func syrkReference(alpha float64, a []float64, rows, cols int, transpose bool, beta float64, c []float64, m int) {
	k := cols
	if transpose {
		k = rows
	}
	at := func(i, l int) float64 {
		if transpose {
			return a[l*cols+i]
		}
		return a[i*cols+l]
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			var acc float64
			for l := 0; l < k; l++ {
				acc += at(i, l) * at(j, l)
			}
			c[i*m+j] = beta*c[i*m+j] + alpha*acc
		}
	}
}

func TestSyrkAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	m, k := 6, 9

	for _, transpose := range []bool{false, true} {
		for _, uplo := range []dla.Uplo{dla.Lower, dla.Upper} {
			rows, cols := m, k
			if transpose {
				rows, cols = k, m
			}
			a := dla.NewMatrix[float64](rows, cols)
			if transpose {
				a.Trans = dla.Transpose
			}
			for i := range a.Data.([]float64) {
				a.Data.([]float64)[i] = 2*rng.Float64() - 1
			}
			c := dla.NewMatrix[float64](m, m)
			c.Struc, c.Uplo = dla.Symmetric, uplo
			for i := range c.Data.([]float64) {
				c.Data.([]float64)[i] = 2*rng.Float64() - 1
			}

			want := make([]float64, m*m)
			copy(want, c.Data.([]float64))
			syrkReference(1.2, a.Data.([]float64), rows, cols, transpose, -1.0, want, m)

			alpha := dla.NewScalar(dla.Float64)
			alpha.SetSc(1.2, 0)
			Syrk(alpha, a, dla.MinusOne, c)

			cd := c.Data.([]float64)
			for i := 0; i < m; i++ {
				for j := 0; j < m; j++ {
					stored := (uplo == dla.Lower && j <= i) || (uplo == dla.Upper && j >= i)
					if !stored {
						continue
					}
					if math.Abs(cd[i*m+j]-want[i*m+j]) > 1e-12 {
						t.Errorf("transpose=%v uplo=%v: c[%d,%d] = %v, want %v",
							transpose, uplo, i, j, cd[i*m+j], want[i*m+j])
					}
				}
			}
		}
	}
}

func TestSyrkTouchesOnlyStoredTriangle(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	m, k := 5, 4
	a := dla.NewMatrix[float64](m, k)
	for i := range a.Data.([]float64) {
		a.Data.([]float64)[i] = rng.Float64()
	}
	c := dla.NewMatrix[float64](m, m)
	c.Struc, c.Uplo = dla.Symmetric, dla.Lower
	cd := c.Data.([]float64)
	const sentinel = -123.5
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			cd[i*m+j] = sentinel
		}
	}

	Syrk(dla.One, a, dla.Zero, c)

	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if cd[i*m+j] != sentinel {
				t.Fatalf("unstored (%d,%d) was written", i, j)
			}
		}
	}
}

func TestSyrkBetaZeroOverwrites(t *testing.T) {
	m, k := 3, 2
	a := dla.NewMatrix[float64](m, k)
	ad := a.Data.([]float64)
	for i := range ad {
		ad[i] = float64(i + 1)
	}
	c := dla.NewMatrix[float64](m, m)
	c.Struc, c.Uplo = dla.Symmetric, dla.Upper
	cd := c.Data.([]float64)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			cd[i*m+j] = math.NaN() // uninitialized output must not propagate
		}
	}

	Syrk(dla.One, a, dla.Zero, c)

	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			if math.IsNaN(cd[i*m+j]) {
				t.Fatalf("beta == 0 scaled instead of overwriting at (%d,%d)", i, j)
			}
		}
	}
}

func TestSyrkComplex(t *testing.T) {
	m, k := 2, 3
	a := dla.NewMatrix[complex128](m, k)
	ad := a.Data.([]complex128)
	for i := range ad {
		ad[i] = complex(float64(i), float64(i%2))
	}
	c := dla.NewMatrix[complex128](m, m)
	c.Struc, c.Uplo = dla.Symmetric, dla.Lower

	Syrk(dla.One, a, dla.Zero, c)

	cd := c.Data.([]complex128)
	for i := 0; i < m; i++ {
		for j := 0; j <= i; j++ {
			var want complex128
			for l := 0; l < k; l++ {
				// Unconjugated product, per the symmetric (not
				// Hermitian) rank-k definition.
				want += ad[i*k+l] * ad[j*k+l]
			}
			if cd[i*m+j] != want {
				t.Errorf("c[%d,%d] = %v, want %v", i, j, cd[i*m+j], want)
			}
		}
	}
}
