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

package matvec

import (
	"math/rand"

	"github.com/ajroetker/go-dla/dla"
	"github.com/ajroetker/go-dla/dla/contrib/vec"
)

// Dense matrix utilities for preparing operands: randomize, densify a
// symmetric operand from its stored triangle, trim the unstored triangle,
// copy, scale. The verifier's experiment setup is built from these.

func randmUnb[T dla.Elem](rng *rand.Rand, a dla.MatrixView[T]) {
	for i := 0; i < a.M; i++ {
		vec.Randv(rng, a.N, a.Data[i*a.RS:], a.CS)
	}
}

func copymUnb[T dla.Elem](src, dst dla.MatrixView[T]) {
	for i := 0; i < src.M; i++ {
		vec.Copyv(src.N, src.Data[i*src.RS:], src.CS, dst.Data[i*dst.RS:], dst.CS)
	}
}

func scalmUnb[T dla.Elem](alpha T, a dla.MatrixView[T]) {
	for i := 0; i < a.M; i++ {
		vec.Scalv(a.N, alpha, a.Data[i*a.RS:], a.CS)
	}
}

// mksymmUnb mirrors the stored triangle onto the unstored one, producing a
// densely symmetric matrix.
func mksymmUnb[T dla.Elem](a dla.MatrixView[T], uplo dla.Uplo) {
	for i := 0; i < a.M; i++ {
		for j := i + 1; j < a.N; j++ {
			if uplo == dla.Lower {
				a.Set(i, j, a.At(j, i))
			} else {
				a.Set(j, i, a.At(i, j))
			}
		}
	}
}

// mktrimUnb zeroes the unstored triangle. Verification setups use it so a
// kernel that illegally reads the unstored region produces a detectably
// wrong result instead of a plausible one.
func mktrimUnb[T dla.Elem](a dla.MatrixView[T], uplo dla.Uplo) {
	var zero T
	for i := 0; i < a.M; i++ {
		for j := i + 1; j < a.N; j++ {
			if uplo == dla.Lower {
				a.Set(i, j, zero)
			} else {
				a.Set(j, i, zero)
			}
		}
	}
}

// shiftdUnb adds sigma to every diagonal element. Experiment setup uses it
// to push a randomized triangular operand toward diagonal dominance so a
// solve against it stays well conditioned.
func shiftdUnb[T dla.Elem](sigma T, a dla.MatrixView[T]) {
	n := min(a.M, a.N)
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+sigma)
	}
}

// Randm fills every element of a with reproducible uniform values.
func Randm(rng *rand.Rand, a *dla.Matrix) {
	f, err := randmTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(rng, a)
}

// Copym copies src into dst element by element. Extents and kind must
// match.
func Copym(src, dst *dla.Matrix) {
	requireSameKind(src.Kind, dst.Kind, "copym")
	f, err := copymTable.Lookup(src.Kind)
	if err != nil {
		panic(err)
	}
	f(src, dst)
}

// Scalm scales every element of a by alpha.
func Scalm(alpha *dla.Scalar, a *dla.Matrix) {
	_, av := alpha.Resolve(a.Kind)
	f, err := scalmTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(av, a)
}

// Shiftd adds sigma to the diagonal of a.
func Shiftd(sigma *dla.Scalar, a *dla.Matrix) {
	_, sv := sigma.Resolve(a.Kind)
	f, err := shiftdTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(sv, a)
}

// Mksymm densifies a symmetric operand by mirroring its stored triangle.
func Mksymm(a *dla.Matrix) {
	f, err := mksymmTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(a)
}

// Mktrim zeroes the unstored triangle of a symmetric or triangular
// operand.
func Mktrim(a *dla.Matrix) {
	f, err := mktrimTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(a)
}
