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

// Package syrk implements the symmetric rank-k update
// C := beta * C + alpha * op(A) * op(A)^T, touching only the stored
// triangle of C.
package syrk

import (
	"fmt"

	"github.com/ajroetker/go-dla/dla"
	"github.com/ajroetker/go-dla/dla/contrib/vec"
)

// syrkUnb updates the stored triangle of C. With a row-major untransposed
// A the inner products run over contiguous rows and go through the fused
// vector kernel; every other layout takes the strided path.
func syrkUnb[T dla.Elem](alpha T, a dla.MatrixView[T], transpose bool, uplo dla.Uplo, beta T, c dla.MatrixView[T]) {
	m, k := a.M, a.N
	if transpose {
		m, k = k, m
	}
	var zero T

	rowDot := func(i, j int) T {
		var acc T
		for l := 0; l < k; l++ {
			if transpose {
				acc += a.At(l, i) * a.At(l, j)
			} else {
				acc += a.At(i, l) * a.At(j, l)
			}
		}
		return acc
	}
	if !transpose && a.CS == 1 {
		rowDot = func(i, j int) T {
			return vec.Dotv(k, a.Data[i*a.RS:], 1, a.Data[j*a.RS:], 1)
		}
	}

	for i := 0; i < m; i++ {
		jLo, jHi := 0, i+1 // lower: row segment up to the diagonal
		if uplo == dla.Upper {
			jLo, jHi = i, m
		}
		for j := jLo; j < jHi; j++ {
			acc := alpha * rowDot(i, j)
			if beta != zero {
				acc += beta * c.At(i, j)
			}
			c.Set(i, j, acc)
		}
	}
}

type syrkFunc func(alpha complex128, a *dla.Matrix, beta complex128, c *dla.Matrix)

var syrkTable dla.Table1[syrkFunc]

func init() {
	registerSyrk[float32]()
	registerSyrk[float64]()
	registerSyrk[complex64]()
	registerSyrk[complex128]()
}

func registerSyrk[T dla.Elem]() {
	syrkTable.Insert(dla.KindOf[T](), func(alpha complex128, a *dla.Matrix, beta complex128, c *dla.Matrix) {
		syrkUnb(dla.CastTo[T](alpha), dla.MatView[T](a), a.Trans.DoesTranspose(), c.Uplo, dla.CastTo[T](beta), dla.MatView[T](c))
	})
}

// Syrk computes C := beta * C + alpha * op(A) * op(A)^T. C must carry the
// symmetric structural tag with a stored triangle; its unstored triangle
// is never touched. op is transposition only, never conjugation.
func Syrk(alpha *dla.Scalar, a *dla.Matrix, beta *dla.Scalar, c *dla.Matrix) {
	if c.Struc != dla.Symmetric {
		panic("syrk: C must carry the symmetric structural tag")
	}
	if c.Uplo != dla.Lower && c.Uplo != dla.Upper {
		panic("syrk: C must have a stored triangle")
	}
	if c.Rows != c.Cols {
		panic(fmt.Sprintf("syrk: C is %dx%d, want square", c.Rows, c.Cols))
	}
	if m := a.LengthAfterTrans(); m != c.Rows {
		panic(fmt.Sprintf("syrk: op(A) has %d rows but C is %dx%d", m, c.Rows, c.Cols))
	}
	if a.Trans.DoesConj() {
		panic("syrk: conjugated operands are not supported")
	}
	if a.Kind != c.Kind {
		panic(fmt.Sprintf("syrk: operand kinds differ (%s vs %s)", a.Kind, c.Kind))
	}
	_, av := alpha.Resolve(a.Kind)
	_, bv := beta.Resolve(a.Kind)
	f, err := syrkTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(av, a, bv, c)
}
