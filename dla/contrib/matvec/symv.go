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
	"github.com/ajroetker/go-dla/dla"
	"github.com/ajroetker/go-dla/dla/contrib/vec"
)

// symvUnb computes y := alpha * A * x + beta * y for a symmetric matrix
// with one stored triangle. Each column's strictly-triangular segment is
// consumed exactly once through the fused dot-axpy kernel, covering both
// the stored element a(i,j) and its mirrored use as a(j,i). The unstored
// triangle is never dereferenced.
func symvUnb[T dla.Elem](alpha T, a dla.MatrixView[T], uplo dla.Uplo, x dla.VectorView[T], beta T, y dla.VectorView[T]) {
	n := a.M
	scaleOrClear(beta, y, n)
	for j := 0; j < n; j++ {
		temp1 := alpha * x.At(j)
		yj := y.At(j) + temp1*a.At(j, j)

		var segLen, segRow int
		if uplo == dla.Lower {
			segRow = j + 1
			segLen = n - j - 1
		} else {
			segRow = 0
			segLen = j
		}
		if segLen > 0 {
			col := a.Data[segRow*a.RS+j*a.CS:]
			rho := vec.DotAxpyv(segLen, temp1,
				col, a.RS,
				x.Data[segRow*x.Inc:], x.Inc,
				y.Data[segRow*y.Inc:], y.Inc)
			yj += alpha * rho
		}
		y.Set(j, yj)
	}
}

// Symv computes y := alpha * A * x + beta * y for a symmetric operand,
// reading only the stored triangle indicated by the operand's uplo tag.
func Symv(alpha *dla.Scalar, a *dla.Matrix, x *dla.Vector, beta *dla.Scalar, y *dla.Vector) {
	requireSameKind(a.Kind, x.Kind, "symv")
	requireSameKind(a.Kind, y.Kind, "symv")
	_, av := alpha.Resolve(a.Kind)
	_, bv := beta.Resolve(a.Kind)
	f, err := symvTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(av, a, x, bv, y)
}
