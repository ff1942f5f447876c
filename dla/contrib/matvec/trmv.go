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

import "github.com/ajroetker/go-dla/dla"

// trmvUnb computes x := op(A) * x in place for a triangular matrix.
// Transposition flips the effective triangle, so element reads always land
// in the stored one. With a unit diagonal the stored diagonal entry is
// never read.
func trmvUnb[T dla.Elem](a dla.MatrixView[T], uplo dla.Uplo, diag dla.Diag, trans dla.Trans, x dla.VectorView[T]) {
	n := a.M
	transpose := trans.DoesTranspose()
	conj := trans.DoesConj()

	// Row i of op(A) is nonzero for j >= i when the effective triangle is
	// upper, j <= i when lower.
	effUpper := (uplo == dla.Upper) != transpose

	if effUpper {
		// Ascending: x[i] only reads x[j] with j >= i, still original.
		for i := 0; i < n; i++ {
			var acc T
			if diag == dla.Unit {
				acc = x.At(i)
			} else {
				acc = opElem(a, transpose, conj, i, i) * x.At(i)
			}
			for j := i + 1; j < n; j++ {
				acc += opElem(a, transpose, conj, i, j) * x.At(j)
			}
			x.Set(i, acc)
		}
		return
	}
	// Descending: x[i] only reads x[j] with j <= i, still original.
	for i := n - 1; i >= 0; i-- {
		var acc T
		if diag == dla.Unit {
			acc = x.At(i)
		} else {
			acc = opElem(a, transpose, conj, i, i) * x.At(i)
		}
		for j := 0; j < i; j++ {
			acc += opElem(a, transpose, conj, i, j) * x.At(j)
		}
		x.Set(i, acc)
	}
}

// Trmv computes x := op(A) * x for a triangular operand, honoring its
// uplo, diag, and transpose/conjugate tags.
func Trmv(a *dla.Matrix, x *dla.Vector) {
	requireSameKind(a.Kind, x.Kind, "trmv")
	f, err := trmvTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(a, x)
}
