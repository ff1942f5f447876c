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

// gemvUnb computes y := alpha * op(A) * x + beta * y for a general matrix.
// op applies the transpose/conjugate state. beta == 0 overwrites y rather
// than scaling it, so uninitialized output storage never propagates.
func gemvUnb[T dla.Elem](alpha T, a dla.MatrixView[T], trans dla.Trans, x dla.VectorView[T], beta T, y dla.VectorView[T]) {
	m, n := a.M, a.N
	if trans.DoesTranspose() {
		m, n = n, m
	}
	scaleOrClear(beta, y, m)
	if n == 0 || m == 0 {
		return
	}
	conj := trans.DoesConj()
	for i := 0; i < m; i++ {
		var acc T
		for j := 0; j < n; j++ {
			acc += opElem(a, trans.DoesTranspose(), conj, i, j) * x.At(j)
		}
		y.Set(i, y.At(i)+alpha*acc)
	}
}

// opElem reads element (i, j) of op(A) from the stored matrix.
func opElem[T dla.Elem](a dla.MatrixView[T], transpose, conj bool, i, j int) T {
	var v T
	if transpose {
		v = a.At(j, i)
	} else {
		v = a.At(i, j)
	}
	if conj {
		v = dla.Conj(v)
	}
	return v
}

func scaleOrClear[T dla.Elem](beta T, y dla.VectorView[T], m int) {
	var zero T
	var one T = 1
	switch beta {
	case zero:
		for i := 0; i < m; i++ {
			y.Set(i, zero)
		}
	case one:
	default:
		for i := 0; i < m; i++ {
			y.Set(i, beta*y.At(i))
		}
	}
}

// Gemv computes y := alpha * op(A) * x + beta * y. All matrix and vector
// operands must share one kind; alpha and beta resolve through the scalar
// registry.
func Gemv(alpha *dla.Scalar, a *dla.Matrix, x *dla.Vector, beta *dla.Scalar, y *dla.Vector) {
	requireSameKind(a.Kind, x.Kind, "gemv")
	requireSameKind(a.Kind, y.Kind, "gemv")
	_, av := alpha.Resolve(a.Kind)
	_, bv := beta.Resolve(a.Kind)
	f, err := gemvTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(av, a, x, bv, y)
}
