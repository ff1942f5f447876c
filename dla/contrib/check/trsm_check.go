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

package check

import (
	"math/rand"

	"github.com/ajroetker/go-dla/dla"
	"github.com/ajroetker/go-dla/dla/contrib/matvec"
	"github.com/ajroetker/go-dla/dla/contrib/vec"
)

// CheckTrsm computes the residual of a finished triangular solve. x holds
// the computed solution of op(A) * X = alpha * B, bOrig the right-hand
// side before the solve. The solution multiplies back through the
// triangle against a random probe t:
//
//	op(A) * (X * t) == alpha * B_orig * t
//
// An empty problem has residual exactly zero.
func CheckTrsm(rng *rand.Rand, alpha *dla.Scalar, a *dla.Matrix, bOrig, x *dla.Matrix) float64 {
	m, n := x.Rows, x.Cols
	if m == 0 || n == 0 {
		return 0
	}

	t := dla.NewVectorOfKind(x.Kind, n)
	vec.RandV(rng, t)

	// w = X * t, then w := op(A) * w through the stored triangle.
	w := dla.NewVectorOfKind(x.Kind, m)
	matvec.Gemv(dla.One, x, t, dla.Zero, w)
	matvec.Trmv(a, w)

	// z = alpha * B_orig * t.
	z := dla.NewVectorOfKind(x.Kind, m)
	matvec.Gemv(alpha, bOrig, t, dla.Zero, z)

	vec.SubV(z, w)
	return vec.FnormV(w)
}
