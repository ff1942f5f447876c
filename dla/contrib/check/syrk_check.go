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

// CheckSyrk computes the residual of a finished rank-k update. c holds the
// computed result, cOrig the input C before the update. Both sides of the
// identity
//
//	C * t == beta * C_orig * t + alpha * op(A) * (op(A)^T * t)
//
// contract against a random probe t; the residual is the norm of their
// difference. An empty problem has residual exactly zero.
func CheckSyrk(rng *rand.Rand, alpha *dla.Scalar, a *dla.Matrix, beta *dla.Scalar, cOrig, c *dla.Matrix) float64 {
	m := c.Rows
	k := a.WidthAfterTrans()
	if m == 0 {
		return 0
	}

	t := dla.NewVectorOfKind(c.Kind, m)
	vec.RandV(rng, t)

	// Left side: v = C * t.
	v := dla.NewVectorOfKind(c.Kind, m)
	matvec.Symv(dla.One, c, t, dla.Zero, v)

	// Right side, innermost out: w = op(A)^T * t, z = alpha * op(A) * w,
	// z += beta * C_orig * t.
	w := dla.NewVectorOfKind(c.Kind, k)
	at := flipTrans(a)
	matvec.Gemv(dla.One, at, t, dla.Zero, w)

	z := dla.NewVectorOfKind(c.Kind, m)
	matvec.Gemv(alpha, a, w, dla.Zero, z)
	matvec.Symv(beta, cOrig, t, dla.One, z)

	vec.SubV(z, v)
	return vec.FnormV(v)
}

// flipTrans returns a shallow descriptor for op(A)^T: same storage, the
// transposition toggled. Conjugation states are rejected upstream by the
// operations this feeds.
func flipTrans(a *dla.Matrix) *dla.Matrix {
	at := *a
	if a.Trans.DoesTranspose() {
		at.Trans = dla.NoTrans
	} else {
		at.Trans = dla.Transpose
	}
	return &at
}
