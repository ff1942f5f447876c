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

package vec

import (
	"math"

	"github.com/ajroetker/go-dla/dla"
)

// Slice-level kernels. Each is one generic template over every supported
// element kind; strides are in elements and may be negative-free positive
// increments only. n == 0 returns immediately on every kernel.

// Copyv copies x into y: y[i] = x[i].
func Copyv[T dla.Elem](n int, x []T, incx int, y []T, incy int) {
	if n == 0 {
		return
	}
	xi, yi := 0, 0
	for i := 0; i < n; i++ {
		y[yi] = x[xi]
		xi += incx
		yi += incy
	}
}

// Scalv scales x in place: x[i] *= alpha.
func Scalv[T dla.Elem](n int, alpha T, x []T, incx int) {
	if n == 0 {
		return
	}
	xi := 0
	for i := 0; i < n; i++ {
		x[xi] *= alpha
		xi += incx
	}
}

// Subv subtracts x from y in place: y[i] -= x[i].
func Subv[T dla.Elem](n int, x []T, incx int, y []T, incy int) {
	if n == 0 {
		return
	}
	xi, yi := 0, 0
	for i := 0; i < n; i++ {
		y[yi] -= x[xi]
		xi += incx
		yi += incy
	}
}

// Axpyv accumulates a scaled vector: y[i] += alpha * x[i].
func Axpyv[T dla.Elem](n int, alpha T, x []T, incx int, y []T, incy int) {
	if n == 0 {
		return
	}
	xi, yi := 0, 0
	for i := 0; i < n; i++ {
		y[yi] += alpha * x[xi]
		xi += incx
		yi += incy
	}
}

// Dotv returns the inner product sum(x[i] * y[i]) without conjugation.
func Dotv[T dla.Elem](n int, x []T, incx int, y []T, incy int) T {
	var rho T
	xi, yi := 0, 0
	for i := 0; i < n; i++ {
		rho += x[xi] * y[yi]
		xi += incx
		yi += incy
	}
	return rho
}

// DotAxpyv is the fused dot-product-and-axpy kernel: in a single pass it
// computes rho = sum(x[i] * y[i]) and z[i] += alpha * x[i]. Fusing the two
// traversals halves the reads of x; symmetric matrix-vector multiply leans
// on it column by column.
func DotAxpyv[T dla.Elem](n int, alpha T, x []T, incx int, y []T, incy int, z []T, incz int) T {
	var rho T
	xi, yi, zi := 0, 0, 0
	for i := 0; i < n; i++ {
		rho += x[xi] * y[yi]
		z[zi] += alpha * x[xi]
		xi += incx
		yi += incy
		zi += incz
	}
	return rho
}

// Fnormv returns the Frobenius norm of x as a float64, the correct real
// projection for complex kinds.
func Fnormv[T dla.Elem](n int, x []T, incx int) float64 {
	var acc float64
	xi := 0
	for i := 0; i < n; i++ {
		acc += dla.AbsSq(x[xi])
		xi += incx
	}
	return math.Sqrt(acc)
}
