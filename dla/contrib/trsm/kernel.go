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

package trsm

import "github.com/ajroetker/go-dla/dla"

// solveUpperMicro runs back-substitution on one packed mr x nr tile:
// a holds the mr x mr upper-triangular block column-major with lead mr and
// a pre-inverted diagonal, b holds the right-hand sides row-major with
// lead nr. Each solved row is written twice: back into b, which later
// blocks consume in packed form, and into the strided output c for the
// rows and columns inside the active region.
//
// The kernel assumes fully populated panels and performs no bounds checks;
// packing owns edge handling. Reading a ragged tile that was not padded is
// out of contract.
func solveUpperMicro[T dla.Elem](a, b []T, mr, nr int, diag dla.Diag, c []T, rsC, csC, activeRows, activeCols int) {
	for iter := 0; iter < mr; iter++ {
		i := mr - 1 - iter
		nBehind := iter
		for j := 0; j < nr; j++ {
			var rho T
			for l := 0; l < nBehind; l++ {
				col := i + 1 + l
				rho += a[i+col*mr] * b[col*nr+j]
			}
			chi := b[i*nr+j] - rho
			if diag == dla.NonUnit {
				chi *= a[i+i*mr] // pre-inverted, so multiply not divide
			}
			b[i*nr+j] = chi
			if i < activeRows && j < activeCols {
				c[i*rsC+j*csC] = chi
			}
		}
	}
}

// solveLowerMicro is the forward-substitution twin of solveUpperMicro:
// rows solve top-down and the update sum runs over the rows already
// solved above.
func solveLowerMicro[T dla.Elem](a, b []T, mr, nr int, diag dla.Diag, c []T, rsC, csC, activeRows, activeCols int) {
	for i := 0; i < mr; i++ {
		for j := 0; j < nr; j++ {
			var rho T
			for l := 0; l < i; l++ {
				rho += a[i+l*mr] * b[l*nr+j]
			}
			chi := b[i*nr+j] - rho
			if diag == dla.NonUnit {
				chi *= a[i+i*mr]
			}
			b[i*nr+j] = chi
			if i < activeRows && j < activeCols {
				c[i*rsC+j*csC] = chi
			}
		}
	}
}

// gemmSubMicro folds an already-solved strip into a pending right-hand-
// side tile: b -= a * x, with a packed column-major mr x mr (lead mr) and
// x, b packed row-major mr x nr (lead nr). Zero padding in either panel
// makes the extra terms vanish, so the same kernel covers ragged edges.
func gemmSubMicro[T dla.Elem](a []T, x, b []T, mr, nr int) {
	for i := 0; i < mr; i++ {
		for j := 0; j < nr; j++ {
			var rho T
			for l := 0; l < mr; l++ {
				rho += a[i+l*mr] * x[l*nr+j]
			}
			b[i*nr+j] -= rho
		}
	}
}
