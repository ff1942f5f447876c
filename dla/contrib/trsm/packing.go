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

// packTriUpper packs the r x r upper-triangular diagonal block of A whose
// top-left corner is (i0, i0) into a column-major mr x mr panel with lead
// dimension mr. Diagonal entries are inverted during the copy; under a
// unit diagonal the stored diagonal is never read and the slot is left
// untouched by design (the kernel skips the multiply).
//
// Ragged blocks (r < mr) are padded so the panel stays a valid mr x mr
// triangular system: padded diagonal entries become 1 (their own inverse)
// and everything else stays zero. Padded rows therefore solve to exactly
// zero and contribute nothing downstream.
func packTriUpper[T dla.Elem](a dla.MatrixView[T], i0, r int, diag dla.Diag, mr int, packed []T) {
	var zero T
	for i := range packed[:mr*mr] {
		packed[i] = zero
	}
	for jj := 0; jj < r; jj++ {
		for ii := 0; ii < jj; ii++ {
			packed[ii+jj*mr] = a.At(i0+ii, i0+jj)
		}
		if diag == dla.NonUnit {
			var one T = 1
			packed[jj+jj*mr] = one / a.At(i0+jj, i0+jj)
		}
	}
	if diag == dla.NonUnit {
		var one T = 1
		for jj := r; jj < mr; jj++ {
			packed[jj+jj*mr] = one
		}
	}
}

// packTriLower is the lower-triangular counterpart of packTriUpper.
func packTriLower[T dla.Elem](a dla.MatrixView[T], i0, r int, diag dla.Diag, mr int, packed []T) {
	var zero T
	for i := range packed[:mr*mr] {
		packed[i] = zero
	}
	for jj := 0; jj < r; jj++ {
		for ii := jj + 1; ii < r; ii++ {
			packed[ii+jj*mr] = a.At(i0+ii, i0+jj)
		}
		if diag == dla.NonUnit {
			var one T = 1
			packed[jj+jj*mr] = one / a.At(i0+jj, i0+jj)
		}
	}
	if diag == dla.NonUnit {
		var one T = 1
		for jj := r; jj < mr; jj++ {
			packed[jj+jj*mr] = one
		}
	}
}

// packOffDiag packs an rRows x rCols off-diagonal block of A with top-left
// corner (i0, j0) into a column-major mr x mr panel, zero-padding the
// ragged edges.
func packOffDiag[T dla.Elem](a dla.MatrixView[T], i0, j0, rRows, rCols, mr int, packed []T) {
	var zero T
	for i := range packed[:mr*mr] {
		packed[i] = zero
	}
	for jj := 0; jj < rCols; jj++ {
		for ii := 0; ii < rRows; ii++ {
			packed[ii+jj*mr] = a.At(i0+ii, j0+jj)
		}
	}
}

// packRHS packs an rRows x rCols block of B with top-left corner (i0, j0)
// into a row-major mr x nr panel with lead dimension nr, scaling every
// element by alpha on the way in. Padding is zero, which keeps padded rows
// of the solve identically zero.
func packRHS[T dla.Elem](b dla.MatrixView[T], i0, j0, rRows, rCols int, alpha T, mr, nr int, packed []T) {
	var zero T
	for i := range packed[:mr*nr] {
		packed[i] = zero
	}
	for ii := 0; ii < rRows; ii++ {
		for jj := 0; jj < rCols; jj++ {
			packed[ii*nr+jj] = alpha * b.At(i0+ii, j0+jj)
		}
	}
}
