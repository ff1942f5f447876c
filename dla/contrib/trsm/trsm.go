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

import (
	"fmt"

	"github.com/ajroetker/go-dla/dla"
	"github.com/ajroetker/go-dla/dla/contrib/workerpool"
)

// SolveBlocked computes B := alpha * inv(A) * B through the packed
// micro-kernels, one column panel of width up to NR at a time. A is m x m
// triangular, B is m x n, both through typed views. The solve happens in
// the packed workspace; B's storage is only ever written, never read after
// its block has been packed, so arbitrary output strides cost nothing.
func SolveBlocked[T dla.Elem](alpha T, a dla.MatrixView[T], uplo dla.Uplo, diag dla.Diag, b dla.MatrixView[T], bp dla.BlockParams) {
	m, n := a.M, b.N
	if m == 0 || n == 0 {
		return
	}
	for j0 := 0; j0 < n; j0 += bp.NR {
		nc := min(bp.NR, n-j0)
		solvePanel(alpha, a, uplo, diag, b, bp, j0, nc)
	}
}

// solvePanel solves one column panel [j0, j0+nc) of B. Diagonal blocks
// run bottom-up for an upper A and top-down for a lower A; each finished
// block's packed solution is retained so later blocks fold it in without
// re-reading B.
func solvePanel[T dla.Elem](alpha T, a dla.MatrixView[T], uplo dla.Uplo, diag dla.Diag, b dla.MatrixView[T], bp dla.BlockParams, j0, nc int) {
	m := a.M
	numBlocks := (m + bp.MR - 1) / bp.MR

	solved := make([][]T, numBlocks)
	aPack := make([]T, bp.TriPanelLen())
	gPack := make([]T, bp.TriPanelLen())

	step := func(bi int) {
		i0 := bi * bp.MR
		rRows := min(bp.MR, m-i0)

		pb := make([]T, bp.RHSPanelLen())
		packRHS(b, i0, j0, rRows, nc, alpha, bp.MR, bp.NR, pb)

		// Fold in every already-solved strip this block row depends on.
		if uplo == dla.Upper {
			for bj := bi + 1; bj < numBlocks; bj++ {
				jj0 := bj * bp.MR
				packOffDiag(a, i0, jj0, rRows, min(bp.MR, m-jj0), bp.MR, gPack)
				gemmSubMicro(gPack, solved[bj], pb, bp.MR, bp.NR)
			}
			packTriUpper(a, i0, rRows, diag, bp.MR, aPack)
		} else {
			for bj := 0; bj < bi; bj++ {
				jj0 := bj * bp.MR
				packOffDiag(a, i0, jj0, rRows, min(bp.MR, m-jj0), bp.MR, gPack)
				gemmSubMicro(gPack, solved[bj], pb, bp.MR, bp.NR)
			}
			packTriLower(a, i0, rRows, diag, bp.MR, aPack)
		}

		c := b.Data[i0*b.RS+j0*b.CS:]
		if uplo == dla.Upper {
			solveUpperMicro(aPack, pb, bp.MR, bp.NR, diag, c, b.RS, b.CS, rRows, nc)
		} else {
			solveLowerMicro(aPack, pb, bp.MR, bp.NR, diag, c, b.RS, b.CS, rRows, nc)
		}
		solved[bi] = pb
	}

	if uplo == dla.Upper {
		for bi := numBlocks - 1; bi >= 0; bi-- {
			step(bi)
		}
	} else {
		for bi := 0; bi < numBlocks; bi++ {
			step(bi)
		}
	}
}

// SolveUnb is the unblocked reference solve, substituting directly on B's
// storage with true division on the diagonal. It exists as the oracle the
// blocked path is tested against and as the fallback for callers that want
// no packing workspace at all.
func SolveUnb[T dla.Elem](alpha T, a dla.MatrixView[T], uplo dla.Uplo, diag dla.Diag, b dla.MatrixView[T]) {
	m, n := a.M, b.N
	for j := 0; j < n; j++ {
		if uplo == dla.Upper {
			for i := m - 1; i >= 0; i-- {
				acc := alpha * b.At(i, j)
				for l := i + 1; l < m; l++ {
					acc -= a.At(i, l) * b.At(l, j)
				}
				if diag == dla.NonUnit {
					acc /= a.At(i, i)
				}
				b.Set(i, j, acc)
			}
		} else {
			for i := 0; i < m; i++ {
				acc := alpha * b.At(i, j)
				for l := 0; l < i; l++ {
					acc -= a.At(i, l) * b.At(l, j)
				}
				if diag == dla.NonUnit {
					acc /= a.At(i, i)
				}
				b.Set(i, j, acc)
			}
		}
	}
}

// ParallelSolve distributes column panels of B across the pool. Panels
// write disjoint columns of B, so workers need no synchronization beyond
// the panel source channel.
func ParallelSolve[T dla.Elem](pool *workerpool.Pool, alpha T, a dla.MatrixView[T], uplo dla.Uplo, diag dla.Diag, b dla.MatrixView[T], bp dla.BlockParams) {
	m, n := a.M, b.N
	if m == 0 || n == 0 {
		return
	}
	numPanels := (n + bp.NR - 1) / bp.NR
	if pool == nil || !pool.IsEnabled() || numPanels == 1 {
		SolveBlocked(alpha, a, uplo, diag, b, bp)
		return
	}

	panels := make(chan int, numPanels)
	for j0 := 0; j0 < n; j0 += bp.NR {
		panels <- j0
	}
	close(panels)
	pool.Saturate(func() {
		for j0 := range panels {
			solvePanel(alpha, a, uplo, diag, b, bp, j0, min(bp.NR, n-j0))
		}
	})
}

// trsmFunc is the type-erased cell shape for the solve dispatch table.
type trsmFunc func(alpha complex128, a, b *dla.Matrix, pool *workerpool.Pool, bp dla.BlockParams)

var trsmTable dla.Table1[trsmFunc]

func init() {
	registerTrsm[float32]()
	registerTrsm[float64]()
	registerTrsm[complex64]()
	registerTrsm[complex128]()
}

func registerTrsm[T dla.Elem]() {
	trsmTable.Insert(dla.KindOf[T](), func(alpha complex128, a, b *dla.Matrix, pool *workerpool.Pool, bp dla.BlockParams) {
		av := dla.MatView[T](a)
		uplo := a.Uplo
		if a.Trans.DoesTranspose() {
			// op(A) = A^T: solve against the transposed view, which
			// flips the stored triangle.
			av = dla.MatrixView[T]{Data: av.Data, M: av.N, N: av.M, RS: av.CS, CS: av.RS}
			if uplo == dla.Upper {
				uplo = dla.Lower
			} else {
				uplo = dla.Upper
			}
		}
		bv := dla.MatView[T](b)
		if av.M <= bp.MR && bv.N <= bp.NR {
			// A single ragged tile: packing buys nothing.
			SolveUnb(dla.CastTo[T](alpha), av, uplo, a.Diag, bv)
			return
		}
		ParallelSolve(pool, dla.CastTo[T](alpha), av, uplo, a.Diag, bv, bp)
	})
}

// Trsm computes B := alpha * inv(op(A)) * B for a triangular A applied
// from the left. A and B must share one kind; alpha resolves through the
// scalar registry. Conjugating transpose states are not supported.
func Trsm(alpha *dla.Scalar, a, b *dla.Matrix) {
	TrsmWith(nil, alpha, a, b)
}

// TrsmWith is Trsm with an explicit worker pool; a nil or disabled pool
// solves serially.
func TrsmWith(pool *workerpool.Pool, alpha *dla.Scalar, a, b *dla.Matrix) {
	if a.Struc != dla.Triangular {
		panic("trsm: A must carry the triangular structural tag")
	}
	if a.Uplo != dla.Lower && a.Uplo != dla.Upper {
		panic("trsm: A must have a stored triangle")
	}
	if a.Rows != a.Cols {
		panic(fmt.Sprintf("trsm: A is %dx%d, want square", a.Rows, a.Cols))
	}
	if a.Rows != b.Rows {
		panic(fmt.Sprintf("trsm: dimension mismatch, A is %dx%d but B has %d rows", a.Rows, a.Cols, b.Rows))
	}
	if a.Trans.DoesConj() {
		panic("trsm: conjugated operands are not supported")
	}
	if a.Kind != b.Kind {
		panic(fmt.Sprintf("trsm: operand kinds differ (%s vs %s)", a.Kind, b.Kind))
	}
	_, av := alpha.Resolve(a.Kind)
	f, err := trsmTable.Lookup(a.Kind)
	if err != nil {
		panic(err)
	}
	f(av, a, b, pool, dla.DefaultBlockParams(a.Kind))
}
