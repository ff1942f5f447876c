package matvec

import (
	"fmt"
	"math/rand"

	"github.com/ajroetker/go-dla/dla"
)

// Type-erased entry-point signatures for this package's dispatch tables.
// Scalars arrive pre-resolved as complex128 and are narrowed inside the
// instantiation, so every cell shares one shape.
type (
	gemvFunc  func(alpha complex128, a *dla.Matrix, x *dla.Vector, beta complex128, y *dla.Vector)
	symvFunc  gemvFunc
	trmvFunc  func(a *dla.Matrix, x *dla.Vector)
	randmFunc func(rng *rand.Rand, a *dla.Matrix)
	copymFunc func(src, dst *dla.Matrix)
	scalmFunc func(alpha complex128, a *dla.Matrix)
	trimFunc  func(a *dla.Matrix)
)

var (
	gemvTable   dla.Table1[gemvFunc]
	symvTable   dla.Table1[symvFunc]
	trmvTable   dla.Table1[trmvFunc]
	randmTable  dla.Table1[randmFunc]
	copymTable  dla.Table1[copymFunc]
	scalmTable  dla.Table1[scalmFunc]
	shiftdTable dla.Table1[scalmFunc]
	mksymmTable dla.Table1[trimFunc]
	mktrimTable dla.Table1[trimFunc]
)

func init() {
	register[float32]()
	register[float64]()
	register[complex64]()
	register[complex128]()
}

// register instantiates every template in this package for one element
// type and inserts the entry points at that kind's index.
func register[T dla.Elem]() {
	k := dla.KindOf[T]()
	gemvTable.Insert(k, func(alpha complex128, a *dla.Matrix, x *dla.Vector, beta complex128, y *dla.Vector) {
		gemvUnb(dla.CastTo[T](alpha), dla.MatView[T](a), a.Trans, dla.VecView[T](x), dla.CastTo[T](beta), dla.VecView[T](y))
	})
	symvTable.Insert(k, func(alpha complex128, a *dla.Matrix, x *dla.Vector, beta complex128, y *dla.Vector) {
		symvUnb(dla.CastTo[T](alpha), dla.MatView[T](a), a.Uplo, dla.VecView[T](x), dla.CastTo[T](beta), dla.VecView[T](y))
	})
	trmvTable.Insert(k, func(a *dla.Matrix, x *dla.Vector) {
		trmvUnb(dla.MatView[T](a), a.Uplo, a.Diag, a.Trans, dla.VecView[T](x))
	})
	randmTable.Insert(k, func(rng *rand.Rand, a *dla.Matrix) {
		randmUnb(rng, dla.MatView[T](a))
	})
	copymTable.Insert(k, func(src, dst *dla.Matrix) {
		copymUnb(dla.MatView[T](src), dla.MatView[T](dst))
	})
	scalmTable.Insert(k, func(alpha complex128, a *dla.Matrix) {
		scalmUnb(dla.CastTo[T](alpha), dla.MatView[T](a))
	})
	shiftdTable.Insert(k, func(sigma complex128, a *dla.Matrix) {
		shiftdUnb(dla.CastTo[T](sigma), dla.MatView[T](a))
	})
	mksymmTable.Insert(k, func(a *dla.Matrix) {
		mksymmUnb(dla.MatView[T](a), a.Uplo)
	})
	mktrimTable.Insert(k, func(a *dla.Matrix) {
		mktrimUnb(dla.MatView[T](a), a.Uplo)
	})
}

func requireSameKind(a, b dla.NumericKind, op string) {
	if a != b {
		panic(fmt.Sprintf("matvec: %s operand kinds differ (%s vs %s)", op, a, b))
	}
}
