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
	"fmt"
	"math/rand"

	"github.com/ajroetker/go-dla/dla"
)

// Operand-level front ends over the slice kernels. Each front end resolves
// scalars through the registry, looks up the vector kind's instantiation
// in a table populated at init, extracts typed views, and invokes. The
// tables are homogeneous (one kind dimension); mixed-type scalars are
// promoted or projected by the registry before the call.

type (
	scalVFunc func(alpha complex128, x *dla.Vector)
	copyVFunc func(x, y *dla.Vector)
	subVFunc  func(x, y *dla.Vector)
	normVFunc func(x *dla.Vector) float64
	randVFunc func(rng *rand.Rand, x *dla.Vector)
)

var (
	scalVTable dla.Table1[scalVFunc]
	copyVTable dla.Table1[copyVFunc]
	subVTable  dla.Table1[subVFunc]
	normVTable dla.Table1[normVFunc]
	randVTable dla.Table1[randVFunc]
)

func init() {
	registerVecOps[float32]()
	registerVecOps[float64]()
	registerVecOps[complex64]()
	registerVecOps[complex128]()
}

func registerVecOps[T dla.Elem]() {
	k := dla.KindOf[T]()
	scalVTable.Insert(k, func(alpha complex128, x *dla.Vector) {
		v := dla.VecView[T](x)
		Scalv(v.N, dla.CastTo[T](alpha), v.Data, v.Inc)
	})
	copyVTable.Insert(k, func(x, y *dla.Vector) {
		xv, yv := dla.VecView[T](x), dla.VecView[T](y)
		Copyv(xv.N, xv.Data, xv.Inc, yv.Data, yv.Inc)
	})
	subVTable.Insert(k, func(x, y *dla.Vector) {
		xv, yv := dla.VecView[T](x), dla.VecView[T](y)
		Subv(xv.N, xv.Data, xv.Inc, yv.Data, yv.Inc)
	})
	normVTable.Insert(k, func(x *dla.Vector) float64 {
		v := dla.VecView[T](x)
		return Fnormv(v.N, v.Data, v.Inc)
	})
	randVTable.Insert(k, func(rng *rand.Rand, x *dla.Vector) {
		v := dla.VecView[T](x)
		Randv(rng, v.N, v.Data, v.Inc)
	})
}

// ScalV scales x in place: x := alpha * x.
func ScalV(alpha *dla.Scalar, x *dla.Vector) {
	_, v := alpha.Resolve(x.Kind)
	f, err := scalVTable.Lookup(x.Kind)
	if err != nil {
		panic(err)
	}
	f(v, x)
}

// CopyV copies x into y. The operands must share a kind.
func CopyV(x, y *dla.Vector) {
	requireSameKind(x.Kind, y.Kind, "copyv")
	f, err := copyVTable.Lookup(y.Kind)
	if err != nil {
		panic(err)
	}
	f(x, y)
}

// SubV subtracts x from y in place: y := y - x.
func SubV(x, y *dla.Vector) {
	requireSameKind(x.Kind, y.Kind, "subv")
	f, err := subVTable.Lookup(y.Kind)
	if err != nil {
		panic(err)
	}
	f(x, y)
}

// FnormV returns the Frobenius norm of x, projected onto the reals.
func FnormV(x *dla.Vector) float64 {
	f, err := normVTable.Lookup(x.Kind)
	if err != nil {
		panic(err)
	}
	return f(x)
}

// RandV fills x with reproducible uniform values from rng.
func RandV(rng *rand.Rand, x *dla.Vector) {
	f, err := randVTable.Lookup(x.Kind)
	if err != nil {
		panic(err)
	}
	f(rng, x)
}

func requireSameKind(a, b dla.NumericKind, op string) {
	if a != b {
		panic(fmt.Sprintf("vec: %s operand kinds differ (%s vs %s)", op, a, b))
	}
}
