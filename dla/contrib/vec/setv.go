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

import "github.com/ajroetker/go-dla/dla"

// Setv broadcasts a scalar into every element of a vector. It is the
// reference implementation of the two-dimensional dispatch pattern: the
// table is indexed by the scalar's effective kind and the vector's kind
// independently, and every cell is one instantiation of the single setvUnb
// template.

// setvFunc is the type-erased signature stored in the setv table. beta is
// the scalar boxed as its concrete Go type, x the vector's backing slice.
type setvFunc func(n int, beta any, x any, incx int)

// setvInstances holds every instantiation of the template, including the
// mixed-type ones. Table construction copies from it only the cells the
// configuration enables.
var setvInstances [dla.NumKinds][dla.NumKinds]setvFunc

// setvTable is the process-wide table, built once from the default
// configuration and read-only afterward.
var setvTable *dla.Table2[setvFunc]

func init() {
	setvInstances[dla.Float32] = setvRow[float32]()
	setvInstances[dla.Float64] = setvRow[float64]()
	setvInstances[dla.Complex64] = setvRow[complex64]()
	setvInstances[dla.Complex128] = setvRow[complex128]()
	setvTable = NewSetvTable(dla.DefaultConfig())
}

func setvRow[B dla.Elem]() [dla.NumKinds]setvFunc {
	var row [dla.NumKinds]setvFunc
	row[dla.Float32] = setvInstance[B, float32]()
	row[dla.Float64] = setvInstance[B, float64]()
	row[dla.Complex64] = setvInstance[B, complex64]()
	row[dla.Complex128] = setvInstance[B, complex128]()
	return row
}

func setvInstance[B, X dla.Elem]() setvFunc {
	return func(n int, beta any, x any, incx int) {
		setvUnb(n, beta.(B), x.([]X), incx)
	}
}

// setvUnb is the single algorithm template behind every table cell.
func setvUnb[B, X dla.Elem](n int, beta B, x []X, incx int) {
	if n == 0 {
		return
	}
	var zero B
	xi := 0
	if beta == zero {
		var xzero X
		for i := 0; i < n; i++ {
			x[xi] = xzero
			xi += incx
		}
		return
	}
	b := dla.CastTo[X](dla.CastOf(beta))
	for i := 0; i < n; i++ {
		x[xi] = b
		xi += incx
	}
}

// NewSetvTable builds a setv dispatch table for an explicit configuration.
// Cells for kind pairs the configuration disables stay unpopulated.
func NewSetvTable(cfg dla.Config) *dla.Table2[setvFunc] {
	t := &dla.Table2[setvFunc]{}
	dla.ForEachKindPair(cfg, func(b, x dla.NumericKind) {
		t.Insert(b, x, setvInstances[b][x])
	})
	return t
}

// Setv sets every element of x to beta: x[i] = beta. The scalar may be a
// named constant or a typed value; either way its effective kind indexes
// the first table dimension and the vector's kind the second. An
// unpopulated cell is a fatal configuration error.
func Setv(beta *dla.Scalar, x *dla.Vector) {
	dtb, v := beta.Resolve(x.Kind)
	f, err := setvTable.Lookup(dtb, x.Kind)
	if err != nil {
		panic(err)
	}
	f(x.N, dla.TypedValue(dtb, v), x.Data, x.Inc)
}
