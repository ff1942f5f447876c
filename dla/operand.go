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

package dla

import "fmt"

// Trans encodes the transpose/conjugate state of a matrix operand.
type Trans int

const (
	// NoTrans uses the operand as stored.
	NoTrans Trans = iota

	// Transpose uses the operand transposed.
	Transpose

	// ConjNoTrans conjugates without transposing.
	ConjNoTrans

	// ConjTrans conjugates and transposes.
	ConjTrans
)

// DoesTranspose reports whether the state includes a transposition.
func (t Trans) DoesTranspose() bool {
	return t == Transpose || t == ConjTrans
}

// DoesConj reports whether the state includes a conjugation.
func (t Trans) DoesConj() bool {
	return t == ConjNoTrans || t == ConjTrans
}

// Uplo indicates which triangle of a symmetric or triangular operand is
// stored. The unstored triangle's contents are unspecified and must never
// be dereferenced.
type Uplo int

const (
	// DenseUplo marks an operand with both triangles stored.
	DenseUplo Uplo = iota

	// Lower marks the lower triangle as stored.
	Lower

	// Upper marks the upper triangle as stored.
	Upper
)

// Diag indicates whether a triangular operand has an implicit unit
// diagonal. With Unit, the stored diagonal entries are unspecified and
// must never be read.
type Diag int

const (
	// NonUnit means diagonal entries are stored and significant.
	NonUnit Diag = iota

	// Unit means the diagonal is implicitly 1 and never read.
	Unit
)

// Struc is the structural tag of a matrix operand.
type Struc int

const (
	// General is a dense unstructured matrix.
	General Struc = iota

	// Symmetric is a symmetric matrix with one stored triangle.
	Symmetric

	// Triangular is a triangular matrix with one stored triangle.
	Triangular
)

// Matrix is an abstract matrix operand: a datatype, extents, strides, a
// transpose/conjugate state, and structural tags over caller-owned storage.
// The framework never allocates or frees a Matrix's storage on the caller's
// behalf beyond the New* constructors, and never retains a reference past
// the call it was passed to.
type Matrix struct {
	Kind       NumericKind
	Rows, Cols int
	RS, CS     int // row and column strides, in elements
	Data       any // []T for the Go type of Kind

	Trans Trans
	Struc Struc
	Uplo  Uplo
	Diag  Diag
}

// Vector is an abstract vector operand.
type Vector struct {
	Kind NumericKind
	N    int
	Inc  int
	Data any // []T for the Go type of Kind
}

// NewMatrix allocates a rows x cols row-major matrix operand of element
// type T.
func NewMatrix[T Elem](rows, cols int) *Matrix {
	return &Matrix{
		Kind: KindOf[T](),
		Rows: rows,
		Cols: cols,
		RS:   cols,
		CS:   1,
		Data: make([]T, rows*cols),
	}
}

// NewVector allocates a contiguous vector operand of element type T.
func NewVector[T Elem](n int) *Vector {
	return &Vector{
		Kind: KindOf[T](),
		N:    n,
		Inc:  1,
		Data: make([]T, n),
	}
}

// NewMatrixOfKind allocates a row-major matrix operand whose element type
// is chosen at run time. Used by generic drivers that receive the kind
// from another operand.
func NewMatrixOfKind(kind NumericKind, rows, cols int) *Matrix {
	m := &Matrix{Kind: kind, Rows: rows, Cols: cols, RS: cols, CS: 1}
	m.Data = newSlice(kind, rows*cols)
	return m
}

// NewVectorOfKind allocates a contiguous vector operand whose element type
// is chosen at run time.
func NewVectorOfKind(kind NumericKind, n int) *Vector {
	return &Vector{Kind: kind, N: n, Inc: 1, Data: newSlice(kind, n)}
}

func newSlice(kind NumericKind, n int) any {
	switch kind {
	case Float32:
		return make([]float32, n)
	case Float64:
		return make([]float64, n)
	case Complex64:
		return make([]complex64, n)
	default:
		return make([]complex128, n)
	}
}

// LengthAfterTrans returns the row extent of op(A).
func (m *Matrix) LengthAfterTrans() int {
	if m.Trans.DoesTranspose() {
		return m.Cols
	}
	return m.Rows
}

// WidthAfterTrans returns the column extent of op(A).
func (m *Matrix) WidthAfterTrans() int {
	if m.Trans.DoesTranspose() {
		return m.Rows
	}
	return m.Cols
}

// MatrixView is the flattened, typed descriptor a numeric routine works
// on: base slice, extents, and strides. It is created at the moment a
// dispatch entry point is invoked, never outlives the call, and does not
// own the underlying storage.
type MatrixView[T Elem] struct {
	Data   []T
	M, N   int
	RS, CS int
}

// At returns the element at (i, j). Bounds are the caller's contract.
func (v MatrixView[T]) At(i, j int) T {
	return v.Data[i*v.RS+j*v.CS]
}

// Set stores an element at (i, j).
func (v MatrixView[T]) Set(i, j int, x T) {
	v.Data[i*v.RS+j*v.CS] = x
}

// VectorView is the typed descriptor for a vector operand.
type VectorView[T Elem] struct {
	Data []T
	N    int
	Inc  int
}

// At returns element i.
func (v VectorView[T]) At(i int) T {
	return v.Data[i*v.Inc]
}

// Set stores element i.
func (v VectorView[T]) Set(i int, x T) {
	v.Data[i*v.Inc] = x
}

// MatView extracts a typed view from a matrix operand. A kind mismatch is
// a configuration error and panics.
func MatView[T Elem](m *Matrix) MatrixView[T] {
	data, ok := m.Data.([]T)
	if !ok || m.Kind != KindOf[T]() {
		panic(fmt.Sprintf("dla: matrix view type %s requested for %s operand", KindOf[T](), m.Kind))
	}
	return MatrixView[T]{Data: data, M: m.Rows, N: m.Cols, RS: m.RS, CS: m.CS}
}

// VecView extracts a typed view from a vector operand. A kind mismatch is
// a configuration error and panics.
func VecView[T Elem](x *Vector) VectorView[T] {
	data, ok := x.Data.([]T)
	if !ok || x.Kind != KindOf[T]() {
		panic(fmt.Sprintf("dla: vector view type %s requested for %s operand", KindOf[T](), x.Kind))
	}
	return VectorView[T]{Data: data, N: x.N, Inc: x.Inc}
}
