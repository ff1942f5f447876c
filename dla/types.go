// Package dla provides the type-generic core of a blocked, packed dense
// linear algebra framework.
//
// It follows an object-based design: callers describe matrices and vectors
// as abstract operands (datatype, extents, strides, transpose/conjugate
// state, structural tags) and the framework routes each operation through a
// type-indexed dispatch table to a routine instantiated for that exact
// datatype combination. The performance-critical arithmetic happens in
// register-blocked micro-kernels operating on small packed panels; see the
// contrib packages for the operations themselves.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-dla/dla"
//
//	a := dla.NewMatrix[float64](64, 64)
//	b := dla.NewMatrix[float64](64, 8)
//	a.Struc, a.Uplo = dla.Triangular, dla.Upper
//
//	// B := alpha * inv(A) * B
//	trsm.Trsm(dla.One, a, b)
package dla

// Floats is a constraint for real floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// Complexes is a constraint for complex element types.
type Complexes interface {
	~complex64 | ~complex128
}

// Elem is a constraint for all supported element types. Every numeric
// routine in the framework is written once against Elem and instantiated
// per NumericKind when its dispatch table is populated.
type Elem interface {
	Floats | Complexes
}
