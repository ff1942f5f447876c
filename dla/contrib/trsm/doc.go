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

// Package trsm implements the blocked, packed triangular solve with
// multiple right-hand sides: B := alpha * inv(A) * B.
//
// The computation is organized GotoBLAS-style. The driver walks MR x MR
// diagonal blocks of A, packing each into a column-major panel whose
// diagonal entries are pre-inverted, and packs the matching MR x NR strip
// of B row-major. Between diagonal blocks, already-solved strips fold in
// through a packed rank-update kernel. The innermost micro-kernel performs
// the substitution on fully populated tiles only; ragged edges are handled
// entirely in the packing stage by identity/zero padding, never inside the
// kernel.
//
// The pre-inverted diagonal is a load-bearing contract between packing and
// kernel: the kernel multiplies by the stored value where the textbook
// algorithm divides. A packing stage that forgets the inversion produces
// silently wrong results, which is exactly the class of bug the residual
// verifier in contrib/check exists to catch.
package trsm
