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

// Package vec provides the level-1 vector operations of the framework:
// strided slice kernels written once as generic templates, plus
// operand-level front ends that route through kind-indexed dispatch
// tables.
//
// Setv is the reference example of the two-dimensional dispatch pattern:
// its table is indexed by the scalar operand's kind and the vector
// operand's kind independently, with cells for disabled mixed-type
// combinations left unpopulated.
//
// These operations also serve as the independently validated auxiliary
// primitives the residual verifier builds its algebraic identities from.
package vec
