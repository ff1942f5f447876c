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

// Package check verifies computed results through residual identities
// instead of element-wise comparison against a reference implementation.
//
// Each check contracts the operation's algebraic identity against a random
// probe vector: for a rank-k update it compares C*t with
// beta*C_orig*t + alpha*op(A)*(op(A)^T*t), for a triangular solve it
// multiplies the solution back through op(A) and compares with the scaled
// original right-hand side. Probing reduces an O(m^2) comparison to O(m)
// norms while still catching any error that is not exactly orthogonal to
// the probe, which a random probe makes vanishingly unlikely.
//
// Residual magnitudes classify against per-kind thresholds: single
// precision tolerates more rounding than double, complex kinds share their
// precision's thresholds. A NaN or Inf residual always fails regardless of
// threshold.
package check
