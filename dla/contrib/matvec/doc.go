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

// Package matvec provides the level-2 operations (general, symmetric, and
// triangular matrix-vector products) and the dense matrix utilities used
// to prepare test operands.
//
// Symmetric and triangular routines read only the declared stored
// triangle; the unstored triangle may hold garbage and is never
// dereferenced. These routines are the independently validated building
// blocks the residual verifier chains together, so they are deliberately
// unblocked and straightforward.
package matvec
