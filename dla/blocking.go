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

import (
	"os"
	"strconv"

	"golang.org/x/sys/cpu"
)

// BlockParams holds the register-blocking dimensions of the packed
// micro-kernels for one kind:
//
//   - MR: micro-tile rows; also the edge length of a packed triangular
//     diagonal block (lead dimension of a packed A panel)
//   - NR: micro-tile columns (lead dimension of a packed B panel)
//   - KC: K-blocking depth for L1-sized packed strips
//
// The values are architecture-tuned defaults, not contracts; every driver
// accepts explicit BlockParams so correctness never depends on a specific
// pair.
type BlockParams struct {
	MR int
	NR int
	KC int
}

// TriPanelLen returns the element count of one packed MR x MR triangular
// panel (column-major, lead MR).
func (p BlockParams) TriPanelLen() int {
	return p.MR * p.MR
}

// RHSPanelLen returns the element count of one packed MR x NR right-hand-
// side panel (row-major, lead NR).
func (p BlockParams) RHSPanelLen() int {
	return p.MR * p.NR
}

// blockDefaults is selected once at init from CPU features and read-only
// afterward.
var blockDefaults [NumKinds]BlockParams

func init() {
	if genericBlocksEnv() {
		setFallbackBlocks()
		return
	}
	detectBlockParams()
}

// genericBlocksEnv checks the DLA_GENERIC_BLOCKS environment variable.
// When set, conservative fallback blocking is used regardless of CPU
// capabilities. Useful for testing and debugging.
func genericBlocksEnv() bool {
	val := os.Getenv("DLA_GENERIC_BLOCKS")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setFallbackBlocks() {
	for k := NumericKind(0); k < NumKinds; k++ {
		blockDefaults[k] = BlockParams{MR: 4, NR: 4, KC: 128}
	}
}

func detectBlockParams() {
	// Scale NR with the register file: wider vectors earn wider panels.
	// Element widths halve NR as they double (complex128 = 16 bytes).
	switch {
	case cpu.X86.HasAVX512:
		blockDefaults[Float32] = BlockParams{MR: 4, NR: 32, KC: 256}
		blockDefaults[Float64] = BlockParams{MR: 4, NR: 16, KC: 256}
		blockDefaults[Complex64] = BlockParams{MR: 4, NR: 16, KC: 256}
		blockDefaults[Complex128] = BlockParams{MR: 4, NR: 8, KC: 128}
	case cpu.X86.HasAVX2:
		blockDefaults[Float32] = BlockParams{MR: 4, NR: 16, KC: 256}
		blockDefaults[Float64] = BlockParams{MR: 4, NR: 8, KC: 128}
		blockDefaults[Complex64] = BlockParams{MR: 4, NR: 8, KC: 128}
		blockDefaults[Complex128] = BlockParams{MR: 4, NR: 4, KC: 128}
	case cpu.ARM64.HasASIMD:
		blockDefaults[Float32] = BlockParams{MR: 4, NR: 8, KC: 256}
		blockDefaults[Float64] = BlockParams{MR: 4, NR: 4, KC: 128}
		blockDefaults[Complex64] = BlockParams{MR: 4, NR: 4, KC: 128}
		blockDefaults[Complex128] = BlockParams{MR: 4, NR: 4, KC: 128}
	default:
		setFallbackBlocks()
	}
}

// DefaultBlockParams returns the register-blocking parameters selected for
// the kind at process start.
func DefaultBlockParams(k NumericKind) BlockParams {
	return blockDefaults[k]
}
