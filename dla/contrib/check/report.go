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

package check

import (
	"fmt"

	"github.com/ajroetker/go-dla/dla"
)

// Report is the outcome of one verified experiment: the operation, its
// parameter string, throughput over the best repetition, the residual, and
// its classification.
type Report struct {
	Op       string
	ParamStr string
	Kind     dla.NumericKind
	Perf     float64 // GFLOPS, 0 for empty problems
	Resid    float64
	Class    Class
}

// String renders the report as one fixed-order line, suitable for diffing
// across runs.
func (r Report) String() string {
	return fmt.Sprintf("%s_%c %-24s %8.2f gflops  resid %9.2e  %s",
		r.Op, r.Kind.Char(), r.ParamStr, r.Perf, r.Resid, r.Class)
}

// Failed reports whether the experiment's residual classified as a
// failure.
func (r Report) Failed() bool {
	return r.Class == Fail
}
