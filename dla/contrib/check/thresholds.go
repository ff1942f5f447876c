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
	"math"

	"github.com/ajroetker/go-dla/dla"
)

// Class is the verdict of a residual check.
type Class int

const (
	// Pass means the residual is below the kind's pass threshold.
	Pass Class = iota

	// Warn means the residual is above the pass threshold but below the
	// warn threshold: suspicious, not provably wrong.
	Warn

	// Fail means the residual exceeds the warn threshold or is not
	// finite.
	Fail
)

func (c Class) String() string {
	switch c {
	case Pass:
		return "PASS"
	case Warn:
		return "MARGINAL"
	default:
		return "FAILURE"
	}
}

// Thresh holds the residual cutoffs for one kind. Residuals strictly below
// Pass classify as passing; between Pass and Warn as marginal.
type Thresh struct {
	Warn float64
	Pass float64
}

// thresholds is indexed by NumericKind. Complex kinds share the cutoffs of
// their precision: rounding is governed by the component format, not the
// domain.
var thresholds = [dla.NumKinds]Thresh{
	dla.Float32:    {Warn: 1e-04, Pass: 1e-05},
	dla.Float64:    {Warn: 1e-13, Pass: 1e-14},
	dla.Complex64:  {Warn: 1e-04, Pass: 1e-05},
	dla.Complex128: {Warn: 1e-13, Pass: 1e-14},
}

// Thresholds returns the residual cutoffs for a kind.
func Thresholds(k dla.NumericKind) Thresh {
	return thresholds[k]
}

// Classify maps a residual to a verdict for the given kind.
func Classify(k dla.NumericKind, resid float64) Class {
	if math.IsNaN(resid) || math.IsInf(resid, 0) {
		return Fail
	}
	th := thresholds[k]
	switch {
	case resid < th.Pass:
		return Pass
	case resid < th.Warn:
		return Warn
	default:
		return Fail
	}
}
