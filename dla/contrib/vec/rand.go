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

import (
	"math/rand"

	"github.com/ajroetker/go-dla/dla"
)

// Randv fills x with uniform values in [-1, 1). Complex kinds receive
// independent real and imaginary components. The caller supplies the
// source, so probes are reproducible under an explicit seed.
func Randv[T dla.Elem](rng *rand.Rand, n int, x []T, incx int) {
	xi := 0
	for i := 0; i < n; i++ {
		x[xi] = randElem[T](rng)
		xi += incx
	}
}

func randElem[T dla.Elem](rng *rand.Rand) T {
	re := 2*rng.Float64() - 1
	if !dla.KindOf[T]().IsComplex() {
		return dla.CastTo[T](complex(re, 0))
	}
	im := 2*rng.Float64() - 1
	return dla.CastTo[T](complex(re, im))
}
