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

// Package workerpool provides the bounded worker pool the blocked drivers
// use to fan out over independent panels.
//
// The numeric core itself is single-threaded; parallelism exists only at
// the panel scheduler level, where different column panels touch disjoint
// regions of the output operand. The pool enforces the worker bound; the
// exclusive-write discipline per panel is the caller's contract.
package workerpool

import (
	"runtime"
	"sync"
)

// Pool bounds the number of concurrently running panel tasks.
type Pool struct {
	maxParallelism int

	mu         sync.Mutex
	cond       sync.Cond
	numRunning int
}

// New creates a pool running at most maxParallelism tasks at once.
// maxParallelism == 0 disables parallelism (tasks run inline);
// maxParallelism < 0 means one worker per GOMAXPROCS.
func New(maxParallelism int) *Pool {
	if maxParallelism < 0 {
		maxParallelism = runtime.GOMAXPROCS(0)
	}
	p := &Pool{maxParallelism: maxParallelism}
	p.cond = sync.Cond{L: &p.mu}
	return p
}

// Default creates a pool sized to GOMAXPROCS.
func Default() *Pool {
	return New(runtime.GOMAXPROCS(0))
}

// IsEnabled reports whether the pool runs tasks concurrently at all.
func (p *Pool) IsEnabled() bool {
	return p.maxParallelism != 0
}

// MaxParallelism returns the configured worker bound.
func (p *Pool) MaxParallelism() int {
	return p.maxParallelism
}

// Saturate fans out up to the worker bound, each worker running work.
// Workers consume from a shared source (typically a closed channel of
// panel ranges). Saturate returns when every started worker has finished.
//
// Usage:
//
//	panels := make(chan panelRange, numPanels)
//	// ... fill panels ...
//	close(panels)
//	pool.Saturate(func() {
//	    for pr := range panels {
//	        solvePanel(pr)
//	    }
//	})
func (p *Pool) Saturate(work func()) {
	if p.maxParallelism == 0 {
		work()
		return
	}

	var wg sync.WaitGroup
	for w := 0; w < p.maxParallelism; w++ {
		wg.Add(1)
		p.mu.Lock()
		p.numRunning++
		p.mu.Unlock()
		go func() {
			defer wg.Done()
			work()
			p.mu.Lock()
			p.numRunning--
			p.cond.Signal()
			p.mu.Unlock()
		}()
	}
	wg.Wait()
}

// NumRunning returns the number of in-flight tasks; diagnostic only.
func (p *Pool) NumRunning() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.numRunning
}
