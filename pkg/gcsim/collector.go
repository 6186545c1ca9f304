// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package gcsim provides a minimal toy mark-sweep collector standing in for
// the embedding runtime's generational garbage collector: a new-object hook
// parameterized by size class, a write-barrier hook that records an edge
// between two objects, and an embedded-capacity query. There is no
// real heap behind it -- just enough bookkeeping that a refcount reaching
// zero in pkg/seq's sharing manager merely makes a root eligible for
// reclamation, with actual freeing deferred until a Mark/Sweep pass runs.
package gcsim

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/arcbyte/seqstore/pkg/seq"
)

// SizeClass identifies the allocation shape NewObject was asked for.
type SizeClass uint8

const (
	// SizeClassEmbedded is requested when an array fits inline.
	SizeClassEmbedded SizeClass = iota
	// SizeClassHeap is requested for a plain heap-owned buffer.
	SizeClassHeap
	// SizeClassSharedRoot is requested when a buffer is being promoted to
	// serve one or more shared views.
	SizeClassSharedRoot
)

// Collector tracks live heap-owned buffers and shared roots in a mark
// bitmap, indexed by a monotonic allocation id.
type Collector struct {
	next  uint
	live  *bitset.BitSet
	marks *bitset.BitSet
	edges map[uint][]uint
}

// NewCollector constructs an empty collector.
func NewCollector() *Collector {
	return &Collector{
		live:  bitset.New(64),
		marks: bitset.New(64),
		edges: make(map[uint][]uint),
	}
}

// NewObject records a fresh allocation of the given size class and returns
// its id.
func (c *Collector) NewObject(_ SizeClass) uint {
	id := c.next
	c.next++
	c.live.Set(id)
	//
	return id
}

// WriteBarrier satisfies the write-barrier hook, recording that dst refers
// to src. pkg/seq cannot import this package, so its mutation primitives do
// not call it; pkg/cmd's bench command does. This toy collector just records
// the edge for
// the mark phase rather than coordinating a real generational promotion --
// a deliberate simplification, since there is no multi-generation heap
// here to promote into.
func (c *Collector) WriteBarrier(dst, src uint) {
	c.edges[dst] = append(c.edges[dst], src)
}

// EmbeddedCapacity reports the element count an embedded array can hold
// inline before a heap allocation is needed.
func (c *Collector) EmbeddedCapacity() int {
	return seq.EmbedCapacity
}

// Mark performs a stop-the-world mark phase, flooding reachability from the
// given root ids across the recorded write-barrier edges.
func (c *Collector) Mark(roots []uint) {
	c.marks.ClearAll()
	//
	stack := append([]uint(nil), roots...)
	//
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		//
		if c.marks.Test(id) {
			continue
		}
		//
		c.marks.Set(id)
		stack = append(stack, c.edges[id]...)
	}
}

// Sweep frees every tracked id that Mark did not reach, returning the ids
// it reclaimed. A refcount reaching zero (tracked by pkg/seq's sharing
// manager, not by this collector) merely makes an id eligible for Sweep;
// the id stays live until a Mark/Sweep pass actually runs.
func (c *Collector) Sweep() []uint {
	var freed []uint
	//
	for i, ok := c.live.NextSet(0); ok; i, ok = c.live.NextSet(i + 1) {
		if c.marks.Test(i) {
			continue
		}
		//
		freed = append(freed, i)
		c.live.Clear(i)
		delete(c.edges, i)
	}
	//
	return freed
}

// Live reports the number of ids currently tracked as live (allocated but
// not yet swept).
func (c *Collector) Live() uint {
	return c.live.Count()
}
