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

// Package seq implements a dynamic, ordered, heterogeneously-typed sequence
// with a tri-modal physical layout (embedded, heap-owned, shared-slice) and
// copy-on-write sharing between views and their root.
package seq

import "github.com/arcbyte/seqstore/pkg/value"

// mode identifies which of the three physical layouts an Array is currently
// using. Exactly one applies at any time.
type mode uint8

const (
	modeEmbed mode = iota
	modeHeap
	modeShared
)

// EmbedCapacity is the fixed element count of the inline storage slot.
const EmbedCapacity = 3

// MAX is the element-count ceiling. Operations that would exceed it fail
// with ErrSizeLimitExceeded.
const MAX = int(^uint32(0) >> 1) // math.MaxInt32, kept header-field-width-safe

// DefaultCapacity is the minimum heap capacity ever allocated, and the
// shrink target used by pop/clear/dup heuristics.
const DefaultCapacity = 16

// root is the heap-owned buffer backing one or more shared views. It is
// modeled as a distinct type here rather than as another Array wearing a
// flag, since Go has no single polymorphic object header to overload.
type root struct {
	buf      []value.Value
	refcount int
	frozen   bool
}

// Array is a dynamic, ordered sequence of heterogeneous Values.
type Array struct {
	md         mode
	frozen     bool
	generation uint64 // reentrancy / "class cleared" marker, see sort.go

	embed    [EmbedCapacity]value.Value
	embedLen uint8

	// heap-owned body; zero value when md != modeHeap.
	buf []value.Value

	// shared-view body; zero value when md != modeShared.
	root   *root
	start  int
	length int

	// asRoot caches the root wrapper created the first time a frozen array
	// is used as a view's source, so repeated views of the same frozen
	// array share one root identity (and thus participate in the same
	// Shares predicate) rather than minting a new wrapper each time.
	asRoot *root
}

// New constructs a new, empty, embedded array.
func New() *Array {
	return &Array{md: modeEmbed}
}

// NewWithCapacity constructs a new, empty array pre-sized to hold capa
// elements without reallocating. A capacity that fits the embedded slot
// yields an embedded array; otherwise a heap-owned buffer of that capacity
// is allocated up front.
func NewWithCapacity(capa int) (*Array, error) {
	switch {
	case capa < 0:
		return nil, ErrNegativeSize
	case capa >= MAX:
		return nil, ErrSizeLimitExceeded
	case capa <= EmbedCapacity:
		return &Array{md: modeEmbed}, nil
	default:
		return &Array{md: modeHeap, buf: make([]value.Value, 0, capa)}, nil
	}
}

// Len returns the logical length of the array.
func (a *Array) Len() int {
	switch a.md {
	case modeEmbed:
		return int(a.embedLen)
	case modeShared:
		return a.length
	default:
		return len(a.buf)
	}
}

// Capa returns the current allocated capacity. For embedded arrays this is
// always EmbedCapacity; for shared views it is the view's length (a view
// never grows in place without cancelling sharing first).
func (a *Array) Capa() int {
	switch a.md {
	case modeEmbed:
		return EmbedCapacity
	case modeShared:
		return a.length
	default:
		return cap(a.buf)
	}
}

// IsFrozen reports whether the array is frozen and therefore rejects any
// further mutation.
func (a *Array) IsFrozen() bool {
	return a.frozen
}

// IsEmbedded reports whether the array is currently using embedded storage.
func (a *Array) IsEmbedded() bool {
	return a.md == modeEmbed
}

// IsShared reports whether the array is currently a shared view.
func (a *Array) IsShared() bool {
	return a.md == modeShared
}

// Mode names the array's current physical layout, for diagnostic and
// inspection tooling: "embedded", "heap" or "shared".
func (a *Array) Mode() string {
	switch a.md {
	case modeEmbed:
		return "embedded"
	case modeShared:
		return "shared"
	default:
		return "heap"
	}
}

// view returns the backing slice for the array's current logical contents.
// For embedded arrays this is a sub-slice of the fixed embed array; callers
// must not retain it across a mutation.
func (a *Array) view() []value.Value {
	switch a.md {
	case modeEmbed:
		return a.embed[:a.embedLen]
	case modeShared:
		return a.root.buf[a.start : a.start+a.length]
	default:
		return a.buf
	}
}

// Get returns the element at index i, or Nil and false if i is out of
// bounds: a read at i == size returns Nil rather than an error.
func (a *Array) Get(i int) (value.Value, bool) {
	if i < 0 {
		i += a.Len()
	}
	//
	if i < 0 || i >= a.Len() {
		return value.Nil{}, false
	}
	//
	return a.view()[i], true
}
