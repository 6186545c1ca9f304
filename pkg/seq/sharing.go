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
package seq

import "github.com/arcbyte/seqstore/pkg/value"

// promoteToSharedRoot returns the root backing a's contents, creating one if
// necessary. If a is already SHARED, its existing root is returned
// untouched. If a is FROZEN, a cached root wrapping a's own buffer is
// returned (and memoized) without converting a itself to SHARED — a frozen
// array never changes mode, but can still serve as a de-facto root. Otherwise
// a's elements are moved into a fresh root and a is converted to a SHARED
// view over the whole of it.
func (a *Array) promoteToSharedRoot() *root {
	switch {
	case a.md == modeShared:
		return a.root
	case a.frozen:
		if a.asRoot == nil {
			a.asRoot = &root{buf: a.view(), frozen: true}
		}
		//
		return a.asRoot
	}
	//
	var buf []value.Value
	//
	if a.md == modeEmbed {
		buf = make([]value.Value, a.embedLen)
		copy(buf, a.embed[:a.embedLen])
	} else {
		buf = a.buf
	}
	//
	r := &root{buf: buf, refcount: 1}
	//
	a.md = modeShared
	a.root = r
	a.start = 0
	a.length = len(buf)
	a.buf = nil
	a.embedLen = 0
	//
	return r
}

// incref bumps a root's reference count. Frozen roots are exempt (treated
// as having infinite refcount).
func (r *root) incref() {
	if r.frozen {
		return
	}
	//
	r.refcount++
}

// decref drops a root's reference count. Frozen roots are exempt.
func (r *root) decref() {
	if r.frozen {
		return
	}
	//
	if r.refcount > 0 {
		r.refcount--
	}
}

// newView exposes the substring [offset, offset+length) of source as a
// fresh Array. Small results are materialized as embedded copies to avoid
// refcount traffic; larger results share storage with the source via a
// promoted root.
func newView(source *Array, offset, length int) *Array {
	if length <= EmbedCapacity {
		var embed [EmbedCapacity]value.Value
		//
		copy(embed[:], source.view()[offset:offset+length])
		//
		return &Array{md: modeEmbed, embed: embed, embedLen: uint8(length)}
	}
	//
	r := source.promoteToSharedRoot()
	r.incref()
	//
	// source's own start may have shifted if it was itself already a
	// SHARED view; resolve offset relative to its current view.
	base := 0
	if source.md == modeShared {
		base = source.start
	}
	//
	return &Array{md: modeShared, root: r, start: base + offset, length: length}
}

// cancelSharing detaches a SHARED array from its root before any write,
// choosing among three strategies in order: re-embed, steal the root's
// buffer, or deep copy. After this call a is never SHARED.
func (a *Array) cancelSharing() error {
	if a.md != modeShared {
		return nil
	}
	//
	var (
		r = a.root
		n = a.length
	)
	//
	// Strategy 1: re-embed.
	if n <= EmbedCapacity {
		var embed [EmbedCapacity]value.Value
		//
		copy(embed[:], r.buf[a.start:a.start+n])
		r.decref()
		//
		a.md = modeEmbed
		a.embed = embed
		a.embedLen = uint8(n)
		a.root, a.start, a.length = nil, 0, 0
		//
		return nil
	}
	//
	// Strategy 2: steal the root's buffer, if we are its sole occupant and
	// our view covers more than half of it.
	if !r.frozen && r.refcount == 1 && n*2 > len(r.buf) {
		copy(r.buf, r.buf[a.start:a.start+n])
		//
		nbuf := r.buf[:n]
		//
		a.md = modeHeap
		a.buf = nbuf
		a.root, a.start, a.length = nil, 0, 0
		//
		// Demote the root: it keeps no refcount and becomes unreachable
		// except through whatever the GC still holds; there is nothing
		// further for us to do, since nothing else in this model
		// references *root directly once its last view detaches.
		r.refcount = 0
		r.buf = nil
		//
		return nil
	}
	//
	// Strategy 3: deep copy.
	nbuf := make([]value.Value, n)
	copy(nbuf, r.buf[a.start:a.start+n])
	r.decref()
	//
	a.md = modeHeap
	a.buf = nbuf
	a.root, a.start, a.length = nil, 0, 0
	//
	return nil
}

// Shares reports whether a and b are both SHARED views over the same root,
// with equal lengths and coincident view pointers. Used by callers
// to tell whether a previously taken snapshot has been invalidated by a
// pop/shift that leaves the root shared but changes the length.
func Shares(a, b *Array) bool {
	return a.md == modeShared && b.md == modeShared &&
		a.root == b.root && a.start == b.start && a.length == b.length
}
