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

import (
	"fmt"

	"github.com/arcbyte/seqstore/pkg/value"
)

// shiftPromoteThreshold is the length above which Shift promotes to a
// shared root (amortized O(1)) rather than memmoving the tail down. Below
// it, a plain memmove is cheaper than the bookkeeping a promotion costs.
const shiftPromoteThreshold = DefaultCapacity

// modify runs the modify check (fail if frozen) followed by cancel-sharing
// if the array is currently a SHARED view. Concat, Store, Resize and Splice
// call this first. Push, Pop, Shift, Unshift, Clear and Replace make the
// frozen check themselves and handle a SHARED view in their own way (Push
// and Unshift avoid detachment when the backing root has slack).
func (a *Array) modify() error {
	if a.frozen {
		return fmt.Errorf("%w", ErrFrozen)
	}
	//
	a.touch()
	//
	if a.md == modeShared {
		return a.cancelSharing()
	}
	//
	return nil
}

// Push appends one element, growing capacity (amortized) as needed.
func (a *Array) Push(v value.Value) error {
	if a.frozen {
		return fmt.Errorf("%w", ErrFrozen)
	}
	//
	a.touch()
	//
	if a.md == modeShared {
		r := a.root
		//
		if !r.frozen && r.refcount == 1 && a.start+a.length < len(r.buf) {
			r.buf[a.start+a.length] = v
			a.length++
			//
			return nil
		}
		//
		if err := a.cancelSharing(); err != nil {
			return err
		}
	}
	//
	if a.Len() >= MAX {
		return fmt.Errorf("%w: array already at MAX length", ErrSizeLimitExceeded)
	}
	//
	if a.Len()+1 > a.Capa() {
		if err := a.doubleCapacity(a.Len() + 1); err != nil {
			return err
		}
	}
	//
	switch a.md {
	case modeEmbed:
		a.embed[a.embedLen] = v
		a.embedLen++
	default:
		a.buf = append(a.buf, v)
	}
	//
	return nil
}

// Concat appends many elements, amortized the same way as Push.
func (a *Array) Concat(vs []value.Value) error {
	if err := a.modify(); err != nil {
		return err
	}
	//
	if len(a.view())+len(vs) > MAX {
		return fmt.Errorf("%w: concat would exceed MAX", ErrSizeLimitExceeded)
	}
	//
	need := a.Len() + len(vs)
	if need > a.Capa() {
		if err := a.doubleCapacity(need); err != nil {
			return err
		}
	}
	//
	for _, v := range vs {
		switch a.md {
		case modeEmbed:
			a.embed[a.embedLen] = v
			a.embedLen++
		default:
			a.buf = append(a.buf, v)
		}
	}
	//
	return nil
}

// Pop removes and returns the last element. Returns false if empty.
func (a *Array) Pop() (value.Value, bool, error) {
	if a.frozen {
		return value.Nil{}, false, fmt.Errorf("%w", ErrFrozen)
	}
	//
	if a.Len() == 0 {
		return value.Nil{}, false, nil
	}
	//
	a.touch()
	//
	if a.md == modeShared {
		if err := a.cancelSharing(); err != nil {
			return value.Nil{}, false, err
		}
	}
	//
	var v value.Value
	//
	switch a.md {
	case modeEmbed:
		a.embedLen--
		v = a.embed[a.embedLen]
		a.embed[a.embedLen] = value.Nil{}
	default:
		n := len(a.buf) - 1
		v = a.buf[n]
		a.buf = a.buf[:n]
		//
		if n < cap(a.buf)/3 && cap(a.buf) > DefaultCapacity {
			nbuf := make([]value.Value, n, 2*n)
			copy(nbuf, a.buf)
			a.buf = nbuf
		}
	}
	//
	return v, true, nil
}

// Shift removes and returns the first element. Returns false if empty.
func (a *Array) Shift() (value.Value, bool, error) {
	if a.frozen {
		return value.Nil{}, false, fmt.Errorf("%w", ErrFrozen)
	}
	//
	if a.Len() == 0 {
		return value.Nil{}, false, nil
	}
	//
	a.touch()
	//
	if a.md == modeShared {
		v := a.root.buf[a.start]
		a.start++
		a.length--
		//
		if a.length == 0 {
			a.root.decref()
			a.md, a.root, a.start = modeEmbed, nil, 0
		}
		//
		return v, true, nil
	}
	//
	v := a.view()[0]
	n := a.Len()
	//
	if n <= shiftPromoteThreshold {
		switch a.md {
		case modeEmbed:
			copy(a.embed[:n-1], a.embed[1:n])
			a.embedLen--
		default:
			copy(a.buf, a.buf[1:])
			a.buf = a.buf[:n-1]
		}
		//
		return v, true, nil
	}
	//
	// Large, non-shared: promote to a root and advance the view, leaving
	// the vacated prefix as waste in the root (amortized O(1) thereafter).
	a.promoteToSharedRoot()
	a.start++
	a.length--
	//
	return v, true, nil
}

// Unshift prepends elements, using the "room for unshift" trick when the
// array is already a SHARED view with slack to its left.
func (a *Array) Unshift(vs ...value.Value) error {
	if a.frozen {
		return fmt.Errorf("%w", ErrFrozen)
	}
	//
	k := len(vs)
	if k == 0 {
		return nil
	}
	//
	if a.Len() > MAX-k {
		return fmt.Errorf("%w: unshift would exceed MAX", ErrSizeLimitExceeded)
	}
	//
	a.touch()
	//
	if a.md == modeShared {
		r := a.root
		//
		if !r.frozen && r.refcount == 1 {
			if a.start >= k {
				a.start -= k
				copy(r.buf[a.start:a.start+k], vs)
				a.length += k
				//
				return nil
			}
			//
			if len(r.buf) >= a.length+k {
				copy(r.buf[k:k+a.length], r.buf[a.start:a.start+a.length])
				copy(r.buf[0:k], vs)
				a.start = 0
				a.length += k
				//
				return nil
			}
		}
		//
		if err := a.cancelSharing(); err != nil {
			return err
		}
	}
	//
	n := a.Len()
	newLen := n + k
	//
	if err := a.resizeCapacity(newLen); err != nil {
		return err
	}
	//
	if a.md == modeEmbed {
		copy(a.embed[k:newLen], a.embed[:n])
		copy(a.embed[:k], vs)
		a.embedLen = uint8(newLen)
		//
		return nil
	}
	//
	a.buf = a.buf[:newLen]
	copy(a.buf[k:newLen], a.buf[:n])
	copy(a.buf[:k], vs)
	//
	return nil
}

// Store assigns v at index i (after negative-index resolution), growing and
// nil-filling the gap [len, i) if i is beyond the current length.
func (a *Array) Store(i int, v value.Value) error {
	if err := a.modify(); err != nil {
		return err
	}
	//
	n := a.Len()
	//
	if i < 0 {
		i += n
		//
		if i < 0 {
			return fmt.Errorf("%w: negative index out of range", ErrOutOfRange)
		}
	}
	//
	if i >= MAX {
		return fmt.Errorf("%w: index %d exceeds MAX", ErrSizeLimitExceeded, i)
	}
	//
	if i < n {
		a.view()[i] = v
		//
		return nil
	}
	//
	if err := a.resizeCapacity(i + 1); err != nil {
		return err
	}
	//
	switch a.md {
	case modeEmbed:
		for j := n; j < i; j++ {
			a.embed[j] = value.Nil{}
		}
		//
		a.embed[i] = v
		a.embedLen = uint8(i + 1)
	default:
		a.buf = a.buf[:i+1]
		//
		for j := n; j < i; j++ {
			a.buf[j] = value.Nil{}
		}
		//
		a.buf[i] = v
	}
	//
	return nil
}

// Resize extends (nil-filling) or truncates the array to exactly n
// elements.
func (a *Array) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w", ErrNegativeSize)
	}
	//
	if n >= MAX {
		return fmt.Errorf("%w: resize to %d exceeds MAX", ErrSizeLimitExceeded, n)
	}
	//
	if err := a.modify(); err != nil {
		return err
	}
	//
	cur := a.Len()
	//
	switch {
	case n == cur:
		return nil
	case n < cur:
		switch a.md {
		case modeEmbed:
			for j := n; j < cur; j++ {
				a.embed[j] = value.Nil{}
			}
			//
			a.embedLen = uint8(n)
		default:
			a.buf = a.buf[:n]
			a.makeEmbeddedIfPossible()
			//
			if a.md == modeHeap && n < cap(a.buf)/3 && cap(a.buf) > DefaultCapacity {
				_ = a.shrinkToLen()
			}
		}
		//
		return nil
	default:
		if err := a.resizeCapacity(n); err != nil {
			return err
		}
		//
		switch a.md {
		case modeEmbed:
			for j := cur; j < n; j++ {
				a.embed[j] = value.Nil{}
			}
			//
			a.embedLen = uint8(n)
		default:
			a.buf = a.buf[:n]
			//
			for j := cur; j < n; j++ {
				a.buf[j] = value.Nil{}
			}
		}
		//
		return nil
	}
}

// Clear empties the array. A heap-owned buffer with excessive slack is
// shrunk; a shared view simply detaches into an empty embedded array.
func (a *Array) Clear() error {
	if a.frozen {
		return fmt.Errorf("%w", ErrFrozen)
	}
	//
	a.touch()
	//
	if a.md == modeShared {
		a.root.decref()
		a.md, a.root, a.start, a.length = modeEmbed, nil, 0, 0
		//
		return nil
	}
	//
	switch a.md {
	case modeEmbed:
		a.embedLen = 0
	default:
		if cap(a.buf) > DefaultCapacity*2 {
			a.buf = make([]value.Value, 0, DefaultCapacity*2)
		} else {
			a.buf = a.buf[:0]
		}
	}
	//
	return nil
}

// Replace discards the current contents and adopts src's, choosing the
// cheapest representation: an embedded copy for small src, a fresh heap
// copy if src is embedded, or a shared view over a promoted src otherwise.
func (a *Array) Replace(src *Array) error {
	if a.frozen {
		return fmt.Errorf("%w", ErrFrozen)
	}
	//
	a.touch()
	//
	if a.md == modeShared {
		a.root.decref()
	}
	//
	n := src.Len()
	//
	switch {
	case n <= EmbedCapacity:
		var embed [EmbedCapacity]value.Value
		//
		copy(embed[:], src.view())
		//
		a.md, a.embed, a.embedLen = modeEmbed, embed, uint8(n)
		a.buf, a.root, a.start, a.length = nil, nil, 0, 0
	case src.md == modeEmbed:
		buf := make([]value.Value, n)
		copy(buf, src.view())
		//
		a.md, a.buf = modeHeap, buf
		a.embedLen, a.root, a.start, a.length = 0, nil, 0, 0
	default:
		r := src.promoteToSharedRoot()
		r.incref()
		//
		base := 0
		if src.md == modeShared {
			base = src.start
		}
		//
		a.md, a.root, a.start, a.length = modeShared, r, base, n
		a.embedLen, a.buf = 0, nil
	}
	//
	return nil
}

// Splice replaces the delLen elements starting at beg with the contents of
// src, padding with nil if beg is beyond the current length.
func (a *Array) Splice(beg, delLen int, src []value.Value) error {
	if err := a.modify(); err != nil {
		return err
	}
	//
	n := a.Len()
	//
	if beg < 0 {
		beg += n
		//
		if beg < 0 {
			return fmt.Errorf("%w: negative splice position out of range", ErrOutOfRange)
		}
	}
	//
	if delLen < 0 {
		return fmt.Errorf("%w", ErrNegativeSize)
	}
	//
	if beg > n {
		if err := a.Resize(beg); err != nil {
			return err
		}
		//
		n = beg
	}
	//
	if beg+delLen > n {
		delLen = n - beg
	}
	//
	newLen := n - delLen + len(src)
	//
	if newLen > MAX {
		return fmt.Errorf("%w: splice result would exceed MAX", ErrSizeLimitExceeded)
	}
	//
	old := make([]value.Value, n)
	copy(old, a.view())
	//
	result := make([]value.Value, 0, newLen)
	result = append(result, old[:beg]...)
	result = append(result, src...)
	result = append(result, old[beg+delLen:]...)
	//
	if err := a.resizeCapacity(len(result)); err != nil {
		return err
	}
	//
	switch a.md {
	case modeEmbed:
		var embed [EmbedCapacity]value.Value
		//
		copy(embed[:], result)
		a.embed, a.embedLen = embed, uint8(len(result))
	default:
		a.buf = a.buf[:len(result)]
		copy(a.buf, result)
	}
	//
	return nil
}
