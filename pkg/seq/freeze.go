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
	"strings"
	"sync"

	"github.com/arcbyte/seqstore/pkg/value"
)

// Freeze makes the array immutable. Freezing is one-way; freezing an
// already-frozen array is a no-op. A plain heap-owned array being frozen has
// its buffer trimmed to exactly its length -- a shared view or an embedded
// array has no slack to trim, and a shared root is never itself an *Array
// (see header.go's root type), so that case never reaches here.
func (a *Array) Freeze() {
	if a.frozen {
		return
	}
	//
	if a.md == modeHeap {
		_ = a.shrinkToLen()
	}
	//
	a.frozen = true
	a.touch()
}

// Dup returns a shallow copy of a: same elements, same storage-sharing
// strategy a fresh Replace would choose, but a distinct object identity and
// never frozen regardless of a's frozen state.
func (a *Array) Dup() *Array {
	out := New()
	_ = out.Replace(a)
	//
	return out
}

// Slice returns the half-open range [beg, beg+length) of a's elements as a
// fresh array, via the same view-creation rules newView uses internally.
// Negative beg is resolved against a's length: beg == a.Len() yields an
// empty array (ok=true), while beg beyond that yields (nil, false, nil) --
// a non-error "nil" result for an out-of-range start, rather than an error.
func (a *Array) Slice(beg, length int) (*Array, bool, error) {
	n := a.Len()
	//
	if beg < 0 {
		beg += n
	}
	//
	if length < 0 {
		return nil, false, fmt.Errorf("%w", ErrNegativeSize)
	}
	//
	if beg < 0 || beg > n {
		return nil, false, nil
	}
	//
	if beg+length > n {
		length = n - beg
	}
	//
	return newView(a, beg, length), true, nil
}

// Fetch returns the element at index i together with the index to fetch
// next, or (Nil{}, -1, false) at end of sequence. Re-reading a.Len() on
// every call, rather than capturing it once, makes this a reentrancy-safe
// replacement for a raw pointer loop: an array cleared or shrunk between
// calls is observed immediately rather than read past its new end.
func (a *Array) Fetch(i int) (value.Value, int, bool) {
	if i < 0 || i >= a.Len() {
		return value.Nil{}, -1, false
	}
	//
	return a.view()[i], i + 1, true
}

// Each calls fn once per element in order, re-validating the length after
// every call: a callback that clears or shrinks the array terminates the
// iteration cleanly instead of reading past the new end.
func (a *Array) Each(fn func(value.Value) error) error {
	for i := 0; ; {
		v, next, ok := a.Fetch(i)
		if !ok {
			return nil
		}
		//
		if err := fn(v); err != nil {
			return err
		}
		//
		i = next
		if i > a.Len() {
			i = a.Len()
		}
	}
}

// Equal implements value equality: identity short-circuit, length mismatch
// short-circuit, then element-wise structural equality.
func (a *Array) Equal(b *Array) bool {
	if a == b {
		return true
	}
	//
	if a.Len() != b.Len() {
		return false
	}
	//
	av, bv := a.view(), b.view()
	//
	for i := range av {
		if !av[i].Equal(bv[i]) {
			return false
		}
	}
	//
	return true
}

// Eql implements the strict equality flavor: the same short-circuits as
// Equal, but element-wise via each element's strict Eql rather than its
// looser Equal, matching the two-equality-flavor distinction the value
// domain itself draws.
func (a *Array) Eql(b *Array) bool {
	if a == b {
		return true
	}
	//
	if a.Len() != b.Len() {
		return false
	}
	//
	av, bv := a.view(), b.view()
	//
	for i := range av {
		if !av[i].Eql(bv[i]) {
			return false
		}
	}
	//
	return true
}

// hashSeed / hashPrime are the FNV-1a constants used to combine element
// hashes into the array's own hash, consistent with Eql.
const (
	hashSeed  uint64 = 14695981039346656037
	hashPrime uint64 = 1099511628211
)

// Hash combines each element's hash into a seeded rolling mix, consistent
// with Eql.
func (a *Array) Hash() uint64 {
	h := hashSeed
	h ^= uint64(a.Len())
	h *= hashPrime
	//
	for _, v := range a.view() {
		h ^= v.Hash()
		h *= hashPrime
	}
	//
	return h
}

// String renders the array for inspection, guarding against cycles through
// nested ArrayValue elements with the same identity-keyed visited set
// Flatten and Join use.
func (a *Array) String() string {
	var b strings.Builder
	//
	a.inspectInto(&b, map[*Array]bool{a: true})
	//
	return b.String()
}

func (a *Array) inspectInto(b *strings.Builder, visited map[*Array]bool) {
	b.WriteString("[")
	//
	for i, v := range a.view() {
		if i > 0 {
			b.WriteString(", ")
		}
		//
		if av, ok := v.(ArrayValue); ok {
			if visited[av.Arr] {
				b.WriteString("[...]")
				continue
			}
			//
			visited[av.Arr] = true
			av.Arr.inspectInto(b, visited)
			delete(visited, av.Arr)
			//
			continue
		}
		//
		b.WriteString(v.String())
	}
	//
	b.WriteString("]")
}

var emptyFrozen = sync.OnceValue(func() *Array {
	a := New()
	a.Freeze()
	//
	return a
})

// EmptyFrozen returns the process-wide canonical empty frozen array, lazily
// initialized once and never mutated thereafter -- used as a canonical
// value for default arguments.
func EmptyFrozen() *Array {
	return emptyFrozen()
}
