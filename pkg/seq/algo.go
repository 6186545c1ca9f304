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
	"math"

	"github.com/arcbyte/seqstore/pkg/util/collection/hash"
	"github.com/arcbyte/seqstore/pkg/util/collection/stack"
	"github.com/arcbyte/seqstore/pkg/value"
)

// Reverse reverses the array's elements in place via a two-pointer swap
// within the buffer; no sharing changes beyond the usual modify.
func (a *Array) Reverse() error {
	if err := a.modify(); err != nil {
		return err
	}
	//
	v := a.view()
	//
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
	//
	return nil
}

// reverseRange reverses v[lo:hi] in place.
func reverseRange(v []value.Value, lo, hi int) {
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// Rotate rotates the array's elements in place by k positions, normalized
// modulo the length with negative k counting from the right. Two special
// cases (k==1, k==len-1) avoid the general reverse-trick rotation's extra
// work; every other case reverses the three sub-ranges [0,k), [k,len),
// [0,len) in place. No allocation in any case.
func (a *Array) Rotate(k int) error {
	if err := a.modify(); err != nil {
		return err
	}
	//
	n := a.Len()
	if n == 0 {
		return nil
	}
	//
	k %= n
	if k < 0 {
		k += n
	}
	//
	if k == 0 {
		return nil
	}
	//
	v := a.view()
	//
	switch {
	case k == 1:
		head := v[0]
		copy(v[0:n-1], v[1:n])
		v[n-1] = head
	case k == n-1:
		tail := v[n-1]
		copy(v[1:n], v[0:n-1])
		v[0] = tail
	default:
		reverseRange(v, 0, k)
		reverseRange(v, k, n)
		reverseRange(v, 0, n)
	}
	//
	return nil
}

// Uniq rebuilds the array in order of first occurrence, removing later
// duplicates. keyFn, if non-nil, computes the value each element is
// deduplicated by; nil compares elements by their own Eql/Hash. Reports
// whether anything changed, leaving the array untouched when no duplicates
// are found.
func (a *Array) Uniq(keyFn func(value.Value) value.Value) (bool, error) {
	if err := a.modify(); err != nil {
		return false, err
	}
	//
	n := a.Len()
	if n <= 1 {
		return false, nil
	}
	//
	var (
		seen    = hash.NewSet[valueKey](uint(n))
		out     = make([]value.Value, 0, n)
		changed = false
	)
	//
	for _, e := range a.view() {
		key := e
		if keyFn != nil {
			key = keyFn(e)
		}
		//
		if seen.Insert(valueKey{key}) {
			// Already present: this is a later duplicate, drop it.
			changed = true
			continue
		}
		//
		out = append(out, e)
	}
	//
	if !changed {
		return false, nil
	}
	//
	if err := a.Resize(len(out)); err != nil {
		return false, err
	}
	//
	copy(a.view(), out)
	//
	return true, nil
}

// Compact sweeps nil elements out via a two-index compaction, shrinking on
// change. Reports whether anything changed.
func (a *Array) Compact() (bool, error) {
	if err := a.modify(); err != nil {
		return false, err
	}
	//
	var (
		v       = a.view()
		j       = 0
		changed = false
	)
	//
	for i := range v {
		if v[i].IsNil() {
			changed = true
			continue
		}
		//
		v[j] = v[i]
		j++
	}
	//
	if !changed {
		return false, nil
	}
	//
	if err := a.Resize(j); err != nil {
		return false, err
	}
	//
	return true, nil
}

// flattenFrame is one stack entry of Flatten's explicit-stack traversal:
// the array currently being visited, the next index to read from it, and
// the remaining descent depth (negative means unbounded).
type flattenFrame struct {
	arr *Array
	idx int
	dep int
}

// Flatten recursively flattens nested arrays (ArrayValue elements) into a
// new array, to the given depth (negative means unbounded, zero means a
// shallow copy with nested arrays left as elements). An explicit stack of
// (array, resume-index) frames is used rather than call-stack recursion, so
// depth is limited only by memory; cycles are detected with an
// identity-keyed set, but only when depth is unbounded -- a bounded flatten
// can never loop forever, so the extra bookkeeping is skipped.
func (a *Array) Flatten(depth int) (*Array, error) {
	var (
		out     = make([]value.Value, 0, a.Len())
		visited map[*Array]bool
		st      = stack.NewStack[flattenFrame]()
	)
	//
	if depth < 0 {
		visited = map[*Array]bool{a: true}
	}
	//
	st.Push(flattenFrame{a, 0, depth})
	//
	for !st.IsEmpty() {
		f := st.Pop()
		//
		if f.idx >= f.arr.Len() {
			if visited != nil {
				delete(visited, f.arr)
			}
			//
			continue
		}
		//
		v := f.arr.view()[f.idx]
		st.Push(flattenFrame{f.arr, f.idx + 1, f.dep})
		//
		if av, ok := v.(ArrayValue); ok && f.dep != 0 {
			child := av.Arr
			//
			if visited != nil {
				if visited[child] {
					return nil, fmt.Errorf("%w: flatten encountered a self-reference", ErrCycle)
				}
				//
				visited[child] = true
			}
			//
			nextDep := f.dep
			if nextDep > 0 {
				nextDep--
			}
			//
			st.Push(flattenFrame{child, 0, nextDep})
			//
			continue
		}
		//
		out = append(out, v)
	}
	//
	result := New()
	if err := result.Concat(out); err != nil {
		return nil, err
	}
	//
	return result, nil
}

// FindMin implements bsearch's find-minimum mode: pred is expected to be
// false then true across the array (monotonic), and FindMin returns the
// element at the smallest index where it becomes true, or reports failure
// if pred is never true.
func (a *Array) FindMin(pred func(value.Value) bool) (value.Value, int, bool) {
	var (
		v      = a.view()
		lo, hi = 0, len(v)
	)
	//
	for lo < hi {
		mid := (lo + hi) / 2
		//
		if pred(v[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	//
	if lo >= len(v) {
		return value.Nil{}, -1, false
	}
	//
	return v[lo], lo, true
}

// FindAny implements bsearch's find-any mode: cmp reports a three-way
// comparison of the candidate against the sought value (negative means
// search left of mid, positive means search right, zero means found).
// Returns the first element cmp reports zero for.
func (a *Array) FindAny(cmp func(value.Value) int) (value.Value, int, bool) {
	var (
		v      = a.view()
		lo, hi = 0, len(v)
	)
	//
	for lo < hi {
		mid := (lo + hi) / 2
		//
		switch c := cmp(v[mid]); {
		case c == 0:
			return v[mid], mid, true
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	//
	return value.Nil{}, -1, false
}

// Sum accumulates the array's elements via each value's Adder
// implementation when they're all addable in sequence. As soon as that
// chain breaks -- a non-Adder element, or a comparison across incompatible
// variants -- accumulation falls back to a three-phase Kahan-Babuška-
// Neumaier compensated float64 sum, so a long tail of float-like values
// doesn't lose precision the way naive accumulation would, even though none
// of this module's Value variants are natively floating point.
func (a *Array) Sum() (value.Value, error) {
	v := a.view()
	if len(v) == 0 {
		return value.NewWordUint64(0), nil
	}
	//
	result := v[0]
	allAdder := true
	//
	for _, e := range v[1:] {
		adder, ok := result.(value.Adder)
		if !ok {
			allAdder = false
			break
		}
		//
		var err error
		//
		if result, err = adder.Add(e); err != nil {
			allAdder = false
			break
		}
	}
	//
	if allAdder {
		return result, nil
	}
	//
	return compensatedFloatSum(v)
}

func compensatedFloatSum(v []value.Value) (value.Value, error) {
	var sum, c float64
	//
	for _, e := range v {
		f, ok := e.(value.Floatable)
		if !ok {
			return value.Nil{}, fmt.Errorf("%w: element not summable", value.ErrIncomparable)
		}
		//
		x, err := f.Float64()
		if err != nil {
			return value.Nil{}, err
		}
		//
		t := sum + x
		//
		if math.Abs(sum) >= math.Abs(x) {
			c += (sum - t) + x
		} else {
			c += (x - t) + sum
		}
		//
		sum = t
	}
	//
	return value.NewWordUint64(uint64(sum + c)), nil
}
