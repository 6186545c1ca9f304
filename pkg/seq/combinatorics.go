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

import "fmt"

// Combinations visits every k-combination of a's elements, in lexicographic
// index order, calling fn with a fresh result array for each. fn's error
// aborts the enumeration and is returned. Reentrancy is detected the same
// way Sort detects it: the generation marker is snapshotted up front and
// checked before constructing each combination, so a fn that mutates a
// fails with ErrReentrancy instead of enumerating over moved memory.
func (a *Array) Combinations(k int, fn func(*Array) error) error {
	n := a.Len()
	if k < 0 || k > n {
		return nil
	}
	//
	gen := a.generation
	idx := make([]int, k)
	//
	for i := range idx {
		idx[i] = i
	}
	//
	for {
		if a.generation != gen {
			return fmt.Errorf("%w: array modified during combination enumeration", ErrReentrancy)
		}
		//
		result := New()
		for _, i := range idx {
			if err := result.Push(a.view()[i]); err != nil {
				return err
			}
		}
		//
		if err := fn(result); err != nil {
			return err
		}
		//
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		//
		if i < 0 {
			return nil
		}
		//
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Permutations visits every k-permutation (order matters, no repeats) of
// a's elements, in lexicographic order, calling fn with a fresh result
// array for each.
func (a *Array) Permutations(k int, fn func(*Array) error) error {
	n := a.Len()
	if k < 0 || k > n {
		return nil
	}
	//
	var (
		gen  = a.generation
		used = make([]bool, n)
		idx  = make([]int, k)
	)
	//
	var recurse func(depth int) error
	//
	recurse = func(depth int) error {
		if a.generation != gen {
			return fmt.Errorf("%w: array modified during permutation enumeration", ErrReentrancy)
		}
		//
		if depth == k {
			result := New()
			for _, i := range idx {
				if err := result.Push(a.view()[i]); err != nil {
					return err
				}
			}
			//
			return fn(result)
		}
		//
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			//
			used[i] = true
			idx[depth] = i
			//
			if err := recurse(depth + 1); err != nil {
				used[i] = false
				return err
			}
			//
			used[i] = false
		}
		//
		return nil
	}
	//
	return recurse(0)
}

// RepeatedPermutations visits every length-k tuple drawn with repetition
// from a's elements, in lexicographic order. The generation marker is
// snapshotted up front and checked before each tuple, so a fn that mutates a
// fails with ErrReentrancy instead of enumerating over moved memory.
func (a *Array) RepeatedPermutations(k int, fn func(*Array) error) error {
	if k < 0 {
		return nil
	}
	//
	n := a.Len()
	if n == 0 {
		if k == 0 {
			return fn(New())
		}
		//
		return nil
	}
	//
	gen := a.generation
	idx := make([]int, k)
	//
	for {
		if a.generation != gen {
			return fmt.Errorf("%w: array modified during repeated-permutation enumeration", ErrReentrancy)
		}
		//
		result := New()
		for _, i := range idx {
			if err := result.Push(a.view()[i]); err != nil {
				return err
			}
		}
		//
		if err := fn(result); err != nil {
			return err
		}
		//
		pos := k - 1
		//
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < n {
				break
			}
			//
			idx[pos] = 0
			pos--
		}
		//
		if pos < 0 {
			return nil
		}
	}
}

// Product visits the cartesian product of the given arrays, one result
// array per tuple in lexicographic order. The result count is
// bounds-checked against MAX before any enumeration starts, so a
// combinatorially huge product fails fast rather than after allocating
// partial results. Each array's generation marker is snapshotted up front
// and checked before every tuple, so a fn that mutates any of them fails
// with ErrReentrancy instead of enumerating over moved memory.
func Product(fn func(*Array) error, arrays ...*Array) error {
	total := 1
	//
	for _, arr := range arrays {
		if arr.Len() == 0 {
			return nil
		}
		//
		if total > MAX/arr.Len() {
			return fmt.Errorf("%w: product result would exceed MAX", ErrSizeLimitExceeded)
		}
		//
		total *= arr.Len()
	}
	//
	gens := make([]uint64, len(arrays))
	for i, arr := range arrays {
		gens[i] = arr.generation
	}
	//
	idx := make([]int, len(arrays))
	//
	for {
		for i, arr := range arrays {
			if arr.generation != gens[i] {
				return fmt.Errorf("%w: array modified during product enumeration", ErrReentrancy)
			}
		}
		//
		result := New()
		for i, arr := range arrays {
			if err := result.Push(arr.view()[idx[i]]); err != nil {
				return err
			}
		}
		//
		if err := fn(result); err != nil {
			return err
		}
		//
		pos := len(arrays) - 1
		//
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < arrays[pos].Len() {
				break
			}
			//
			idx[pos] = 0
			pos--
		}
		//
		if pos < 0 {
			return nil
		}
	}
}
