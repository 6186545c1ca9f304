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
	"sort"

	"github.com/arcbyte/seqstore/pkg/value"
)

// Less is a user-supplied comparator. It may itself call back into the
// array being sorted (e.g. to freeze it, or read its length); Sort detects
// whether such a callback actually mutated the array's identity and fails
// with ErrReentrancy rather than operate on an inconsistent snapshot.
type Less func(a, b value.Value) (bool, error)

// DefaultLess orders Values using their natural Cmp, propagating
// ErrComparison when two elements are not ordered relative to each other.
func DefaultLess(a, b value.Value) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrComparison, err)
	}
	//
	return c < 0, nil
}

// Sort orders the array's elements in place using less. It is a stable sort,
// so equal elements preserve their relative order.
//
// A defensive copy of the current contents is sorted first; the generation
// marker is snapshotted before sorting and checked after, so that if less
// reentered this array (pushed, froze, or otherwise changed its identity)
// the result is discarded and ErrReentrancy is returned instead of
// silently committing a sort of stale data over mutated live state.
func (a *Array) Sort(less Less) error {
	if err := a.modify(); err != nil {
		return err
	}
	//
	var (
		snapshot = append([]value.Value(nil), a.view()...)
		gen      = a.generation
		sortErr  error
	)
	//
	sort.SliceStable(snapshot, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		//
		ok, err := less(snapshot[i], snapshot[j])
		if err != nil {
			sortErr = err
		}
		//
		return ok
	})
	//
	if sortErr != nil {
		return sortErr
	}
	//
	// A comparator that froze the destination is reported as a frozen-write
	// failure rather than generic reentrancy, since that is the specific
	// tampering the guard observed.
	if a.frozen {
		return fmt.Errorf("%w: comparator froze array under sort", ErrFrozen)
	}
	//
	if a.generation != gen {
		return fmt.Errorf("%w: comparator mutated array under sort", ErrReentrancy)
	}
	//
	copy(a.view(), snapshot)
	a.touch()
	//
	return nil
}

// SortBy orders elements by DefaultLess.
func (a *Array) SortBy() error {
	return a.Sort(DefaultLess)
}

// touch bumps the generation marker. Called by every operation that
// changes an Array's identity (mode transition, freeze, length change via
// a mutation primitive) so reentrancy guards in Sort/Sample/Shuffle/the
// combinatoric visitors can detect tampering.
func (a *Array) touch() {
	a.generation++
}
