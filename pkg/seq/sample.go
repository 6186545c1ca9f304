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
	"math/rand/v2"

	"github.com/arcbyte/seqstore/pkg/value"
)

// Branch thresholds for Sample: n<=3 and n<=10 both reduce to rejection
// sampling of distinct indices, since only uniformity without replacement is
// observable at that scale; n small relative to len uses a sparse hash
// simulation of partial Fisher-Yates, and everything else uses a full
// Fisher-Yates over a working copy truncated to n.
const (
	sampleClosedFormMax  = 3
	sampleInsertionMax    = 10
	sampleSparseRatioPct = 6
)

// Sample performs weighted selection of n elements without replacement. The
// array's length is re-checked after every RNG draw in every branch, so a
// concurrent modification surfaces as ErrReentrancy regardless of which
// branch handled the call.
func (a *Array) Sample(n int) (*Array, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w", ErrNegativeSize)
	}
	//
	length0 := a.Len()
	if n > length0 {
		n = length0
	}
	//
	checkLen := func() error {
		if a.Len() != length0 {
			return fmt.Errorf("%w: array resized during sample", ErrReentrancy)
		}
		//
		return nil
	}
	//
	switch {
	case n == 0:
		return New(), nil
	case n <= sampleClosedFormMax || n <= sampleInsertionMax:
		return a.sampleByRejection(n, checkLen)
	case length0 > 0 && n*100 <= length0*sampleSparseRatioPct:
		return a.sampleSparseFisherYates(n, checkLen)
	default:
		return a.sampleFullFisherYates(n, checkLen)
	}
}

// sampleByRejection draws n distinct indices by rejecting repeats, which is
// what both the small closed-form branch and the insertion-partial branch
// reduce to behaviourally.
func (a *Array) sampleByRejection(n int, checkLen func() error) (*Array, error) {
	var (
		chosen = make(map[int]bool, n)
		out    = make([]value.Value, 0, n)
	)
	//
	for len(out) < n {
		idx := rand.IntN(a.Len())
		if err := checkLen(); err != nil {
			return nil, err
		}
		//
		if chosen[idx] {
			continue
		}
		//
		chosen[idx] = true
		out = append(out, a.view()[idx])
		//
		if err := checkLen(); err != nil {
			return nil, err
		}
	}
	//
	result := New()
	if err := result.Concat(out); err != nil {
		return nil, err
	}
	//
	return result, nil
}

// sampleSparseFisherYates simulates a partial Fisher-Yates shuffle over a
// sparse map from index to its current overridden value, rather than
// materializing a full-length working copy. Position i is never read again
// once finalized (every later draw is >= the next i), so its override can
// be dropped immediately.
func (a *Array) sampleSparseFisherYates(n int, checkLen func() error) (*Array, error) {
	var (
		length    = a.Len()
		overrides = make(map[int]value.Value, n)
	)
	//
	get := func(k int) value.Value {
		if v, ok := overrides[k]; ok {
			return v
		}
		//
		return a.view()[k]
	}
	//
	out := make([]value.Value, 0, n)
	//
	for i := 0; i < n; i++ {
		j := i + rand.IntN(length-i)
		if err := checkLen(); err != nil {
			return nil, err
		}
		//
		vi, vj := get(i), get(j)
		out = append(out, vj)
		overrides[j] = vi
		delete(overrides, i)
		//
		if err := checkLen(); err != nil {
			return nil, err
		}
	}
	//
	result := New()
	if err := result.Concat(out); err != nil {
		return nil, err
	}
	//
	return result, nil
}

// sampleFullFisherYates performs a full Fisher-Yates shuffle on a working
// copy, truncated to n.
func (a *Array) sampleFullFisherYates(n int, checkLen func() error) (*Array, error) {
	var (
		work   = append([]value.Value(nil), a.view()...)
		length = len(work)
	)
	//
	for i := 0; i < n; i++ {
		j := i + rand.IntN(length-i)
		if err := checkLen(); err != nil {
			return nil, err
		}
		//
		work[i], work[j] = work[j], work[i]
	}
	//
	result := New()
	if err := result.Concat(work[:n]); err != nil {
		return nil, err
	}
	//
	return result, nil
}

// Shuffle returns a new array holding a's elements in random order
// (Fisher-Yates on a copy; a never changes).
func (a *Array) Shuffle() (*Array, error) {
	work := append([]value.Value(nil), a.view()...)
	//
	for i := len(work) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		work[i], work[j] = work[j], work[i]
	}
	//
	result := New()
	if err := result.Concat(work); err != nil {
		return nil, err
	}
	//
	return result, nil
}

// ShuffleInPlace shuffles a's elements in place (Fisher-Yates), comparing
// the generation marker before every swap so a mutation triggered by
// something this package doesn't itself invoke during the loop is still
// caught rather than silently producing a corrupted permutation.
func (a *Array) ShuffleInPlace() error {
	if err := a.modify(); err != nil {
		return err
	}
	//
	var (
		n   = a.Len()
		gen = a.generation
	)
	//
	for i := n - 1; i > 0; i-- {
		if a.generation != gen || a.Len() != n {
			return fmt.Errorf("%w: array modified during shuffle", ErrReentrancy)
		}
		//
		j := rand.IntN(i + 1)
		v := a.view()
		v[i], v[j] = v[j], v[i]
	}
	//
	return nil
}
