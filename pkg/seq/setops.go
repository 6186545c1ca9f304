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

	"github.com/arcbyte/seqstore/pkg/util/collection/hash"
	"github.com/arcbyte/seqstore/pkg/value"
)

// setOpThreshold is the total input size at or below which set operations
// use a linear eql?-based scan instead of a hash-backed set.
const setOpThreshold = 16

func totalLen(arrays []*Array) int {
	n := 0
	//
	for _, a := range arrays {
		n += a.Len()
	}
	//
	return n
}

func containsEql(items []value.Value, v value.Value) bool {
	for _, it := range items {
		if it.Eql(v) {
			return true
		}
	}
	//
	return false
}

// Union returns the elements of each array in order, left to right, with
// duplicates (by Eql) after the first occurrence dropped. At or below
// setOpThreshold total elements a linear eql?-based scan is used; otherwise
// a hash-backed set does the deduplication.
func Union(arrays ...*Array) *Array {
	out := New()
	if len(arrays) == 0 {
		return out
	}
	//
	if totalLen(arrays) <= setOpThreshold {
		var seen []value.Value
		//
		for _, arr := range arrays {
			for _, v := range arr.view() {
				if containsEql(seen, v) {
					continue
				}
				//
				seen = append(seen, v)
				_ = out.Push(v)
			}
		}
		//
		return out
	}
	//
	seen := hash.NewSet[valueKey](uint(totalLen(arrays)))
	//
	for _, arr := range arrays {
		for _, v := range arr.view() {
			if !seen.Insert(valueKey{v}) {
				_ = out.Push(v)
			}
		}
	}
	//
	return out
}

// intersectTwo returns the elements of a that also occur in b, preserving
// a's first-occurrence order and deduplicating the result.
func intersectTwo(a, b *Array) *Array {
	out := New()
	//
	if a.Len()+b.Len() <= setOpThreshold {
		var produced []value.Value
		//
		for _, v := range a.view() {
			if !containsEql(b.view(), v) || containsEql(produced, v) {
				continue
			}
			//
			produced = append(produced, v)
			_ = out.Push(v)
		}
		//
		return out
	}
	//
	bset := hash.NewSet[valueKey](uint(b.Len()))
	for _, v := range b.view() {
		bset.Insert(valueKey{v})
	}
	//
	seen := hash.NewSet[valueKey](uint(a.Len()))
	//
	for _, v := range a.view() {
		if bset.Contains(valueKey{v}) && !seen.Insert(valueKey{v}) {
			_ = out.Push(v)
		}
	}
	//
	return out
}

// Intersection combines arrays left to right, each step intersecting the
// running result against the next array.
func Intersection(arrays ...*Array) *Array {
	if len(arrays) == 0 {
		return New()
	}
	//
	result := arrays[0]
	//
	for _, next := range arrays[1:] {
		result = intersectTwo(result, next)
	}
	//
	out := New()
	_ = out.Concat(result.view())
	//
	return out
}

// differenceTwo returns the elements of a not present in b.
func differenceTwo(a, b *Array) *Array {
	out := New()
	//
	if a.Len()+b.Len() <= setOpThreshold {
		for _, v := range a.view() {
			if !containsEql(b.view(), v) {
				_ = out.Push(v)
			}
		}
		//
		return out
	}
	//
	bset := hash.NewSet[valueKey](uint(b.Len()))
	for _, v := range b.view() {
		bset.Insert(valueKey{v})
	}
	//
	for _, v := range a.view() {
		if !bset.Contains(valueKey{v}) {
			_ = out.Push(v)
		}
	}
	//
	return out
}

// Difference combines arrays left to right: a minus arrays[1], minus
// arrays[2], and so on.
func Difference(arrays ...*Array) *Array {
	if len(arrays) == 0 {
		return New()
	}
	//
	result := arrays[0]
	//
	for _, next := range arrays[1:] {
		result = differenceTwo(result, next)
	}
	//
	out := New()
	_ = out.Concat(result.view())
	//
	return out
}

// Join concatenates the array's elements with sep between them, descending
// recursively into nested ArrayValue elements and detecting cycles with the
// same identity-keyed guard Flatten uses.
func (a *Array) Join(sep string) (string, error) {
	var b strings.Builder
	//
	wrote := false
	if err := a.joinInto(&b, sep, map[*Array]bool{a: true}, &wrote); err != nil {
		return "", err
	}
	//
	return b.String(), nil
}

func (a *Array) joinInto(b *strings.Builder, sep string, visited map[*Array]bool, wrote *bool) error {
	for _, v := range a.view() {
		if av, ok := v.(ArrayValue); ok {
			child := av.Arr
			//
			if visited[child] {
				return fmt.Errorf("%w: join encountered a self-reference", ErrCycle)
			}
			//
			visited[child] = true
			//
			if err := child.joinInto(b, sep, visited, wrote); err != nil {
				return err
			}
			//
			delete(visited, child)
			//
			continue
		}
		//
		if *wrote {
			b.WriteString(sep)
		}
		//
		b.WriteString(v.String())
		*wrote = true
	}
	//
	return nil
}
