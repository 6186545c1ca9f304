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
	"testing"

	"github.com/arcbyte/seqstore/pkg/util/assert"
	"github.com/arcbyte/seqstore/pkg/value"
)

func arr(ns ...uint64) *Array {
	a := New()
	_ = a.Concat(wordsOf(ns...))
	//
	return a
}

func Test_Union_Small_00(t *testing.T) {
	out := Union(arr(1, 2, 3), arr(2, 3, 4))
	checkContents(t, out, 1, 2, 3, 4)
}

func Test_Union_Large_01(t *testing.T) {
	var a, b []uint64
	//
	for i := uint64(0); i < 20; i++ {
		a = append(a, i)
		b = append(b, i+10)
	}
	//
	out := Union(arr(a...), arr(b...))
	assert.Equal(t, 30, out.Len())
}

func Test_Union_NoArgs_02(t *testing.T) {
	out := Union()
	assert.Equal(t, 0, out.Len())
}

func Test_Intersection_Small_03(t *testing.T) {
	out := Intersection(arr(1, 2, 3, 4), arr(2, 4, 6))
	checkContents(t, out, 2, 4)
}

func Test_Intersection_Chained_04(t *testing.T) {
	out := Intersection(arr(1, 2, 3, 4, 5), arr(2, 3, 4, 5), arr(3, 4))
	checkContents(t, out, 3, 4)
}

func Test_Difference_Small_05(t *testing.T) {
	out := Difference(arr(1, 2, 3, 4), arr(2, 4))
	checkContents(t, out, 1, 3)
}

func Test_Difference_Large_06(t *testing.T) {
	var a, b []uint64
	//
	for i := uint64(0); i < 20; i++ {
		a = append(a, i)
	}
	//
	for i := uint64(0); i < 10; i++ {
		b = append(b, i)
	}
	//
	out := Difference(arr(a...), arr(b...))
	assert.Equal(t, 10, out.Len())
}

func Test_Join_Flat_07(t *testing.T) {
	a := arr(1, 2, 3)
	//
	s, err := a.Join(",")
	assert.Equal(t, nil, err)
	assert.Equal(t, "1,2,3", s)
}

func Test_Join_Nested_08(t *testing.T) {
	inner := arr(2, 3)
	//
	outer := New()
	_ = outer.Push(value.NewWordUint64(1))
	_ = outer.Push(ArrayValue{Arr: inner})
	//
	s, err := outer.Join("-")
	assert.Equal(t, nil, err)
	assert.Equal(t, "1-2-3", s)
}

func Test_Join_Cycle_09(t *testing.T) {
	a := New()
	_ = a.Push(ArrayValue{Arr: a})
	//
	_, err := a.Join(",")
	assert.True(t, err != nil)
}
