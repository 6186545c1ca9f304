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
	"errors"
	"testing"

	"github.com/arcbyte/seqstore/pkg/util/assert"
	"github.com/arcbyte/seqstore/pkg/value"
)

func Test_Reverse_00(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3, 4, 5))
	//
	assert.Equal(t, nil, a.Reverse())
	checkContents(t, a, 5, 4, 3, 2, 1)
}

func Test_Rotate_Positive_01(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3, 4, 5))
	//
	assert.Equal(t, nil, a.Rotate(2))
	checkContents(t, a, 3, 4, 5, 1, 2)
}

func Test_Rotate_Negative_02(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3, 4, 5))
	//
	assert.Equal(t, nil, a.Rotate(-1))
	checkContents(t, a, 5, 1, 2, 3, 4)
}

func Test_Rotate_OneAndNMinusOne_03(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3, 4))
	assert.Equal(t, nil, a.Rotate(1))
	checkContents(t, a, 2, 3, 4, 1)
	//
	b := New()
	_ = b.Concat(wordsOf(1, 2, 3, 4))
	assert.Equal(t, nil, b.Rotate(3))
	checkContents(t, b, 4, 1, 2, 3)
}

func Test_Rotate_Empty_04(t *testing.T) {
	a := New()
	assert.Equal(t, nil, a.Rotate(5))
}

func Test_Uniq_DefaultKey_05(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 2, 3, 1, 4))
	//
	changed, err := a.Uniq(nil)
	assert.Equal(t, nil, err)
	assert.True(t, changed)
	checkContents(t, a, 1, 2, 3, 4)
}

func Test_Uniq_NoChange_06(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3))
	//
	changed, err := a.Uniq(nil)
	assert.Equal(t, nil, err)
	assert.False(t, changed)
	checkContents(t, a, 1, 2, 3)
}

func Test_Uniq_WithKeyFn_07(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 11, 2, 12))
	//
	mod10 := func(v value.Value) value.Value {
		w := v.(value.Word).Raw().Uint64() % 10
		return value.NewWordUint64(w)
	}
	//
	changed, err := a.Uniq(mod10)
	assert.Equal(t, nil, err)
	assert.True(t, changed)
	checkContents(t, a, 1, 2)
}

func Test_Compact_RemovesNil_08(t *testing.T) {
	a := New()
	_ = a.Concat([]value.Value{
		value.NewWordUint64(1),
		value.Nil{},
		value.NewWordUint64(2),
		value.Nil{},
	})
	//
	changed, err := a.Compact()
	assert.Equal(t, nil, err)
	assert.True(t, changed)
	checkContents(t, a, 1, 2)
}

func Test_Compact_NoChange_09(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3))
	//
	changed, err := a.Compact()
	assert.Equal(t, nil, err)
	assert.False(t, changed)
}

func Test_Flatten_Shallow_10(t *testing.T) {
	inner := New()
	_ = inner.Concat(wordsOf(2, 3))
	//
	outer := New()
	_ = outer.Concat([]value.Value{value.NewWordUint64(1), ArrayValue{Arr: inner}, value.NewWordUint64(4)})
	//
	flat, err := outer.Flatten(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, flat.Len())
}

func Test_Flatten_Unbounded_11(t *testing.T) {
	inner := New()
	_ = inner.Concat(wordsOf(2, 3))
	//
	outer := New()
	_ = outer.Concat([]value.Value{value.NewWordUint64(1), ArrayValue{Arr: inner}, value.NewWordUint64(4)})
	//
	flat, err := outer.Flatten(-1)
	assert.Equal(t, nil, err)
	checkContents(t, flat, 1, 2, 3, 4)
}

func Test_Flatten_DetectsCycle_12(t *testing.T) {
	a := New()
	_ = a.Push(value.NewWordUint64(1))
	_ = a.Push(ArrayValue{Arr: a})
	//
	_, err := a.Flatten(-1)
	assert.True(t, errors.Is(err, ErrCycle))
}

func Test_FindMin_13(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3, 4, 5, 6, 7, 8))
	//
	v, idx, ok := a.FindMin(func(v value.Value) bool {
		return v.(value.Word).Raw().Uint64() >= 5
	})
	assert.True(t, ok)
	assert.Equal(t, 4, idx)
	assert.True(t, v.Equal(value.NewWordUint64(5)))
}

func Test_FindMin_NeverTrue_14(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3))
	//
	_, _, ok := a.FindMin(func(value.Value) bool { return false })
	assert.False(t, ok)
}

func Test_FindAny_15(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 3, 5, 7, 9))
	//
	v, idx, ok := a.FindAny(func(v value.Value) int {
		target := uint64(7)
		got := v.(value.Word).Raw().Uint64()
		//
		switch {
		case got < target:
			return 1
		case got > target:
			return -1
		default:
			return 0
		}
	})
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.True(t, v.Equal(value.NewWordUint64(7)))
}

func Test_Sum_Empty_16(t *testing.T) {
	a := New()
	s, err := a.Sum()
	assert.Equal(t, nil, err)
	assert.True(t, s.Equal(value.NewWordUint64(0)))
}

func Test_Sum_Words_17(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3, 4, 5))
	//
	s, err := a.Sum()
	assert.Equal(t, nil, err)
	assert.True(t, s.Equal(value.NewWordUint64(15)))
}
