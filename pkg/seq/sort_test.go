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

func Test_SortBy_Ascending_00(t *testing.T) {
	a := arr(5, 3, 1, 4, 2)
	//
	assert.Equal(t, nil, a.SortBy())
	checkContents(t, a, 1, 2, 3, 4, 5)
}

func Test_Sort_CustomLess_01(t *testing.T) {
	a := arr(1, 2, 3, 4, 5)
	//
	descending := func(x, y value.Value) (bool, error) {
		return DefaultLess(y, x)
	}
	//
	assert.Equal(t, nil, a.Sort(descending))
	checkContents(t, a, 5, 4, 3, 2, 1)
}

func Test_Sort_ComparatorError_02(t *testing.T) {
	a := arr(1, 2, 3)
	//
	boom := errors.New("boom")
	//
	err := a.Sort(func(value.Value, value.Value) (bool, error) {
		return false, boom
	})
	assert.True(t, errors.Is(err, boom))
}

func Test_Sort_ComparatorMutatesArray_03(t *testing.T) {
	a := arr(1, 2, 3, 4, 5)
	//
	first := true
	//
	err := a.Sort(func(x, y value.Value) (bool, error) {
		if first {
			first = false
			_ = a.Push(value.NewWordUint64(99))
		}
		//
		return DefaultLess(x, y)
	})
	assert.True(t, errors.Is(err, ErrReentrancy))
}

func Test_Sort_ComparatorFreezesArray_04(t *testing.T) {
	a := arr(1, 2, 3)
	//
	err := a.Sort(func(x, y value.Value) (bool, error) {
		a.Freeze()
		return DefaultLess(x, y)
	})
	assert.True(t, errors.Is(err, ErrFrozen))
}

func Test_Sort_Frozen_05(t *testing.T) {
	a := arr(1, 2, 3)
	a.Freeze()
	//
	err := a.SortBy()
	assert.True(t, errors.Is(err, ErrFrozen))
}

func Test_Sort_Stable_06(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(2, 1, 2, 1))
	//
	assert.Equal(t, nil, a.SortBy())
	checkContents(t, a, 1, 1, 2, 2)
}
