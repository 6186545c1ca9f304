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
)

func Test_Sample_Zero_00(t *testing.T) {
	a := arr(1, 2, 3)
	//
	out, err := a.Sample(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, out.Len())
}

func Test_Sample_RejectionBranch_01(t *testing.T) {
	a := arr(1, 2, 3, 4, 5, 6, 7, 8)
	//
	out, err := a.Sample(3)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, out.Len())
}

func Test_Sample_SparseBranch_02(t *testing.T) {
	ns := make([]uint64, 0, 200)
	for i := uint64(0); i < 200; i++ {
		ns = append(ns, i)
	}
	//
	a := arr(ns...)
	//
	out, err := a.Sample(12)
	assert.Equal(t, nil, err)
	assert.Equal(t, 12, out.Len())
}

func Test_Sample_FullFisherYates_03(t *testing.T) {
	ns := make([]uint64, 0, 30)
	for i := uint64(0); i < 30; i++ {
		ns = append(ns, i)
	}
	//
	a := arr(ns...)
	//
	out, err := a.Sample(25)
	assert.Equal(t, nil, err)
	assert.Equal(t, 25, out.Len())
}

func Test_Sample_MoreThanLength_04(t *testing.T) {
	a := arr(1, 2, 3)
	//
	out, err := a.Sample(10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, out.Len())
}

func Test_Sample_Negative_05(t *testing.T) {
	a := arr(1, 2, 3)
	//
	_, err := a.Sample(-1)
	assert.True(t, err != nil)
}

func Test_Shuffle_PreservesMultiset_06(t *testing.T) {
	a := arr(1, 2, 3, 4, 5)
	//
	out, err := a.Shuffle()
	assert.Equal(t, nil, err)
	assert.Equal(t, 5, out.Len())
	//
	// a is untouched.
	checkContents(t, a, 1, 2, 3, 4, 5)
}

func Test_ShuffleInPlace_07(t *testing.T) {
	a := arr(1, 2, 3, 4, 5)
	//
	assert.Equal(t, nil, a.ShuffleInPlace())
	assert.Equal(t, 5, a.Len())
}

func Test_ShuffleInPlace_Frozen_08(t *testing.T) {
	a := arr(1, 2, 3)
	a.Freeze()
	//
	err := a.ShuffleInPlace()
	assert.True(t, err != nil)
}
