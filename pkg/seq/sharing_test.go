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

func Test_Slice_SharesRoot_00(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
	//
	v1, ok, err := a.Slice(2, 5)
	assert.Equal(t, nil, err)
	assert.True(t, ok)
	assert.True(t, v1.IsShared())
	//
	v2, ok, err := a.Slice(2, 5)
	assert.Equal(t, nil, err)
	assert.True(t, ok)
	//
	assert.True(t, Shares(v1, v2))
}

func Test_Slice_SmallResultEmbeds_01(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
	//
	v, ok, err := a.Slice(0, 2)
	assert.Equal(t, nil, err)
	assert.True(t, ok)
	assert.True(t, v.IsEmbedded())
}

func Test_Slice_StartAtLength_02(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3))
	//
	v, ok, err := a.Slice(3, 5)
	assert.Equal(t, nil, err)
	assert.True(t, ok)
	assert.Equal(t, 0, v.Len())
}

func Test_Slice_StartBeyondLength_03(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3))
	//
	v, ok, err := a.Slice(4, 5)
	assert.Equal(t, nil, err)
	assert.False(t, ok)
	assert.Equal(t, (*Array)(nil), v)
}

func Test_Slice_NegativeLength_04(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3))
	//
	_, _, err := a.Slice(0, -1)
	assert.True(t, err != nil)
}

func Test_CancelSharing_ReEmbed_05(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
	//
	v, _, _ := a.Slice(0, 8)
	assert.True(t, v.IsShared())
	//
	// Trimming down to EmbedCapacity detaches the view (a deep copy, since a
	// still holds the root) and then re-embeds the truncated buffer.
	_ = v.Resize(2)
	assert.Equal(t, nil, v.Store(0, value.NewWordUint64(99)))
	assert.True(t, v.IsEmbedded())
}

func Test_CancelSharing_WriteDoesNotAffectSource_06(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
	//
	v, _, _ := a.Slice(0, 8)
	assert.True(t, v.IsShared())
	//
	assert.Equal(t, nil, v.Store(0, value.NewWordUint64(999)))
	//
	orig, ok := a.Get(0)
	assert.True(t, ok)
	assert.True(t, orig.Equal(value.NewWordUint64(0)))
}

func Test_CancelSharing_StealBuffer_07(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19))
	//
	// Shift promotes a to a shared view over the original buffer; once more
	// than half of the root's buffer lies within the view, the view
	// qualifies for the steal-the-buffer strategy on its next write.
	for i := 0; i < 9; i++ {
		_, _, _ = a.Shift()
	}
	//
	assert.True(t, a.IsShared())
	//
	assert.Equal(t, nil, a.Store(0, value.NewWordUint64(999)))
	v, ok := a.Get(0)
	assert.True(t, ok)
	assert.True(t, v.Equal(value.NewWordUint64(999)))
}

func Test_Shares_DifferentViews_08(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
	//
	v1, _, _ := a.Slice(0, 5)
	v2, _, _ := a.Slice(1, 5)
	//
	assert.False(t, Shares(v1, v2))
}

func Test_Dup_Independent_09(t *testing.T) {
	a := New()
	_ = a.Concat(wordsOf(1, 2, 3))
	//
	b := a.Dup()
	checkContents(t, b, 1, 2, 3)
	//
	_ = a.Push(value.NewWordUint64(4))
	assert.Equal(t, 3, b.Len())
}
