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
package value

import (
	"errors"
	"testing"

	"github.com/arcbyte/seqstore/pkg/util/assert"
)

func Test_Nil_00(t *testing.T) {
	n := Nil{}
	//
	assert.True(t, n.IsNil())
	assert.Equal(t, "nil", n.String())
	assert.Equal(t, uint64(0), n.Hash())
	assert.True(t, n.Equal(Nil{}))
	assert.True(t, n.Eql(Nil{}))
}

func Test_Nil_CmpAgainstNonNil_01(t *testing.T) {
	n := Nil{}
	//
	_, err := n.Cmp(NewWordUint64(1))
	assert.True(t, errors.Is(err, ErrIncomparable))
}

func Test_Word_RoundTrip_02(t *testing.T) {
	w := NewWordUint64(42)
	assert.False(t, w.IsNil())
	assert.Equal(t, uint64(42), w.Raw().Uint64())
}

func Test_Word_Cmp_03(t *testing.T) {
	a := NewWordUint64(1)
	b := NewWordUint64(2)
	//
	c, err := a.Cmp(b)
	assert.Equal(t, nil, err)
	assert.True(t, c < 0)
}

func Test_Word_CmpIncomparable_04(t *testing.T) {
	a := NewWordUint64(1)
	//
	_, err := a.Cmp(NewSmallFieldUint32(1))
	assert.True(t, errors.Is(err, ErrIncomparable))
}

func Test_Word_Add_05(t *testing.T) {
	a := NewWordUint64(3)
	b := NewWordUint64(4)
	//
	sum, err := a.Add(b)
	assert.Equal(t, nil, err)
	assert.True(t, sum.Equal(NewWordUint64(7)))
}

func Test_Word_Float64_06(t *testing.T) {
	w := NewWordUint64(10)
	//
	f, err := w.Float64()
	assert.Equal(t, nil, err)
	assert.Equal(t, 10.0, f)
}

func Test_SmallField_Add_07(t *testing.T) {
	a := NewSmallFieldUint32(3)
	b := NewSmallFieldUint32(4)
	//
	sum, err := a.Add(b)
	assert.Equal(t, nil, err)
	assert.True(t, sum.Equal(NewSmallFieldUint32(7)))
}

func Test_SmallField_Eql_08(t *testing.T) {
	a := NewSmallFieldUint32(5)
	b := NewSmallFieldUint32(5)
	//
	assert.True(t, a.Eql(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func Test_SmallField_Wraparound_09(t *testing.T) {
	a := NewSmallFieldUint32(smallPrime - 1)
	one := NewSmallFieldUint32(1)
	//
	sum, err := a.Add(one)
	assert.Equal(t, nil, err)
	assert.True(t, sum.Equal(NewSmallFieldUint32(0)))
}

func Test_BLS12377_Add_10(t *testing.T) {
	a := NewBLS12377Uint64(3)
	b := NewBLS12377Uint64(4)
	//
	sum, err := a.Add(b)
	assert.Equal(t, nil, err)
	assert.True(t, sum.Equal(NewBLS12377Uint64(7)))
}

func Test_BLS12377_Eql_11(t *testing.T) {
	a := NewBLS12377Uint64(9)
	b := NewBLS12377Uint64(9)
	//
	assert.True(t, a.Eql(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func Test_BLS12377_Float64_12(t *testing.T) {
	a := NewBLS12377Uint64(12)
	//
	f, err := a.Float64()
	assert.Equal(t, nil, err)
	assert.Equal(t, 12.0, f)
}
