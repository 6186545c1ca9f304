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
	"fmt"

	"github.com/arcbyte/seqstore/pkg/util/word"
)

var _ Value = Word{}

// Word wraps a canonical big-endian byte word as a sequence element.
type Word struct {
	inner word.BigEndian
}

// NewWord constructs a Word value from a big-endian byte slice.
func NewWord(bytes []byte) Word {
	return Word{word.NewBigEndian(bytes)}
}

// NewWordUint64 constructs a Word value from a uint64.
func NewWordUint64(v uint64) Word {
	return Word{word.BigEndian{}.SetUint64(v)}
}

// Raw returns the underlying big-endian word.
func (p Word) Raw() word.BigEndian {
	return p.inner
}

// String implementation for fmt.Stringer.
func (p Word) String() string {
	return p.inner.String()
}

// Cmp implementation for Value.
func (p Word) Cmp(other Value) (int, error) {
	if o, ok := other.(Word); ok {
		return p.inner.Cmp(o.inner), nil
	}
	//
	return 0, fmt.Errorf("%w: word vs %s", ErrIncomparable, other)
}

// Equal implementation for Value (structural equality coincides with Eql
// here, since a byte word has no looser notion of sameness).
func (p Word) Equal(other Value) bool {
	return p.Eql(other)
}

// Eql implementation for Value.
func (p Word) Eql(other Value) bool {
	o, ok := other.(Word)
	return ok && p.inner.Equals(o.inner)
}

// Hash implementation for Value.
func (p Word) Hash() uint64 {
	return p.inner.Hash()
}

// IsNil implementation for Value.
func (Word) IsNil() bool {
	return false
}

// Float64 implementation for Floatable. Words wider than 8 bytes cannot be
// represented and report an error rather than silently truncating.
func (p Word) Float64() (float64, error) {
	if p.inner.ByteWidth() > 8 {
		return 0, fmt.Errorf("%w: word too wide for float64 conversion", ErrIncomparable)
	}
	//
	return float64(p.inner.Uint64()), nil
}

// Add implementation for Adder. Both operands are regarded as unsigned
// 64-bit integers; wider words report an error rather than truncating.
func (p Word) Add(other Value) (Value, error) {
	o, ok := other.(Word)
	if !ok {
		return nil, fmt.Errorf("%w: word vs %s", ErrIncomparable, other)
	}
	//
	if p.inner.ByteWidth() > 8 || o.inner.ByteWidth() > 8 {
		return nil, fmt.Errorf("%w: word too wide for addition", ErrIncomparable)
	}
	//
	return NewWordUint64(p.inner.Uint64() + o.inner.Uint64()), nil
}
