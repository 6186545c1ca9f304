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
	"hash/fnv"

	"github.com/arcbyte/seqstore/smallfield"
)

// smallPrime is the Mersenne31 prime used for the dependency-free field
// backend.  Unlike the bls12-377 backend, smallfield.Field carries no state
// beyond the modulus, so a single process-wide instance suffices.
const smallPrime = 1<<31 - 1

var smallFieldRing = smallfield.New(smallPrime)

var _ Value = SmallField{}

// SmallField wraps an element of the dependency-free Montgomery-form prime
// field as a sequence element. Unlike BLS12377, arithmetic on the
// underlying smallfield.Element requires the shared smallFieldRing table
// rather than being self-contained on the element itself.
type SmallField struct {
	inner smallfield.Element
}

// NewSmallFieldUint32 constructs a field element value from a uint32.
func NewSmallFieldUint32(v uint32) SmallField {
	return SmallField{smallFieldRing.NewElement(v)}
}

// Raw returns the underlying field element.
func (p SmallField) Raw() smallfield.Element {
	return p.inner
}

// String implementation for fmt.Stringer.
func (p SmallField) String() string {
	return fmt.Sprintf("%d", smallFieldRing.ToUint32(p.inner))
}

// Cmp implementation for Value.
func (p SmallField) Cmp(other Value) (int, error) {
	if o, ok := other.(SmallField); ok {
		return smallFieldRing.Cmp(p.inner, o.inner), nil
	}
	//
	return 0, fmt.Errorf("%w: small field element vs %s", ErrIncomparable, other)
}

// Equal implementation for Value.
func (p SmallField) Equal(other Value) bool {
	return p.Eql(other)
}

// Eql implementation for Value.
func (p SmallField) Eql(other Value) bool {
	o, ok := other.(SmallField)
	return ok && p.inner == o.inner
}

// Hash implementation for Value.
func (p SmallField) Hash() uint64 {
	h := fnv.New64a()
	//
	v := smallFieldRing.ToUint32(p.inner)
	h.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
	//
	return h.Sum64()
}

// IsNil implementation for Value.
func (SmallField) IsNil() bool {
	return false
}

// Add implementation for Adder.
func (p SmallField) Add(other Value) (Value, error) {
	o, ok := other.(SmallField)
	if !ok {
		return nil, fmt.Errorf("%w: small field element vs %s", ErrIncomparable, other)
	}
	//
	return SmallField{smallFieldRing.Add(p.inner, o.inner)}, nil
}

// Float64 implementation for Floatable.
func (p SmallField) Float64() (float64, error) {
	return float64(smallFieldRing.ToUint32(p.inner)), nil
}
