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
	"math/big"

	bls12_377 "github.com/arcbyte/seqstore/field/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

var _ Value = BLS12377{}

// BLS12377 wraps a bls12-377 scalar field element (backed by gnark-crypto)
// as a sequence element.
type BLS12377 struct {
	inner bls12_377.Element
}

// NewBLS12377Uint64 constructs a field element value from a uint64.
func NewBLS12377Uint64(v uint64) BLS12377 {
	e := fr.NewElement(v)
	return BLS12377{bls12_377.Element{Element: &e}}
}

// Raw returns the underlying field element.
func (p BLS12377) Raw() bls12_377.Element {
	return p.inner
}

// String implementation for fmt.Stringer.
func (p BLS12377) String() string {
	return p.inner.String()
}

// Cmp implementation for Value.
func (p BLS12377) Cmp(other Value) (int, error) {
	if o, ok := other.(BLS12377); ok {
		return p.inner.Cmp(o.inner), nil
	}
	//
	return 0, fmt.Errorf("%w: bls12-377 element vs %s", ErrIncomparable, other)
}

// Equal implementation for Value.
func (p BLS12377) Equal(other Value) bool {
	return p.Eql(other)
}

// Eql implementation for Value.
func (p BLS12377) Eql(other Value) bool {
	o, ok := other.(BLS12377)
	return ok && p.inner.Equals(o.inner)
}

// Hash implementation for Value.
func (p BLS12377) Hash() uint64 {
	return p.inner.Hash()
}

// IsNil implementation for Value.
func (BLS12377) IsNil() bool {
	return false
}

// Add implementation for Adder.
func (p BLS12377) Add(other Value) (Value, error) {
	o, ok := other.(BLS12377)
	if !ok {
		return nil, fmt.Errorf("%w: bls12-377 element vs %s", ErrIncomparable, other)
	}
	//
	return BLS12377{p.inner.Add(o.inner)}, nil
}

// Float64 implementation for Floatable, via the element's big-integer
// representation. Large field elements lose precision under this
// conversion.
func (p BLS12377) Float64() (float64, error) {
	var bi big.Int
	//
	f := new(big.Float).SetInt(p.inner.Element.BigInt(&bi))
	v, _ := f.Float64()
	//
	return v, nil
}
