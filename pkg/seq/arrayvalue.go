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

	"github.com/arcbyte/seqstore/pkg/value"
)

// ArrayValue wraps an *Array so a sequence can nest arrays as elements of
// itself, satisfying value.Value without pkg/value needing to import
// pkg/seq back.
type ArrayValue struct {
	Arr *Array
}

var _ value.Value = ArrayValue{}

// String implementation for fmt.Stringer; delegates to the wrapped array's
// own cycle-aware inspection.
func (p ArrayValue) String() string {
	return p.Arr.String()
}

// Cmp implementation for Value. Arrays have no natural ordering relative to
// one another or to other variants.
func (p ArrayValue) Cmp(other value.Value) (int, error) {
	return 0, fmt.Errorf("%w: array vs %s", value.ErrIncomparable, other)
}

// Equal implementation for Value: structural, element-wise equality.
func (p ArrayValue) Equal(other value.Value) bool {
	o, ok := other.(ArrayValue)
	return ok && p.Arr.Equal(o.Arr)
}

// Eql implementation for Value: the strict, hash-paired equality used by
// uniq and the set operations.
func (p ArrayValue) Eql(other value.Value) bool {
	o, ok := other.(ArrayValue)
	return ok && p.Arr.Eql(o.Arr)
}

// Hash implementation for Value, consistent with Eql.
func (p ArrayValue) Hash() uint64 {
	return p.Arr.Hash()
}

// IsNil implementation for Value.
func (ArrayValue) IsNil() bool {
	return false
}
