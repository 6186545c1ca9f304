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

import "github.com/arcbyte/seqstore/pkg/value"

// valueKey adapts value.Value to hash.Hasher[valueKey] so the Values stored
// in an Array can be placed directly into a hash.Set, which is how Uniq,
// Union, Intersection and Difference are implemented.
type valueKey struct {
	v value.Value
}

// Equals implementation for hash.Hasher.
func (k valueKey) Equals(o valueKey) bool {
	return k.v.Eql(o.v)
}

// Hash implementation for hash.Hasher.
func (k valueKey) Hash() uint64 {
	return k.v.Hash()
}
