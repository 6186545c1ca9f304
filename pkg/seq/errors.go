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

import "errors"

// The nine failure kinds surfaced to callers.  Each is a sentinel wrapped
// with fmt.Errorf at the call site so errors.Is still matches while the
// message carries call-specific detail.
var (
	// ErrOutOfRange indicates an index resolved (after negative-index
	// handling) outside the valid range for the operation.
	ErrOutOfRange = errors.New("seq: index out of range")
	// ErrSizeLimitExceeded indicates a requested length or capacity would
	// exceed MAX.
	ErrSizeLimitExceeded = errors.New("seq: size limit exceeded")
	// ErrNegativeSize indicates an attempt to create or resize to a
	// negative length.
	ErrNegativeSize = errors.New("seq: negative size")
	// ErrArgumentType indicates a value required to be array- or
	// integer-convertible was not.
	ErrArgumentType = errors.New("seq: invalid argument type")
	// ErrFrozen indicates a mutation was attempted on a frozen array.
	ErrFrozen = errors.New("seq: array is frozen")
	// ErrComparison indicates Cmp returned an error (no ordering) where one
	// was required, or a bsearch block returned an unexpected result.
	ErrComparison = errors.New("seq: comparison failed")
	// ErrReentrancy indicates sort, shuffle, permute, product, or a similar
	// operation detected that its working structure was tampered with by a
	// callback.
	ErrReentrancy = errors.New("seq: reentrant modification detected")
	// ErrCycle indicates recursive flatten or join encountered a
	// self-reference under unbounded depth.
	ErrCycle = errors.New("seq: cycle detected")
	// ErrAllocation indicates the allocator failed; the array is left
	// unchanged.
	ErrAllocation = errors.New("seq: allocation failed")
)
