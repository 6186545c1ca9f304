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

// resizeCapacity ensures the array's capacity is at least capa. Must not be
// called on a SHARED array (cancel sharing first) or a frozen array.
func (a *Array) resizeCapacity(capa int) error {
	if a.frozen {
		return fmt.Errorf("%w: resizeCapacity on frozen array", ErrFrozen)
	}
	//
	if a.md == modeShared {
		return fmt.Errorf("seq: resizeCapacity called on shared array (internal error)")
	}
	//
	if capa > MAX {
		return fmt.Errorf("%w: capacity %d exceeds MAX", ErrSizeLimitExceeded, capa)
	}
	//
	switch a.md {
	case modeEmbed:
		if capa <= EmbedCapacity {
			return nil
		}
		// Promote: allocate heap buffer, copy embedded elements, clear embed.
		nbuf := make([]value.Value, a.embedLen, capa)
		copy(nbuf, a.embed[:a.embedLen])
		a.buf = nbuf
		a.md = modeHeap
		a.embedLen = 0
	default: // modeHeap
		if cap(a.buf) >= capa {
			return nil
		}
		nbuf := make([]value.Value, len(a.buf), capa)
		copy(nbuf, a.buf)
		a.buf = nbuf
	}
	//
	return nil
}

// doubleCapacity grows the array so its capacity is at least min, using an
// amortized growth formula: new_capa = max(capa/2, DefaultCapacity) + min,
// clamped so new_capa+min never exceeds MAX.
func (a *Array) doubleCapacity(min int) error {
	newCapa := a.Capa() / 2
	//
	if newCapa < DefaultCapacity {
		newCapa = DefaultCapacity
	}
	//
	if newCapa >= MAX-min {
		newCapa = (MAX - min) / 2
	}
	//
	newCapa += min
	//
	return a.resizeCapacity(newCapa)
}

// shrinkToLen reallocates a heap-owned array's buffer down to exactly its
// current length, if it has slack.
func (a *Array) shrinkToLen() error {
	if a.md != modeHeap {
		return nil
	}
	//
	if cap(a.buf) == len(a.buf) {
		return nil
	}
	//
	nbuf := make([]value.Value, len(a.buf))
	copy(nbuf, a.buf)
	a.buf = nbuf
	//
	return nil
}

// makeEmbeddedIfPossible re-embeds a heap-owned array whose current length
// fits the embedded slot, provided it is not shared, a shared root still in
// use, or frozen.
func (a *Array) makeEmbeddedIfPossible() {
	if a.md != modeHeap || a.frozen {
		return
	}
	//
	if len(a.buf) > EmbedCapacity {
		return
	}
	//
	var embed [EmbedCapacity]value.Value
	//
	copy(embed[:], a.buf)
	//
	a.embed = embed
	a.embedLen = uint8(len(a.buf))
	a.buf = nil
	a.md = modeEmbed
}
