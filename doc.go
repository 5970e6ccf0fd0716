/*
Package spatialmap offers a map keyed by two-dimensional points.

Spatial Maps

A spatial map stores values at points (x, y). Both axes are ordered
independently; they need not share a type or a comparison rule, as long as
each of them is a total order.

Internally, entries are organized in a point quad tree (see package quadtree).
Every internal node of the tree holds exactly one entry and has four children,
one per quadrant. Every leaf is an empty sentinel. A search starts at the root
and descends into the quadrant the target point lies in, relative to the
node's key:

	NE:  x ≥ key.x  and  y ≥ key.y
	NW:  x < key.x  and  y ≥ key.y
	SE:  x ≥ key.x  and  y < key.y
	SW:  x < key.x  and  y < key.y

Points sharing a coordinate with a node's key are thus routed to the east or
north. Inserting a new point expands the leaf where the search ended into an
internal node with four fresh leaves.

The tree is not self-balancing. Adversarial insertion orders may produce a tree
with height proportional to the number of entries. Removing entries is not
supported.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package spatialmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for code where T names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// MapError is an error type for the spatialmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g., a key which cannot be compared to itself.
const ErrIllegalArguments = MapError("illegal arguments")

// ErrUnsupportedOperation is flagged for operations the map deliberately does
// not implement. It is not a soft failure like a missing key.
const ErrUnsupportedOperation = MapError("operation not supported")

// ErrCorruptedMap is flagged by Check if the map's invariants do not hold.
const ErrCorruptedMap = MapError("corrupted map")
