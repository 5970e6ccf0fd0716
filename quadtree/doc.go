/*
Package quadtree provides a general-purpose four-way branching tree.

Nodes live in an arena owned by the tree and are addressed by stable handles.
Every node has a parent (except for the root) and four labeled child slots,
NW, NE, SW and SE. The tree attaches no spatial meaning to the slots; clients
like package spatialmap give them one.

Nodes are never detached once created. Remove is part of the API surface but
always fails with ErrUnsupported.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file for details.
*/
package quadtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
