/*
Package textfile provides API helpers to load point lists from text files
into spatial maps.

A point list has one point per line. A line holds the x- and y-coordinate,
followed by an optional value, all separated by white space:

	# x    y     value
	0      0     origin
	-3.5   4     a point in the north-west
	10     12

Blank lines and lines starting with '#' are skipped. The value of a point is
the rest of the line, with runs of white space collapsed to a single blank.

Clients may subscribe to a Loader to be notified about every point loaded.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
