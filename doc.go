/*
Package dicts offers ordered dictionaries: key/value containers which keep
their entries sorted by key.

Dictionaries

A dictionary maps keys of a totally ordered type to arbitrary values. In
contrast to Go's built-in maps, the dictionaries of this package maintain
their entries in key order, so traversal enumerates keys ascending without
collecting and sorting them first. Clients choose between a plain insert
(replace-on-conflict), a strict read which fails for missing keys, and an
auto-vivifying access which creates a zero-valued entry as a side effect of
a mutable lookup.

An element is either in the dictionary or not, solely as determined by the
dictionary's equality predicate. There is no concept of multiple equivalent
entries: inserting under an existing key replaces the stored value.

The package splits into a small ADT surface (this package) and backend
implementations. The canonical backend is an unbalanced binary search tree,
provided by package bst. The Dict interface keeps backends substitutable:
code written against Dict will work unchanged with a balanced tree backend.

Dictionaries of this package are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

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
package dicts

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
