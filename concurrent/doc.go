// Copyright (c) 2016 Denis Bernard <db047h@gmail.com>
// Copyright (c) 2026 The pma authors.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package concurrent adapts the pma engine for use by multiple goroutines
// sharing the same packed memory array.
//
// Insert and Delete shift and clear several slots per call (to open or close
// a gap, then possibly pack and spread a whole window, then possibly
// reallocate). Letting two such calls run their multi-slot sequences
// against each other with nothing but per-slot compare-and-swap would let
// their shifts interleave and corrupt the array, so Coordinator serializes
// mutations behind a single mutex, the same way the cache this package
// grew out of guards its map.
//
// What stays lock-free is everything a reader needs: Find and Get read the
// live backing array through an atomic pointer and never take the mutex, so
// a lookup never blocks behind a mutation in progress. The per-slot
// marker/version protocol in internal/engine is what makes that safe — a
// reader that lands on a slot mid-transition helps it to completion instead
// of observing torn state.
//
// Resize reallocates the entire backing array, which a reader could be
// part-way through scanning when it happens. Coordinator publishes the
// result of a resize by swapping an atomic pointer to an immutable
// "generation" (backing array + shape descriptor); a reader holds onto
// whichever generation it loaded for the duration of its call, so a
// concurrent resize never hands it a half-built array.
package concurrent
