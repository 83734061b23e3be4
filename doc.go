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

// Package pma implements a packed memory array: an ordered, gap-tolerant
// associative container that keeps uint64 key/value pairs sorted by key in a
// single contiguous buffer, while deliberately leaving gaps so that insert
// and delete perturb only a bounded neighborhood instead of the whole array.
//
// Unlike a sorted slice, a PMA never needs a full O(n) re-sort on insert: it
// maintains a bounded gap density across windows of the array (see the
// internal/engine package for the pack/spread/resize mechanics) so that
// insertion and deletion cost amortized O(log^2 n) element moves instead of
// O(n).
//
// A *PMA is safe for single-goroutine use only; concurrent mutation from
// multiple goroutines requires the pma/concurrent package, which wraps the
// same engine with a mutation lock and a resize coordinator so that lookups
// stay lock-free.
//
// Key 0 is reserved as the empty-slot sentinel and can never be stored.
// Duplicate keys are rejected by Insert rather than overwriting the existing
// value.
package pma
