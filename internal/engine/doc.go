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

// Package engine implements the packed-memory-array mechanics shared by the
// sequential pma package and the pma/concurrent coordinator: the per-slot
// marker protocol, gap-aware search, local shift insert, slot clearing for
// delete, windowed
// density rebalancing, pack, spread and resize.
//
// Everything here operates on an explicit []Slot plus (where needed) a
// Descriptor value, rather than on a package-level handle type, so that both
// a plain single-goroutine *pma.PMA and a multi-goroutine
// *concurrent.Coordinator can drive the same mechanics against their own
// notion of "the current backing array".
package engine
