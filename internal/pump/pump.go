// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pump provides an unbounded FIFO of window events.
//
// Platform callbacks Send events while the window system is being polled
// and the owner Drains them afterwards, all on the same goroutine, so a
// Queue needs no locking.
package pump

// initialSize is the initial size of the circular buffer. It must be a
// power of 2.
const initialSize = 16

// Queue is an event queue. Send never blocks and never drops an event; the
// buffer grows as needed. The zero value is an empty queue.
type Queue struct {
	i, j int
	buf  []interface{}
}

// Len returns the number of queued events.
func (q *Queue) Len() int { return q.j - q.i }

// Send appends event to the queue.
func (q *Queue) Send(event interface{}) {
	if q.buf == nil {
		q.buf = make([]interface{}, initialSize)
	}
	mask := len(q.buf) - 1
	// Allocate a bigger buffer if necessary.
	if q.i+len(q.buf) == q.j {
		b := make([]interface{}, 2*len(q.buf))
		n := copy(b, q.buf[q.i&mask:])
		copy(b[n:], q.buf[:q.i&mask])
		q.i, q.j = 0, len(q.buf)
		q.buf, mask = b, len(b)-1
	}
	q.buf[q.j&mask] = event
	q.j++
}

// Drain removes and returns every queued event, oldest first. It returns
// nil if the queue is empty.
func (q *Queue) Drain() []interface{} {
	if q.i == q.j {
		return nil
	}
	mask := len(q.buf) - 1
	events := make([]interface{}, 0, q.j-q.i)
	for ; q.i != q.j; q.i++ {
		events = append(events, q.buf[q.i&mask])
		q.buf[q.i&mask] = nil
	}
	q.i, q.j = 0, 0
	return events
}
