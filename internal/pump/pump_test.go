// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pump

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmpty(t *testing.T) {
	var q Queue
	if got := q.Drain(); got != nil {
		t.Errorf("Drain on empty queue: got %v, want nil", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len: got %d, want 0", q.Len())
	}
}

func TestOrder(t *testing.T) {
	// Interleave sends and drains so that the ring wraps and grows.
	for _, n := range []int{1, initialSize - 1, initialSize, initialSize + 1, 5 * initialSize} {
		var q Queue
		for round := 0; round < 3; round++ {
			var want []interface{}
			for k := 0; k < n; k++ {
				q.Send(round*1000 + k)
				want = append(want, round*1000+k)
			}
			if q.Len() != n {
				t.Errorf("n=%d round %d: Len got %d", n, round, q.Len())
			}
			if diff := cmp.Diff(want, q.Drain()); diff != "" {
				t.Errorf("n=%d round %d mismatch (-want +got):\n%s", n, round, diff)
			}
		}
	}
}

func TestGrowWhileWrapped(t *testing.T) {
	var q Queue
	for k := 0; k < initialSize; k++ {
		q.Send(k)
	}
	// Consume half by hand so that i is mid-buffer.
	q.i += initialSize / 2
	for k := initialSize; k < 3*initialSize; k++ {
		q.Send(k)
	}
	var want []interface{}
	for k := initialSize / 2; k < 3*initialSize; k++ {
		want = append(want, k)
	}
	if diff := cmp.Diff(want, q.Drain()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
