// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pix

import (
	"strings"
	"testing"
)

func TestGetTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"pix", "pix"},
		{"héllo, 世界", "héllo, 世界"},
		{"nul\x00after", "nul"},
		{"bad\xffutf8", "bad"},
		{strings.Repeat("a", 5000), strings.Repeat("a", 4096)},
	}
	for _, tc := range tests {
		o := &WindowOptions{Title: tc.in}
		if got := o.GetTitle(); got != tc.want {
			t.Errorf("GetTitle(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
	var o *WindowOptions
	if got := o.GetTitle(); got != "" {
		t.Errorf("nil GetTitle: got %q", got)
	}
}

func TestWindowOptionsDefaults(t *testing.T) {
	o := (&Options{Width: 3, Height: 4}).windowOptions()
	if o.Title != DefaultTitle || o.Width != 3 || o.Height != 4 || o.VSync {
		t.Errorf("got %+v", o)
	}
}
