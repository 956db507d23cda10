// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import "testing"

func TestFromRGBA8(t *testing.T) {
	tests := []struct {
		packed uint32
		want   RGBA
	}{
		{0x00000000, RGBA{0, 0, 0, 0}},
		{0xffffffff, RGBA{1, 1, 1, 1}},
		{0xff0000ff, RGBA{1, 0, 0, 1}},
		{0xff00ff00, RGBA{0, 1, 0, 1}},
		{0x00ff0000, RGBA{0, 0, 1, 0}},
	}
	for _, test := range tests {
		if got := FromRGBA8(test.packed); got != test.want {
			t.Errorf("FromRGBA8(%#x): got %v expected %v", test.packed, got, test.want)
		}
	}
}

func TestArrayOrder(t *testing.T) {
	c := FromRGBA8(0x80402010)
	arr := c.Array()
	if arr[0] != c.R || arr[1] != c.G || arr[2] != c.B || arr[3] != c.A {
		t.Errorf("Array order mismatch: %v vs %v", arr, c)
	}
}
