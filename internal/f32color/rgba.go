// SPDX-License-Identifier: Unlicense OR MIT

package f32color

// RGBA is a color with normalized float32 components.
type RGBA struct {
	R, G, B, A float32
}

// FromRGBA8 converts a packed 8-bit-per-channel color, R in the least
// significant byte, to normalized floats.
func FromRGBA8(c uint32) RGBA {
	return RGBA{
		R: float32(c&0xff) * (1.0 / 255.0),
		G: float32(c>>8&0xff) * (1.0 / 255.0),
		B: float32(c>>16&0xff) * (1.0 / 255.0),
		A: float32(c>>24&0xff) * (1.0 / 255.0),
	}
}

// Array returns c as a float32 array in RGBA order.
func (c RGBA) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
