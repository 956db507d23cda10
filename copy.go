// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"errors"
	"fmt"

	"github.com/go-glr/glr/internal/gl"
)

// ErrUnsupportedAspect is returned for copies that address a plane other
// than color. Depth and stencil copies must be rejected rather than
// silently copying the wrong texture.
var ErrUnsupportedAspect = errors.New("glr: only color aspect copies are supported")

// performCopy copies a color region between two framebuffers' color
// textures. Source and destination are independently supplied; a missing
// copy-image extension downgrades the copy to a logged no-op.
func (r *Runner) performCopy(step CopyStep) error {
	var srcTex, dstTex gl.Texture
	target := gl.Enum(gl.TEXTURE_2D)

	switch step.Aspect {
	case gl.COLOR_BUFFER_BIT:
		srcTex = step.Src.colorTexture
		dstTex = step.Dst.colorTexture
	default:
		return fmt.Errorf("%w (aspect 0x%x)", ErrUnsupportedAspect, uint(step.Aspect))
	}

	sr, dp := step.SrcRect, step.DstPos
	switch r.caps.CopyImage {
	case CopyImageARB:
		r.f.CopyImageSubData(
			srcTex, target, step.Level, sr.Min.X, sr.Min.Y, step.Layer,
			dstTex, target, step.Level, dp.X, dp.Y, step.Layer,
			sr.Dx(), sr.Dy(), 1)
	case CopyImageNV:
		r.f.CopyImageSubDataNV(
			srcTex, target, step.Level, sr.Min.X, sr.Min.Y, step.Layer,
			dstTex, target, step.Level, dp.X, dp.Y, step.Layer,
			sr.Dx(), sr.Dy(), 1)
	default:
		r.log.Warn("copy step dropped: no copy-image extension available")
	}
	return nil
}

// performBlit stretches a region between two framebuffers. Tiers without
// separate read/draw targets cannot express the transfer; the step
// becomes a logged no-op there.
func (r *Runner) performBlit(step BlitStep) {
	if !r.caps.BlitTargets {
		r.log.Warn("blit step dropped: separate blit targets unavailable")
		return
	}
	r.bindFramebufferTarget(false, r.framebufferHandle(step.Dst))
	r.bindFramebufferTarget(true, r.framebufferHandle(step.Src))
	sr, dr := step.SrcRect, step.DstRect
	filter := step.Filter
	if filter == 0 {
		filter = gl.NEAREST
	}
	r.f.BlitFramebuffer(
		sr.Min.X, sr.Min.Y, sr.Max.X, sr.Max.Y,
		dr.Min.X, dr.Min.Y, dr.Max.X, dr.Max.Y,
		step.Aspect, filter)
}

func (r *Runner) framebufferHandle(fb *Framebuffer) gl.Framebuffer {
	if fb == nil {
		return r.defaultFBO
	}
	return fb.obj
}

// CopyReadbackBuffer repacks tightly-read pixel rows into a destination
// with a row pitch of pixelStride pixels. Both buffers hold 4-byte
// pixels.
func CopyReadbackBuffer(width, height, pixelStride int, src, dst []byte) {
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		copy(dst[y*pixelStride*4:y*pixelStride*4+rowBytes], src[y*rowBytes:(y+1)*rowBytes])
	}
}
