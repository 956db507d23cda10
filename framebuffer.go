// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"github.com/go-glr/glr/internal/gl"
)

// initCreateFramebuffer builds a framebuffer object, choosing the
// depth/stencil layout for the detected capability tier:
//
//  1. one combined depth24/stencil8 renderbuffer when packed
//     depth-stencil storage is supported,
//  2. separate depth (24-bit when available, else 16) and 8-bit
//     stencil renderbuffers otherwise,
//  3. the desktop combined format on non-GLES profiles, including the
//     EXT framebuffer-object fallback.
//
// The chosen variant is recorded on the framebuffer because destruction
// must release exactly the renderbuffers creation allocated.
func (r *Runner) initCreateFramebuffer(fbo *Framebuffer) {
	if r.caps.FBOTier == FBOTierNone {
		r.log.Error("framebuffer objects unsupported by this context")
		return
	}

	f := r.f
	fbo.obj = f.CreateFramebuffer()
	fbo.colorTexture = f.CreateTexture()

	f.BindTexture(gl.TEXTURE_2D, fbo.colorTexture)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, fbo.Width, fbo.Height, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	switch {
	case r.caps.GLES && !r.caps.PackedDepthStencil:
		r.log.Info("creating FBO using separate depth and stencil", "width", fbo.Width, "height", fbo.Height)
		fbo.variant = depthStencilSeparate
		depthFormat := gl.Enum(gl.DEPTH_COMPONENT16)
		if r.caps.Depth24 {
			depthFormat = gl.DEPTH_COMPONENT24
		}
		fbo.depth = f.CreateRenderbuffer()
		f.BindRenderbuffer(gl.RENDERBUFFER, fbo.depth)
		f.RenderbufferStorage(gl.RENDERBUFFER, depthFormat, fbo.Width, fbo.Height)

		fbo.stencil = f.CreateRenderbuffer()
		f.BindRenderbuffer(gl.RENDERBUFFER, fbo.stencil)
		f.RenderbufferStorage(gl.RENDERBUFFER, gl.STENCIL_INDEX8, fbo.Width, fbo.Height)

		f.BindFramebuffer(gl.FRAMEBUFFER, fbo.obj)
		f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fbo.colorTexture, 0)
		f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fbo.depth)
		f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, fbo.stencil)
	default:
		r.log.Info("creating FBO using combined depth24/stencil8", "width", fbo.Width, "height", fbo.Height)
		fbo.variant = depthStencilCombined
		storage := gl.Enum(gl.DEPTH24_STENCIL8)
		if r.caps.FBOTier == FBOTierEXT {
			// The EXT entry points predate sized depth-stencil formats.
			storage = gl.DEPTH_STENCIL
		}
		fbo.zStencil = f.CreateRenderbuffer()
		f.BindRenderbuffer(gl.RENDERBUFFER, fbo.zStencil)
		f.RenderbufferStorage(gl.RENDERBUFFER, storage, fbo.Width, fbo.Height)

		f.BindFramebuffer(gl.FRAMEBUFFER, fbo.obj)
		f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fbo.colorTexture, 0)
		f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fbo.zStencil)
		f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, fbo.zStencil)
	}

	// An incomplete framebuffer is a caller-visible defect, not a
	// reason to abort the queue.
	switch status := f.CheckFramebufferStatus(gl.FRAMEBUFFER); status {
	case gl.FRAMEBUFFER_COMPLETE:
	case gl.FRAMEBUFFER_UNSUPPORTED:
		r.log.Error("framebuffer unsupported")
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		r.log.Error("framebuffer incomplete attachment")
	default:
		r.log.Error("framebuffer incomplete", "status", status)
	}

	f.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{})
	f.BindTexture(gl.TEXTURE_2D, gl.Texture{})

	r.currentDrawHandle = fbo.obj
	r.currentReadHandle = fbo.obj
}

// fbTarget returns the bind target and cache slot for a read- or
// draw-oriented framebuffer bind. The two targets are unified on tiers
// without separate blit targets.
func (r *Runner) fbTarget(read bool) (gl.Enum, *gl.Framebuffer) {
	if r.caps.BlitTargets {
		if read {
			return gl.READ_FRAMEBUFFER, &r.currentReadHandle
		}
		return gl.DRAW_FRAMEBUFFER, &r.currentDrawHandle
	}
	return gl.FRAMEBUFFER, &r.currentDrawHandle
}

// bindFramebufferTarget binds handle for reading or drawing, eliding the
// call when the cached bind already matches.
func (r *Runner) bindFramebufferTarget(read bool, handle gl.Framebuffer) {
	target, cached := r.fbTarget(read)
	if !cached.Equal(handle) {
		r.f.BindFramebuffer(target, handle)
		*cached = handle
	}
}

// unbindFramebuffer rebinds the platform default backbuffer, honoring a
// configured nonzero default handle.
func (r *Runner) unbindFramebuffer() {
	r.f.BindFramebuffer(gl.FRAMEBUFFER, r.defaultFBO)
	r.currentDrawHandle = r.defaultFBO
	r.currentReadHandle = r.defaultFBO
}

// DestroyFramebuffer detaches and deletes a framebuffer's device
// objects: color and depth/stencil attachments first, then the FBO with
// the default target rebound, then exactly the renderbuffers the
// creation-time variant allocated, and finally the color texture.
func (r *Runner) DestroyFramebuffer(fbo *Framebuffer) {
	f := r.f
	if fbo.obj.Valid() {
		f.BindFramebuffer(gl.FRAMEBUFFER, fbo.obj)
		f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, gl.Texture{}, 0)
		f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, gl.Renderbuffer{})
		f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, gl.Renderbuffer{})
		f.BindFramebuffer(gl.FRAMEBUFFER, r.defaultFBO)
		f.DeleteFramebuffer(fbo.obj)
		fbo.obj = gl.Framebuffer{}
		r.currentDrawHandle = r.defaultFBO
		r.currentReadHandle = r.defaultFBO
	}
	switch fbo.variant {
	case depthStencilCombined:
		f.DeleteRenderbuffer(fbo.zStencil)
		fbo.zStencil = gl.Renderbuffer{}
	case depthStencilSeparate:
		f.DeleteRenderbuffer(fbo.depth)
		f.DeleteRenderbuffer(fbo.stencil)
		fbo.depth = gl.Renderbuffer{}
		fbo.stencil = gl.Renderbuffer{}
	}
	fbo.variant = depthStencilNone
	if fbo.colorTexture.Valid() {
		f.DeleteTexture(fbo.colorTexture)
		fbo.colorTexture = gl.Texture{}
	}
}
