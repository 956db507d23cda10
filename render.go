// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/go-glr/glr/internal/f32color"
	"github.com/go-glr/glr/internal/gl"
)

// ExecuteFrame replays the finalized render-step list for one frame,
// strictly in order. Per-step structural defects (such as an unsupported
// copy aspect) are logged, collected and returned joined; sibling steps
// still execute. An unknown step kind panics: it indicates a
// producer/executor version mismatch and skipping it would leave the
// device in an undefined state.
func (r *Runner) ExecuteFrame(steps []Step) error {
	var errs []error
	for _, s := range steps {
		switch step := s.(type) {
		case RenderStep:
			r.performRenderPass(step)
		case CopyStep:
			if err := r.performCopy(step); err != nil {
				r.log.Error("copy step rejected", "err", err)
				errs = append(errs, err)
			}
		case BlitStep:
			r.performBlit(step)
		case ReadbackStep:
			// Reserved; accepted without effect.
			r.log.Debug("readback step ignored: not implemented")
		case ReadbackImageStep:
			r.log.Debug("readback image step ignored: not implemented")
		default:
			panic(fmt.Sprintf("glr: unknown render step %T", s))
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) performRenderPass(step RenderStep) {
	// An empty pass binds nothing.
	if len(step.Commands) == 0 {
		return
	}

	r.bindRenderTarget(step)

	f := r.f
	f.Enable(gl.SCISSOR_TEST)
	f.BindVertexArray(r.globalVAO)

	r.curProgram = nil
	r.activeTexture = 0
	f.ActiveTexture(gl.TEXTURE0)
	r.attrMask = 0
	r.curArrayBuf = gl.Buffer{}
	r.curElemBuf = gl.Buffer{}

	for _, cmd := range step.Commands {
		r.performCommand(cmd)
	}

	// Unconditional pass-exit reset. A few redundant re-enables in the
	// next pass are cheaper than passes observing each other's state.
	for i := 0; i < maxVertexAttribs; i++ {
		if r.attrMask&(1<<i) != 0 {
			f.DisableVertexAttribArray(gl.Attrib(i))
		}
	}
	r.attrMask = 0
	if r.activeTexture != 0 {
		f.ActiveTexture(gl.TEXTURE0)
		r.activeTexture = 0
	}
	f.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
	f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{})
	r.curArrayBuf = gl.Buffer{}
	r.curElemBuf = gl.Buffer{}
	f.BindVertexArray(gl.VertexArray{})
	f.Disable(gl.SCISSOR_TEST)
	r.curProgram = nil
}

func (r *Runner) bindRenderTarget(step RenderStep) {
	if step.Framebuffer != nil {
		r.curFBWidth = step.Framebuffer.Width
		r.curFBHeight = step.Framebuffer.Height
	} else {
		r.curFBWidth = r.targetWidth
		r.curFBHeight = r.targetHeight
	}
	r.curFB = step.Framebuffer
	if r.curFB != nil {
		// Without separate blit targets this collides with read binds,
		// but such tiers only have the one target anyway.
		r.bindFramebufferTarget(false, r.curFB.obj)
	} else {
		r.unbindFramebuffer()
	}
}

func (r *Runner) performCommand(cmd Command) {
	f := r.f
	switch c := cmd.(type) {
	case DepthCmd:
		if c.Enabled {
			f.Enable(gl.DEPTH_TEST)
			f.DepthMask(c.Write)
			f.DepthFunc(c.Func)
		} else {
			f.Disable(gl.DEPTH_TEST)
		}
	case BlendCmd:
		if c.Enabled {
			f.Enable(gl.BLEND)
			f.BlendEquationSeparate(c.EqColor, c.EqAlpha)
			f.BlendFuncSeparate(c.SrcColor, c.DstColor, c.SrcAlpha, c.DstAlpha)
		} else {
			f.Disable(gl.BLEND)
		}
		f.ColorMask(c.Mask&1 != 0, c.Mask>>1&1 != 0, c.Mask>>2&1 != 0, c.Mask>>3&1 != 0)
	case ClearCmd:
		f.Disable(gl.SCISSOR_TEST)
		f.ColorMask(true, true, true, true)
		if c.Mask&gl.COLOR_BUFFER_BIT != 0 {
			col := f32color.FromRGBA8(c.Color)
			f.ClearColor(col.R, col.G, col.B, col.A)
		}
		if c.Mask&gl.DEPTH_BUFFER_BIT != 0 {
			f.ClearDepthf(c.Depth)
		}
		if c.Mask&gl.STENCIL_BUFFER_BIT != 0 {
			f.ClearStencil(int(c.Stencil))
		}
		f.Clear(c.Mask)
		f.Enable(gl.SCISSOR_TEST)
	case BlendColorCmd:
		f.BlendColor(c.Color[0], c.Color[1], c.Color[2], c.Color[3])
	case ViewportCmd:
		y := c.Y
		if r.curFB == nil {
			y = float32(r.curFBHeight) - y - c.H
		}
		f.Viewport(int(c.X), int(y), int(c.W), int(c.H))
		f.DepthRangef(c.MinZ, c.MaxZ)
	case ScissorCmd:
		y := c.Rect.Min.Y
		h := c.Rect.Dy()
		if r.curFB == nil {
			y = r.curFBHeight - y - h
		}
		f.Scissor(c.Rect.Min.X, y, c.Rect.Dx(), h)
	case UniformFCmd:
		loc := r.uniformLoc(c.Loc, c.Name)
		if !loc.Valid() {
			break
		}
		switch c.Count {
		case 1:
			f.Uniform1f(loc, c.V[0])
		case 2:
			f.Uniform2f(loc, c.V[0], c.V[1])
		case 3:
			f.Uniform3f(loc, c.V[0], c.V[1], c.V[2])
		case 4:
			f.Uniform4f(loc, c.V[0], c.V[1], c.V[2], c.V[3])
		default:
			panic(fmt.Sprintf("glr: uniform component count %d out of range", c.Count))
		}
	case UniformICmd:
		loc := r.uniformLoc(c.Loc, c.Name)
		if !loc.Valid() {
			break
		}
		switch c.Count {
		case 1:
			f.Uniform1i(loc, c.V[0])
		case 2:
			f.Uniform2i(loc, c.V[0], c.V[1])
		case 3:
			f.Uniform3i(loc, c.V[0], c.V[1], c.V[2])
		case 4:
			f.Uniform4i(loc, c.V[0], c.V[1], c.V[2], c.V[3])
		default:
			panic(fmt.Sprintf("glr: uniform component count %d out of range", c.Count))
		}
	case UniformMatrixCmd:
		loc := r.uniformLoc(c.Loc, c.Name)
		if loc.Valid() {
			f.UniformMatrix4fv(loc, c.M)
		}
	case StencilFuncCmd:
		if c.Enabled {
			f.Enable(gl.STENCIL_TEST)
			f.StencilFunc(c.Func, c.Ref, c.CompareMask)
		} else {
			f.Disable(gl.STENCIL_TEST)
		}
	case StencilOpCmd:
		f.StencilOp(c.SFail, c.ZFail, c.Pass)
		f.StencilMask(c.WriteMask)
	case BindTextureCmd:
		if c.Texture != nil {
			r.bindTexture(c.Slot, c.Texture.Target, c.Texture.obj)
		} else {
			r.bindTexture(c.Slot, gl.TEXTURE_2D, gl.Texture{})
		}
	case BindFramebufferTextureCmd:
		if c.Aspect == gl.COLOR_BUFFER_BIT {
			r.bindTexture(c.Slot, gl.TEXTURE_2D, c.Framebuffer.colorTexture)
		} else {
			r.log.Warn("framebuffer texture bind ignored: only the color plane is samplable", "aspect", c.Aspect)
		}
	case BindProgramCmd:
		if c.Program != r.curProgram {
			f.UseProgram(c.Program.obj)
			r.curProgram = c.Program
		}
	case BindInputLayoutCmd:
		layout := c.Layout
		enable := layout.mask &^ r.attrMask
		disable := r.attrMask &^ layout.mask
		for i := 0; i < maxVertexAttribs; i++ {
			bit := uint(1) << i
			if enable&bit != 0 {
				f.EnableVertexAttribArray(gl.Attrib(i))
			}
			if disable&bit != 0 {
				f.DisableVertexAttribArray(gl.Attrib(i))
			}
		}
		r.attrMask = layout.mask
		for _, e := range layout.Entries {
			f.VertexAttribPointer(e.Location, e.Count, e.Type, e.Normalized, e.Stride, c.Offset+e.Offset)
		}
	case BindBufferCmd:
		var obj gl.Buffer
		if c.Buffer != nil {
			obj = c.Buffer.obj
		}
		switch c.Target {
		case gl.ARRAY_BUFFER:
			if !obj.Equal(r.curArrayBuf) {
				f.BindBuffer(gl.ARRAY_BUFFER, obj)
				r.curArrayBuf = obj
			}
		case gl.ELEMENT_ARRAY_BUFFER:
			if !obj.Equal(r.curElemBuf) {
				f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, obj)
				r.curElemBuf = obj
			}
		default:
			f.BindBuffer(c.Target, obj)
		}
	case GenMipsCmd:
		f.GenerateMipmap(gl.TEXTURE_2D)
	case DrawCmd:
		f.DrawArrays(c.Mode, c.First, c.Count)
	case DrawIndexedCmd:
		if c.Instances != 1 {
			// Instanced draws are not part of this device tier.
			// Dropping the draw silently would be rendering corruption,
			// so treat it as a producer error.
			panic(fmt.Sprintf("glr: draw with instance count %d is not supported", c.Instances))
		}
		f.DrawElements(c.Mode, c.Count, c.IndexType, c.Offset)
	case TextureSamplerCmd:
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int(c.WrapS))
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int(c.WrapT))
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int(c.MagFilter))
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(c.MinFilter))
		if c.Anisotropy != 0 && r.caps.Anisotropy {
			f.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY_EXT, math32.Min(c.Anisotropy, r.maxAnisotropy))
		}
	case TextureLodCmd:
		f.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MIN_LOD, c.MinLod)
		f.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_LOD, c.MaxLod)
		if !r.caps.GLES {
			f.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_LOD_BIAS, c.Bias)
		}
	case RasterCmd:
		if c.CullEnable {
			f.Enable(gl.CULL_FACE)
			f.FrontFace(c.FrontFace)
			f.CullFace(c.CullFace)
		} else {
			f.Disable(gl.CULL_FACE)
		}
		if c.DitherEnable {
			f.Enable(gl.DITHER)
		} else {
			f.Disable(gl.DITHER)
		}
	default:
		panic(fmt.Sprintf("glr: unknown render command %T", cmd))
	}
}

// bindTexture binds obj to the given unit, eliding the calls when both
// the active unit and the unit's bound texture already match.
func (r *Runner) bindTexture(slot int, target gl.Enum, obj gl.Texture) {
	if slot < 0 || slot >= maxTextureUnits {
		panic(fmt.Sprintf("glr: texture slot %d out of range", slot))
	}
	if slot != r.activeTexture {
		r.f.ActiveTexture(gl.TEXTURE0 + gl.Enum(slot))
		r.activeTexture = slot
	}
	if !obj.Equal(r.texBinds[slot]) {
		r.f.BindTexture(target, obj)
		r.texBinds[slot] = obj
	}
}

// uniformLoc resolves a uniform command's destination. Name lookups go
// through the bound program; a missing uniform resolves invalid, which
// callers treat as a silent no-op.
func (r *Runner) uniformLoc(loc *gl.Uniform, name string) gl.Uniform {
	if name != "" {
		if r.curProgram == nil {
			return gl.NoUniform
		}
		return r.curProgram.uniformLoc(r.f, name)
	}
	if loc != nil {
		return *loc
	}
	return gl.NoUniform
}
