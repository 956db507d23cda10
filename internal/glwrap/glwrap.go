// SPDX-License-Identifier: Unlicense OR MIT

// Package glwrap implements the executor's GL call surface on top of
// the go-gl core profile bindings. A context must be current on the
// calling thread before New is called.
package glwrap

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	glw "github.com/go-glr/glr/internal/gl"
)

// Functions forwards every call to the bound context.
type Functions struct{}

// New initializes the bindings against the current context.
func New() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glwrap: initializing bindings: %w", err)
	}
	return &Functions{}, nil
}

func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func (*Functions) ActiveTexture(t glw.Enum) {
	gl.ActiveTexture(uint32(t))
}

func (*Functions) AttachShader(p glw.Program, s glw.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (*Functions) BindAttribLocation(p glw.Program, a glw.Attrib, name string) {
	gl.BindAttribLocation(uint32(p.V), uint32(a), cstr(name))
}

func (*Functions) BindBuffer(target glw.Enum, b glw.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (*Functions) BindFragDataLocation(p glw.Program, color int, name string) {
	gl.BindFragDataLocation(uint32(p.V), uint32(color), cstr(name))
}

func (*Functions) BindFragDataLocationIndexed(p glw.Program, color, index int, name string) {
	gl.BindFragDataLocationIndexed(uint32(p.V), uint32(color), uint32(index), cstr(name))
}

func (*Functions) BindFramebuffer(target glw.Enum, fb glw.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (*Functions) BindRenderbuffer(target glw.Enum, rb glw.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

func (*Functions) BindTexture(target glw.Enum, t glw.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (*Functions) BindVertexArray(a glw.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

func (*Functions) BlendColor(red, green, blue, alpha float32) {
	gl.BlendColor(red, green, blue, alpha)
}

func (*Functions) BlendEquationSeparate(modeRGB, modeAlpha glw.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (*Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA glw.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

func (*Functions) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask glw.Enum, filter glw.Enum) {
	gl.BlitFramebuffer(int32(sx0), int32(sy0), int32(sx1), int32(sy1), int32(dx0), int32(dy0), int32(dx1), int32(dy1), uint32(mask), uint32(filter))
}

func (*Functions) BufferData(target glw.Enum, size int, usage glw.Enum) {
	gl.BufferData(uint32(target), size, nil, uint32(usage))
}

func (*Functions) BufferSubData(target glw.Enum, offset int, src []byte) {
	if len(src) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(src), gl.Ptr(src))
}

func (*Functions) CheckFramebufferStatus(target glw.Enum) glw.Enum {
	return glw.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (*Functions) Clear(mask glw.Enum) {
	gl.Clear(uint32(mask))
}

func (*Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (*Functions) ClearDepthf(d float32) {
	gl.ClearDepthf(d)
}

func (*Functions) ClearStencil(s int) {
	gl.ClearStencil(int32(s))
}

func (*Functions) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (*Functions) CompileShader(s glw.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (*Functions) CopyImageSubData(src glw.Texture, srcTarget glw.Enum, srcLevel, srcX, srcY, srcZ int, dst glw.Texture, dstTarget glw.Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int) {
	gl.CopyImageSubData(
		uint32(src.V), uint32(srcTarget), int32(srcLevel), int32(srcX), int32(srcY), int32(srcZ),
		uint32(dst.V), uint32(dstTarget), int32(dstLevel), int32(dstX), int32(dstY), int32(dstZ),
		int32(width), int32(height), int32(depth))
}

func (*Functions) CopyImageSubDataNV(src glw.Texture, srcTarget glw.Enum, srcLevel, srcX, srcY, srcZ int, dst glw.Texture, dstTarget glw.Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int) {
	// The core profile bindings carry the standard entry point, so
	// capability detection never selects the NV fallback here.
	panic("glwrap: NV_copy_image is not exposed by the core bindings")
}

func (*Functions) CreateBuffer() glw.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return glw.Buffer{V: uint(b)}
}

func (*Functions) CreateFramebuffer() glw.Framebuffer {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return glw.Framebuffer{V: uint(fb)}
}

func (*Functions) CreateProgram() glw.Program {
	return glw.Program{V: uint(gl.CreateProgram())}
}

func (*Functions) CreateRenderbuffer() glw.Renderbuffer {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return glw.Renderbuffer{V: uint(rb)}
}

func (*Functions) CreateShader(ty glw.Enum) glw.Shader {
	return glw.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (*Functions) CreateTexture() glw.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return glw.Texture{V: uint(t)}
}

func (*Functions) CreateVertexArray() glw.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return glw.VertexArray{V: uint(a)}
}

func (*Functions) CullFace(mode glw.Enum) {
	gl.CullFace(uint32(mode))
}

func (*Functions) DeleteBuffer(b glw.Buffer) {
	v := uint32(b.V)
	gl.DeleteBuffers(1, &v)
}

func (*Functions) DeleteFramebuffer(fb glw.Framebuffer) {
	v := uint32(fb.V)
	gl.DeleteFramebuffers(1, &v)
}

func (*Functions) DeleteProgram(p glw.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (*Functions) DeleteRenderbuffer(rb glw.Renderbuffer) {
	v := uint32(rb.V)
	gl.DeleteRenderbuffers(1, &v)
}

func (*Functions) DeleteShader(s glw.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (*Functions) DeleteTexture(t glw.Texture) {
	v := uint32(t.V)
	gl.DeleteTextures(1, &v)
}

func (*Functions) DeleteTextures(t []glw.Texture) {
	if len(t) == 0 {
		return
	}
	ids := make([]uint32, len(t))
	for i, tex := range t {
		ids[i] = uint32(tex.V)
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}

func (*Functions) DeleteVertexArray(a glw.VertexArray) {
	v := uint32(a.V)
	gl.DeleteVertexArrays(1, &v)
}

func (*Functions) DepthFunc(fn glw.Enum) {
	gl.DepthFunc(uint32(fn))
}

func (*Functions) DepthMask(mask bool) {
	gl.DepthMask(mask)
}

func (*Functions) DepthRangef(near, far float32) {
	gl.DepthRangef(near, far)
}

func (*Functions) Disable(cap glw.Enum) {
	gl.Disable(uint32(cap))
}

func (*Functions) DisableVertexAttribArray(a glw.Attrib) {
	gl.DisableVertexAttribArray(uint32(a))
}

func (*Functions) DrawArrays(mode glw.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (*Functions) DrawElements(mode glw.Enum, count int, ty glw.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(ty), gl.PtrOffset(offset))
}

func (*Functions) Enable(cap glw.Enum) {
	gl.Enable(uint32(cap))
}

func (*Functions) EnableVertexAttribArray(a glw.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (*Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget glw.Enum, rb glw.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), uint32(rb.V))
}

func (*Functions) FramebufferTexture2D(target, attachment, texTarget glw.Enum, t glw.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (*Functions) FrontFace(mode glw.Enum) {
	gl.FrontFace(uint32(mode))
}

func (*Functions) GenTextures(n int) []glw.Texture {
	ids := make([]uint32, n)
	gl.GenTextures(int32(n), &ids[0])
	out := make([]glw.Texture, n)
	for i, id := range ids {
		out[i] = glw.Texture{V: uint(id)}
	}
	return out
}

func (*Functions) GenerateMipmap(target glw.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (*Functions) GetError() glw.Enum {
	return glw.Enum(gl.GetError())
}

func (*Functions) GetFloat(pname glw.Enum) float32 {
	var v float32
	gl.GetFloatv(uint32(pname), &v)
	return v
}

func (*Functions) GetInteger(pname glw.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (*Functions) GetProgramInfoLog(p glw.Program) string {
	var length int32
	gl.GetProgramiv(uint32(p.V), gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	buf := make([]byte, length)
	gl.GetProgramInfoLog(uint32(p.V), length, nil, &buf[0])
	return string(buf[:length-1])
}

func (*Functions) GetProgrami(p glw.Program, pname glw.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}

func (*Functions) GetShaderInfoLog(s glw.Shader) string {
	var length int32
	gl.GetShaderiv(uint32(s.V), gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	buf := make([]byte, length)
	gl.GetShaderInfoLog(uint32(s.V), length, nil, &buf[0])
	return string(buf[:length-1])
}

func (*Functions) GetShaderi(s glw.Shader, pname glw.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}

func (*Functions) GetString(pname glw.Enum) string {
	return gl.GoStr(gl.GetString(uint32(pname)))
}

func (*Functions) GetUniformLocation(p glw.Program, name string) glw.Uniform {
	return glw.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), cstr(name)))}
}

func (*Functions) LinkProgram(p glw.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (*Functions) ReadPixels(x, y, width, height int, format, ty glw.Enum, data []byte) {
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), gl.Ptr(data))
}

func (*Functions) RenderbufferStorage(target, internalformat glw.Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalformat), int32(width), int32(height))
}

func (*Functions) Scissor(x, y, width, height int) {
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

func (*Functions) ShaderSource(s glw.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(s.V), 1, csrc, nil)
}

func (*Functions) StencilFunc(fn glw.Enum, ref int, mask uint32) {
	gl.StencilFunc(uint32(fn), int32(ref), mask)
}

func (*Functions) StencilMask(mask uint32) {
	gl.StencilMask(mask)
}

func (*Functions) StencilOp(sfail, zfail, zpass glw.Enum) {
	gl.StencilOp(uint32(sfail), uint32(zfail), uint32(zpass))
}

func (*Functions) TexImage2D(target glw.Enum, level int, internalFormat glw.Enum, width, height int, format, ty glw.Enum, data []byte) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr)
}

func (*Functions) TexParameterf(target, pname glw.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (*Functions) TexParameteri(target, pname glw.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (*Functions) Uniform1f(dst glw.Uniform, v float32) {
	gl.Uniform1f(int32(dst.V), v)
}

func (*Functions) Uniform1i(dst glw.Uniform, v int) {
	gl.Uniform1i(int32(dst.V), int32(v))
}

func (*Functions) Uniform2f(dst glw.Uniform, v0, v1 float32) {
	gl.Uniform2f(int32(dst.V), v0, v1)
}

func (*Functions) Uniform2i(dst glw.Uniform, v0, v1 int) {
	gl.Uniform2i(int32(dst.V), int32(v0), int32(v1))
}

func (*Functions) Uniform3f(dst glw.Uniform, v0, v1, v2 float32) {
	gl.Uniform3f(int32(dst.V), v0, v1, v2)
}

func (*Functions) Uniform3i(dst glw.Uniform, v0, v1, v2 int) {
	gl.Uniform3i(int32(dst.V), int32(v0), int32(v1), int32(v2))
}

func (*Functions) Uniform4f(dst glw.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (*Functions) Uniform4i(dst glw.Uniform, v0, v1, v2, v3 int) {
	gl.Uniform4i(int32(dst.V), int32(v0), int32(v1), int32(v2), int32(v3))
}

func (*Functions) UniformMatrix4fv(dst glw.Uniform, values [16]float32) {
	gl.UniformMatrix4fv(int32(dst.V), 1, false, &values[0])
}

func (*Functions) UseProgram(p glw.Program) {
	gl.UseProgram(uint32(p.V))
}

func (*Functions) VertexAttribPointer(dst glw.Attrib, size int, ty glw.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (*Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
