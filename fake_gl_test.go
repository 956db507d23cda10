// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"fmt"
	"strings"

	"github.com/go-glr/glr/internal/gl"
)

// fakeGL records every call made against it, so tests can assert on
// which device calls a queue replay actually issued. Handles are handed
// out from a single counter in call order.
type fakeGL struct {
	version    string
	extensions string
	maxAniso   float32
	fbStatus   gl.Enum

	compileFail bool
	linkFail    bool
	uniforms    map[string]int

	nextHandle uint
	calls      []string
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		version:    "4.3.0 fake",
		extensions: "GL_ARB_copy_image GL_EXT_texture_filter_anisotropic",
		maxAniso:   16,
		fbStatus:   gl.FRAMEBUFFER_COMPLETE,
	}
}

func newFakeGLES2(extensions string) *fakeGL {
	f := newFakeGL()
	f.version = "OpenGL ES 2.0"
	f.extensions = extensions
	return f
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) reset() {
	f.calls = nil
}

// count returns how many recorded calls invoked the named function.
func (f *fakeGL) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, name+"(") {
			n++
		}
	}
	return n
}

func (f *fakeGL) handle() uint {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeGL) ActiveTexture(texture gl.Enum) {
	f.record("ActiveTexture(0x%x)", uint(texture))
}

func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader(%d, %d)", p.V, s.V)
}

func (f *fakeGL) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.record("BindAttribLocation(%d, %d, %s)", p.V, a, name)
}

func (f *fakeGL) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("BindBuffer(0x%x, %d)", uint(target), b.V)
}

func (f *fakeGL) BindFragDataLocation(p gl.Program, color int, name string) {
	f.record("BindFragDataLocation(%d, %d, %s)", p.V, color, name)
}

func (f *fakeGL) BindFragDataLocationIndexed(p gl.Program, color, index int, name string) {
	f.record("BindFragDataLocationIndexed(%d, %d, %d, %s)", p.V, color, index, name)
}

func (f *fakeGL) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.record("BindFramebuffer(0x%x, %d)", uint(target), fb.V)
}

func (f *fakeGL) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	f.record("BindRenderbuffer(0x%x, %d)", uint(target), rb.V)
}

func (f *fakeGL) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("BindTexture(0x%x, %d)", uint(target), t.V)
}

func (f *fakeGL) BindVertexArray(a gl.VertexArray) {
	f.record("BindVertexArray(%d)", a.V)
}

func (f *fakeGL) BlendColor(red, green, blue, alpha float32) {
	f.record("BlendColor(%g, %g, %g, %g)", red, green, blue, alpha)
}

func (f *fakeGL) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	f.record("BlendEquationSeparate(0x%x, 0x%x)", uint(modeRGB), uint(modeAlpha))
}

func (f *fakeGL) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl.Enum) {
	f.record("BlendFuncSeparate(0x%x, 0x%x, 0x%x, 0x%x)", uint(srcRGB), uint(dstRGB), uint(srcA), uint(dstA))
}

func (f *fakeGL) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask gl.Enum, filter gl.Enum) {
	f.record("BlitFramebuffer(%d, %d, %d, %d, %d, %d, %d, %d, 0x%x, 0x%x)",
		sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, uint(mask), uint(filter))
}

func (f *fakeGL) BufferData(target gl.Enum, size int, usage gl.Enum) {
	f.record("BufferData(0x%x, %d, 0x%x)", uint(target), size, uint(usage))
}

func (f *fakeGL) BufferSubData(target gl.Enum, offset int, src []byte) {
	f.record("BufferSubData(0x%x, %d, %d bytes)", uint(target), offset, len(src))
}

func (f *fakeGL) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.record("CheckFramebufferStatus(0x%x)", uint(target))
	return f.fbStatus
}

func (f *fakeGL) Clear(mask gl.Enum) {
	f.record("Clear(0x%x)", uint(mask))
}

func (f *fakeGL) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor(%g, %g, %g, %g)", red, green, blue, alpha)
}

func (f *fakeGL) ClearDepthf(d float32) {
	f.record("ClearDepthf(%g)", d)
}

func (f *fakeGL) ClearStencil(s int) {
	f.record("ClearStencil(%d)", s)
}

func (f *fakeGL) ColorMask(r, g, b, a bool) {
	f.record("ColorMask(%t, %t, %t, %t)", r, g, b, a)
}

func (f *fakeGL) CompileShader(s gl.Shader) {
	f.record("CompileShader(%d)", s.V)
}

func (f *fakeGL) CopyImageSubData(src gl.Texture, srcTarget gl.Enum, srcLevel, srcX, srcY, srcZ int, dst gl.Texture, dstTarget gl.Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int) {
	f.record("CopyImageSubData(src=%d, dst=%d, sx=%d, sy=%d, dx=%d, dy=%d, w=%d, h=%d)",
		src.V, dst.V, srcX, srcY, dstX, dstY, width, height)
}

func (f *fakeGL) CopyImageSubDataNV(src gl.Texture, srcTarget gl.Enum, srcLevel, srcX, srcY, srcZ int, dst gl.Texture, dstTarget gl.Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int) {
	f.record("CopyImageSubDataNV(src=%d, dst=%d, sx=%d, sy=%d, dx=%d, dy=%d, w=%d, h=%d)",
		src.V, dst.V, srcX, srcY, dstX, dstY, width, height)
}

func (f *fakeGL) CreateBuffer() gl.Buffer {
	b := gl.Buffer{V: f.handle()}
	f.record("CreateBuffer() = %d", b.V)
	return b
}

func (f *fakeGL) CreateFramebuffer() gl.Framebuffer {
	fb := gl.Framebuffer{V: f.handle()}
	f.record("CreateFramebuffer() = %d", fb.V)
	return fb
}

func (f *fakeGL) CreateProgram() gl.Program {
	p := gl.Program{V: f.handle()}
	f.record("CreateProgram() = %d", p.V)
	return p
}

func (f *fakeGL) CreateRenderbuffer() gl.Renderbuffer {
	rb := gl.Renderbuffer{V: f.handle()}
	f.record("CreateRenderbuffer() = %d", rb.V)
	return rb
}

func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{V: f.handle()}
	f.record("CreateShader(0x%x) = %d", uint(ty), s.V)
	return s
}

func (f *fakeGL) CreateTexture() gl.Texture {
	t := gl.Texture{V: f.handle()}
	f.record("CreateTexture() = %d", t.V)
	return t
}

func (f *fakeGL) CreateVertexArray() gl.VertexArray {
	a := gl.VertexArray{V: f.handle()}
	f.record("CreateVertexArray() = %d", a.V)
	return a
}

func (f *fakeGL) CullFace(mode gl.Enum) {
	f.record("CullFace(0x%x)", uint(mode))
}

func (f *fakeGL) DeleteBuffer(b gl.Buffer) {
	f.record("DeleteBuffer(%d)", b.V)
}

func (f *fakeGL) DeleteFramebuffer(fb gl.Framebuffer) {
	f.record("DeleteFramebuffer(%d)", fb.V)
}

func (f *fakeGL) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram(%d)", p.V)
}

func (f *fakeGL) DeleteRenderbuffer(rb gl.Renderbuffer) {
	f.record("DeleteRenderbuffer(%d)", rb.V)
}

func (f *fakeGL) DeleteShader(s gl.Shader) {
	f.record("DeleteShader(%d)", s.V)
}

func (f *fakeGL) DeleteTexture(t gl.Texture) {
	f.record("DeleteTexture(%d)", t.V)
}

func (f *fakeGL) DeleteTextures(t []gl.Texture) {
	f.record("DeleteTextures(%d textures)", len(t))
}

func (f *fakeGL) DeleteVertexArray(a gl.VertexArray) {
	f.record("DeleteVertexArray(%d)", a.V)
}

func (f *fakeGL) DepthFunc(fn gl.Enum) {
	f.record("DepthFunc(0x%x)", uint(fn))
}

func (f *fakeGL) DepthMask(mask bool) {
	f.record("DepthMask(%t)", mask)
}

func (f *fakeGL) DepthRangef(near, far float32) {
	f.record("DepthRangef(%g, %g)", near, far)
}

func (f *fakeGL) Disable(cap gl.Enum) {
	f.record("Disable(0x%x)", uint(cap))
}

func (f *fakeGL) DisableVertexAttribArray(a gl.Attrib) {
	f.record("DisableVertexAttribArray(%d)", a)
}

func (f *fakeGL) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays(0x%x, %d, %d)", uint(mode), first, count)
}

func (f *fakeGL) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.record("DrawElements(0x%x, %d, 0x%x, %d)", uint(mode), count, uint(ty), offset)
}

func (f *fakeGL) Enable(cap gl.Enum) {
	f.record("Enable(0x%x)", uint(cap))
}

func (f *fakeGL) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray(%d)", a)
}

func (f *fakeGL) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, rb gl.Renderbuffer) {
	f.record("FramebufferRenderbuffer(0x%x, 0x%x, %d)", uint(target), uint(attachment), rb.V)
}

func (f *fakeGL) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.record("FramebufferTexture2D(0x%x, 0x%x, %d, %d)", uint(target), uint(attachment), t.V, level)
}

func (f *fakeGL) FrontFace(mode gl.Enum) {
	f.record("FrontFace(0x%x)", uint(mode))
}

func (f *fakeGL) GenTextures(n int) []gl.Texture {
	f.record("GenTextures(%d)", n)
	out := make([]gl.Texture, n)
	for i := range out {
		out[i] = gl.Texture{V: f.handle()}
	}
	return out
}

func (f *fakeGL) GenerateMipmap(target gl.Enum) {
	f.record("GenerateMipmap(0x%x)", uint(target))
}

func (f *fakeGL) GetError() gl.Enum {
	return gl.NO_ERROR
}

func (f *fakeGL) GetFloat(pname gl.Enum) float32 {
	if pname == gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT {
		return f.maxAniso
	}
	return 0
}

func (f *fakeGL) GetInteger(pname gl.Enum) int {
	return 0
}

func (f *fakeGL) GetProgramInfoLog(p gl.Program) string {
	return "fake link log"
}

func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS {
		if f.linkFail {
			return gl.FALSE
		}
		return gl.TRUE
	}
	return 0
}

func (f *fakeGL) GetShaderInfoLog(s gl.Shader) string {
	return "fake compile log"
}

func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS {
		if f.compileFail {
			return gl.FALSE
		}
		return gl.TRUE
	}
	return 0
}

func (f *fakeGL) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VERSION:
		return f.version
	case gl.EXTENSIONS:
		return f.extensions
	}
	return ""
}

func (f *fakeGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation(%d, %s)", p.V, name)
	if loc, ok := f.uniforms[name]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.NoUniform
}

func (f *fakeGL) LinkProgram(p gl.Program) {
	f.record("LinkProgram(%d)", p.V)
}

func (f *fakeGL) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("ReadPixels(%d, %d, %d, %d)", x, y, width, height)
}

func (f *fakeGL) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	f.record("RenderbufferStorage(0x%x, 0x%x, %d, %d)", uint(target), uint(internalformat), width, height)
}

func (f *fakeGL) Scissor(x, y, width, height int) {
	f.record("Scissor(%d, %d, %d, %d)", x, y, width, height)
}

func (f *fakeGL) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource(%d, %d bytes)", s.V, len(src))
}

func (f *fakeGL) StencilFunc(fn gl.Enum, ref int, mask uint32) {
	f.record("StencilFunc(0x%x, %d, 0x%x)", uint(fn), ref, mask)
}

func (f *fakeGL) StencilMask(mask uint32) {
	f.record("StencilMask(0x%x)", mask)
}

func (f *fakeGL) StencilOp(sfail, zfail, zpass gl.Enum) {
	f.record("StencilOp(0x%x, 0x%x, 0x%x)", uint(sfail), uint(zfail), uint(zpass))
}

func (f *fakeGL) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexImage2D(0x%x, %d, %d, %d, %d bytes)", uint(target), level, width, height, len(data))
}

func (f *fakeGL) TexParameterf(target, pname gl.Enum, param float32) {
	f.record("TexParameterf(0x%x, 0x%x, %g)", uint(target), uint(pname), param)
}

func (f *fakeGL) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri(0x%x, 0x%x, 0x%x)", uint(target), uint(pname), param)
}

func (f *fakeGL) Uniform1f(dst gl.Uniform, v float32) {
	f.record("Uniform1f(%d, %g)", dst.V, v)
}

func (f *fakeGL) Uniform1i(dst gl.Uniform, v int) {
	f.record("Uniform1i(%d, %d)", dst.V, v)
}

func (f *fakeGL) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.record("Uniform2f(%d, %g, %g)", dst.V, v0, v1)
}

func (f *fakeGL) Uniform2i(dst gl.Uniform, v0, v1 int) {
	f.record("Uniform2i(%d, %d, %d)", dst.V, v0, v1)
}

func (f *fakeGL) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	f.record("Uniform3f(%d, %g, %g, %g)", dst.V, v0, v1, v2)
}

func (f *fakeGL) Uniform3i(dst gl.Uniform, v0, v1, v2 int) {
	f.record("Uniform3i(%d, %d, %d, %d)", dst.V, v0, v1, v2)
}

func (f *fakeGL) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.record("Uniform4f(%d, %g, %g, %g, %g)", dst.V, v0, v1, v2, v3)
}

func (f *fakeGL) Uniform4i(dst gl.Uniform, v0, v1, v2, v3 int) {
	f.record("Uniform4i(%d, %d, %d, %d, %d)", dst.V, v0, v1, v2, v3)
}

func (f *fakeGL) UniformMatrix4fv(dst gl.Uniform, values [16]float32) {
	f.record("UniformMatrix4fv(%d)", dst.V)
}

func (f *fakeGL) UseProgram(p gl.Program) {
	f.record("UseProgram(%d)", p.V)
}

func (f *fakeGL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer(%d, %d, 0x%x, %t, %d, %d)", dst, size, uint(ty), normalized, stride, offset)
}

func (f *fakeGL) Viewport(x, y, width, height int) {
	f.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}
