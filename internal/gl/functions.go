// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the call surface the executor needs from an OpenGL or
// OpenGL ES context. Implementations assume a context is current on the
// calling goroutine; no method may be called from any other goroutine.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	BindBuffer(target Enum, b Buffer)
	BindFragDataLocation(p Program, color int, name string)
	BindFragDataLocationIndexed(p Program, color, index int, name string)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	BindTexture(target Enum, t Texture)
	BindVertexArray(a VertexArray)
	BlendColor(red, green, blue, alpha float32)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum)
	BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum)
	BufferData(target Enum, size int, usage Enum)
	BufferSubData(target Enum, offset int, src []byte)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(d float32)
	ClearStencil(s int)
	ColorMask(r, g, b, a bool)
	CompileShader(s Shader)
	CopyImageSubData(src Texture, srcTarget Enum, srcLevel, srcX, srcY, srcZ int, dst Texture, dstTarget Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int)
	CopyImageSubDataNV(src Texture, srcTarget Enum, srcLevel, srcX, srcY, srcZ int, dst Texture, dstTarget Enum, dstLevel, dstX, dstY, dstZ int, width, height, depth int)
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateRenderbuffer() Renderbuffer
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	CreateVertexArray() VertexArray
	CullFace(mode Enum)
	DeleteBuffer(b Buffer)
	DeleteFramebuffer(fb Framebuffer)
	DeleteProgram(p Program)
	DeleteRenderbuffer(rb Renderbuffer)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	DeleteTextures(t []Texture)
	DeleteVertexArray(a VertexArray)
	DepthFunc(fn Enum)
	DepthMask(mask bool)
	DepthRangef(near, far float32)
	Disable(cap Enum)
	DisableVertexAttribArray(a Attrib)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, rb Renderbuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	FrontFace(mode Enum)
	GenTextures(n int) []Texture
	GenerateMipmap(target Enum)
	GetError() Enum
	GetFloat(pname Enum) float32
	GetInteger(pname Enum) int
	GetProgramInfoLog(p Program) string
	GetProgrami(p Program, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetShaderi(s Shader, pname Enum) int
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	ReadPixels(x, y, width, height int, format, ty Enum, data []byte)
	RenderbufferStorage(target, internalformat Enum, width, height int)
	Scissor(x, y, width, height int)
	ShaderSource(s Shader, src string)
	StencilFunc(fn Enum, ref int, mask uint32)
	StencilMask(mask uint32)
	StencilOp(sfail, zfail, zpass Enum)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	TexParameterf(target, pname Enum, param float32)
	TexParameteri(target, pname Enum, param int)
	Uniform1f(dst Uniform, v float32)
	Uniform1i(dst Uniform, v int)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform2i(dst Uniform, v0, v1 int)
	Uniform3f(dst Uniform, v0, v1, v2 float32)
	Uniform3i(dst Uniform, v0, v1, v2 int)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	Uniform4i(dst Uniform, v0, v1, v2, v3 int)
	UniformMatrix4fv(dst Uniform, values [16]float32)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
