// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"github.com/go-glr/glr/internal/gl"
)

// Payload is a transient upload buffer whose ownership is transferred to
// the step that carries it. The executor consumes it exactly once and
// frees it immediately after the device has copied the data.
type Payload struct {
	data  []byte
	freed bool
}

func NewPayload(data []byte) *Payload {
	return &Payload{data: data}
}

func (p *Payload) take() []byte {
	if p.freed {
		panic("glr: use of freed payload")
	}
	return p.data
}

func (p *Payload) free() {
	if p.freed {
		panic("glr: payload freed twice")
	}
	p.data = nil
	p.freed = true
}

// Freed reports whether the payload has been consumed and released.
func (p *Payload) Freed() bool {
	return p.freed
}

// Texture is a device texture. The native handle is zero until the
// CreateTexture init step for it has executed.
type Texture struct {
	Target gl.Enum
	obj    gl.Texture
}

func NewTexture(target gl.Enum) *Texture {
	return &Texture{Target: target}
}

// Valid reports whether the creation step has produced a native handle.
func (t *Texture) Valid() bool {
	return t.obj.Valid()
}

// Buffer is a device buffer bound at a fixed target.
type Buffer struct {
	Target gl.Enum
	obj    gl.Buffer
	size   int
}

func NewBuffer(target gl.Enum) *Buffer {
	return &Buffer{Target: target}
}

func (b *Buffer) Size() int {
	return b.size
}

// Shader is a single-stage shader. A failed compile leaves valid false;
// the shader is never retried.
type Shader struct {
	Stage gl.Enum
	obj   gl.Shader
	valid bool
}

func NewShader(stage gl.Enum) *Shader {
	return &Shader{Stage: stage}
}

func (s *Shader) Valid() bool {
	return s.valid
}

// AttribBinding maps a vertex attribute semantic location to its name in
// the shader source. Bindings are applied before linking.
type AttribBinding struct {
	Location gl.Attrib
	Name     string
}

// UniformQuery resolves a uniform name to a location after linking. Dest
// is written even when the uniform was discarded by the linker, in which
// case it holds gl.NoUniform.
type UniformQuery struct {
	Name string
	Dest *gl.Uniform
}

// UniformInit sets an integer uniform once after linking, typically a
// sampler binding.
type UniformInit struct {
	Dest  *gl.Uniform
	Value int
}

// Program is a set of linked shaders together with the attribute and
// uniform bookkeeping resolved at link time.
type Program struct {
	obj       gl.Program
	Semantics []AttribBinding
	Queries   []UniformQuery
	Inits     []UniformInit

	locCache map[string]gl.Uniform
}

func NewProgram() *Program {
	return &Program{}
}

func (p *Program) Valid() bool {
	return p.obj.Valid()
}

// uniformLoc resolves a uniform by name against the linked program,
// caching lookups. Shader sources legitimately omit unused uniforms, so
// a missing name resolves to gl.NoUniform rather than an error.
func (p *Program) uniformLoc(f gl.Functions, name string) gl.Uniform {
	if loc, ok := p.locCache[name]; ok {
		return loc
	}
	loc := f.GetUniformLocation(p.obj, name)
	if p.locCache == nil {
		p.locCache = make(map[string]gl.Uniform)
	}
	p.locCache[name] = loc
	return loc
}

// InputEntry describes one vertex attribute of an input layout.
type InputEntry struct {
	Location   gl.Attrib
	Count      int
	Type       gl.Enum
	Normalized bool
	Stride     int
	Offset     int
}

// InputLayout is an ordered set of vertex attribute descriptors plus the
// bitmask of semantic slots they occupy.
type InputLayout struct {
	Entries []InputEntry
	mask    uint
}

func NewInputLayout(entries []InputEntry) *InputLayout {
	l := &InputLayout{Entries: entries}
	for _, e := range entries {
		l.mask |= 1 << e.Location
	}
	return l
}

type depthStencilVariant uint8

const (
	// depthStencilNone: the device could not provide depth/stencil
	// storage; the framebuffer has a color attachment only.
	depthStencilNone depthStencilVariant = iota
	// depthStencilCombined: one packed depth24/stencil8 renderbuffer.
	depthStencilCombined
	// depthStencilSeparate: independent depth and stencil renderbuffers.
	depthStencilSeparate
)

// Framebuffer is an offscreen render target with a color texture and a
// depth/stencil representation chosen at creation time. The variant is
// fixed at creation and drives destruction; it is never re-derived from
// capability flags, which may describe a different context by then.
type Framebuffer struct {
	Width  int
	Height int

	obj          gl.Framebuffer
	colorTexture gl.Texture

	variant  depthStencilVariant
	zStencil gl.Renderbuffer
	depth    gl.Renderbuffer
	stencil  gl.Renderbuffer
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height}
}

func (fb *Framebuffer) Valid() bool {
	return fb.obj.Valid()
}
