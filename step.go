// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"image"

	"github.com/go-glr/glr/internal/gl"
)

// InitStep is one entry of the one-time initialization queue. The set of
// implementations is closed; ExecuteInit panics on any other type, since
// an unknown step indicates a producer/executor version mismatch.
type InitStep interface {
	implementsInitStep()
}

type CreateTextureStep struct {
	Texture *Texture
}

type CreateBufferStep struct {
	Buffer *Buffer
	Size   int
	Usage  gl.Enum
}

// BufferUploadStep copies Data into Buffer at Offset. When Free is set
// the payload ownership is transferred to the step and released after
// the device has consumed it.
type BufferUploadStep struct {
	Buffer *Buffer
	Offset int
	Data   *Payload
	Free   bool
}

// CreateShaderStep compiles Code into Shader. Code ownership transfers
// to the step; the source is freed after the compile call.
type CreateShaderStep struct {
	Shader *Shader
	Code   *Payload
}

type CreateProgramStep struct {
	Program *Program
	Shaders []*Shader
}

type CreateInputLayoutStep struct {
	Layout *InputLayout
}

type CreateFramebufferStep struct {
	Framebuffer *Framebuffer
}

// TextureImageStep uploads a full mip level. Data ownership transfers to
// the step; pixels are freed after the upload. A nil Data payload
// allocates uninitialized storage.
type TextureImageStep struct {
	Texture        *Texture
	Level          int
	Width          int
	Height         int
	InternalFormat gl.Enum
	Format         gl.Enum
	Type           gl.Enum
	LinearFilter   bool
	Data           *Payload
}

func (CreateTextureStep) implementsInitStep()     {}
func (CreateBufferStep) implementsInitStep()      {}
func (BufferUploadStep) implementsInitStep()      {}
func (CreateShaderStep) implementsInitStep()      {}
func (CreateProgramStep) implementsInitStep()     {}
func (CreateInputLayoutStep) implementsInitStep() {}
func (CreateFramebufferStep) implementsInitStep() {}
func (TextureImageStep) implementsInitStep()      {}

// Step is one entry of the per-frame queue. Like InitStep, the set of
// implementations is closed.
type Step interface {
	implementsStep()
}

// RenderStep replays Commands against Framebuffer, or against the
// backbuffer when Framebuffer is nil.
type RenderStep struct {
	Framebuffer *Framebuffer
	Commands    []Command
}

// CopyStep copies a region between the color planes of two framebuffers
// using whichever copy-image extension the device advertises.
type CopyStep struct {
	Src     *Framebuffer
	Dst     *Framebuffer
	SrcRect image.Rectangle
	DstPos  image.Point
	Aspect  gl.Enum
	Level   int
	Layer   int
}

// BlitStep stretches a region between two framebuffers. A nil
// framebuffer designates the backbuffer.
type BlitStep struct {
	Src     *Framebuffer
	Dst     *Framebuffer
	SrcRect image.Rectangle
	DstRect image.Rectangle
	Aspect  gl.Enum
	Filter  gl.Enum
}

// ReadbackStep and ReadbackImageStep are reserved extension points. The
// executor accepts them without effect.
type ReadbackStep struct {
	Src    *Framebuffer
	Rect   image.Rectangle
	Aspect gl.Enum
}

type ReadbackImageStep struct {
	Texture *Texture
	Rect    image.Rectangle
	Level   int
}

func (RenderStep) implementsStep()        {}
func (CopyStep) implementsStep()          {}
func (BlitStep) implementsStep()          {}
func (ReadbackStep) implementsStep()      {}
func (ReadbackImageStep) implementsStep() {}

// Command is a single device state change or draw within a render step.
type Command interface {
	implementsCommand()
}

type DepthCmd struct {
	Enabled bool
	Write   bool
	Func    gl.Enum
}

type BlendCmd struct {
	Enabled  bool
	EqColor  gl.Enum
	EqAlpha  gl.Enum
	SrcColor gl.Enum
	DstColor gl.Enum
	SrcAlpha gl.Enum
	DstAlpha gl.Enum
	// Mask holds the color write mask, one bit per RGBA channel
	// starting at red in bit 0.
	Mask uint8
}

// ClearCmd clears the planes selected by Mask. Color is packed RGBA8
// with red in the least significant byte.
type ClearCmd struct {
	Mask    gl.Enum
	Color   uint32
	Depth   float32
	Stencil uint8
}

type BlendColorCmd struct {
	Color [4]float32
}

// ViewportCmd sets the viewport and depth range. Y is flipped when the
// pass targets the backbuffer.
type ViewportCmd struct {
	X, Y, W, H float32
	MinZ, MaxZ float32
}

type ScissorCmd struct {
	Rect image.Rectangle
}

// UniformFCmd sets a float uniform of 1 to 4 components, addressed by a
// pre-resolved location or, when Name is non-empty, by name against the
// currently bound program.
type UniformFCmd struct {
	Loc   *gl.Uniform
	Name  string
	Count int
	V     [4]float32
}

type UniformICmd struct {
	Loc   *gl.Uniform
	Name  string
	Count int
	V     [4]int
}

type UniformMatrixCmd struct {
	Loc  *gl.Uniform
	Name string
	M    [16]float32
}

type StencilFuncCmd struct {
	Enabled     bool
	Func        gl.Enum
	Ref         int
	CompareMask uint32
}

type StencilOpCmd struct {
	SFail     gl.Enum
	ZFail     gl.Enum
	Pass      gl.Enum
	WriteMask uint32
}

// BindTextureCmd binds Texture to a texture unit. A nil texture unbinds
// the unit.
type BindTextureCmd struct {
	Slot    int
	Texture *Texture
}

// BindFramebufferTextureCmd binds a framebuffer's color texture to a
// texture unit for sampling.
type BindFramebufferTextureCmd struct {
	Slot        int
	Framebuffer *Framebuffer
	Aspect      gl.Enum
}

type BindProgramCmd struct {
	Program *Program
}

type BindInputLayoutCmd struct {
	Layout *InputLayout
	// Offset is added to every attribute's byte offset, addressing a
	// sub-range of the bound vertex buffer.
	Offset int
}

type BindBufferCmd struct {
	Target gl.Enum
	Buffer *Buffer
}

type GenMipsCmd struct{}

type DrawCmd struct {
	Mode  gl.Enum
	First int
	Count int
}

type DrawIndexedCmd struct {
	Mode      gl.Enum
	Count     int
	IndexType gl.Enum
	Offset    int
	Instances int
}

type TextureSamplerCmd struct {
	WrapS      gl.Enum
	WrapT      gl.Enum
	MagFilter  gl.Enum
	MinFilter  gl.Enum
	Anisotropy float32
}

type TextureLodCmd struct {
	MinLod float32
	MaxLod float32
	Bias   float32
}

type RasterCmd struct {
	CullEnable   bool
	FrontFace    gl.Enum
	CullFace     gl.Enum
	DitherEnable bool
}

func (DepthCmd) implementsCommand()                  {}
func (BlendCmd) implementsCommand()                  {}
func (ClearCmd) implementsCommand()                  {}
func (BlendColorCmd) implementsCommand()             {}
func (ViewportCmd) implementsCommand()               {}
func (ScissorCmd) implementsCommand()                {}
func (UniformFCmd) implementsCommand()               {}
func (UniformICmd) implementsCommand()               {}
func (UniformMatrixCmd) implementsCommand()          {}
func (StencilFuncCmd) implementsCommand()            {}
func (StencilOpCmd) implementsCommand()              {}
func (BindTextureCmd) implementsCommand()            {}
func (BindFramebufferTextureCmd) implementsCommand() {}
func (BindProgramCmd) implementsCommand()            {}
func (BindInputLayoutCmd) implementsCommand()        {}
func (BindBufferCmd) implementsCommand()             {}
func (GenMipsCmd) implementsCommand()                {}
func (DrawCmd) implementsCommand()                   {}
func (DrawIndexedCmd) implementsCommand()            {}
func (TextureSamplerCmd) implementsCommand()         {}
func (TextureLodCmd) implementsCommand()             {}
func (RasterCmd) implementsCommand()                 {}
