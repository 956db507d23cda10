// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/go-glr/glr/internal/gl"
)

const (
	// Texture names are generated in batches of this size and handed
	// out one at a time.
	textureNameCacheSize = 16

	// Compiler and linker diagnostics are truncated to this length
	// before logging.
	maxDiagnosticLen = 2048

	// Vertex attribute semantic slots 0 through maxVertexAttribs-1 are
	// tracked in the enable mask.
	maxVertexAttribs = 7

	// Texture units tracked by the bind cache.
	maxTextureUnits = 8
)

// Runner replays finalized init and render queues against the device.
// All methods must be called from the thread that owns the GL context;
// the bind-state caches are unsynchronized by contract.
type Runner struct {
	f    gl.Functions
	caps Caps
	log  *log.Logger

	targetWidth  int
	targetHeight int
	// defaultFBO is the platform backbuffer handle. Nonzero on hosts
	// that do not present handle 0 as the system backbuffer.
	defaultFBO gl.Framebuffer

	nameCache     []gl.Texture
	globalVAO     gl.VertexArray
	maxAnisotropy float32

	// Framebuffer bind caches, persisted across passes.
	currentDrawHandle gl.Framebuffer
	currentReadHandle gl.Framebuffer

	// Texture bind cache, persisted across passes.
	texBinds [maxTextureUnits]gl.Texture

	// Per-pass state, reset by the unconditional pass-exit sequence.
	curFB         *Framebuffer
	curFBWidth    int
	curFBHeight   int
	activeTexture int
	curArrayBuf   gl.Buffer
	curElemBuf    gl.Buffer
	curProgram    *Program
	attrMask      uint
}

// New creates a Runner against the given context. Capabilities are
// queried once here; the context must be current.
func New(f gl.Functions, cfg Config) (*Runner, error) {
	caps, err := DetectCaps(f)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		f:             f,
		caps:          caps,
		log:           cfg.logger(),
		targetWidth:   cfg.TargetWidth,
		targetHeight:  cfg.TargetHeight,
		defaultFBO:    gl.Framebuffer{V: cfg.DefaultFramebuffer},
		maxAnisotropy: caps.MaxAnisotropy,
	}
	// Core desktop profiles require some vertex array bound while
	// drawing.
	r.globalVAO = f.CreateVertexArray()
	return r, nil
}

// Caps returns the capability descriptor detected at construction.
func (r *Runner) Caps() Caps {
	return r.caps
}

// SetTargetSize updates the backbuffer dimensions used for Y-flipping
// when a pass targets the default framebuffer.
func (r *Runner) SetTargetSize(width, height int) {
	r.targetWidth = width
	r.targetHeight = height
}

// Release frees the device objects owned by the runner itself. Resources
// created through init steps are destroyed separately.
func (r *Runner) Release() {
	if len(r.nameCache) > 0 {
		r.f.DeleteTextures(r.nameCache)
		r.nameCache = nil
	}
	if r.globalVAO.Valid() {
		r.f.DeleteVertexArray(r.globalVAO)
		r.globalVAO = gl.VertexArray{}
	}
}

// ExecuteInit runs the one-time initialization queue in order. Later
// steps may depend on the handles produced by earlier ones, so no
// reordering happens. Compile and link failures are logged and isolated
// to their step; sibling steps still execute.
func (r *Runner) ExecuteInit(steps []InitStep) {
	r.f.ActiveTexture(gl.TEXTURE0)
	var boundTexture gl.Texture
	boundTarget := gl.Enum(gl.TEXTURE_2D)

	for _, s := range steps {
		switch step := s.(type) {
		case CreateTextureStep:
			tex := step.Texture
			tex.obj = r.f.CreateTexture()
			r.f.BindTexture(tex.Target, tex.obj)
			boundTexture = tex.obj
			boundTarget = tex.Target
		case CreateBufferStep:
			buf := step.Buffer
			buf.obj = r.f.CreateBuffer()
			buf.size = step.Size
			r.f.BindBuffer(buf.Target, buf.obj)
			r.f.BufferData(buf.Target, step.Size, step.Usage)
		case BufferUploadStep:
			r.f.BindBuffer(gl.ARRAY_BUFFER, step.Buffer.obj)
			r.f.BufferSubData(gl.ARRAY_BUFFER, step.Offset, step.Data.take())
			if step.Free {
				step.Data.free()
			}
		case CreateShaderStep:
			r.initCreateShader(step)
		case CreateProgramStep:
			r.initCreateProgram(step)
		case CreateInputLayoutStep:
			// Layouts carry no device objects; attribute pointers are
			// applied at bind time.
		case CreateFramebufferStep:
			boundTexture = gl.Texture{}
			r.initCreateFramebuffer(step.Framebuffer)
		case TextureImageStep:
			tex := step.Texture
			if !boundTexture.Equal(tex.obj) {
				r.f.BindTexture(tex.Target, tex.obj)
				boundTexture = tex.obj
				boundTarget = tex.Target
			}
			var pixels []byte
			if step.Data != nil {
				pixels = step.Data.take()
			}
			r.f.TexImage2D(tex.Target, step.Level, step.InternalFormat, step.Width, step.Height, step.Format, step.Type, pixels)
			if step.Data != nil {
				step.Data.free()
			}
			filter := gl.NEAREST
			if step.LinearFilter {
				filter = gl.LINEAR
			}
			r.f.TexParameteri(tex.Target, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
			r.f.TexParameteri(tex.Target, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
			r.f.TexParameteri(tex.Target, gl.TEXTURE_MAG_FILTER, filter)
			r.f.TexParameteri(tex.Target, gl.TEXTURE_MIN_FILTER, filter)
		default:
			panic(fmt.Sprintf("glr: unknown init step %T", s))
		}
	}

	// The render caches start every pass claiming nothing is bound.
	// Make that true on the device, or a first-frame unbind command
	// would be elided against an init leftover.
	if boundTexture.Valid() {
		r.f.BindTexture(boundTarget, gl.Texture{})
	}
	r.f.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
	r.f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{})
	r.texBinds = [maxTextureUnits]gl.Texture{}
	r.activeTexture = 0
}

func (r *Runner) initCreateShader(step CreateShaderStep) {
	sh := step.Shader
	obj := r.f.CreateShader(sh.Stage)
	sh.obj = obj
	r.f.ShaderSource(obj, string(step.Code.take()))
	step.Code.free()
	r.f.CompileShader(obj)
	if r.f.GetShaderi(obj, gl.COMPILE_STATUS) != gl.TRUE {
		diag := truncateDiagnostic(r.f.GetShaderInfoLog(obj))
		r.f.DeleteShader(obj)
		sh.obj = gl.Shader{}
		sh.valid = false
		r.log.Error("shader compile failed", "stage", stageName(sh.Stage), "log", diag)
		return
	}
	sh.valid = true
}

func (r *Runner) initCreateProgram(step CreateProgramStep) {
	prog := step.Program
	if len(step.Shaders) == 0 {
		panic("glr: cannot create a program with zero shaders")
	}
	prog.obj = r.f.CreateProgram()
	for _, sh := range step.Shaders {
		r.f.AttachShader(prog.obj, sh.obj)
	}
	for _, sem := range prog.Semantics {
		r.f.BindAttribLocation(prog.obj, sem.Location, sem.Name)
	}
	if r.caps.DualSourceBlend {
		r.f.BindFragDataLocationIndexed(prog.obj, 0, 0, "fragColor0")
		r.f.BindFragDataLocationIndexed(prog.obj, 0, 1, "fragColor1")
	} else if !r.caps.GLES && versionGE(r.caps.Version, 3, 3) {
		r.f.BindFragDataLocation(prog.obj, 0, "fragColor0")
	}
	r.f.LinkProgram(prog.obj)

	if r.f.GetProgrami(prog.obj, gl.LINK_STATUS) != gl.TRUE {
		diag := truncateDiagnostic(r.f.GetProgramInfoLog(prog.obj))
		r.log.Error("program link failed", "shaders", len(step.Shaders), "log", diag)
		// Post-link work is skipped for this step only; the queue
		// continues.
		return
	}

	r.f.UseProgram(prog.obj)
	for i := range prog.Queries {
		q := &prog.Queries[i]
		*q.Dest = r.f.GetUniformLocation(prog.obj, q.Name)
	}
	for _, init := range prog.Inits {
		if init.Dest.Valid() {
			r.f.Uniform1i(*init.Dest, init.Value)
		}
	}
}

func stageName(stage gl.Enum) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("0x%x", uint(stage))
	}
}

func truncateDiagnostic(s string) string {
	if len(s) <= maxDiagnosticLen {
		return s
	}
	cut := maxDiagnosticLen
	// Never split a multi-byte rune at the cut.
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
