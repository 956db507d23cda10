// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"strings"

	"github.com/go-glr/glr/internal/gl"
)

// FBOTier selects the framebuffer-object entry points available on the
// context.
type FBOTier uint8

const (
	// FBOTierCore: framebuffer objects are core (desktop 3.0+, ARB, or
	// any GLES version).
	FBOTierCore FBOTier = iota
	// FBOTierEXT: only EXT_framebuffer_object is available.
	FBOTierEXT
	// FBOTierNone: no framebuffer objects; offscreen rendering is
	// unavailable.
	FBOTierNone
)

// CopyImageMethod selects the copy-image entry point, preferring the
// standard one over the vendor variant.
type CopyImageMethod uint8

const (
	CopyImageNone CopyImageMethod = iota
	CopyImageARB
	CopyImageNV
)

// Caps describes the device features the executor branches on. It is
// populated once at startup and treated as read-only afterwards.
type Caps struct {
	GLES    bool
	Version [2]int

	FBOTier            FBOTier
	PackedDepthStencil bool
	Depth24            bool
	// BlitTargets reports whether read and draw framebuffer targets are
	// separate bind points (GLES3, ARB framebuffer objects, or
	// NV_framebuffer_blit).
	BlitTargets bool
	CopyImage   CopyImageMethod

	DualSourceBlend bool
	Anisotropy      bool
	MaxAnisotropy   float32
}

// DetectCaps queries the current context once. The executor never
// mutates the result.
func DetectCaps(f gl.Functions) (Caps, error) {
	exts := strings.Split(f.GetString(gl.EXTENSIONS), " ")
	ver, gles, err := gl.ParseGLVersion(f.GetString(gl.VERSION))
	if err != nil {
		return Caps{}, err
	}
	c := Caps{GLES: gles, Version: ver}
	gles3 := gles && ver[0] >= 3
	if gles {
		// Even ES 2.0 has basic framebuffer objects.
		c.FBOTier = FBOTierCore
		c.PackedDepthStencil = gles3 || hasExtension(exts, "GL_OES_packed_depth_stencil")
		c.Depth24 = gles3 || hasExtension(exts, "GL_OES_depth24")
		c.BlitTargets = gles3 || hasExtension(exts, "GL_NV_framebuffer_blit")
		c.DualSourceBlend = gles3 && hasExtension(exts, "GL_EXT_blend_func_extended")
		switch {
		case hasExtension(exts, "GL_OES_copy_image") || hasExtension(exts, "GL_EXT_copy_image"):
			c.CopyImage = CopyImageARB
		case hasExtension(exts, "GL_NV_copy_image"):
			c.CopyImage = CopyImageNV
		}
	} else {
		c.PackedDepthStencil = true
		c.Depth24 = true
		switch {
		case ver[0] >= 3 || hasExtension(exts, "GL_ARB_framebuffer_object"):
			c.FBOTier = FBOTierCore
		case hasExtension(exts, "GL_EXT_framebuffer_object"):
			c.FBOTier = FBOTierEXT
		default:
			c.FBOTier = FBOTierNone
		}
		c.BlitTargets = c.FBOTier == FBOTierCore
		c.DualSourceBlend = versionGE(ver, 3, 3) || hasExtension(exts, "GL_ARB_blend_func_extended")
		switch {
		case versionGE(ver, 4, 3) || hasExtension(exts, "GL_ARB_copy_image"):
			c.CopyImage = CopyImageARB
		case hasExtension(exts, "GL_NV_copy_image"):
			c.CopyImage = CopyImageNV
		}
	}
	if hasExtension(exts, "GL_EXT_texture_filter_anisotropic") {
		c.Anisotropy = true
		c.MaxAnisotropy = f.GetFloat(gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT)
	}
	return c, nil
}

func versionGE(ver [2]int, major, minor int) bool {
	if ver[0] != major {
		return ver[0] > major
	}
	return ver[1] >= minor
}

func hasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
