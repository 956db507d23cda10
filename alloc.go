// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"github.com/go-glr/glr/internal/gl"
)

// AllocateTextureHandle hands out one native texture name, generating
// them in batches of textureNameCacheSize to amortize allocation for
// callers that create many small textures.
func (r *Runner) AllocateTextureHandle() gl.Texture {
	if len(r.nameCache) == 0 {
		r.nameCache = r.f.GenTextures(textureNameCacheSize)
	}
	name := r.nameCache[len(r.nameCache)-1]
	r.nameCache = r.nameCache[:len(r.nameCache)-1]
	return name
}
