// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ParseGLVersion parses the major and minor version from a GL_VERSION
// string and reports whether the context is OpenGL ES.
func ParseGLVersion(glVer string) ([2]int, bool, error) {
	gles := false
	if rem, ok := strings.CutPrefix(glVer, "OpenGL ES"); ok {
		gles = true
		glVer = strings.TrimSpace(rem)
		// Some drivers report "OpenGL ES GLSL ES major.minor" or a
		// vendor prefix before the version number.
		if i := strings.IndexAny(glVer, "0123456789"); i > 0 {
			glVer = glVer[i:]
		}
	}
	var major, minor int
	if _, err := fmt.Sscanf(glVer, "%d.%d", &major, &minor); err != nil {
		return [2]int{}, false, fmt.Errorf("gl: failed to parse GL_VERSION %q: %w", glVer, err)
	}
	return [2]int{major, minor}, gles, nil
}
