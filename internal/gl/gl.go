// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ALWAYS                            = 0x207
	ARRAY_BUFFER                      = 0x8892
	BACK                              = 0x0405
	BLEND                             = 0xbe2
	CCW                               = 0x901
	CLAMP_TO_EDGE                     = 0x812f
	COLOR_ATTACHMENT0                 = 0x8ce0
	COLOR_BUFFER_BIT                  = 0x4000
	COMPILE_STATUS                    = 0x8b81
	CULL_FACE                         = 0xb44
	CW                                = 0x900
	DEPTH_ATTACHMENT                  = 0x8d00
	DEPTH_BUFFER_BIT                  = 0x100
	DEPTH_COMPONENT16                 = 0x81a5
	DEPTH_COMPONENT24                 = 0x81a6
	DEPTH_STENCIL                     = 0x84f9
	DEPTH_TEST                        = 0xb71
	DEPTH24_STENCIL8                  = 0x88f0
	DITHER                            = 0xbd0
	DRAW_FRAMEBUFFER                  = 0x8ca9
	DYNAMIC_DRAW                      = 0x88e8
	ELEMENT_ARRAY_BUFFER              = 0x8893
	EXTENSIONS                        = 0x1f03
	FALSE                             = 0
	FLOAT                             = 0x1406
	FRAGMENT_SHADER                   = 0x8b30
	FRAMEBUFFER                       = 0x8d40
	FRAMEBUFFER_COMPLETE              = 0x8cd5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT = 0x8cd6
	FRAMEBUFFER_UNSUPPORTED           = 0x8cdd
	FRONT                             = 0x404
	FUNC_ADD                          = 0x8006
	GEQUAL                            = 0x206
	GREATER                           = 0x204
	INFO_LOG_LENGTH                   = 0x8b84
	LEQUAL                            = 0x203
	LESS                              = 0x201
	LINEAR                            = 0x2601
	LINK_STATUS                       = 0x8b82
	MAX_TEXTURE_MAX_ANISOTROPY_EXT    = 0x84ff
	MAX_TEXTURE_SIZE                  = 0xd33
	NEAREST                           = 0x2600
	NO_ERROR                          = 0x0
	ONE                               = 0x1
	ONE_MINUS_SRC_ALPHA               = 0x303
	READ_FRAMEBUFFER                  = 0x8ca8
	RENDERBUFFER                      = 0x8d41
	RGBA                              = 0x1908
	RGBA8                             = 0x8058
	SCISSOR_TEST                      = 0xc11
	SHORT                             = 0x1402
	SRC_ALPHA                         = 0x302
	STATIC_DRAW                       = 0x88e4
	STENCIL_ATTACHMENT                = 0x8d20
	STENCIL_BUFFER_BIT                = 0x400
	STENCIL_INDEX8                    = 0x8d48
	STENCIL_TEST                      = 0xb90
	TEXTURE_2D                        = 0xde1
	TEXTURE_LOD_BIAS                  = 0x8501
	TEXTURE_MAG_FILTER                = 0x2800
	TEXTURE_MAX_ANISOTROPY_EXT        = 0x84fe
	TEXTURE_MAX_LOD                   = 0x813b
	TEXTURE_MIN_FILTER                = 0x2801
	TEXTURE_MIN_LOD                   = 0x813a
	TEXTURE_WRAP_S                    = 0x2802
	TEXTURE_WRAP_T                    = 0x2803
	TEXTURE0                          = 0x84c0
	TRIANGLE_STRIP                    = 0x5
	TRIANGLES                         = 0x4
	TRUE                              = 1
	UNSIGNED_BYTE                     = 0x1401
	UNSIGNED_INT                      = 0x1405
	UNSIGNED_SHORT                    = 0x1403
	VERSION                           = 0x1f02
	VERTEX_SHADER                     = 0x8b31
	ZERO                              = 0x0
)
