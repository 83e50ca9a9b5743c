// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib uint32
	Enum   uint32
)

const (
	ALL_BARRIER_BITS                      = 0xffffffff
	ALWAYS                                = 0x207
	ANY_SAMPLES_PASSED                    = 0x8c2f
	ANY_SAMPLES_PASSED_CONSERVATIVE       = 0x8d6a
	ATOMIC_COUNTER_BARRIER_BIT            = 0x1000
	BACK                                  = 0x405
	BLEND                                 = 0xbe2
	BUFFER                                = 0x82e0
	BUFFER_SIZE                           = 0x8764
	BUFFER_UPDATE_BARRIER_BIT             = 0x200
	BYTE                                  = 0x1400
	CCW                                   = 0x901
	CLAMP_TO_BORDER                       = 0x812d
	CLAMP_TO_EDGE                         = 0x812f
	CLIENT_STORAGE_BIT                    = 0x200
	CLIPPING_INPUT_PRIMITIVES             = 0x82f6
	CLIPPING_OUTPUT_PRIMITIVES            = 0x82f7
	COLOR                                 = 0x1800
	COLOR_ATTACHMENT0                     = 0x8ce0
	COLOR_BUFFER_BIT                      = 0x4000
	COMMAND_BARRIER_BIT                   = 0x40
	COMPARE_REF_TO_TEXTURE                = 0x884e
	COMPILE_STATUS                        = 0x8b81
	COMPUTE_SHADER                        = 0x91b9
	COMPUTE_SHADER_INVOCATIONS            = 0x82f5
	CONSTANT_ALPHA                        = 0x8003
	CONSTANT_COLOR                        = 0x8001
	CULL_FACE                             = 0xb44
	CW                                    = 0x900
	DEBUG_OUTPUT                          = 0x92e0
	DEBUG_OUTPUT_SYNCHRONOUS              = 0x8242
	DEBUG_SEVERITY_HIGH                   = 0x9146
	DEBUG_SEVERITY_LOW                    = 0x9148
	DEBUG_SEVERITY_MEDIUM                 = 0x9147
	DEBUG_SEVERITY_NOTIFICATION           = 0x826b
	DEBUG_SOURCE_API                      = 0x8246
	DEBUG_SOURCE_APPLICATION              = 0x824a
	DEBUG_SOURCE_OTHER                    = 0x824b
	DEBUG_SOURCE_SHADER_COMPILER          = 0x8248
	DEBUG_SOURCE_THIRD_PARTY              = 0x8249
	DEBUG_SOURCE_WINDOW_SYSTEM            = 0x8247
	DEBUG_TYPE_DEPRECATED_BEHAVIOR        = 0x824d
	DEBUG_TYPE_ERROR                      = 0x824c
	DEBUG_TYPE_MARKER                     = 0x8268
	DEBUG_TYPE_OTHER                      = 0x8251
	DEBUG_TYPE_PERFORMANCE                = 0x8250
	DEBUG_TYPE_POP_GROUP                  = 0x826a
	DEBUG_TYPE_PORTABILITY                = 0x824f
	DEBUG_TYPE_PUSH_GROUP                 = 0x8269
	DEBUG_TYPE_UNDEFINED_BEHAVIOR         = 0x824e
	DECR                                  = 0x1e03
	DECR_WRAP                             = 0x8508
	DEPTH                                 = 0x1801
	DEPTH24_STENCIL8                      = 0x88f0
	DEPTH32F_STENCIL8                     = 0x8cad
	DEPTH_ATTACHMENT                      = 0x8d00
	DEPTH_BUFFER_BIT                      = 0x100
	DEPTH_CLAMP                           = 0x864f
	DEPTH_COMPONENT                       = 0x1902
	DEPTH_COMPONENT16                     = 0x81a5
	DEPTH_COMPONENT24                     = 0x81a6
	DEPTH_COMPONENT32F                    = 0x8cac
	DEPTH_STENCIL                         = 0x84f9
	DEPTH_STENCIL_ATTACHMENT              = 0x821a
	DEPTH_TEST                            = 0xb71
	DISPATCH_INDIRECT_BUFFER              = 0x90ee
	DONT_CARE                             = 0x1100
	DOUBLE                                = 0x140a
	DRAW_FRAMEBUFFER                      = 0x8ca9
	DRAW_INDIRECT_BUFFER                  = 0x8f3f
	DST_ALPHA                             = 0x304
	DST_COLOR                             = 0x306
	DYNAMIC_STORAGE_BIT                   = 0x100
	ELEMENT_ARRAY_BARRIER_BIT             = 0x2
	EQUAL                                 = 0x202
	FALSE                                 = 0
	FILL                                  = 0x1b02
	FLOAT                                 = 0x1406
	FRAGMENT_SHADER                       = 0x8b30
	FRAGMENT_SHADER_INVOCATIONS           = 0x82f4
	FRAMEBUFFER                           = 0x8d40
	FRAMEBUFFER_BARRIER_BIT               = 0x400
	FRAMEBUFFER_COMPLETE                  = 0x8cd5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT     = 0x8cd6
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER    = 0x8cdb
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS  = 0x8da8
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACH = 0x8cd7
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE    = 0x8d56
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER    = 0x8cdc
	FRAMEBUFFER_SRGB                      = 0x8db9
	FRAMEBUFFER_UNDEFINED                 = 0x8219
	FRAMEBUFFER_UNSUPPORTED               = 0x8cdd
	FRONT                                 = 0x404
	FRONT_AND_BACK                        = 0x408
	FUNC_ADD                              = 0x8006
	FUNC_REVERSE_SUBTRACT                 = 0x800b
	FUNC_SUBTRACT                         = 0x800a
	GEOMETRY_SHADER                       = 0x8dd9
	GEOMETRY_SHADER_INVOCATIONS           = 0x887f
	GEOMETRY_SHADER_PRIMITIVES_EMITTED    = 0x82f3
	GEQUAL                                = 0x206
	GREATER                               = 0x204
	HALF_FLOAT                            = 0x140b
	INCR                                  = 0x1e02
	INCR_WRAP                             = 0x8507
	INFO_LOG_LENGTH                       = 0x8b84
	INT                                   = 0x1404
	INVALID_ENUM                          = 0x500
	INVALID_FRAMEBUFFER_OPERATION         = 0x506
	INVALID_OPERATION                     = 0x502
	INVALID_VALUE                         = 0x501
	INVERT                                = 0x150a
	KEEP                                  = 0x1e00
	LEQUAL                                = 0x203
	LESS                                  = 0x201
	LINE                                  = 0x1b01
	LINEAR                                = 0x2601
	LINEAR_MIPMAP_LINEAR                  = 0x2703
	LINEAR_MIPMAP_NEAREST                 = 0x2701
	LINES                                 = 0x1
	LINES_ADJACENCY                       = 0xa
	LINE_STRIP                            = 0x3
	LINE_STRIP_ADJACENCY                  = 0xb
	LINK_STATUS                           = 0x8b82
	LOWER_LEFT                            = 0x8ca1
	MAP_COHERENT_BIT                      = 0x80
	MAP_FLUSH_EXPLICIT_BIT                = 0x10
	MAP_PERSISTENT_BIT                    = 0x40
	MAP_READ_BIT                          = 0x1
	MAP_UNSYNCHRONIZED_BIT                = 0x20
	MAP_WRITE_BIT                         = 0x2
	MAX                                   = 0x8008
	MAX_3D_TEXTURE_SIZE                   = 0x8073
	MAX_ARRAY_TEXTURE_LAYERS              = 0x88ff
	MAX_COLOR_ATTACHMENTS                 = 0x8cdf
	MAX_SAMPLES                           = 0x8d57
	MAX_SHADER_STORAGE_BUFFER_BINDINGS    = 0x90dd
	MAX_TEXTURE_SIZE                      = 0xd33
	MAX_UNIFORM_BUFFER_BINDINGS           = 0x8a2f
	MAX_VERTEX_ATTRIBS                    = 0x8869
	MAX_VIEWPORTS                         = 0x825b
	MESH_SHADER_NV                        = 0x9559
	MIN                                   = 0x8007
	MIRRORED_REPEAT                       = 0x8370
	MIRROR_CLAMP_TO_EDGE                  = 0x8743
	MULTISAMPLE                           = 0x809d
	NEAREST                               = 0x2600
	NEAREST_MIPMAP_LINEAR                 = 0x2702
	NEAREST_MIPMAP_NEAREST                = 0x2700
	NEVER                                 = 0x200
	NONE                                  = 0
	NOTEQUAL                              = 0x205
	NO_ERROR                              = 0x0
	ONE                                   = 0x1
	ONE_MINUS_CONSTANT_ALPHA              = 0x8004
	ONE_MINUS_CONSTANT_COLOR              = 0x8002
	ONE_MINUS_DST_ALPHA                   = 0x305
	ONE_MINUS_DST_COLOR                   = 0x307
	ONE_MINUS_SRC1_ALPHA                  = 0x88fb
	ONE_MINUS_SRC1_COLOR                  = 0x88fa
	ONE_MINUS_SRC_ALPHA                   = 0x303
	ONE_MINUS_SRC_COLOR                   = 0x301
	OUT_OF_MEMORY                         = 0x505
	PACK_ALIGNMENT                        = 0xd05
	PACK_IMAGE_HEIGHT                     = 0x806c
	PACK_ROW_LENGTH                       = 0xd02
	PARAMETER_BUFFER                      = 0x80ee
	PATCHES                               = 0xe
	PIXEL_BUFFER_BARRIER_BIT              = 0x80
	PIXEL_PACK_BUFFER                     = 0x88eb
	PIXEL_UNPACK_BUFFER                   = 0x88ec
	POINT                                 = 0x1b00
	POINTS                                = 0x0
	POLYGON_OFFSET_FILL                   = 0x8037
	POLYGON_OFFSET_LINE                   = 0x2a02
	POLYGON_OFFSET_POINT                  = 0x2a01
	PRIMITIVES_SUBMITTED                  = 0x82ef
	PRIMITIVE_RESTART                     = 0x8f9d
	PROGRAM                               = 0x82e2
	QUERY                                 = 0x82e3
	QUERY_BUFFER                          = 0x9192
	QUERY_BY_REGION_NO_WAIT               = 0x8e16
	QUERY_BY_REGION_NO_WAIT_INVERTED      = 0x8e1a
	QUERY_BY_REGION_WAIT                  = 0x8e15
	QUERY_BY_REGION_WAIT_INVERTED         = 0x8e19
	QUERY_NO_WAIT                         = 0x8e14
	QUERY_NO_WAIT_INVERTED                = 0x8e18
	QUERY_RESULT                          = 0x8866
	QUERY_RESULT_AVAILABLE                = 0x8867
	QUERY_RESULT_NO_WAIT                  = 0x9194
	QUERY_WAIT                            = 0x8e13
	QUERY_WAIT_INVERTED                   = 0x8e17
	R11F_G11F_B10F                        = 0x8c3a
	R16                                   = 0x822a
	R16F                                  = 0x822d
	R16I                                  = 0x8233
	R16UI                                 = 0x8234
	R32F                                  = 0x822e
	R32I                                  = 0x8235
	R32UI                                 = 0x8236
	R8                                    = 0x8229
	R8I                                   = 0x8231
	R8UI                                  = 0x8232
	R8_SNORM                              = 0x8f94
	RASTERIZER_DISCARD                    = 0x8c89
	READ_FRAMEBUFFER                      = 0x8ca8
	RED                                   = 0x1903
	RENDERBUFFER                          = 0x8d41
	RENDERER                              = 0x1f01
	REPEAT                                = 0x2901
	REPLACE                               = 0x1e01
	RG                                    = 0x8227
	RG16F                                 = 0x822f
	RG32F                                 = 0x8230
	RG8                                   = 0x822b
	RG8UI                                 = 0x8238
	RGB                                   = 0x1907
	RGB10_A2                              = 0x8059
	RGB16F                                = 0x881b
	RGB32F                                = 0x8815
	RGB8                                  = 0x8051
	RGBA                                  = 0x1908
	RGBA16F                               = 0x881a
	RGBA32F                               = 0x8814
	RGBA32UI                              = 0x8d70
	RGBA8                                 = 0x8058
	SAMPLER                               = 0x82e6
	SAMPLES_PASSED                        = 0x8914
	SAMPLE_ALPHA_TO_COVERAGE              = 0x809e
	SAMPLE_ALPHA_TO_ONE                   = 0x809f
	SAMPLE_SHADING                        = 0x8c36
	SCISSOR_TEST                          = 0xc11
	SHADER                                = 0x82e1
	SHADER_IMAGE_ACCESS_BARRIER_BIT       = 0x20
	SHADER_STORAGE_BARRIER_BIT            = 0x2000
	SHADER_STORAGE_BUFFER                 = 0x90d2
	SHADING_LANGUAGE_VERSION              = 0x8b8c
	SHORT                                 = 0x1402
	SRC1_ALPHA                            = 0x8589
	SRC1_COLOR                            = 0x88f9
	SRC_ALPHA                             = 0x302
	SRC_ALPHA_SATURATE                    = 0x308
	SRC_COLOR                             = 0x300
	SRGB8                                 = 0x8c41
	SRGB8_ALPHA8                          = 0x8c43
	STACK_OVERFLOW                        = 0x503
	STACK_UNDERFLOW                       = 0x504
	STENCIL                               = 0x1802
	STENCIL_ATTACHMENT                    = 0x8d20
	STENCIL_BUFFER_BIT                    = 0x400
	STENCIL_INDEX                         = 0x1901
	STENCIL_INDEX8                        = 0x8d48
	STENCIL_TEST                          = 0xb90
	TASK_SHADER_NV                        = 0x955a
	TESS_CONTROL_SHADER                   = 0x8e88
	TESS_CONTROL_SHADER_PATCHES           = 0x82f1
	TESS_EVALUATION_SHADER                = 0x8e87
	TESS_EVALUATION_SHADER_INVOCATIONS    = 0x82f2
	TEXTURE                               = 0x1702
	TEXTURE_1D                            = 0xde0
	TEXTURE_1D_ARRAY                      = 0x8c18
	TEXTURE_2D                            = 0xde1
	TEXTURE_2D_ARRAY                      = 0x8c1a
	TEXTURE_2D_MULTISAMPLE                = 0x9100
	TEXTURE_2D_MULTISAMPLE_ARRAY          = 0x9102
	TEXTURE_3D                            = 0x806f
	TEXTURE_BORDER_COLOR                  = 0x1004
	TEXTURE_COMPARE_FUNC                  = 0x884d
	TEXTURE_COMPARE_MODE                  = 0x884c
	TEXTURE_CUBE_MAP                      = 0x8513
	TEXTURE_CUBE_MAP_ARRAY                = 0x9009
	TEXTURE_FETCH_BARRIER_BIT             = 0x8
	TEXTURE_LOD_BIAS                      = 0x8501
	TEXTURE_MAG_FILTER                    = 0x2800
	TEXTURE_MAX_LOD                       = 0x813b
	TEXTURE_MIN_FILTER                    = 0x2801
	TEXTURE_MIN_LOD                       = 0x813a
	TEXTURE_UPDATE_BARRIER_BIT            = 0x100
	TEXTURE_WRAP_R                        = 0x8072
	TEXTURE_WRAP_S                        = 0x2802
	TEXTURE_WRAP_T                        = 0x2803
	TIMESTAMP                             = 0x8e28
	TIME_ELAPSED                          = 0x88bf
	TRANSFORM_FEEDBACK_BARRIER_BIT        = 0x800
	TRANSFORM_FEEDBACK_OVERFLOW           = 0x82ec
	TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN = 0x8c88
	TRANSFORM_FEEDBACK_STREAM_OVERFLOW    = 0x82ed
	TRIANGLES                             = 0x4
	TRIANGLES_ADJACENCY                   = 0xc
	TRIANGLE_STRIP                        = 0x5
	TRIANGLE_STRIP_ADJACENCY              = 0xd
	TRUE                                  = 1
	UNIFORM_BARRIER_BIT                   = 0x4
	UNIFORM_BUFFER                        = 0x8a11
	UNPACK_ALIGNMENT                      = 0xcf5
	UNPACK_IMAGE_HEIGHT                   = 0x806e
	UNPACK_ROW_LENGTH                     = 0xcf2
	UNSIGNED_BYTE                         = 0x1401
	UNSIGNED_INT                          = 0x1405
	UNSIGNED_SHORT                        = 0x1403
	VENDOR                                = 0x1f00
	VERSION                               = 0x1f02
	VERTEX_ARRAY                          = 0x8074
	VERTEX_ATTRIB_ARRAY_BARRIER_BIT       = 0x1
	VERTEX_SHADER                         = 0x8b31
	VERTEX_SHADER_INVOCATIONS             = 0x82f0
	VERTICES_SUBMITTED                    = 0x82ee
	ZERO                                  = 0x0
	ZERO_TO_ONE                           = 0x935f
)
