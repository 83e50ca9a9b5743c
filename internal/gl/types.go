// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Object names. The zero value of each is the reserved name 0.
type (
	Buffer       struct{ V uint32 }
	Framebuffer  struct{ V uint32 }
	Program      struct{ V uint32 }
	Renderbuffer struct{ V uint32 }
	Sampler      struct{ V uint32 }
	Shader       struct{ V uint32 }
	Texture      struct{ V uint32 }
	Query        struct{ V uint32 }
	VertexArray  struct{ V uint32 }
)

// Valid reports whether fb names a framebuffer object rather than the
// default framebuffer.
func (fb Framebuffer) Valid() bool {
	return fb.V != 0
}
