// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"

	"gioui.org/grr/internal/gl"
)

// VertexFormat is the format of a vertex attribute as stored in a
// vertex buffer.
//
// Int and Uint formats deliver integers to the shader. Unorm and Inorm
// formats deliver floats normalized to [0, 1] and [-1, 1]. Uscaled and
// Iscaled formats deliver the integer values converted to floats.
type VertexFormat uint8

// VertexClass selects the attribute configuration path.
type VertexClass uint8

// ScalarType is the storage type of a single attribute component.
type ScalarType uint8

// VertexAttribLayout is the resolved layout of a VertexFormat.
type VertexAttribLayout struct {
	Class      VertexClass
	Components int
	Type       ScalarType
	Normalized bool
}

const (
	VertexClassInt VertexClass = iota
	VertexClassFloat
	VertexClassDouble
)

const (
	ScalarI8 ScalarType = iota
	ScalarU8
	ScalarI16
	ScalarU16
	ScalarI32
	ScalarU32
	ScalarF16
	ScalarF32
	ScalarF64
)

const (
	X8Int VertexFormat = iota
	X8Uint
	X8Unorm
	X8Inorm
	X8Uscaled
	X8Iscaled

	Xy8Int
	Xy8Uint
	Xy8Unorm
	Xy8Inorm
	Xy8Uscaled
	Xy8Iscaled

	Xyz8Int
	Xyz8Uint
	Xyz8Unorm
	Xyz8Inorm
	Xyz8Uscaled
	Xyz8Iscaled

	Xyzw8Int
	Xyzw8Uint
	Xyzw8Unorm
	Xyzw8Inorm
	Xyzw8Uscaled
	Xyzw8Iscaled

	X16Int
	X16Uint
	X16Float
	X16Unorm
	X16Inorm
	X16Uscaled
	X16Iscaled

	Xy16Int
	Xy16Uint
	Xy16Float
	Xy16Unorm
	Xy16Inorm
	Xy16Uscaled
	Xy16Iscaled

	Xyz16Int
	Xyz16Uint
	Xyz16Float
	Xyz16Unorm
	Xyz16Inorm
	Xyz16Uscaled
	Xyz16Iscaled

	Xyzw16Int
	Xyzw16Uint
	Xyzw16Float
	Xyzw16Unorm
	Xyzw16Inorm
	Xyzw16Uscaled
	Xyzw16Iscaled

	X32Int
	X32Uint
	X32Float
	X32Unorm
	X32Inorm
	X32Uscaled
	X32Iscaled

	Xy32Int
	Xy32Uint
	Xy32Float
	Xy32Unorm
	Xy32Inorm
	Xy32Uscaled
	Xy32Iscaled

	Xyz32Int
	Xyz32Uint
	Xyz32Float
	Xyz32Unorm
	Xyz32Inorm
	Xyz32Uscaled
	Xyz32Iscaled

	Xyzw32Int
	Xyzw32Uint
	Xyzw32Float
	Xyzw32Unorm
	Xyzw32Inorm
	Xyzw32Uscaled
	Xyzw32Iscaled

	X64Float
	Xy64Float
	Xyz64Float
	Xyzw64Float

	vertexFormatCount
)

var vertexFormats = [vertexFormatCount]struct {
	name   string
	layout VertexAttribLayout
}{
	X8Int:         {"X8Int", VertexAttribLayout{VertexClassInt, 1, ScalarI8, false}},
	X8Uint:        {"X8Uint", VertexAttribLayout{VertexClassInt, 1, ScalarU8, false}},
	X8Unorm:       {"X8Unorm", VertexAttribLayout{VertexClassFloat, 1, ScalarU8, true}},
	X8Inorm:       {"X8Inorm", VertexAttribLayout{VertexClassFloat, 1, ScalarI8, true}},
	X8Uscaled:     {"X8Uscaled", VertexAttribLayout{VertexClassFloat, 1, ScalarU8, false}},
	X8Iscaled:     {"X8Iscaled", VertexAttribLayout{VertexClassFloat, 1, ScalarI8, false}},
	Xy8Int:        {"Xy8Int", VertexAttribLayout{VertexClassInt, 2, ScalarI8, false}},
	Xy8Uint:       {"Xy8Uint", VertexAttribLayout{VertexClassInt, 2, ScalarU8, false}},
	Xy8Unorm:      {"Xy8Unorm", VertexAttribLayout{VertexClassFloat, 2, ScalarU8, true}},
	Xy8Inorm:      {"Xy8Inorm", VertexAttribLayout{VertexClassFloat, 2, ScalarI8, true}},
	Xy8Uscaled:    {"Xy8Uscaled", VertexAttribLayout{VertexClassFloat, 2, ScalarU8, false}},
	Xy8Iscaled:    {"Xy8Iscaled", VertexAttribLayout{VertexClassFloat, 2, ScalarI8, false}},
	Xyz8Int:       {"Xyz8Int", VertexAttribLayout{VertexClassInt, 3, ScalarI8, false}},
	Xyz8Uint:      {"Xyz8Uint", VertexAttribLayout{VertexClassInt, 3, ScalarU8, false}},
	Xyz8Unorm:     {"Xyz8Unorm", VertexAttribLayout{VertexClassFloat, 3, ScalarU8, true}},
	Xyz8Inorm:     {"Xyz8Inorm", VertexAttribLayout{VertexClassFloat, 3, ScalarI8, true}},
	Xyz8Uscaled:   {"Xyz8Uscaled", VertexAttribLayout{VertexClassFloat, 3, ScalarU8, false}},
	Xyz8Iscaled:   {"Xyz8Iscaled", VertexAttribLayout{VertexClassFloat, 3, ScalarI8, false}},
	Xyzw8Int:      {"Xyzw8Int", VertexAttribLayout{VertexClassInt, 4, ScalarI8, false}},
	Xyzw8Uint:     {"Xyzw8Uint", VertexAttribLayout{VertexClassInt, 4, ScalarU8, false}},
	Xyzw8Unorm:    {"Xyzw8Unorm", VertexAttribLayout{VertexClassFloat, 4, ScalarU8, true}},
	Xyzw8Inorm:    {"Xyzw8Inorm", VertexAttribLayout{VertexClassFloat, 4, ScalarI8, true}},
	Xyzw8Uscaled:  {"Xyzw8Uscaled", VertexAttribLayout{VertexClassFloat, 4, ScalarU8, false}},
	Xyzw8Iscaled:  {"Xyzw8Iscaled", VertexAttribLayout{VertexClassFloat, 4, ScalarI8, false}},
	X16Int:        {"X16Int", VertexAttribLayout{VertexClassInt, 1, ScalarI16, false}},
	X16Uint:       {"X16Uint", VertexAttribLayout{VertexClassInt, 1, ScalarU16, false}},
	X16Float:      {"X16Float", VertexAttribLayout{VertexClassFloat, 1, ScalarF16, false}},
	X16Unorm:      {"X16Unorm", VertexAttribLayout{VertexClassFloat, 1, ScalarU16, true}},
	X16Inorm:      {"X16Inorm", VertexAttribLayout{VertexClassFloat, 1, ScalarI16, true}},
	X16Uscaled:    {"X16Uscaled", VertexAttribLayout{VertexClassFloat, 1, ScalarU16, false}},
	X16Iscaled:    {"X16Iscaled", VertexAttribLayout{VertexClassFloat, 1, ScalarI16, false}},
	Xy16Int:       {"Xy16Int", VertexAttribLayout{VertexClassInt, 2, ScalarI16, false}},
	Xy16Uint:      {"Xy16Uint", VertexAttribLayout{VertexClassInt, 2, ScalarU16, false}},
	Xy16Float:     {"Xy16Float", VertexAttribLayout{VertexClassFloat, 2, ScalarF16, false}},
	Xy16Unorm:     {"Xy16Unorm", VertexAttribLayout{VertexClassFloat, 2, ScalarU16, true}},
	Xy16Inorm:     {"Xy16Inorm", VertexAttribLayout{VertexClassFloat, 2, ScalarI16, true}},
	Xy16Uscaled:   {"Xy16Uscaled", VertexAttribLayout{VertexClassFloat, 2, ScalarU16, false}},
	Xy16Iscaled:   {"Xy16Iscaled", VertexAttribLayout{VertexClassFloat, 2, ScalarI16, false}},
	Xyz16Int:      {"Xyz16Int", VertexAttribLayout{VertexClassInt, 3, ScalarI16, false}},
	Xyz16Uint:     {"Xyz16Uint", VertexAttribLayout{VertexClassInt, 3, ScalarU16, false}},
	Xyz16Float:    {"Xyz16Float", VertexAttribLayout{VertexClassFloat, 3, ScalarF16, false}},
	Xyz16Unorm:    {"Xyz16Unorm", VertexAttribLayout{VertexClassFloat, 3, ScalarU16, true}},
	Xyz16Inorm:    {"Xyz16Inorm", VertexAttribLayout{VertexClassFloat, 3, ScalarI16, true}},
	Xyz16Uscaled:  {"Xyz16Uscaled", VertexAttribLayout{VertexClassFloat, 3, ScalarU16, false}},
	Xyz16Iscaled:  {"Xyz16Iscaled", VertexAttribLayout{VertexClassFloat, 3, ScalarI16, false}},
	Xyzw16Int:     {"Xyzw16Int", VertexAttribLayout{VertexClassInt, 4, ScalarI16, false}},
	Xyzw16Uint:    {"Xyzw16Uint", VertexAttribLayout{VertexClassInt, 4, ScalarU16, false}},
	Xyzw16Float:   {"Xyzw16Float", VertexAttribLayout{VertexClassFloat, 4, ScalarF16, false}},
	Xyzw16Unorm:   {"Xyzw16Unorm", VertexAttribLayout{VertexClassFloat, 4, ScalarU16, true}},
	Xyzw16Inorm:   {"Xyzw16Inorm", VertexAttribLayout{VertexClassFloat, 4, ScalarI16, true}},
	Xyzw16Uscaled: {"Xyzw16Uscaled", VertexAttribLayout{VertexClassFloat, 4, ScalarU16, false}},
	Xyzw16Iscaled: {"Xyzw16Iscaled", VertexAttribLayout{VertexClassFloat, 4, ScalarI16, false}},
	X32Int:        {"X32Int", VertexAttribLayout{VertexClassInt, 1, ScalarI32, false}},
	X32Uint:       {"X32Uint", VertexAttribLayout{VertexClassInt, 1, ScalarU32, false}},
	X32Float:      {"X32Float", VertexAttribLayout{VertexClassFloat, 1, ScalarF32, false}},
	X32Unorm:      {"X32Unorm", VertexAttribLayout{VertexClassFloat, 1, ScalarU32, true}},
	X32Inorm:      {"X32Inorm", VertexAttribLayout{VertexClassFloat, 1, ScalarI32, true}},
	X32Uscaled:    {"X32Uscaled", VertexAttribLayout{VertexClassFloat, 1, ScalarU32, false}},
	X32Iscaled:    {"X32Iscaled", VertexAttribLayout{VertexClassFloat, 1, ScalarI32, false}},
	Xy32Int:       {"Xy32Int", VertexAttribLayout{VertexClassInt, 2, ScalarI32, false}},
	Xy32Uint:      {"Xy32Uint", VertexAttribLayout{VertexClassInt, 2, ScalarU32, false}},
	Xy32Float:     {"Xy32Float", VertexAttribLayout{VertexClassFloat, 2, ScalarF32, false}},
	Xy32Unorm:     {"Xy32Unorm", VertexAttribLayout{VertexClassFloat, 2, ScalarU32, true}},
	Xy32Inorm:     {"Xy32Inorm", VertexAttribLayout{VertexClassFloat, 2, ScalarI32, true}},
	Xy32Uscaled:   {"Xy32Uscaled", VertexAttribLayout{VertexClassFloat, 2, ScalarU32, false}},
	Xy32Iscaled:   {"Xy32Iscaled", VertexAttribLayout{VertexClassFloat, 2, ScalarI32, false}},
	Xyz32Int:      {"Xyz32Int", VertexAttribLayout{VertexClassInt, 3, ScalarI32, false}},
	Xyz32Uint:     {"Xyz32Uint", VertexAttribLayout{VertexClassInt, 3, ScalarU32, false}},
	Xyz32Float:    {"Xyz32Float", VertexAttribLayout{VertexClassFloat, 3, ScalarF32, false}},
	Xyz32Unorm:    {"Xyz32Unorm", VertexAttribLayout{VertexClassFloat, 3, ScalarU32, true}},
	Xyz32Inorm:    {"Xyz32Inorm", VertexAttribLayout{VertexClassFloat, 3, ScalarI32, true}},
	Xyz32Uscaled:  {"Xyz32Uscaled", VertexAttribLayout{VertexClassFloat, 3, ScalarU32, false}},
	Xyz32Iscaled:  {"Xyz32Iscaled", VertexAttribLayout{VertexClassFloat, 3, ScalarI32, false}},
	Xyzw32Int:     {"Xyzw32Int", VertexAttribLayout{VertexClassInt, 4, ScalarI32, false}},
	Xyzw32Uint:    {"Xyzw32Uint", VertexAttribLayout{VertexClassInt, 4, ScalarU32, false}},
	Xyzw32Float:   {"Xyzw32Float", VertexAttribLayout{VertexClassFloat, 4, ScalarF32, false}},
	Xyzw32Unorm:   {"Xyzw32Unorm", VertexAttribLayout{VertexClassFloat, 4, ScalarU32, true}},
	Xyzw32Inorm:   {"Xyzw32Inorm", VertexAttribLayout{VertexClassFloat, 4, ScalarI32, true}},
	Xyzw32Uscaled: {"Xyzw32Uscaled", VertexAttribLayout{VertexClassFloat, 4, ScalarU32, false}},
	Xyzw32Iscaled: {"Xyzw32Iscaled", VertexAttribLayout{VertexClassFloat, 4, ScalarI32, false}},
	X64Float:      {"X64Float", VertexAttribLayout{VertexClassDouble, 1, ScalarF64, false}},
	Xy64Float:     {"Xy64Float", VertexAttribLayout{VertexClassDouble, 2, ScalarF64, false}},
	Xyz64Float:    {"Xyz64Float", VertexAttribLayout{VertexClassDouble, 3, ScalarF64, false}},
	Xyzw64Float:   {"Xyzw64Float", VertexAttribLayout{VertexClassDouble, 4, ScalarF64, false}},
}

// Resolve returns the attribute layout of f.
func (f VertexFormat) Resolve() VertexAttribLayout {
	if f >= vertexFormatCount {
		panic(fmt.Sprintf("grr: unsupported vertex format %d", uint8(f)))
	}
	return vertexFormats[f].layout
}

// Size returns the size in bytes of one attribute of format f.
func (f VertexFormat) Size() int {
	l := f.Resolve()
	return l.Components * l.Type.Size()
}

func (f VertexFormat) String() string {
	if f >= vertexFormatCount {
		return fmt.Sprintf("VertexFormat(%d)", uint8(f))
	}
	return vertexFormats[f].name
}

func (c VertexClass) String() string {
	switch c {
	case VertexClassInt:
		return "Int"
	case VertexClassFloat:
		return "Float"
	case VertexClassDouble:
		return "Double"
	default:
		return fmt.Sprintf("VertexClass(%d)", uint8(c))
	}
}

// Size returns the size in bytes of one scalar.
func (t ScalarType) Size() int {
	switch t {
	case ScalarI8, ScalarU8:
		return 1
	case ScalarI16, ScalarU16, ScalarF16:
		return 2
	case ScalarI32, ScalarU32, ScalarF32:
		return 4
	case ScalarF64:
		return 8
	default:
		panic("grr: unsupported scalar type")
	}
}

func (t ScalarType) glEnum() gl.Enum {
	switch t {
	case ScalarI8:
		return gl.BYTE
	case ScalarU8:
		return gl.UNSIGNED_BYTE
	case ScalarI16:
		return gl.SHORT
	case ScalarU16:
		return gl.UNSIGNED_SHORT
	case ScalarI32:
		return gl.INT
	case ScalarU32:
		return gl.UNSIGNED_INT
	case ScalarF16:
		return gl.HALF_FLOAT
	case ScalarF32:
		return gl.FLOAT
	case ScalarF64:
		return gl.DOUBLE
	default:
		panic("grr: unsupported scalar type")
	}
}

// InputRate controls how often a vertex buffer binding advances.
type InputRate struct {
	divisor uint32
}

// InputRateVertex advances once per vertex.
func InputRateVertex() InputRate {
	return InputRate{}
}

// InputRateInstance advances once every divisor instances.
func InputRateInstance(divisor uint32) InputRate {
	return InputRate{divisor: divisor}
}

// Divisor returns the instance divisor, 0 for per-vertex rates.
func (r InputRate) Divisor() uint32 {
	return r.divisor
}

// VertexArray is a set of vertex attribute bindings.
type VertexArray struct {
	id gl.VertexArray
}

// VertexAttributeDesc binds the shader attribute at Location to the
// vertex buffer binding slot Binding.
type VertexAttributeDesc struct {
	Location uint32
	Binding  uint32
	Format   VertexFormat
	// Offset is the byte offset of the attribute within an element.
	Offset uint32
}

// VertexBufferView binds a buffer range to a vertex buffer binding
// slot.
type VertexBufferView struct {
	Buffer    Buffer
	Offset    int
	Stride    uint32
	InputRate InputRate
}

// CreateVertexArray creates a vertex array from a list of attribute
// descriptions. Buffers are attached separately with
// BindVertexBuffers.
func (d *Device) CreateVertexArray(attributes []VertexAttributeDesc) (VertexArray, error) {
	vao := d.ctx.CreateVertexArray()
	if err := d.getError(); err != nil {
		return VertexArray{}, fmt.Errorf("grr: create vertex array: %w", err)
	}
	for _, a := range attributes {
		d.ctx.EnableVertexArrayAttrib(vao, a.Location)
		l := a.Format.Resolve()
		typ := l.Type.glEnum()
		switch l.Class {
		case VertexClassInt:
			d.ctx.VertexArrayAttribIFormat(vao, a.Location, l.Components, typ, a.Offset)
		case VertexClassFloat:
			d.ctx.VertexArrayAttribFormat(vao, a.Location, l.Components, typ, l.Normalized, a.Offset)
		case VertexClassDouble:
			d.ctx.VertexArrayAttribLFormat(vao, a.Location, l.Components, typ, a.Offset)
		}
		d.ctx.VertexArrayAttribBinding(vao, a.Location, a.Binding)
	}
	return VertexArray{id: vao}, nil
}

// DeleteVertexArray deletes vao.
func (d *Device) DeleteVertexArray(vao VertexArray) {
	d.DeleteVertexArrays([]VertexArray{vao})
}

// DeleteVertexArrays deletes vaos in a single call.
func (d *Device) DeleteVertexArrays(vaos []VertexArray) {
	ids := make([]gl.VertexArray, len(vaos))
	for i, v := range vaos {
		ids[i] = v.id
	}
	d.ctx.DeleteVertexArrays(ids)
}

// BindVertexArray makes vao the current vertex input.
func (d *Device) BindVertexArray(vao VertexArray) {
	d.ctx.BindVertexArray(vao.id)
}

// BindVertexBuffers attaches buffers to the binding slots starting at
// first. The input rate of each view sets the divisor of its slot.
func (d *Device) BindVertexBuffers(vao VertexArray, first uint32, views []VertexBufferView) {
	bufs := make([]gl.Buffer, len(views))
	offsets := make([]int, len(views))
	strides := make([]int32, len(views))
	for i, v := range views {
		bufs[i] = v.Buffer.id
		offsets[i] = v.Offset
		strides[i] = int32(v.Stride)
	}
	d.ctx.VertexArrayVertexBuffers(vao.id, first, bufs, offsets, strides)
	for i, v := range views {
		d.ctx.VertexArrayBindingDivisor(vao.id, first+uint32(i), v.InputRate.Divisor())
	}
}

// BindIndexBuffer sets the element buffer of vao.
func (d *Device) BindIndexBuffer(vao VertexArray, buf Buffer) {
	d.ctx.VertexArrayElementBuffer(vao.id, buf.id)
}
