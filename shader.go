// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"

	"gioui.org/shader"
	"golang.org/x/exp/slices"
)

// CreateShaderFromSources compiles the GLSL 1.50 variant of src, as
// produced by the gioui.org/shader converter.
func (d *Device) CreateShaderFromSources(stage ShaderStage, src shader.Sources) (Shader, error) {
	if src.GLSL150 == "" {
		return Shader{}, fmt.Errorf("grr: shader %s has no GLSL 1.50 source", src.Name)
	}
	s, err := d.CreateShader(stage, []byte(src.GLSL150))
	if err != nil {
		return s, fmt.Errorf("grr: shader %s: %w", src.Name, err)
	}
	return s, nil
}

// VertexAttributesFromSources derives tightly packed attributes for
// the reflected vertex inputs of src, sourced from binding. Inputs
// are laid out in location order.
func VertexAttributesFromSources(src shader.Sources, binding uint32) ([]VertexAttributeDesc, uint32, error) {
	inputs := slices.Clone(src.Inputs)
	slices.SortFunc(inputs, func(a, b shader.InputLocation) int {
		return a.Location - b.Location
	})
	attrs := make([]VertexAttributeDesc, 0, len(inputs))
	var offset uint32
	for _, inp := range inputs {
		f, err := inputFormat(inp)
		if err != nil {
			return nil, 0, fmt.Errorf("grr: shader %s: %w", src.Name, err)
		}
		attrs = append(attrs, VertexAttributeDesc{
			Location: uint32(inp.Location),
			Binding:  binding,
			Format:   f,
			Offset:   offset,
		})
		offset += uint32(f.Size())
	}
	return attrs, offset, nil
}

func inputFormat(inp shader.InputLocation) (VertexFormat, error) {
	var formats [4]VertexFormat
	switch inp.Type {
	case shader.DataTypeFloat:
		formats = [4]VertexFormat{X32Float, Xy32Float, Xyz32Float, Xyzw32Float}
	case shader.DataTypeInt:
		formats = [4]VertexFormat{X32Int, Xy32Int, Xyz32Int, Xyzw32Int}
	case shader.DataTypeShort:
		// Shorts feed float inputs, unnormalized.
		formats = [4]VertexFormat{X16Iscaled, Xy16Iscaled, Xyz16Iscaled, Xyzw16Iscaled}
	default:
		return 0, fmt.Errorf("input %q: unsupported data type %v", inp.Name, inp.Type)
	}
	if inp.Size < 1 || inp.Size > 4 {
		return 0, fmt.Errorf("input %q: unsupported size %d", inp.Name, inp.Size)
	}
	return formats[inp.Size-1], nil
}
