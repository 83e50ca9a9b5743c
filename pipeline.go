// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"
	"strings"

	"gioui.org/grr/internal/gl"
)

// ShaderStage is a programmable pipeline stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageTessellationControl
	StageTessellationEvaluation
	StageGeometry
	StageFragment
	StageCompute
	StageMeshNV
	StageTaskNV
)

// Shader is a compiled shader stage.
type Shader struct {
	id    gl.Shader
	stage ShaderStage
}

// Stage returns the stage s was compiled for.
func (s Shader) Stage() ShaderStage { return s.stage }

// Pipeline is a linked set of shader stages.
type Pipeline struct {
	id gl.Program
}

// GraphicsPipelineDesc lists the stages of a graphics pipeline. Nil
// stages are absent. Mesh and task stages exclude the vertex,
// tessellation and geometry stages.
type GraphicsPipelineDesc struct {
	VertexShader                 *Shader
	TessellationControlShader    *Shader
	TessellationEvaluationShader *Shader
	GeometryShader               *Shader
	FragmentShader               *Shader
	MeshShader                   *Shader
	TaskShader                   *Shader
}

// VertexPipelineDesc describes a pipeline with the traditional
// vertex processing stages.
type VertexPipelineDesc struct {
	VertexShader                 Shader
	TessellationControlShader    *Shader
	TessellationEvaluationShader *Shader
	GeometryShader               *Shader
	FragmentShader               *Shader
}

// MeshPipelineDesc describes a pipeline with mesh shading stages.
type MeshPipelineDesc struct {
	MeshShader     Shader
	TaskShader     *Shader
	FragmentShader *Shader
}

// Desc converts the description to a GraphicsPipelineDesc.
func (p VertexPipelineDesc) Desc() GraphicsPipelineDesc {
	vs := p.VertexShader
	return GraphicsPipelineDesc{
		VertexShader:                 &vs,
		TessellationControlShader:    p.TessellationControlShader,
		TessellationEvaluationShader: p.TessellationEvaluationShader,
		GeometryShader:               p.GeometryShader,
		FragmentShader:               p.FragmentShader,
	}
}

// Desc converts the description to a GraphicsPipelineDesc.
func (p MeshPipelineDesc) Desc() GraphicsPipelineDesc {
	ms := p.MeshShader
	return GraphicsPipelineDesc{
		MeshShader:     &ms,
		TaskShader:     p.TaskShader,
		FragmentShader: p.FragmentShader,
	}
}

// shaders returns the present stages in attachment order.
func (p GraphicsPipelineDesc) shaders() []Shader {
	all := []*Shader{
		p.VertexShader,
		p.TessellationControlShader,
		p.TessellationEvaluationShader,
		p.GeometryShader,
		p.FragmentShader,
		p.MeshShader,
		p.TaskShader,
	}
	var shaders []Shader
	for _, s := range all {
		if s != nil {
			shaders = append(shaders, *s)
		}
	}
	return shaders
}

func (p GraphicsPipelineDesc) validate() error {
	mesh := p.MeshShader != nil || p.TaskShader != nil
	vertex := p.VertexShader != nil || p.TessellationControlShader != nil ||
		p.TessellationEvaluationShader != nil || p.GeometryShader != nil
	if mesh && vertex {
		return fmt.Errorf("%w: mesh and task stages exclude vertex, tessellation and geometry stages", ErrInvalidPipeline)
	}
	if !mesh && !vertex {
		return fmt.Errorf("%w: no vertex or mesh stage", ErrInvalidPipeline)
	}
	slots := []struct {
		shader *Shader
		stage  ShaderStage
	}{
		{p.VertexShader, StageVertex},
		{p.TessellationControlShader, StageTessellationControl},
		{p.TessellationEvaluationShader, StageTessellationEvaluation},
		{p.GeometryShader, StageGeometry},
		{p.FragmentShader, StageFragment},
		{p.MeshShader, StageMeshNV},
		{p.TaskShader, StageTaskNV},
	}
	for _, slot := range slots {
		if slot.shader != nil && slot.shader.stage != slot.stage {
			return fmt.Errorf("%w: %v shader in %v slot", ErrInvalidPipeline, slot.shader.stage, slot.stage)
		}
	}
	return nil
}

// CreateShader compiles source for stage. A compilation failure
// returns the shader along with a *CompileError.
func (d *Device) CreateShader(stage ShaderStage, source []byte) (Shader, error) {
	sh := d.ctx.CreateShader(stage.glEnum())
	if err := d.getError(); err != nil {
		return Shader{}, fmt.Errorf("grr: create %v shader: %w", stage, err)
	}
	d.ctx.ShaderSource(sh, string(source))
	d.ctx.CompileShader(sh)
	shader := Shader{id: sh, stage: stage}
	var log string
	if d.ctx.GetShaderi(sh, gl.INFO_LOG_LENGTH) > 0 {
		log = strings.TrimSpace(d.ctx.GetShaderInfoLog(sh))
	}
	if d.ctx.GetShaderi(sh, gl.COMPILE_STATUS) != gl.TRUE {
		d.log.Warn("grr: shader compilation failed", "stage", stage, "handle", sh.V, "log", log)
		return shader, &CompileError{Shader: shader, Stage: stage, Log: log}
	}
	if log != "" {
		d.log.Debug("grr: shader info log", "stage", stage, "handle", sh.V, "log", log)
	}
	return shader, nil
}

// DeleteShader deletes s. Linked pipelines are not affected.
func (d *Device) DeleteShader(s Shader) {
	d.ctx.DeleteShader(s.id)
}

// DeleteShaders deletes each of shaders.
func (d *Device) DeleteShaders(shaders []Shader) {
	for _, s := range shaders {
		d.ctx.DeleteShader(s.id)
	}
}

// CreateGraphicsPipeline links the stages of desc. A link failure
// returns the pipeline along with a *LinkError.
func (d *Device) CreateGraphicsPipeline(desc GraphicsPipelineDesc) (Pipeline, error) {
	if err := desc.validate(); err != nil {
		return Pipeline{}, err
	}
	return d.link(desc.shaders())
}

// CreateComputePipeline links a compute pipeline.
func (d *Device) CreateComputePipeline(shader Shader) (Pipeline, error) {
	return d.link([]Shader{shader})
}

func (d *Device) link(shaders []Shader) (Pipeline, error) {
	prog := d.ctx.CreateProgram()
	if err := d.getError(); err != nil {
		return Pipeline{}, fmt.Errorf("grr: create pipeline: %w", err)
	}
	for _, s := range shaders {
		d.ctx.AttachShader(prog, s.id)
	}
	d.ctx.LinkProgram(prog)
	for _, s := range shaders {
		d.ctx.DetachShader(prog, s.id)
	}
	pipeline := Pipeline{id: prog}
	var log string
	if d.ctx.GetProgrami(prog, gl.INFO_LOG_LENGTH) > 0 {
		log = strings.TrimSpace(d.ctx.GetProgramInfoLog(prog))
	}
	if d.ctx.GetProgrami(prog, gl.LINK_STATUS) != gl.TRUE {
		d.log.Warn("grr: pipeline link failed", "handle", prog.V, "log", log)
		return pipeline, &LinkError{Pipeline: pipeline, Log: log}
	}
	if log != "" {
		d.log.Debug("grr: pipeline info log", "handle", prog.V, "log", log)
	}
	return pipeline, nil
}

// DeletePipeline deletes p.
func (d *Device) DeletePipeline(p Pipeline) {
	d.ctx.DeleteProgram(p.id)
}

// DeletePipelines deletes each of pipelines.
func (d *Device) DeletePipelines(pipelines []Pipeline) {
	for _, p := range pipelines {
		d.ctx.DeleteProgram(p.id)
	}
}

// BindPipeline makes p the current program.
func (d *Device) BindPipeline(p Pipeline) {
	d.ctx.UseProgram(p.id)
}

func (s ShaderStage) glEnum() gl.Enum {
	switch s {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageTessellationControl:
		return gl.TESS_CONTROL_SHADER
	case StageTessellationEvaluation:
		return gl.TESS_EVALUATION_SHADER
	case StageGeometry:
		return gl.GEOMETRY_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	case StageCompute:
		return gl.COMPUTE_SHADER
	case StageMeshNV:
		return gl.MESH_SHADER_NV
	case StageTaskNV:
		return gl.TASK_SHADER_NV
	default:
		panic("grr: unsupported shader stage")
	}
}

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageTessellationControl:
		return "tessellation control"
	case StageTessellationEvaluation:
		return "tessellation evaluation"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	case StageMeshNV:
		return "mesh"
	case StageTaskNV:
		return "task"
	default:
		return fmt.Sprintf("ShaderStage(%d)", uint8(s))
	}
}
