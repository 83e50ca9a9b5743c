// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"errors"
	"fmt"

	"gioui.org/grr/internal/gl"
)

// Error is an error flag reported by the context.
type Error uint8

const (
	ErrInvalidEnum Error = iota + 1
	ErrInvalidValue
	ErrInvalidOperation
	ErrInvalidFramebufferOperation
	ErrOutOfMemory
	ErrStackUnderflow
	ErrStackOverflow
	ErrUnknown
)

var (
	// ErrUnsupportedImageType is returned for image shapes that have
	// no texture target, such as multisampled 1D or 3D images.
	ErrUnsupportedImageType = errors.New("grr: unsupported image type")
	// ErrUnsupportedTransfer is returned for transfers between an image
	// target and layer range that cannot be expressed.
	ErrUnsupportedTransfer = errors.New("grr: unsupported transfer")
	// ErrInvalidPipeline is returned for pipelines mixing mesh or task
	// stages with vertex, tessellation or geometry stages.
	ErrInvalidPipeline = errors.New("grr: invalid pipeline stages")
	// ErrNoDriver is returned by New when no native driver is linked
	// into the program. Import gioui.org/grr/gldriver to link one.
	ErrNoDriver = errors.New("grr: no OpenGL driver available")
	// ErrVersion is returned when the context is older than OpenGL 4.5.
	ErrVersion = errors.New("grr: OpenGL 4.5 or newer required")
)

// CompileError is returned by CreateShader for a shader that failed
// to compile. The shader handle remains valid.
type CompileError struct {
	Shader Shader
	Stage  ShaderStage
	Log    string
}

// LinkError is returned by pipeline creation for a program that
// failed to link. The pipeline handle remains valid.
type LinkError struct {
	Pipeline Pipeline
	Log      string
}

func (e Error) Error() string {
	switch e {
	case ErrInvalidEnum:
		return "grr: invalid enum"
	case ErrInvalidValue:
		return "grr: invalid value"
	case ErrInvalidOperation:
		return "grr: invalid operation"
	case ErrInvalidFramebufferOperation:
		return "grr: invalid framebuffer operation"
	case ErrOutOfMemory:
		return "grr: out of memory"
	case ErrStackUnderflow:
		return "grr: stack underflow"
	case ErrStackOverflow:
		return "grr: stack overflow"
	default:
		return "grr: unknown error"
	}
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("grr: %v shader compilation failed", e.Stage)
	}
	return fmt.Sprintf("grr: %v shader compilation failed: %s", e.Stage, e.Log)
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "grr: pipeline link failed"
	}
	return fmt.Sprintf("grr: pipeline link failed: %s", e.Log)
}

// errorFromGL converts an error flag. It returns nil for NO_ERROR.
func errorFromGL(code gl.Enum) error {
	switch code {
	case gl.NO_ERROR:
		return nil
	case gl.INVALID_ENUM:
		return ErrInvalidEnum
	case gl.INVALID_VALUE:
		return ErrInvalidValue
	case gl.INVALID_OPERATION:
		return ErrInvalidOperation
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return ErrInvalidFramebufferOperation
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	case gl.STACK_UNDERFLOW:
		return ErrStackUnderflow
	case gl.STACK_OVERFLOW:
		return ErrStackOverflow
	default:
		return ErrUnknown
	}
}
