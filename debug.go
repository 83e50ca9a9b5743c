// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"context"
	"fmt"
	"log/slog"

	"gioui.org/grr/internal/gl"
)

// DebugReport is a set of debug message severities.
type DebugReport uint8

const (
	DebugNotification DebugReport = 1 << iota
	DebugWarning
	DebugError
	DebugPerformanceWarning

	DebugAll = DebugNotification | DebugWarning | DebugError | DebugPerformanceWarning
)

// DebugSource is the origin of a debug message.
type DebugSource uint8

const (
	SourceAPI DebugSource = iota
	SourceShaderCompiler
	SourceWSI
	SourceThirdParty
	SourceApplication
	SourceOther
)

// DebugType classifies a debug message.
type DebugType uint8

const (
	TypeError DebugType = iota
	TypeDeprecated
	TypeUndefinedBehavior
	TypePerformance
	TypePortability
	TypeMarker
	TypePushGroup
	TypePopGroup
	TypeOther
)

// DebugCallback receives debug messages. It runs on the thread that
// issued the offending call.
type DebugCallback func(report DebugReport, source DebugSource, typ DebugType, id uint32, msg string)

// DebugFilter selects messages for EnableDebugMessages and
// DisableDebugMessages. Nil Source or Type match any value.
type DebugFilter struct {
	Source *DebugSource
	Type   *DebugType
	// IDs restricts the filter to specific message ids. It requires
	// both Source and Type to be set.
	IDs []uint32
	// Report is the set of severities affected.
	Report DebugReport
}

// Object is a named context object.
type Object interface {
	object() (gl.Enum, uint32)
}

func (b Buffer) object() (gl.Enum, uint32)       { return gl.BUFFER, b.id.V }
func (s Shader) object() (gl.Enum, uint32)       { return gl.SHADER, s.id.V }
func (i Image) object() (gl.Enum, uint32)        { return gl.TEXTURE, i.id.V }
func (v ImageView) object() (gl.Enum, uint32)    { return gl.TEXTURE, v.id.V }
func (v VertexArray) object() (gl.Enum, uint32)  { return gl.VERTEX_ARRAY, v.id.V }
func (p Pipeline) object() (gl.Enum, uint32)     { return gl.PROGRAM, p.id.V }
func (f Framebuffer) object() (gl.Enum, uint32)  { return gl.FRAMEBUFFER, f.id.V }
func (r Renderbuffer) object() (gl.Enum, uint32) { return gl.RENDERBUFFER, r.id.V }
func (s Sampler) object() (gl.Enum, uint32)      { return gl.SAMPLER, s.id.V }
func (q Query) object() (gl.Enum, uint32)        { return gl.QUERY, q.id.V }

func (d *Device) enableDebugOutput(dbg Debug) {
	cb := dbg.Callback
	if cb == nil {
		cb = d.logDebugMessage
	}
	d.ctx.Enable(gl.DEBUG_OUTPUT)
	d.ctx.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	d.ctx.DebugMessageCallback(func(source, typ gl.Enum, id uint32, severity gl.Enum, msg string) {
		cb(debugReportFromGL(severity), debugSourceFromGL(source), debugTypeFromGL(typ), id, msg)
	})
	d.DisableDebugMessages(DebugFilter{Report: DebugAll})
	d.EnableDebugMessages(DebugFilter{Report: dbg.Report})
}

func (d *Device) logDebugMessage(report DebugReport, source DebugSource, typ DebugType, id uint32, msg string) {
	level := slog.LevelDebug
	switch report {
	case DebugError:
		level = slog.LevelError
	case DebugWarning, DebugPerformanceWarning:
		level = slog.LevelWarn
	}
	d.log.Log(context.Background(), level, "grr: "+msg, "source", source, "type", typ, "id", id)
}

// EnableDebugMessages enables the messages matched by filter.
func (d *Device) EnableDebugMessages(filter DebugFilter) {
	d.debugMessageControl(filter, true)
}

// DisableDebugMessages disables the messages matched by filter.
func (d *Device) DisableDebugMessages(filter DebugFilter) {
	d.debugMessageControl(filter, false)
}

func (d *Device) debugMessageControl(filter DebugFilter, enable bool) {
	src := gl.Enum(gl.DONT_CARE)
	if filter.Source != nil {
		src = filter.Source.glEnum()
	}
	typ := gl.Enum(gl.DONT_CARE)
	if filter.Type != nil {
		typ = filter.Type.glEnum()
	}
	for _, r := range []DebugReport{DebugNotification, DebugWarning, DebugError, DebugPerformanceWarning} {
		if filter.Report&r != 0 {
			d.ctx.DebugMessageControl(src, typ, r.glEnum(), filter.IDs, enable)
		}
	}
}

// SetObjectName labels obj for debug messages and tools.
func (d *Device) SetObjectName(obj Object, name string) {
	identifier, id := obj.object()
	d.ctx.ObjectLabel(identifier, id, name)
}

// BeginDebugMarker opens a named debug group. Groups nest.
func (d *Device) BeginDebugMarker(source DebugSource, id uint32, msg string) {
	d.ctx.PushDebugGroup(source.glEnum(), id, msg)
}

// EndDebugMarker closes the innermost debug group.
func (d *Device) EndDebugMarker() {
	d.ctx.PopDebugGroup()
}

// InsertDebugMessage injects an application message into the debug
// output.
func (d *Device) InsertDebugMessage(source DebugSource, typ DebugType, id uint32, report DebugReport, msg string) {
	d.ctx.DebugMessageInsert(source.glEnum(), typ.glEnum(), id, report.glEnum(), msg)
}

func (r DebugReport) glEnum() gl.Enum {
	switch r {
	case DebugNotification:
		return gl.DEBUG_SEVERITY_NOTIFICATION
	case DebugWarning:
		return gl.DEBUG_SEVERITY_MEDIUM
	case DebugError:
		return gl.DEBUG_SEVERITY_HIGH
	case DebugPerformanceWarning:
		return gl.DEBUG_SEVERITY_LOW
	default:
		panic(fmt.Sprintf("grr: debug report %v is not a single severity", r))
	}
}

func debugReportFromGL(e gl.Enum) DebugReport {
	switch e {
	case gl.DEBUG_SEVERITY_HIGH:
		return DebugError
	case gl.DEBUG_SEVERITY_MEDIUM:
		return DebugWarning
	case gl.DEBUG_SEVERITY_LOW:
		return DebugPerformanceWarning
	default:
		return DebugNotification
	}
}

var debugReportNames = []flagName[DebugReport]{
	{DebugNotification, "notification"},
	{DebugWarning, "warning"},
	{DebugError, "error"},
	{DebugPerformanceWarning, "performance"},
}

func (r DebugReport) String() string {
	return flagString(r, debugReportNames)
}

func (s DebugSource) glEnum() gl.Enum {
	switch s {
	case SourceAPI:
		return gl.DEBUG_SOURCE_API
	case SourceShaderCompiler:
		return gl.DEBUG_SOURCE_SHADER_COMPILER
	case SourceWSI:
		return gl.DEBUG_SOURCE_WINDOW_SYSTEM
	case SourceThirdParty:
		return gl.DEBUG_SOURCE_THIRD_PARTY
	case SourceApplication:
		return gl.DEBUG_SOURCE_APPLICATION
	default:
		return gl.DEBUG_SOURCE_OTHER
	}
}

func debugSourceFromGL(e gl.Enum) DebugSource {
	switch e {
	case gl.DEBUG_SOURCE_API:
		return SourceAPI
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return SourceShaderCompiler
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return SourceWSI
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return SourceThirdParty
	case gl.DEBUG_SOURCE_APPLICATION:
		return SourceApplication
	default:
		return SourceOther
	}
}

func (s DebugSource) String() string {
	switch s {
	case SourceAPI:
		return "api"
	case SourceShaderCompiler:
		return "shader compiler"
	case SourceWSI:
		return "window system"
	case SourceThirdParty:
		return "third party"
	case SourceApplication:
		return "application"
	default:
		return "other"
	}
}

func (t DebugType) glEnum() gl.Enum {
	switch t {
	case TypeError:
		return gl.DEBUG_TYPE_ERROR
	case TypeDeprecated:
		return gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR
	case TypeUndefinedBehavior:
		return gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR
	case TypePerformance:
		return gl.DEBUG_TYPE_PERFORMANCE
	case TypePortability:
		return gl.DEBUG_TYPE_PORTABILITY
	case TypeMarker:
		return gl.DEBUG_TYPE_MARKER
	case TypePushGroup:
		return gl.DEBUG_TYPE_PUSH_GROUP
	case TypePopGroup:
		return gl.DEBUG_TYPE_POP_GROUP
	default:
		return gl.DEBUG_TYPE_OTHER
	}
}

func debugTypeFromGL(e gl.Enum) DebugType {
	switch e {
	case gl.DEBUG_TYPE_ERROR:
		return TypeError
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return TypeDeprecated
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return TypeUndefinedBehavior
	case gl.DEBUG_TYPE_PERFORMANCE:
		return TypePerformance
	case gl.DEBUG_TYPE_PORTABILITY:
		return TypePortability
	case gl.DEBUG_TYPE_MARKER:
		return TypeMarker
	case gl.DEBUG_TYPE_PUSH_GROUP:
		return TypePushGroup
	case gl.DEBUG_TYPE_POP_GROUP:
		return TypePopGroup
	default:
		return TypeOther
	}
}

func (t DebugType) String() string {
	switch t {
	case TypeError:
		return "error"
	case TypeDeprecated:
		return "deprecated"
	case TypeUndefinedBehavior:
		return "undefined behavior"
	case TypePerformance:
		return "performance"
	case TypePortability:
		return "portability"
	case TypeMarker:
		return "marker"
	case TypePushGroup:
		return "push group"
	case TypePopGroup:
		return "pop group"
	default:
		return "other"
	}
}
