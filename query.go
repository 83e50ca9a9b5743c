// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"

	"gioui.org/grr/internal/gl"
)

// QueryType is the statistic a Query collects.
type QueryType uint8

const (
	QueryTimestamp QueryType = iota
	QueryTimeElapsed
	// QueryOcclusion reports whether any sample passed.
	QueryOcclusion
	QueryOcclusionConservative
	// QueryOcclusionPrecision counts the samples passed.
	QueryOcclusionPrecision
	QueryInputAssemblyVertices
	QueryInputAssemblyPrimitives
	QueryVertexShaderInvocations
	QueryGeometryShaderInvocations
	QueryGeometryShaderPrimitives
	QueryTransformFeedbackPrimitivesWritten
	QueryTransformFeedbackOverflow
	QueryTransformFeedbackStreamOverflow
	QueryClippingInvocations
	QueryClippingPrimitives
	QueryFragmentShaderInvocations
	QueryTessellationControlShaderPatches
	QueryTessellationEvaluationShaderInvocations
	QueryComputeShaderInvocations
)

// ConditionalMode controls how conditional rendering waits for its
// query.
type ConditionalMode uint8

const (
	ConditionalNoWait ConditionalMode = iota
	ConditionalNoWaitInverted
	ConditionalWait
	ConditionalWaitInverted
	ConditionalWaitByRegion
	ConditionalWaitByRegionInverted
)

// Query is an asynchronous query object.
type Query struct {
	id  gl.Query
	typ QueryType
}

// Type returns the statistic q collects.
func (q Query) Type() QueryType { return q.typ }

// CreateQuery creates a query of type typ.
func (d *Device) CreateQuery(typ QueryType) (Query, error) {
	q := d.ctx.CreateQuery(typ.glEnum())
	if err := d.getError(); err != nil {
		return Query{}, fmt.Errorf("grr: create %v query: %w", typ, err)
	}
	return Query{id: q, typ: typ}, nil
}

// DeleteQuery deletes q.
func (d *Device) DeleteQuery(q Query) {
	d.DeleteQueries([]Query{q})
}

// DeleteQueries deletes queries in a single call.
func (d *Device) DeleteQueries(queries []Query) {
	ids := make([]gl.Query, len(queries))
	for i, q := range queries {
		ids[i] = q.id
	}
	d.ctx.DeleteQueries(ids)
}

// BeginQuery starts collecting results into q.
func (d *Device) BeginQuery(q Query) {
	d.ctx.BeginQueryIndexed(q.typ.glEnum(), 0, q.id)
}

// EndQuery stops the active query of the type of q.
func (d *Device) EndQuery(q Query) {
	d.ctx.EndQueryIndexed(q.typ.glEnum(), 0)
}

// WriteTimestamp records the GPU time into q once every earlier
// command has completed.
func (d *Device) WriteTimestamp(q Query) {
	d.ctx.QueryCounter(q.id, gl.TIMESTAMP)
}

// QueryResult returns the result of q. Without wait, an unavailable
// result reads as zero.
func (d *Device) QueryResult(q Query, wait bool) uint64 {
	pname := gl.Enum(gl.QUERY_RESULT_NO_WAIT)
	if wait {
		pname = gl.QUERY_RESULT
	}
	return d.ctx.GetQueryObjectui64(q.id, pname)
}

// QueryAvailable reports whether the result of q is available.
func (d *Device) QueryAvailable(q Query) bool {
	return d.ctx.GetQueryObjectui64(q.id, gl.QUERY_RESULT_AVAILABLE) != gl.FALSE
}

// CopyQueryResultToBuffer writes the 64-bit result of q to buf at
// offset without a round trip to the host.
func (d *Device) CopyQueryResultToBuffer(q Query, buf Buffer, offset int) {
	d.ctx.GetQueryBufferObjectui64v(q.id, buf.id, gl.QUERY_RESULT, offset)
}

// BeginConditionalRendering discards subsequent rendering commands if
// the occlusion query q reports no samples passed.
func (d *Device) BeginConditionalRendering(q Query, mode ConditionalMode) {
	d.ctx.BeginConditionalRender(q.id, mode.glEnum())
}

// EndConditionalRendering ends the conditional rendering block.
func (d *Device) EndConditionalRendering() {
	d.ctx.EndConditionalRender()
}

var queryTypes = [...]struct {
	name string
	e    gl.Enum
}{
	QueryTimestamp:                               {"Timestamp", gl.TIMESTAMP},
	QueryTimeElapsed:                             {"TimeElapsed", gl.TIME_ELAPSED},
	QueryOcclusion:                               {"Occlusion", gl.ANY_SAMPLES_PASSED},
	QueryOcclusionConservative:                   {"OcclusionConservative", gl.ANY_SAMPLES_PASSED_CONSERVATIVE},
	QueryOcclusionPrecision:                      {"OcclusionPrecision", gl.SAMPLES_PASSED},
	QueryInputAssemblyVertices:                   {"InputAssemblyVertices", gl.VERTICES_SUBMITTED},
	QueryInputAssemblyPrimitives:                 {"InputAssemblyPrimitives", gl.PRIMITIVES_SUBMITTED},
	QueryVertexShaderInvocations:                 {"VertexShaderInvocations", gl.VERTEX_SHADER_INVOCATIONS},
	QueryGeometryShaderInvocations:               {"GeometryShaderInvocations", gl.GEOMETRY_SHADER_INVOCATIONS},
	QueryGeometryShaderPrimitives:                {"GeometryShaderPrimitives", gl.GEOMETRY_SHADER_PRIMITIVES_EMITTED},
	QueryTransformFeedbackPrimitivesWritten:      {"TransformFeedbackPrimitivesWritten", gl.TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN},
	QueryTransformFeedbackOverflow:               {"TransformFeedbackOverflow", gl.TRANSFORM_FEEDBACK_OVERFLOW},
	QueryTransformFeedbackStreamOverflow:         {"TransformFeedbackStreamOverflow", gl.TRANSFORM_FEEDBACK_STREAM_OVERFLOW},
	QueryClippingInvocations:                     {"ClippingInvocations", gl.CLIPPING_INPUT_PRIMITIVES},
	QueryClippingPrimitives:                      {"ClippingPrimitives", gl.CLIPPING_OUTPUT_PRIMITIVES},
	QueryFragmentShaderInvocations:               {"FragmentShaderInvocations", gl.FRAGMENT_SHADER_INVOCATIONS},
	QueryTessellationControlShaderPatches:        {"TessellationControlShaderPatches", gl.TESS_CONTROL_SHADER_PATCHES},
	QueryTessellationEvaluationShaderInvocations: {"TessellationEvaluationShaderInvocations", gl.TESS_EVALUATION_SHADER_INVOCATIONS},
	QueryComputeShaderInvocations:                {"ComputeShaderInvocations", gl.COMPUTE_SHADER_INVOCATIONS},
}

func (t QueryType) glEnum() gl.Enum {
	if int(t) >= len(queryTypes) {
		panic("grr: unsupported query type")
	}
	return queryTypes[t].e
}

func (t QueryType) String() string {
	if int(t) >= len(queryTypes) {
		return fmt.Sprintf("QueryType(%d)", uint8(t))
	}
	return queryTypes[t].name
}

func (m ConditionalMode) glEnum() gl.Enum {
	switch m {
	case ConditionalNoWait:
		return gl.QUERY_NO_WAIT
	case ConditionalNoWaitInverted:
		return gl.QUERY_NO_WAIT_INVERTED
	case ConditionalWait:
		return gl.QUERY_WAIT
	case ConditionalWaitInverted:
		return gl.QUERY_WAIT_INVERTED
	case ConditionalWaitByRegion:
		return gl.QUERY_BY_REGION_WAIT
	case ConditionalWaitByRegionInverted:
		return gl.QUERY_BY_REGION_WAIT_INVERTED
	default:
		panic("grr: unsupported conditional mode")
	}
}
