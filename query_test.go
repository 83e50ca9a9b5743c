// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/gl/gltest"
)

func TestQueryTypes(t *testing.T) {
	for typ := QueryTimestamp; int(typ) < len(queryTypes); typ++ {
		assert.NotZero(t, typ.glEnum(), typ.String())
		assert.NotEmpty(t, typ.String())
	}
	assert.Equal(t, gl.Enum(gl.ANY_SAMPLES_PASSED), QueryOcclusion.glEnum())
	assert.Equal(t, gl.Enum(gl.SAMPLES_PASSED), QueryOcclusionPrecision.glEnum())
	assert.Equal(t, "QueryType(200)", QueryType(200).String())
	assert.Panics(t, func() { QueryType(200).glEnum() })
}

func TestQueryLifecycle(t *testing.T) {
	d, ctx := newTestDevice(t)
	q, err := d.CreateQuery(QueryOcclusionPrecision)
	require.NoError(t, err)
	assert.Equal(t, QueryOcclusionPrecision, q.Type())

	d.BeginQuery(q)
	d.EndQuery(q)
	ctx.QueryResult = 1234
	assert.Equal(t, uint64(1234), d.QueryResult(q, true))
	assert.Equal(t, uint64(1234), d.QueryResult(q, false))
	assert.True(t, d.QueryAvailable(q))
	ctx.QueryResult = 0
	assert.False(t, d.QueryAvailable(q))
	d.DeleteQuery(q)

	samples := gl.Enum(gl.SAMPLES_PASSED)
	assert.Equal(t, []gltest.Call{
		{Name: "CreateQuery", Args: []any{samples, q.id}},
		{Name: "BeginQueryIndexed", Args: []any{samples, uint32(0), q.id}},
		{Name: "EndQueryIndexed", Args: []any{samples, uint32(0)}},
		{Name: "GetQueryObjectui64", Args: []any{q.id, gl.Enum(gl.QUERY_RESULT)}},
		{Name: "GetQueryObjectui64", Args: []any{q.id, gl.Enum(gl.QUERY_RESULT_NO_WAIT)}},
		{Name: "GetQueryObjectui64", Args: []any{q.id, gl.Enum(gl.QUERY_RESULT_AVAILABLE)}},
		{Name: "GetQueryObjectui64", Args: []any{q.id, gl.Enum(gl.QUERY_RESULT_AVAILABLE)}},
		{Name: "DeleteQueries", Args: []any{[]gl.Query{q.id}}},
	}, ctx.Calls)
}

func TestTimestampAndBufferResult(t *testing.T) {
	d, ctx := newTestDevice(t)
	q, err := d.CreateQuery(QueryTimestamp)
	require.NoError(t, err)
	ctx.Reset()
	buf := Buffer{id: gl.Buffer{V: 30}}
	d.WriteTimestamp(q)
	d.CopyQueryResultToBuffer(q, buf, 8)
	assert.Equal(t, []gltest.Call{
		{Name: "QueryCounter", Args: []any{q.id, gl.Enum(gl.TIMESTAMP)}},
		{Name: "GetQueryBufferObjectui64v", Args: []any{q.id, buf.id, gl.Enum(gl.QUERY_RESULT), 8}},
	}, ctx.Calls)
}

func TestConditionalRendering(t *testing.T) {
	d, ctx := newTestDevice(t)
	q := Query{id: gl.Query{V: 4}, typ: QueryOcclusion}
	d.BeginConditionalRendering(q, ConditionalWaitByRegionInverted)
	d.EndConditionalRendering()
	assert.Equal(t, []gltest.Call{
		{Name: "BeginConditionalRender", Args: []any{q.id, gl.Enum(gl.QUERY_BY_REGION_WAIT_INVERTED)}},
		{Name: "EndConditionalRender"},
	}, ctx.Calls)
}

func TestCreateQueryError(t *testing.T) {
	d, ctx := newTestDevice(t)
	ctx.Errors = []gl.Enum{gl.INVALID_ENUM}
	_, err := d.CreateQuery(QueryComputeShaderInvocations)
	assert.ErrorIs(t, err, ErrInvalidEnum)
}
