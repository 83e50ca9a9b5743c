// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/grr/internal/gl"
	"gioui.org/grr/internal/gl/gltest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDevice returns a device over a recorder with the creation
// calls cleared.
func newTestDevice(t *testing.T) (*Device, *gltest.Recorder) {
	t.Helper()
	ctx := gltest.New()
	d, err := newDevice(ctx, Options{Logger: discardLogger()})
	require.NoError(t, err)
	ctx.Reset()
	return d, ctx
}

func TestNewWithoutDriver(t *testing.T) {
	saved := gl.NewContext
	gl.NewContext = nil
	defer func() { gl.NewContext = saved }()
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNoDriver)
}

func TestNewUsesDriver(t *testing.T) {
	saved := gl.NewContext
	defer func() { gl.NewContext = saved }()
	ctx := gltest.New()
	gl.NewContext = func(load func(string) unsafe.Pointer) (gl.Context, error) {
		return ctx, nil
	}
	d, err := New(nil, Options{Logger: discardLogger()})
	require.NoError(t, err)
	assert.Equal(t, [2]int{4, 6}, d.Info().Version)
}

func TestDeviceInit(t *testing.T) {
	ctx := gltest.New()
	d, err := newDevice(ctx, Options{Logger: discardLogger()})
	require.NoError(t, err)

	assert.Equal(t, Info{
		Version:  [2]int{4, 6},
		Vendor:   "gioui.org",
		Renderer: "gltest",
		GLSL:     "4.60",
	}, d.Info())
	assert.False(t, ctx.Has("DebugMessageCallback"))

	var state []gltest.Call
	for _, c := range ctx.Calls {
		if c.Name != "GetString" {
			state = append(state, c)
		}
	}
	assert.Equal(t, []gltest.Call{
		{Name: "Enable", Args: []any{gl.Enum(gl.FRAMEBUFFER_SRGB)}},
		{Name: "ClipControl", Args: []any{gl.Enum(gl.LOWER_LEFT), gl.Enum(gl.ZERO_TO_ONE)}},
		{Name: "Enable", Args: []any{gl.Enum(gl.SCISSOR_TEST)}},
	}, state)
}

func TestDeviceVersion(t *testing.T) {
	for _, ver := range []string{"3.3.0 Mesa", "4.4.0", "2.1"} {
		ctx := gltest.New()
		ctx.Strings[gl.VERSION] = ver
		_, err := newDevice(ctx, Options{Logger: discardLogger()})
		assert.ErrorIs(t, err, ErrVersion, ver)
	}

	ctx := gltest.New()
	ctx.Strings[gl.VERSION] = "OpenGL ES 3.2"
	_, err := newDevice(ctx, Options{Logger: discardLogger()})
	assert.Error(t, err)

	ctx = gltest.New()
	ctx.Strings[gl.VERSION] = "4.5.0 NVIDIA 535.54"
	_, err = newDevice(ctx, Options{Logger: discardLogger()})
	assert.NoError(t, err)
}

func TestLimits(t *testing.T) {
	d, ctx := newTestDevice(t)
	ctx.Integers[gl.MAX_COLOR_ATTACHMENTS] = 4
	l := d.Limits()
	assert.Equal(t, 16384, l.MaxTextureSize)
	assert.Equal(t, 4, l.MaxColorAttachments)
	assert.Equal(t, 16, l.MaxViewports)
	assert.Equal(t, 84, l.MaxUniformBuffers)
}

func TestDeviceError(t *testing.T) {
	d, ctx := newTestDevice(t)
	ctx.Errors = []gl.Enum{gl.OUT_OF_MEMORY, gl.INVALID_ENUM}
	assert.Equal(t, ErrOutOfMemory, d.Error())
	assert.Equal(t, ErrInvalidEnum, d.Error())
	assert.NoError(t, d.Error())
}

func TestDebugInit(t *testing.T) {
	ctx := gltest.New()
	_, err := newDevice(ctx, Options{
		Logger: discardLogger(),
		Debug: &Debug{
			Callback: func(DebugReport, DebugSource, DebugType, uint32, string) {},
			Report:   DebugError | DebugWarning,
		},
	})
	require.NoError(t, err)

	var ids []uint32
	control := func(sev gl.Enum, enable bool) gltest.Call {
		return gltest.Call{Name: "DebugMessageControl", Args: []any{
			gl.Enum(gl.DONT_CARE), gl.Enum(gl.DONT_CARE), sev, ids, enable,
		}}
	}
	i := ctx.Index("Enable")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, []gltest.Call{
		{Name: "Enable", Args: []any{gl.Enum(gl.DEBUG_OUTPUT)}},
		{Name: "Enable", Args: []any{gl.Enum(gl.DEBUG_OUTPUT_SYNCHRONOUS)}},
		{Name: "DebugMessageCallback", Args: []any{true}},
		control(gl.DEBUG_SEVERITY_NOTIFICATION, false),
		control(gl.DEBUG_SEVERITY_MEDIUM, false),
		control(gl.DEBUG_SEVERITY_HIGH, false),
		control(gl.DEBUG_SEVERITY_LOW, false),
		control(gl.DEBUG_SEVERITY_MEDIUM, true),
		control(gl.DEBUG_SEVERITY_HIGH, true),
		{Name: "Enable", Args: []any{gl.Enum(gl.FRAMEBUFFER_SRGB)}},
	}, ctx.Calls[i:i+10])
}

func TestDebugCallback(t *testing.T) {
	type message struct {
		report DebugReport
		source DebugSource
		typ    DebugType
		id     uint32
		msg    string
	}
	var got []message
	ctx := gltest.New()
	d, err := newDevice(ctx, Options{
		Logger: discardLogger(),
		Debug: &Debug{
			Callback: func(r DebugReport, s DebugSource, typ DebugType, id uint32, msg string) {
				got = append(got, message{r, s, typ, id, msg})
			},
			Report: DebugAll,
		},
	})
	require.NoError(t, err)
	d.InsertDebugMessage(SourceApplication, TypeMarker, 7, DebugPerformanceWarning, "frame")
	ctx.DebugProc(gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_ERROR, 1280, gl.DEBUG_SEVERITY_HIGH, "invalid enum")
	assert.Equal(t, []message{
		{DebugPerformanceWarning, SourceApplication, TypeMarker, 7, "frame"},
		{DebugError, SourceAPI, TypeError, 1280, "invalid enum"},
	}, got)
}

func TestDebugLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := gltest.New()
	_, err := newDevice(ctx, Options{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		Debug:  &Debug{Report: DebugAll},
	})
	require.NoError(t, err)
	ctx.DebugProc(gl.DEBUG_SOURCE_SHADER_COMPILER, gl.DEBUG_TYPE_PORTABILITY, 3, gl.DEBUG_SEVERITY_MEDIUM, "implicit cast")
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "grr: implicit cast")
	assert.Contains(t, out, `source="shader compiler"`)
}

func TestDebugFilter(t *testing.T) {
	d, ctx := newTestDevice(t)
	src, typ := SourceThirdParty, TypePerformance
	d.DisableDebugMessages(DebugFilter{Source: &src, Type: &typ, IDs: []uint32{4, 5}, Report: DebugNotification})
	assert.Equal(t, []gltest.Call{{Name: "DebugMessageControl", Args: []any{
		gl.Enum(gl.DEBUG_SOURCE_THIRD_PARTY), gl.Enum(gl.DEBUG_TYPE_PERFORMANCE),
		gl.Enum(gl.DEBUG_SEVERITY_NOTIFICATION), []uint32{4, 5}, false,
	}}}, ctx.Calls)

	ctx.Reset()
	d.EnableDebugMessages(DebugFilter{})
	assert.Empty(t, ctx.Calls)
}

func TestObjectNames(t *testing.T) {
	d, ctx := newTestDevice(t)
	buf, err := d.CreateBuffer(16, MemoryDeviceLocal)
	require.NoError(t, err)
	img, err := d.CreateImage(Image2D(4, 4, 1, 1), R8G8B8A8Unorm, 1)
	require.NoError(t, err)
	q, err := d.CreateQuery(QueryTimeElapsed)
	require.NoError(t, err)
	ctx.Reset()

	d.SetObjectName(buf, "vertices")
	d.SetObjectName(img, "albedo")
	d.SetObjectName(q, "frame time")
	assert.Equal(t, []gltest.Call{
		{Name: "ObjectLabel", Args: []any{gl.Enum(gl.BUFFER), buf.id.V, "vertices"}},
		{Name: "ObjectLabel", Args: []any{gl.Enum(gl.TEXTURE), img.id.V, "albedo"}},
		{Name: "ObjectLabel", Args: []any{gl.Enum(gl.QUERY), q.id.V, "frame time"}},
	}, ctx.Calls)
}

func TestDebugMarkers(t *testing.T) {
	d, ctx := newTestDevice(t)
	d.BeginDebugMarker(SourceApplication, 1, "shadows")
	d.EndDebugMarker()
	assert.Equal(t, []gltest.Call{
		{Name: "PushDebugGroup", Args: []any{gl.Enum(gl.DEBUG_SOURCE_APPLICATION), uint32(1), "shadows"}},
		{Name: "PopDebugGroup", Args: nil},
	}, ctx.Calls)
}
