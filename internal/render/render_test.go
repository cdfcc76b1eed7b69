package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/jengzang/handover-backend-go/internal/config"
	"github.com/jengzang/handover-backend-go/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(t *testing.T, progress float64) Frame {
	t.Helper()
	scene, err := config.DefaultScene()
	require.NoError(t, err)
	svc, err := service.NewHandoverService(scene, nil)
	require.NoError(t, err)
	return Frame{Scene: svc.Scene(), Path: svc.Path(), Position: svc.Position(progress)}
}

func TestWritePlot(t *testing.T) {
	t.Parallel()
	f := testFrame(t, 42)

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WritePlot(&buf, f, 400, 200, "png"))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	})

	t.Run("svg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WritePlot(&buf, f, 400, 200, "svg"))
		assert.Contains(t, buf.String(), "<svg")
	})

	t.Run("unknown format", func(t *testing.T) {
		assert.Error(t, WritePlot(&bytes.Buffer{}, f, 400, 200, "gif"))
	})
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, testFrame(t, 0)))
	page := buf.String()
	assert.Contains(t, page, "Handover corridor")
	assert.Contains(t, page, "echarts")
	assert.Contains(t, page, "Site A")
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"blue", color.RGBA{B: 0xff, A: 0xff}},
		{" Green ", color.RGBA{G: 0x80, A: 0xff}},
		{"#ff8000", color.RGBA{R: 0xff, G: 0x80, A: 0xff}},
		{"#0f0", color.RGBA{G: 0xff, A: 0xff}},
		{"#12", color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}},
		{"nonsense", color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseColor(tt.in), tt.in)
	}
}
