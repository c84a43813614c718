// internal/infra/imaging/imaging_test.go
package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 30, 30, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func createTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{30, 30, 200, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizeWideImageScalesToMaxWidth(t *testing.T) {
	data := createTestJPEG(t, 2400, 1200)

	res, err := Optimize(data)
	require.NoError(t, err)
	assert.Equal(t, MaxWidth, res.Width)
	assert.Equal(t, 600, res.Height) // aspect preserved

	img, _, err := image.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, MaxWidth, img.Bounds().Dx())
}

func TestOptimizeNarrowImageKeepsSizeButReencodes(t *testing.T) {
	data := createTestPNG(t, 640, 480)

	res, err := Optimize(data)
	require.NoError(t, err)
	assert.Equal(t, 640, res.Width)
	assert.Equal(t, 480, res.Height)

	// output is the compressed re-encode target, even without resizing
	_, format, err := image.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestOptimizeExactlyMaxWidthNotResized(t *testing.T) {
	data := createTestJPEG(t, MaxWidth, 300)

	res, err := Optimize(data)
	require.NoError(t, err)
	assert.Equal(t, MaxWidth, res.Width)
	assert.Equal(t, 300, res.Height)
}

func TestOptimizeRejectsNonImageData(t *testing.T) {
	_, err := Optimize([]byte("not an image at all"))
	assert.Error(t, err)
}
