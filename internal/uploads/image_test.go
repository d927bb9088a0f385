package uploads

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

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), uint8((x + y) % 256), 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestCompress_SmallImagePassesThrough(t *testing.T) {
	out, err := Compress(makePNG(t, 640, 480))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), maxEncodedBytes)

	img := decodeJPEG(t, out)
	assert.Equal(t, 640, img.Bounds().Dx(), "small images keep their dimensions")
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestCompress_DownscalesLongEdge(t *testing.T) {
	out, err := Compress(makePNG(t, 4000, 2000))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), maxEncodedBytes)

	img := decodeJPEG(t, out)
	assert.Equal(t, maxDimension, img.Bounds().Dx())
	assert.Equal(t, maxDimension/2, img.Bounds().Dy(), "aspect ratio preserved")
}

func TestCompress_RejectsBrokenInput(t *testing.T) {
	_, err := Compress([]byte("not an image"))
	assert.Error(t, err)
}
