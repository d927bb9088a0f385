package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// maxDimension bounds the longer image edge before upload.
	maxDimension = 1920
	// maxEncodedBytes bounds the stored image size (1 MB).
	maxEncodedBytes = 1 << 20
)

// ErrImageTooLarge means the image would not fit under the size cap even
// after downscaling and quality reduction.
var ErrImageTooLarge = errors.New("Image could not be compressed under 1MB")

// Compress decodes a JPEG/PNG/GIF, downscales it so the longer edge is at
// most 1920px and re-encodes as JPEG, stepping quality down until the result
// fits under 1MB. A broken image is an error; the submission must not
// silently continue without the photo the user attached.
func Compress(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	img = downscale(img, maxDimension)

	for _, quality := range []int{85, 70, 55, 40} {
		out, err := encodeJPEG(img, quality)
		if err != nil {
			return nil, err
		}
		if len(out) <= maxEncodedBytes {
			return out, nil
		}
	}

	// Still too big at minimum quality: halve dimensions a few times.
	for i := 0; i < 3; i++ {
		b := img.Bounds()
		img = downscale(img, maxEdge(b)/2)
		out, err := encodeJPEG(img, 40)
		if err != nil {
			return nil, err
		}
		if len(out) <= maxEncodedBytes {
			return out, nil
		}
	}
	return nil, ErrImageTooLarge
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func downscale(img image.Image, max int) image.Image {
	b := img.Bounds()
	edge := maxEdge(b)
	if edge <= max || max <= 0 {
		return img
	}
	scale := float64(max) / float64(edge)
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func maxEdge(b image.Rectangle) int {
	if b.Dx() > b.Dy() {
		return b.Dx()
	}
	return b.Dy()
}
