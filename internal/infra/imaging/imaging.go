// internal/infra/imaging/imaging.go
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxWidth is the maximum stored width for optimized images. Wider inputs
// are scaled down to this width preserving aspect ratio; narrower inputs
// keep their size but are still re-encoded.
const MaxWidth = 1200

// Quality is the fixed re-encode quality applied whether or not resizing
// occurred.
const Quality = 85

// OutputContentType / OutputExt describe the re-encode target. The pipeline
// always emits compressed JPEG output for optimized uploads.
const (
	OutputContentType = "image/jpeg"
	OutputExt         = "jpg"
)

// Result holds the optimized bytes and dimensions.
type Result struct {
	Data   []byte
	Width  int
	Height int
}

// Optimize decodes data, downscales to MaxWidth when wider, and re-encodes
// at the fixed Quality. It returns the encoded bytes and final dimensions.
func Optimize(data []byte) (*Result, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscaleToWidth(img, MaxWidth)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	b := img.Bounds()
	return &Result{
		Data:   buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// downscaleToWidth resizes so the width does not exceed maxW, preserving
// aspect ratio. Uses high-quality Catmull-Rom interpolation. Returns the
// original image when already within bounds (no upscaling).
func downscaleToWidth(img image.Image, maxW int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxW {
		return img
	}

	newW := maxW
	newH := int(float64(h) * float64(maxW) / float64(w))
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
