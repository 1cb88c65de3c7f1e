package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderWaveform draws waveform levels as centred vertical bars, one column
// per level, height pixels tall.
func RenderWaveform(levels []byte, height int) ([]byte, error) {
	width := max(len(levels), 1)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{A: 255}
	fg := color.RGBA{R: 90, G: 200, B: 120, A: 255}

	mid := height / 2
	for x := 0; x < width; x++ {
		half := 0
		if x < len(levels) {
			half = int(levels[x]) * mid / 255
		}
		for y := 0; y < height; y++ {
			c := bg
			if y >= mid-half && y <= mid+half {
				c = fg
			}
			img.Set(x, y, c)
		}
	}
	return encodePNG(img)
}
