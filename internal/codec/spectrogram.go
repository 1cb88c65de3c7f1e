package codec

import (
	"image"
	"image/color"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

const (
	spectrogramWidth  = 800
	spectrogramHeight = 200
	fftSize           = 1024
)

// GenerateSpectrogram renders interleaved stereo PCM as a PNG, one FFT
// column per pixel, low frequencies at the bottom.
func GenerateSpectrogram(pcm []int16) ([]byte, error) {
	mono := Mono(pcm)
	img := image.NewRGBA(image.Rect(0, 0, spectrogramWidth, spectrogramHeight))

	step := len(mono) / spectrogramWidth
	if step < fftSize {
		step = fftSize
	}

	window := make([]float64, fftSize)
	for x := 0; x < spectrogramWidth; x++ {
		start := x * step
		if start+fftSize > len(mono) {
			break
		}

		for i := range window {
			// Hann window
			w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(fftSize-1))
			window[i] = float64(mono[start+i]) * w
		}
		coeffs := fft.FFTReal(window)

		for y := 0; y < spectrogramHeight; y++ {
			idx := (spectrogramHeight - 1 - y) * (fftSize / 2) / spectrogramHeight
			mag := math.Hypot(real(coeffs[idx]), imag(coeffs[idx]))
			intensity := uint8(math.Min(mag/500, 255))
			img.Set(x, y, color.RGBA{R: intensity / 2, G: intensity, B: intensity / 2, A: 255})
		}
	}

	return encodePNG(img)
}
