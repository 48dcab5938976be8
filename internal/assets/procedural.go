package assets

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/noise"
	"github.com/chewxy/math32"
)

const proceduralSize = 512

// Wood generates a plank-ish wood grain: vertical rings perturbed by noise,
// softened with a small blur.
func Wood(size int) *image.RGBA {
	grain := noise.Generate(size, size, &noise.Options{NoiseFn: noise.Uniform, Monochrome: true})

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := float32(grain.RGBAAt(x, y).R) / 255
			rings := math32.Sin(float32(x)*0.18 + n*2.5)
			shade := 0.72 + 0.2*rings + 0.08*n
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(150 * shade),
				G: uint8(105 * shade),
				B: uint8(62 * shade),
				A: 255,
			})
		}
	}

	return adjust.Contrast(blur.Gaussian(img, 1.2), 0.05)
}

// Marble generates light stone with dark veins following a wavy diagonal.
func Marble(size int) *image.RGBA {
	grain := noise.Generate(size, size, &noise.Options{NoiseFn: noise.Uniform, Monochrome: true})

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := float32(grain.RGBAAt(x, y).R) / 255
			vein := math32.Abs(math32.Sin(float32(x+y)*0.045 + n*4))
			shade := 0.82 + 0.18*vein - 0.06*n
			v := uint8(235 * shade)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: uint8(float32(v) * 0.97), A: 255})
		}
	}

	return blur.Gaussian(img, 2)
}

// Plaster generates a flat wall color with subtle mottling.
func Plaster(size int) *image.RGBA {
	grain := noise.Generate(size, size, &noise.Options{NoiseFn: noise.Gaussian, Monochrome: true})

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := float32(grain.RGBAAt(x, y).R) / 255
			shade := 0.9 + 0.1*n
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(208 * shade),
				G: uint8(200 * shade),
				B: uint8(186 * shade),
				A: 255,
			})
		}
	}

	return blur.Gaussian(img, 3)
}
