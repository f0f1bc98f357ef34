package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PixelBuffer holds the linear RGB result of a render, row-major from the
// top-left pixel
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color of pixel (x, y)
func (pb *PixelBuffer) Set(x, y int, c core.Vec3) {
	pb.Pixels[y*pb.Width+x] = c
}

// At returns the color of pixel (x, y)
func (pb *PixelBuffer) At(x, y int) core.Vec3 {
	return pb.Pixels[y*pb.Width+x]
}

// Row returns the pixels of row y. The slice aliases the buffer.
func (pb *PixelBuffer) Row(y int) []core.Vec3 {
	return pb.Pixels[y*pb.Width : (y+1)*pb.Width]
}

// ToRGBA converts the buffer to an 8-bit image. A gamma of 1 or less leaves
// the values linear.
func (pb *PixelBuffer) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pb.At(x, y), gamma))
		}
	}
	return img
}

// AverageLuminance returns the mean perceptual luminance over all pixels
func (pb *PixelBuffer) AverageLuminance() float64 {
	if len(pb.Pixels) == 0 {
		return 0
	}
	var total float64
	for _, p := range pb.Pixels {
		total += p.Luminance()
	}
	return total / float64(len(pb.Pixels))
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma
// correction. Clamping comes first so negative channels never reach Pow.
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	if gamma > 1 {
		colorVec = colorVec.GammaCorrect(gamma)
	}

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}
