package assets

import (
	"image"
	"image/color"
	"math"
)

const (
	CircleSize   = 64
	BottleWidth  = 32
	BottleHeight = 64
)

// Generate draws the built-in image for name.
func Generate(name string) (image.Image, error) {
	switch name {
	case Circle:
		return bubble(CircleSize), nil
	case Bottle:
		return bottle(BottleWidth, BottleHeight), nil
	}
	return nil, ErrUnknown
}

// bubble is a white disc with a bright rim and a faint body, antialiased at
// the edge. Colour comes from the tint at draw time.
func bubble(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			d := math.Hypot(dx, dy) / r
			if d >= 1 {
				continue
			}
			// body 0.35, rim ramps to 1 over the outer 20%
			a := 0.35 + 0.65*clamp01((d-0.8)/0.2)
			// antialias the last pixel
			a *= clamp01((1 - d) * r)
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a * 255)})
		}
	}
	return img
}

// bottle is a rounded body with a narrow neck.
func bottle(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	neckW := w / 3
	neckH := h / 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside := false
			if y < neckH {
				inside = x >= (w-neckW)/2 && x < (w+neckW)/2
			} else {
				// body with rounded shoulders
				cx := float64(x) + 0.5 - float64(w)/2
				cy := float64(y-neckH) + 0.5
				shoulder := float64(w) / 2
				inside = cy >= shoulder || math.Hypot(cx, shoulder-cy) <= shoulder
			}
			if inside {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
