// Package atlas packs named images into a single sheet and maps names to
// numeric indices.
package atlas

import (
	"errors"
	"fmt"
	"image"

	"github.com/iburimskiy/bubble-backdrop/internal/assets"
	"golang.org/x/image/draw"
)

// Padding is the transparent gap between cells, so linear filtering never
// bleeds a neighbour into a sprite.
const Padding = 1

var (
	ErrUnknownSprite = errors.New("sprite not in atlas")
	ErrDuplicate     = errors.New("duplicate sprite name")
	ErrEmpty         = errors.New("no images to pack")
)

// Atlas is a packed sheet plus the cell of every sprite in it.
type Atlas struct {
	Sheet *image.NRGBA
	rects []image.Rectangle
	names []string
	index map[string]int
}

// Pack lays the images out left to right in input order; the index of an
// image is its position in images. Images wider or taller than maxCell are
// scaled down to fit, keeping their aspect ratio. maxCell <= 0 disables
// scaling.
func Pack(images []assets.Named, maxCell int) (*Atlas, error) {
	if len(images) == 0 {
		return nil, ErrEmpty
	}

	a := &Atlas{index: make(map[string]int, len(images))}
	sizes := make([]image.Point, len(images))
	x, height := Padding, 0
	for i, n := range images {
		if _, dup := a.index[n.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, n.Name)
		}
		a.index[n.Name] = i
		a.names = append(a.names, n.Name)

		sizes[i] = fit(n.Image.Bounds().Size(), maxCell)
		a.rects = append(a.rects, image.Rectangle{
			Min: image.Pt(x, Padding),
			Max: image.Pt(x+sizes[i].X, Padding+sizes[i].Y),
		})
		x += sizes[i].X + Padding
		height = max(height, sizes[i].Y)
	}

	a.Sheet = image.NewNRGBA(image.Rect(0, 0, x, height+2*Padding))
	for i, n := range images {
		src := n.Image
		if src.Bounds().Size() == sizes[i] {
			draw.Draw(a.Sheet, a.rects[i], src, src.Bounds().Min, draw.Src)
			continue
		}
		draw.CatmullRom.Scale(a.Sheet, a.rects[i], src, src.Bounds(), draw.Src, nil)
	}
	return a, nil
}

func fit(size image.Point, maxCell int) image.Point {
	if maxCell <= 0 || (size.X <= maxCell && size.Y <= maxCell) {
		return size
	}
	if size.X >= size.Y {
		return image.Pt(maxCell, max(1, size.Y*maxCell/size.X))
	}
	return image.Pt(max(1, size.X*maxCell/size.Y), maxCell)
}

// Index resolves a sprite name.
func (a *Atlas) Index(name string) (int, error) {
	i, ok := a.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	return i, nil
}

// Rect is the cell of sprite i within Sheet.
func (a *Atlas) Rect(i int) image.Rectangle { return a.rects[i] }

func (a *Atlas) Len() int { return len(a.rects) }

func (a *Atlas) Name(i int) string { return a.names[i] }
