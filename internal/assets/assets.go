// Package assets produces the source images the backdrop needs.
//
// Images are either decoded from <name>.png files in a directory or, when no
// directory is configured, drawn procedurally so the binary runs without any
// files next to it.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"

	"golang.org/x/sync/errgroup"
)

const (
	Bottle = "bottle"
	Circle = "circle"
)

// Required lists every image the host loads before the atlas is built.
var Required = []string{Bottle, Circle}

// ErrUnknown is returned when no generator exists for a name.
var ErrUnknown = errors.New("unknown asset")

// Named pairs an image with the name it is looked up by.
type Named struct {
	Name  string
	Image image.Image
}

// Load fetches names concurrently. With a nil fsys the images are generated.
// The result keeps the order of names.
func Load(ctx context.Context, fsys fs.FS, names []string) ([]Named, error) {
	out := make([]Named, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				img image.Image
				err error
			)
			if fsys == nil {
				img, err = Generate(name)
			} else {
				img, err = decode(fsys, name+".png")
			}
			if err != nil {
				return fmt.Errorf("asset %q: %w", name, err)
			}
			out[i] = Named{Name: name, Image: img}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
