package atlas

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/iburimskiy/bubble-backdrop/internal/assets"
)

func solid(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestPackLayout(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	a, err := Pack([]assets.Named{
		{Name: "bottle", Image: solid(8, 16, red)},
		{Name: "circle", Image: solid(10, 10, blue)},
	}, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	if a.Len() != 2 {
		t.Fatalf("expected 2 sprites, got %d", a.Len())
	}
	if got, want := a.Rect(0), image.Rect(1, 1, 9, 17); got != want {
		t.Errorf("bottle rect: expected %v, got %v", want, got)
	}
	if got, want := a.Rect(1), image.Rect(10, 1, 20, 11); got != want {
		t.Errorf("circle rect: expected %v, got %v", want, got)
	}
	if got, want := a.Sheet.Bounds(), image.Rect(0, 0, 21, 18); got != want {
		t.Errorf("sheet bounds: expected %v, got %v", want, got)
	}
	if c := a.Sheet.NRGBAAt(5, 5); c != red {
		t.Errorf("expected red inside bottle cell, got %v", c)
	}
	if c := a.Sheet.NRGBAAt(15, 5); c != blue {
		t.Errorf("expected blue inside circle cell, got %v", c)
	}
	if c := a.Sheet.NRGBAAt(9, 5); c.A != 0 {
		t.Errorf("expected transparent padding, got %v", c)
	}
}

func TestIndex(t *testing.T) {
	a, err := Pack([]assets.Named{
		{Name: assets.Bottle, Image: solid(2, 2, color.NRGBA{A: 255})},
		{Name: assets.Circle, Image: solid(2, 2, color.NRGBA{A: 255})},
	}, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	i, err := a.Index(assets.Circle)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if i != 1 || a.Name(i) != assets.Circle {
		t.Errorf("expected circle at 1, got %d (%s)", i, a.Name(i))
	}
	if _, err := a.Index("anchor"); !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("expected ErrUnknownSprite, got %v", err)
	}
}

func TestPackScalesOversized(t *testing.T) {
	a, err := Pack([]assets.Named{
		{Name: "wide", Image: solid(200, 100, color.NRGBA{G: 255, A: 255})},
	}, 64)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if got := a.Rect(0).Size(); got != image.Pt(64, 32) {
		t.Errorf("expected 64x32 cell, got %v", got)
	}
	if c := a.Sheet.NRGBAAt(30, 15); c.G == 0 {
		t.Errorf("expected scaled content, got %v", c)
	}
}

func TestPackErrors(t *testing.T) {
	if _, err := Pack(nil, 0); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	img := solid(1, 1, color.NRGBA{A: 255})
	_, err := Pack([]assets.Named{{Name: "a", Image: img}, {Name: "a", Image: img}}, 0)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestPackGenerated(t *testing.T) {
	var named []assets.Named
	for _, n := range assets.Required {
		img, err := assets.Generate(n)
		if err != nil {
			t.Fatal(err)
		}
		named = append(named, assets.Named{Name: n, Image: img})
	}
	a, err := Pack(named, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	i, err := a.Index(assets.Circle)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Rect(i).Size(); got != image.Pt(assets.CircleSize, assets.CircleSize) {
		t.Errorf("expected circle cell %dx%d, got %v", assets.CircleSize, assets.CircleSize, got)
	}
}
