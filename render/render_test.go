package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"
)

// Start B followed by a couple of runs, bar = 0.
var testModules = []int{0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 1}

func TestImagePixels(t *testing.T) {
	img, err := Image(testModules, 3, 2)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != len(testModules)*2 || bounds.Dy() != 3 {
		t.Fatalf("bounds = %v, want %dx3", bounds, len(testModules)*2)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < bounds.Dx(); x++ {
			gray := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			black := gray.Y == 0
			if black != (testModules[x/2] == 0) {
				t.Errorf("pixel (%d,%d) black = %v, want %v", x, y, black, testModules[x/2] == 0)
			}
		}
	}
}

func TestRenderPNGRoundTrip(t *testing.T) {
	data, err := PNG{}.Render(testModules, 1, 1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != len(testModules) || img.Bounds().Dy() != 1 {
		t.Fatalf("decoded bounds = %v, want %dx1", img.Bounds(), len(testModules))
	}
	for x, m := range testModules {
		gray := color.Gray16Model.Convert(img.At(x, 0)).(color.Gray16)
		if (gray.Y == 0) != (m == 0) {
			t.Errorf("pixel %d black = %v, want %v", x, gray.Y == 0, m == 0)
		}
	}
}

func TestImageArgs(t *testing.T) {
	if _, err := Image(testModules, 0, 1); !errors.Is(err, ErrArgs) {
		t.Errorf("height 0: error = %v, want %v", err, ErrArgs)
	}
	if _, err := Image(testModules, 1, 0); !errors.Is(err, ErrArgs) {
		t.Errorf("module width 0: error = %v, want %v", err, ErrArgs)
	}
}
