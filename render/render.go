// Package render draws Code 128 module rows as monochrome images.
//
// It is the default rendering collaborator for code128go: PNG satisfies the
// code128go.Renderer interface. The encoding core never imports this
// package.
package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"

	"github.com/ericlevine/code128go/bitutil"
)

// ErrArgs is returned for non-positive dimensions.
var ErrArgs = errors.New("render: invalid arguments")

// PNG renders module rows as PNG bytes. The zero value is ready to use.
type PNG struct{}

// Render draws the module row height pixels tall with moduleWidth pixels per
// module and encodes it as a PNG.
func (PNG) Render(modules []int, height, moduleWidth int) ([]byte, error) {
	img, err := Image(modules, height, moduleWidth)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image returns the module row as an image. A module value of 0 is a bar and
// draws black; anything else draws white. The image is
// len(modules)*moduleWidth pixels wide and height pixels tall.
func Image(modules []int, height, moduleWidth int) (image.Image, error) {
	if height < 1 || moduleWidth < 1 {
		return nil, ErrArgs
	}
	row := bitutil.NewBitArray(len(modules))
	for i, m := range modules {
		if m == 0 {
			row.Set(i)
		}
	}
	return &rowImage{row: row, scale: moduleWidth, height: height}, nil
}

// rowImage exposes a bit row as an image.Image, one bit per module column.
// A set bit is a bar.
type rowImage struct {
	row    *bitutil.BitArray
	scale  int
	height int
}

func (im *rowImage) ColorModel() color.Model {
	return color.Gray16Model
}

func (im *rowImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.row.Size()*im.scale, im.height)
}

func (im *rowImage) At(x, y int) color.Color {
	if im.row.Get(x / im.scale) {
		return color.Black
	}
	return color.White
}
