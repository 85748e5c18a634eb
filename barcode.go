// Package code128go encodes Code 128 barcodes.
//
// Encoding is a pure function of the input bytes and an optional code set
// directive: the package picks character sets A, B and C symbol by symbol
// (or follows an explicit directive), computes the modulo-103 check value,
// and exposes the result as a symbol sequence, a bar width string and a flat
// module row. Rendering is delegated to a pluggable Renderer so the core has
// no imaging dependencies; see the render subpackage for the default one.
package code128go

import (
	"encoding/base64"
	"fmt"
)

// Renderer draws a module row as PNG image bytes. A module value of 0 is a
// bar (black) and 1 is a space (white); the image is moduleWidth pixels per
// module wide and height pixels tall.
type Renderer interface {
	Render(modules []int, height, moduleWidth int) ([]byte, error)
}

// Options configures barcode construction.
type Options struct {
	// Charset forces code set selection. A single letter ("A", "B" or "C")
	// applies that set to the whole input; a longer string assigns a set per
	// symbol, where 'A' and 'B' tokens consume one input byte and 'C' tokens
	// consume two. Empty selects sets automatically.
	Charset string

	// Renderer produces PNG bytes for Image and DataURL. Nil leaves the
	// barcode constructible but makes rendering calls fail with
	// ErrRenderingUnavailable.
	Renderer Renderer

	// Margin is the quiet zone width in modules added on each side when
	// rendering. Zero renders the bare pattern.
	Margin int
}

// Barcode is an encoded Code 128 symbol. All fields are computed at
// construction and never change; accessors return copies.
type Barcode struct {
	data     string
	values   []int
	symbols  []string
	bars     string
	modules  []int
	renderer Renderer
	margin   int
}

// New encodes data as a Code 128 barcode. A nil opts selects code sets
// automatically and leaves rendering unconfigured.
//
// New fails with ErrInvalidDirective if opts.Charset is malformed or does
// not account for every input byte, and with ErrUnencodableByte if a byte
// has no Code 128 encoding.
func New(data string, opts *Options) (*Barcode, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if data == "" {
		return nil, fmt.Errorf("code128: empty input")
	}
	if o.Margin < 0 {
		return nil, fmt.Errorf("code128: negative margin %d", o.Margin)
	}

	directive, err := expandDirective(data, o.Charset)
	if err != nil {
		return nil, err
	}
	values, err := encodeValues(data, directive)
	if err != nil {
		return nil, err
	}
	values = appendChecksum(values)

	return &Barcode{
		data:     data,
		values:   values,
		symbols:  symbolsFromValues(values),
		bars:     barsFromValues(values),
		modules:  modulesFromValues(values),
		renderer: o.Renderer,
		margin:   o.Margin,
	}, nil
}

// Data returns the encoded input.
func (b *Barcode) Data() string {
	return b.data
}

// Values returns the full code value sequence, from the start code through
// the check value and the stop code.
func (b *Barcode) Values() []int {
	return append([]int(nil), b.values...)
}

// Symbols returns the symbol sequence: the start symbol, any Code and Shift
// symbols, the data characters (digit pairs in set C), the check symbol
// rendered as its literal character in the set active at that point, and
// "[Stop]" last.
func (b *Barcode) Symbols() []string {
	return append([]string(nil), b.symbols...)
}

// Bars returns the concatenated bar and space widths as a digit string. Each
// symbol contributes six digits summing to 11 modules; the stop symbol
// contributes seven summing to 13.
func (b *Barcode) Bars() string {
	return b.bars
}

// Modules returns the flat module row: 0 for a bar, 1 for a space.
func (b *Barcode) Modules() []int {
	return append([]int(nil), b.modules...)
}

// Checksum returns the modulo-103 check value.
func (b *Barcode) Checksum() int {
	return b.values[len(b.values)-2]
}

// Image renders the barcode as PNG bytes via the configured Renderer,
// height pixels tall with moduleWidth pixels per module. The configured
// quiet zone margin is included. Fails with ErrRenderingUnavailable when no
// renderer is configured.
func (b *Barcode) Image(height, moduleWidth int) ([]byte, error) {
	if b.renderer == nil {
		return nil, ErrRenderingUnavailable
	}
	return b.renderer.Render(b.paddedModules(), height, moduleWidth)
}

// DataURL renders the barcode and returns it as a base64 PNG data URL.
func (b *Barcode) DataURL(height, moduleWidth int) (string, error) {
	png, err := b.Image(height, moduleWidth)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// paddedModules returns the module row with the quiet zone (space modules)
// added on both sides.
func (b *Barcode) paddedModules() []int {
	if b.margin == 0 {
		return b.modules
	}
	padded := make([]int, 0, len(b.modules)+2*b.margin)
	for i := 0; i < b.margin; i++ {
		padded = append(padded, 1)
	}
	padded = append(padded, b.modules...)
	for i := 0; i < b.margin; i++ {
		padded = append(padded, 1)
	}
	return padded
}
