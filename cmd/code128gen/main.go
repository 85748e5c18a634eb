// Command code128gen encodes text as Code 128 barcodes.
//
// By default it writes a PNG to standard output (or to a file with -o).
// With -t it prints the symbol sequence and bar widths instead, and with -u
// a base64 PNG data URL. If no string is given, data is read from standard
// input and the final newline is stripped.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ericlevine/code128go"
	"github.com/ericlevine/code128go/render"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	charset string // code set directive
	out     string // output file
	height  int    // barcode height in pixels
	scale   int    // module width in pixels
	margin  int    // quiet zone in modules
	text    bool   // print symbols and bars
	dataURL bool   // print data URL
}{
	height: 64,
	scale:  2,
	margin: 10,
}

func init() {
	getopt.FlagLong(&g.charset, "charset", 'c', "code set directive: A, B, C or a per-symbol string like CABA")
	getopt.FlagLong(&g.out, "output", 'o', "write PNG to file instead of standard output")
	getopt.FlagLong(&g.height, "height", 'H', "barcode height in pixels")
	getopt.FlagLong(&g.scale, "scale", 's', "module width in pixels")
	getopt.FlagLong(&g.margin, "margin", 'm', "quiet zone width in modules")
	getopt.FlagLong(&g.text, "text", 't', "print symbols and bar widths instead of a PNG")
	getopt.FlagLong(&g.dataURL, "data-url", 'u', "print a base64 PNG data URL instead of a PNG")
	getopt.SetParameters("[string ...]")
}

func main() {
	getopt.Parse()
	args := getopt.Args()

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "code128gen: read stdin: %v\n", err)
			os.Exit(1)
		}
		args = []string{strings.TrimSuffix(string(data), "\n")}
	}

	if !g.text && !g.dataURL && len(args) > 1 {
		fmt.Fprintln(os.Stderr, "code128gen: PNG output takes a single string; use -t or -u for several")
		os.Exit(2)
	}

	exitCode := 0
	for _, arg := range args {
		if err := generate(arg); err != nil {
			fmt.Fprintf(os.Stderr, "code128gen: %q: %v\n", arg, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func generate(data string) error {
	code, err := code128go.New(data, &code128go.Options{
		Charset:  g.charset,
		Renderer: render.PNG{},
		Margin:   g.margin,
	})
	if err != nil {
		return err
	}

	switch {
	case g.text:
		fmt.Printf("symbols: %q\n", code.Symbols())
		fmt.Printf("bars:    %s\n", code.Bars())
		fmt.Printf("modules: %d\n", len(code.Modules()))
		return nil
	case g.dataURL:
		url, err := code.DataURL(g.height, g.scale)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	}

	img, err := code.Image(g.height, g.scale)
	if err != nil {
		return err
	}
	if g.out != "" {
		return os.WriteFile(g.out, img, 0666)
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("refusing to write a PNG to a terminal; pipe the output or use -o")
	}
	_, err = os.Stdout.Write(img)
	return err
}
