package code128go_test

import (
	"testing"

	"github.com/ericlevine/code128go"
	"github.com/ericlevine/code128go/render"
)

var encodeBenchmarks = []struct {
	name    string
	content string
	charset string
}{
	{"Text", "Hello, Code 128 benchmark!", ""},
	{"Digits", "01234567890123456789", ""},
	{"Mixed", "ORDER-2024-000137", ""},
	{"ForcedB", "Hello, Code 128 benchmark!", "B"},
}

func BenchmarkNew(b *testing.B) {
	for _, bm := range encodeBenchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := code128go.New(bm.content, &code128go.Options{Charset: bm.charset}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkImage(b *testing.B) {
	code, err := code128go.New("Hello, Code 128 benchmark!", &code128go.Options{Renderer: render.PNG{}})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := code.Image(64, 2); err != nil {
			b.Fatal(err)
		}
	}
}
