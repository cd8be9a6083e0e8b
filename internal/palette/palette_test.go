package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if p.Len() != 6 {
		t.Fatalf("expected 6 colors, got %d", p.Len())
	}
	want := color.NRGBA{R: 0xff, G: 0x96, B: 0x00, A: 0xff}
	if got := p.Colors()[0]; got != want {
		t.Fatalf("first color = %v, want %v", got, want)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{"#02D1AC", color.NRGBA{R: 0x02, G: 0xd1, B: 0xac, A: 0xff}, false},
		{"#8000C6FF", color.NRGBA{R: 0x00, G: 0xc6, B: 0xff, A: 0x80}, false},
		{" Orange ", color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}, false},
		{"#ff3892", color.NRGBA{R: 0xff, G: 0x38, B: 0x92, A: 0xff}, false},
		{"#FFF", nil, true},
		{"#ZZ000000", nil, true},
		{"#GG0000", nil, true},
		{"not-a-color", nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("colors: []\n")); !errors.Is(err, ErrEmptyPalette) {
		t.Fatalf("expected ErrEmptyPalette, got %v", err)
	}
	if _, err := Parse([]byte("colors: [\"#000000\", \"nope\"]\n")); err == nil {
		t.Fatalf("expected error for bad entry")
	}
	if _, err := Parse([]byte("colors: {\n")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestColorsIsACopy(t *testing.T) {
	p, err := Parse([]byte("colors: [red, blue]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cs := p.Colors()
	cs[0] = color.Black
	if p.Colors()[0] == color.Color(color.Black) {
		t.Fatalf("palette mutated through Colors()")
	}
}
