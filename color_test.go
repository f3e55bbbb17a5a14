package sketch

import (
	"image/color"
	"slices"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestResolveFill(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"red", Color{255, 0, 0}},
		{"green", Color{0, 255, 0}},
		{"blue", Color{0, 0, 255}},
		{"yellow", Color{255, 255, 0}},
		{"white", Color{255, 255, 255}},
		{"black", Color{0, 0, 0}},
		{"cyan", Color{0, 255, 255}},
		{"magenta", Color{255, 0, 255}},
		{"gray", Color{128, 128, 128}},
		{"brown", Color{155, 40, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveFill(tt.name)
			if !ok {
				t.Fatalf("ResolveFill(%q) not found", tt.name)
			}
			if got != tt.want {
				t.Errorf("ResolveFill(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveFillUnknown(t *testing.T) {
	for _, name := range []string{"purple", "Red", "RED", " red", "re", "grey", ""} {
		if c, ok := ResolveFill(name); ok {
			t.Errorf("ResolveFill(%q) = %v, want not found", name, c)
		}
	}
}

func TestResolveOutline(t *testing.T) {
	for _, name := range []string{"red", "green", "blue", "white", "black"} {
		got, ok := ResolveOutline(name)
		if !ok {
			t.Errorf("ResolveOutline(%q) not found", name)
			continue
		}
		want, _ := ResolveFill(name)
		if got != want {
			t.Errorf("ResolveOutline(%q) = %v, want %v", name, got, want)
		}
	}

	// Fill-only names are not outline colors.
	for _, name := range []string{"yellow", "cyan", "magenta", "gray", "brown", "Black"} {
		if _, ok := ResolveOutline(name); ok {
			t.Errorf("ResolveOutline(%q) should not be found", name)
		}
	}
}

func TestColorNames(t *testing.T) {
	fills := FillNames()
	if len(fills) != 10 {
		t.Errorf("len(FillNames()) = %d, want 10", len(fills))
	}
	if !slices.IsSorted(fills) {
		t.Errorf("FillNames() not sorted: %v", fills)
	}

	want := []string{"black", "blue", "green", "red", "white"}
	if got := OutlineNames(); !slices.Equal(got, want) {
		t.Errorf("OutlineNames() = %v, want %v", got, want)
	}
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := Brown.RGBA()
	if r != 155*0x101 || g != 40*0x101 || b != 10*0x101 || a != 0xffff {
		t.Errorf("Brown.RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}

	if got := color.NRGBAModel.Convert(Gray).(color.NRGBA); got != Gray.NRGBA() {
		t.Errorf("NRGBA model conversion = %v, want %v", got, Gray.NRGBA())
	}
}

func TestColor_String(t *testing.T) {
	if got := Brown.String(); got != "rgb(155,40,10)" {
		t.Errorf("Brown.String() = %q", got)
	}
}
