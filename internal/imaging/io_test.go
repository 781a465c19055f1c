package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestDecode_RegisteredFormats(t *testing.T) {
	src := solid(32, 24, color.NRGBA{R: 180, G: 40, B: 40, A: 255})

	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(buf *bytes.Buffer) error { return png.Encode(buf, src) },
		"jpeg": func(buf *bytes.Buffer) error { return jpeg.Encode(buf, src, nil) },
		"gif":  func(buf *bytes.Buffer) error { return gif.Encode(buf, src, nil) },
		"bmp":  func(buf *bytes.Buffer) error { return bmp.Encode(buf, src) },
		"tiff": func(buf *bytes.Buffer) error { return tiff.Encode(buf, src, nil) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatal(err)
			}

			img, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode(%s) = %v", name, err)
			}
			if got := img.Bounds().Size(); got != image.Pt(32, 24) {
				t.Errorf("decoded size = %v, want 32x24", got)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Decode(nil) = %v, want ErrEmptyData", err)
	}
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("Decode(garbage) = nil, want error")
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	data, err := EncodePNGBytes(solid(10, 10, color.White))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(10, 10) {
		t.Errorf("size = %v, want 10x10", got)
	}

	if _, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("DecodeFile(missing) = nil, want error")
	}
}

func TestEncodePNGBytes_RoundTrip(t *testing.T) {
	want := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	data, err := EncodePNGBytes(solid(8, 8, want))
	if err != nil {
		t.Fatal(err)
	}

	img, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := ToNRGBA(img).NRGBAAt(4, 4); got != want {
		t.Errorf("round-tripped pixel = %v, want %v", got, want)
	}
}

func TestEncodeJPEGBytes(t *testing.T) {
	img := solid(64, 64, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	// Quality outside 1-100 is clamped rather than rejected.
	for _, quality := range []int{-5, 0, 50, 95, 200} {
		data, err := EncodeJPEGBytes(img, quality)
		if err != nil {
			t.Fatalf("EncodeJPEGBytes(q=%d) = %v", quality, err)
		}
		if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
			t.Errorf("q=%d produced undecodable JPEG: %v", quality, err)
		}
	}

	// Higher quality must not produce smaller output for the same image.
	low, err := EncodeJPEGBytes(img, 10)
	if err != nil {
		t.Fatal(err)
	}
	high, err := EncodeJPEGBytes(img, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(high) < len(low) {
		t.Errorf("q=100 output (%d bytes) smaller than q=10 (%d bytes)", len(high), len(low))
	}
}

func TestToNRGBA(t *testing.T) {
	// Non-origin bounds are translated to (0,0).
	src := image.NewNRGBA(image.Rect(5, 5, 15, 25))
	src.SetNRGBA(5, 5, color.NRGBA{R: 255, A: 255})

	got := ToNRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 10, 20) {
		t.Errorf("bounds = %v, want origin 10x20", got.Bounds())
	}
	if got.NRGBAAt(0, 0) != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel (0,0) = %v, want red", got.NRGBAAt(0, 0))
	}

	// Always a copy, even for an NRGBA input.
	got.SetNRGBA(0, 0, color.NRGBA{})
	if src.NRGBAAt(5, 5) != (color.NRGBA{R: 255, A: 255}) {
		t.Error("ToNRGBA aliased its input")
	}
}
