package icon

import (
	"bytes"
	"compress/zlib"
	"image"
	"image/png"
	"io"
	"testing"
)

// decodeRaster decodes a PNG with the standard decoder and rebuilds the
// filter-prefixed scanline buffer so it can be compared with Synthesize.
func decodeRaster(t *testing.T, data []byte) (image.Config, []byte) {
	t.Helper()

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.DecodeConfig failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("decoded image is %T, want *image.NRGBA (8-bit RGBA)", img)
	}

	w, h := cfg.Width, cfg.Height
	raw := make([]byte, 0, h*RowSize(w))
	for y := 0; y < h; y++ {
		raw = append(raw, 0)
		start := y * nrgba.Stride
		raw = append(raw, nrgba.Pix[start:start+w*4]...)
	}
	return cfg, raw
}

func TestEncodeRoundTrip(t *testing.T) {
	compressors := map[string]Compressor{
		CompressionBest:  ZlibCompressor{Level: 9},
		CompressionFast:  ZlibCompressor{Level: 1},
		CompressionStore: StoredCompressor{},
	}

	sizes := []struct {
		w, h     int
		maskable bool
	}{
		{1, 1, false},
		{48, 48, true},
		{192, 192, false},
		{40, 24, false},
	}

	for name, c := range compressors {
		for _, s := range sizes {
			raw := Synthesize(s.w, s.h, s.maskable)

			data, err := Encode(s.w, s.h, raw, c)
			if err != nil {
				t.Fatalf("%s %dx%d: Encode failed: %v", name, s.w, s.h, err)
			}

			cfg, got := decodeRaster(t, data)
			if cfg.Width != s.w || cfg.Height != s.h {
				t.Errorf("%s: decoded size %dx%d, want %dx%d", name, cfg.Width, cfg.Height, s.w, s.h)
			}
			if !bytes.Equal(got, raw) {
				t.Errorf("%s %dx%d: decoded pixels differ from raster", name, s.w, s.h)
			}
		}
	}
}

func TestEncodeStructure(t *testing.T) {
	data, err := Encode(192, 192, Synthesize(192, 192, false), nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if !bytes.Equal(data[:8], pngSignature) {
		t.Fatalf("signature = % x", data[:8])
	}

	// Walk the chunks and record their tags.
	var tags []string
	rest := data[8:]
	for len(rest) > 0 {
		if len(rest) < 12 {
			t.Fatalf("truncated chunk: %d bytes left", len(rest))
		}
		n := int(rest[0])<<24 | int(rest[1])<<16 | int(rest[2])<<8 | int(rest[3])
		tag := string(rest[4:8])
		tags = append(tags, tag)

		if tag == "IHDR" {
			ihdr := rest[8 : 8+n]
			if n != 13 {
				t.Errorf("IHDR length = %d, want 13", n)
			}
			if ihdr[8] != 8 || ihdr[9] != 6 {
				t.Errorf("IHDR depth/colour = %d/%d, want 8/6", ihdr[8], ihdr[9])
			}
		}
		rest = rest[12+n:]
	}

	want := []string{"IHDR", "IDAT", "IEND"}
	if len(tags) != len(want) {
		t.Fatalf("chunks = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("chunk %d = %s, want %s", i, tags[i], want[i])
		}
	}
}

func TestEncodeDecodedPixels(t *testing.T) {
	data, err := Render(192, false, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	nrgba := img.(*image.NRGBA)

	centre := nrgba.NRGBAAt(96, 96)
	if centre.R != 250 || centre.G != 204 || centre.B != 21 || centre.A != 255 {
		t.Errorf("centre = %v, want (250,204,21,255)", centre)
	}

	corner := nrgba.NRGBAAt(0, 0)
	if corner.R != 30 || corner.G != 58 || corner.B != 138 || corner.A != 255 {
		t.Errorf("corner = %v, want (30,58,138,255)", corner)
	}
}

func TestStoredCompressorInflates(t *testing.T) {
	// Large enough to need several stored blocks.
	raw := bytes.Repeat([]byte("coin quest "), 20000)

	for _, in := range [][]byte{nil, {42}, raw} {
		out, err := StoredCompressor{}.Compress(in)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		zr, err := zlib.NewReader(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("zlib.NewReader failed: %v", err)
		}
		got, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("inflate failed: %v", err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("len=%d: inflated %d bytes, not equal to input", len(in), len(got))
		}
	}
}

func TestCompressorFor(t *testing.T) {
	for _, name := range []string{"", CompressionBest, CompressionDefault, CompressionFast, CompressionStore} {
		c, err := CompressorFor(name)
		if err != nil {
			t.Errorf("CompressorFor(%q) failed: %v", name, err)
			continue
		}
		if c == nil {
			t.Errorf("CompressorFor(%q) returned nil", name)
		}
	}

	if _, err := CompressorFor("ultra"); err == nil {
		t.Error("CompressorFor(ultra) should fail")
	}
}
