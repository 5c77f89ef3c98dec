package photo_test

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fittrack/fittrack-cli/internal/photo"
)

func testImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestEncodeWritesJPEG(t *testing.T) {
	t.Parallel()
	enc := photo.NewEncoder(t.TempDir())

	path, err := enc.Encode(testImage(t, 64, 48))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Fatalf("expected .jpg reference, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("photo file missing: %v", err)
	}
}

func TestEncodeDownscalesWideImages(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	enc := &photo.Encoder{Dir: dir, MaxWidth: 100, Quality: 80}

	path, err := enc.Encode(testImage(t, 400, 200))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open encoded photo: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode encoded photo: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Fatalf("expected 100x50 after downscale, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestEncodeFallsBackToRawBytes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	enc := photo.NewEncoder(dir)

	raw := []byte("definitely not an image")
	path, err := enc.Encode(raw)
	if err != nil {
		t.Fatalf("encode fallback: %v", err)
	}
	if !strings.HasSuffix(path, ".bin") {
		t.Fatalf("expected .bin fallback reference, got %s", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fallback: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("fallback must store bytes unmodified")
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("photo must live under the encoder dir")
	}
}
