// Package photo turns raw progress-photo bytes into a storable file
// reference. Encoding is best effort: anything that cannot be decoded or
// re-encoded is stored unprocessed instead of failing the write.
package photo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	DefaultMaxWidth = 1024
	DefaultQuality  = 80
)

type Encoder struct {
	Dir      string
	MaxWidth int
	Quality  int
}

func NewEncoder(dir string) *Encoder {
	return &Encoder{Dir: dir, MaxWidth: DefaultMaxWidth, Quality: DefaultQuality}
}

// Encode writes the photo under Dir and returns its path. Decodable images
// are downscaled to MaxWidth and re-encoded as JPEG; everything else is
// written as-is. An error is returned only when even the raw fallback
// cannot be written.
func (e *Encoder) Encode(raw []byte) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create photo directory: %w", err)
	}

	encoded, ok := e.reencode(raw)
	name := time.Now().Format("20060102") + "-" + uuid.NewString()
	if !ok {
		path := filepath.Join(e.Dir, name+".bin")
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return "", fmt.Errorf("write unprocessed photo: %w", err)
		}
		return path, nil
	}
	path := filepath.Join(e.Dir, name+".jpg")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return path, nil
}

func (e *Encoder) reencode(raw []byte) ([]byte, bool) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, false
	}

	bounds := src.Bounds()
	maxWidth := e.MaxWidth
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if bounds.Dx() > maxWidth {
		scale := float64(maxWidth) / float64(bounds.Dx())
		height := int(float64(bounds.Dy()) * scale)
		if height < 1 {
			height = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	quality := e.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
