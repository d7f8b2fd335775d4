// Package imaging validates uploaded images and derives the two blobs
// attached to an event: a compressed rendition and a thumbnail. Both are
// JPEG-encoded regardless of the source format.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"strings"

	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// MaxUploadBytes caps the accepted source image size.
const MaxUploadBytes = 10 << 20

// Derivation bounds and JPEG qualities, matching the rendering layer's
// expectations: thumbnails fit 200x150 at quality 70, compressed images fit
// 1200x800 at quality 80.
const (
	ThumbnailMaxWidth   = 200
	ThumbnailMaxHeight  = 150
	ThumbnailQuality    = 70
	CompressedMaxWidth  = 1200
	CompressedMaxHeight = 800
	CompressedQuality   = 80
)

var (
	// ErrUnsupportedType is returned for files outside the JPEG/PNG/WebP
	// allow-list.
	ErrUnsupportedType = errors.New("imaging: unsupported image type, use JPEG, PNG or WebP")
	// ErrTooLarge is returned for files exceeding MaxUploadBytes.
	ErrTooLarge = errors.New("imaging: image exceeds the 10 MB limit")
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// Derived holds the pipeline output for one source image.
type Derived struct {
	// Compressed fits within 1200x800, Thumbnail within 200x150; both are
	// encoded as image/jpeg.
	Compressed  []byte
	Thumbnail   []byte
	ContentType string
}

// Validate rejects an upload before any decoding is attempted. declaredType
// may be empty, in which case the content is sniffed.
func Validate(data []byte, declaredType string) error {
	if len(data) > MaxUploadBytes {
		return ErrTooLarge
	}

	mediaType := normalizeType(declaredType)
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = normalizeType(http.DetectContentType(data))
	}
	if _, ok := allowedTypes[mediaType]; !ok {
		return fmt.Errorf("%w (got %s)", ErrUnsupportedType, mediaType)
	}
	return nil
}

// Process decodes the source once and derives the compressed rendition and
// the thumbnail concurrently. Both must succeed; a failure of either fails
// the whole derivation.
func Process(data []byte) (Derived, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Derived{}, fmt.Errorf("imaging: failed to decode image: %w", err)
	}

	var out Derived
	var g errgroup.Group
	g.Go(func() error {
		encoded, err := encodeScaled(src, CompressedMaxWidth, CompressedMaxHeight, CompressedQuality)
		if err != nil {
			return fmt.Errorf("imaging: failed to derive compressed image: %w", err)
		}
		out.Compressed = encoded
		return nil
	})
	g.Go(func() error {
		encoded, err := encodeScaled(src, ThumbnailMaxWidth, ThumbnailMaxHeight, ThumbnailQuality)
		if err != nil {
			return fmt.Errorf("imaging: failed to derive thumbnail: %w", err)
		}
		out.Thumbnail = encoded
		return nil
	})
	if err := g.Wait(); err != nil {
		return Derived{}, err
	}

	out.ContentType = "image/jpeg"
	return out, nil
}

// FitWithin computes the scaled dimensions preserving aspect ratio: the
// longer edge is clamped to its bound and the other shrinks proportionally.
// Images already inside the bounds are never upscaled.
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return width, height
	}
	if width > height {
		if width > maxWidth {
			height = height * maxWidth / width
			width = maxWidth
		}
	} else {
		if height > maxHeight {
			width = width * maxHeight / height
			height = maxHeight
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

func encodeScaled(src image.Image, maxWidth, maxHeight, quality int) ([]byte, error) {
	bounds := src.Bounds()
	width, height := FitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	scaled := src
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		scaled = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalizeType(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if i := strings.Index(value, ";"); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}
	return value
}
