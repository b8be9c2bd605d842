package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// ImageProcessor validates and normalizes headshot uploads.
type ImageProcessor struct {
	MaxSize int64 // bytes
	MaxEdge int   // longest edge after downscaling, px
}

func NewImageProcessor(maxSize int64, maxEdge int) *ImageProcessor {
	return &ImageProcessor{MaxSize: maxSize, MaxEdge: maxEdge}
}

// Validate checks size and that the payload is a JPEG or PNG image.
func (p *ImageProcessor) Validate(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// Normalize downsizes images whose longest edge exceeds MaxEdge and returns
// the bytes to store. Images already within bounds pass through untouched so
// PNG uploads keep their format.
func (p *ImageProcessor) Normalize(data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	if cfg.Width <= p.MaxEdge && cfg.Height <= p.MaxEdge {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, p.MaxEdge, p.MaxEdge, imaging.Lanczos)
	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return b.Bytes(), nil
}

// ContentType sniffs the MIME type of the payload.
func (p *ImageProcessor) ContentType(data []byte) string {
	return mimetype.Detect(data).String()
}
