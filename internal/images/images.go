// Package images wraps the image codec used for avatar thumbnails.
package images

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// ResizeFillPNG decodes content, crops/scales it so the target rectangle is
// fully covered (aspect-filling crop, no letterbox) and re-encodes as PNG.
func ResizeFillPNG(content []byte, width, height int) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	filled := imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, filled, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
