package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxImageWidth bounds stored images; wider uploads are scaled down.
const MaxImageWidth = 1200

const jpegQuality = 82

type NormalizedImage struct {
	Data   []byte
	Width  int
	Height int
}

// NormalizeImage decodes any supported encoding, scales the image down to
// MaxImageWidth when needed and re-encodes it as JPEG.
func NormalizeImage(data []byte) (*NormalizedImage, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxImageWidth {
		img = imaging.Resize(img, MaxImageWidth, 0, imaging.Lanczos)
		bounds = img.Bounds()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	return &NormalizedImage{
		Data:   buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// DecodeImagePayload accepts either a data URL or bare base64 and returns
// the raw bytes.
func DecodeImagePayload(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data url")
		}
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return data, nil
}

// EncodeJPEGDataURL wraps normalized JPEG bytes in a data URL.
func EncodeJPEGDataURL(data []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}
