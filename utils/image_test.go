package utils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeImage_ReencodesAsJPEG(t *testing.T) {
	out, err := NormalizeImage(encodePNG(t, 50, 40))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out.Width != 50 || out.Height != 40 {
		t.Errorf("small image must keep its size, got %dx%d", out.Width, out.Height)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if decoded.Bounds().Dx() != 50 {
		t.Errorf("decoded width %d", decoded.Bounds().Dx())
	}
}

func TestNormalizeImage_ScalesWideImagesDown(t *testing.T) {
	out, err := NormalizeImage(encodePNG(t, MaxImageWidth+400, 200))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out.Width != MaxImageWidth {
		t.Errorf("expected width capped at %d, got %d", MaxImageWidth, out.Width)
	}
	if out.Height >= 200 {
		t.Errorf("height should scale proportionally, got %d", out.Height)
	}
}

func TestNormalizeImage_RejectsGarbage(t *testing.T) {
	if _, err := NormalizeImage([]byte("definitely not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodeImagePayload(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	b64 := base64.StdEncoding.EncodeToString(raw)

	for _, payload := range []string{b64, "data:image/png;base64," + b64} {
		got, err := DecodeImagePayload(payload)
		if err != nil {
			t.Fatalf("decode %q: %v", payload, err)
		}
		if !bytes.Equal(got, raw) {
			t.Errorf("decode %q: got %v", payload, got)
		}
	}

	if _, err := DecodeImagePayload("data:image/png"); err == nil {
		t.Error("expected error for data url without comma")
	}
	if _, err := DecodeImagePayload("!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestEncodeJPEGDataURL(t *testing.T) {
	url := EncodeJPEGDataURL([]byte{0xff, 0xd8})
	if url != "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8}) {
		t.Errorf("unexpected data url %q", url)
	}
}
