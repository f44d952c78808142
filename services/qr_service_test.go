package services

import (
	"bytes"
	"context"
	"image/color"
	"testing"

	"github.com/Vitnet1814/qrmenu-sub000/entity"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRService_RenderProducesPNG(t *testing.T) {
	registry := &fakeRegistry{}
	resolver := newFakeResolver(registry)
	rest := newTestRestaurant(registry, "QR Place", "qr-place")
	svc := NewQRService(registry, resolver, "https://menu.example.com/")

	png, err := svc.Render(context.Background(), rest.ID)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestQRService_HonorsStoredSettings(t *testing.T) {
	ctx := context.Background()
	registry := &fakeRegistry{}
	resolver := newFakeResolver(registry)
	rest := newTestRestaurant(registry, "QR Place", "qr-place")

	store := resolver.BySlug(rest.Slug)
	if _, err := store.Create(ctx, entity.RecordSettings, entity.Settings{QRSize: 128}, nil); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	svc := NewQRService(registry, resolver, "https://menu.example.com")
	png, err := svc.Render(ctx, rest.ID)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"#FF6600", color.RGBA{255, 102, 0, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"fff", color.RGBA{255, 255, 255, 255}},
	}
	for _, tc := range tests {
		got := parseHexColor(tc.in, color.Black)
		if got != tc.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	fallbacks := []string{"", "#xyz", "#12345", "nope"}
	for _, in := range fallbacks {
		if got := parseHexColor(in, color.White); got != color.Color(color.White) {
			t.Errorf("parseHexColor(%q) should fall back, got %v", in, got)
		}
	}
}
