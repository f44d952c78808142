package services

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRService renders the restaurant's public menu URL as a QR code PNG,
// honoring the stored rendering preferences.
type QRService struct {
	Restaurants   RestaurantRegistry
	Stores        StoreResolver
	PublicBaseURL string
}

func NewQRService(restaurants RestaurantRegistry, stores StoreResolver, publicBaseURL string) *QRService {
	return &QRService{Restaurants: restaurants, Stores: stores, PublicBaseURL: publicBaseURL}
}

func (s *QRService) Render(ctx context.Context, restaurantID primitive.ObjectID) ([]byte, error) {
	rest, err := s.Restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	settings := defaultQRSettings()
	store := s.Stores.BySlug(rest.Slug)
	rec, err := firstOfType(ctx, store, entity.RecordSettings)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		stored := rec.Data.(entity.Settings)
		if stored.QRSize > 0 {
			settings.QRSize = stored.QRSize
		}
		if stored.QRForeground != "" {
			settings.QRForeground = stored.QRForeground
		}
		if stored.QRBackground != "" {
			settings.QRBackground = stored.QRBackground
		}
	}

	menuURL := strings.TrimRight(s.PublicBaseURL, "/") + "/menu/" + rest.Slug

	q, err := qrcode.New(menuURL, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("build qr code: %w", err)
	}
	q.ForegroundColor = parseHexColor(settings.QRForeground, color.Black)
	q.BackgroundColor = parseHexColor(settings.QRBackground, color.White)

	return q.PNG(settings.QRSize)
}

// parseHexColor reads #rgb or #rrggbb, falling back when malformed.
func parseHexColor(s string, fallback color.Color) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	var r, g, b uint8
	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return fallback
		}
		r *= 17
		g *= 17
		b *= 17
	case 6:
		if _, err := fmt.Sscanf(s, "%2x%2x%2x", &r, &g, &b); err != nil {
			return fallback
		}
	default:
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
