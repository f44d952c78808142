package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	tokenStr, err := GenerateToken("6650f0a0b0c0d0e0f0a0b0c0", secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !token.Valid {
		t.Fatal("token invalid")
	}
	if claims.UserID != "6650f0a0b0c0d0e0f0a0b0c0" {
		t.Errorf("wrong userId claim: %q", claims.UserID)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Error("expiry not set from ttl")
	}
}

func TestGenerateToken_WrongSecretFails(t *testing.T) {
	tokenStr, err := GenerateToken("abc", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (any, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Fatal("expected signature validation to fail")
	}
}
