package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func accessClaims(userID, issuer string, ttl time.Duration) Claims {
	now := time.Now().UTC()
	return Claims{
		UserID:    userID,
		Email:     userID + "@example.com",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func TestTokenVerifier_ParseAccessToken(t *testing.T) {
	verifier := NewTokenVerifier("secret", "lifemap-auth")
	token := signToken(t, "secret", accessClaims("u1", "lifemap-auth", 15*time.Minute))

	claims, err := verifier.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "u1@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenVerifier_Rejections(t *testing.T) {
	verifier := NewTokenVerifier("secret", "lifemap-auth")

	refresh := accessClaims("u1", "lifemap-auth", time.Minute)
	refresh.TokenType = "refresh"

	mismatched := accessClaims("u1", "lifemap-auth", time.Minute)
	mismatched.Subject = "u2"

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "  ", want: ErrJWTInvalid},
		{name: "wrong secret", token: signToken(t, "other", accessClaims("u1", "lifemap-auth", time.Minute)), want: ErrJWTInvalid},
		{name: "wrong issuer", token: signToken(t, "secret", accessClaims("u1", "someone-else", time.Minute)), want: ErrJWTInvalid},
		{name: "refresh token", token: signToken(t, "secret", refresh), want: ErrJWTInvalid},
		{name: "subject mismatch", token: signToken(t, "secret", mismatched), want: ErrJWTInvalid},
		{name: "expired", token: signToken(t, "secret", accessClaims("u1", "lifemap-auth", -time.Minute)), want: ErrJWTExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.ParseAccessToken(tt.token)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestTokenVerifier_NotConfigured(t *testing.T) {
	var nilVerifier *TokenVerifier
	if _, err := nilVerifier.ParseAccessToken("x"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for nil verifier, got %v", err)
	}
	if _, err := NewTokenVerifier("", "lifemap-auth").ParseAccessToken("x"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for empty secret, got %v", err)
	}
}
