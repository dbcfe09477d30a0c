package util

import (
	"testing"
	"time"

	"quiz_api_backend/internal/model"
)

const testSecret = "unit-test-secret-key-0123456789abcdef"

func testUser() *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: 7},
		Username:  "alice",
		Role:      model.NormalUser,
	}
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	pair, err := GenerateTokenPair(testUser(), testSecret, time.Hour, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("generate pair failed: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if pair.Access == pair.Refresh {
		t.Fatalf("access and refresh tokens must differ")
	}

	access, err := ParseJWT(pair.Access, testSecret)
	if err != nil {
		t.Fatalf("parse access failed: %v", err)
	}
	if access.UserID != 7 || access.Username != "alice" || access.Role != model.NormalUser {
		t.Fatalf("unexpected access claims: %+v", access)
	}
	if access.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token type, got %q", access.TokenType)
	}

	refresh, err := ParseJWT(pair.Refresh, testSecret)
	if err != nil {
		t.Fatalf("parse refresh failed: %v", err)
	}
	if refresh.TokenType != TokenTypeRefresh {
		t.Fatalf("expected refresh token type, got %q", refresh.TokenType)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseJWT(token, "another-secret"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateAccessToken(testUser(), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not.a.token", testSecret); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
