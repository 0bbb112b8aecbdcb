package utils

import (
	"testing"

	"SuratMutasi/models"

	"gorm.io/gorm"
)

func testUser() models.User {
	return models.User{
		Model:    gorm.Model{ID: 7},
		Username: "operator1",
		Email:    "operator@example.com",
		Role:     models.RoleOperator,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := testUser()
	token, _, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user_id = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Role != models.RoleOperator {
		t.Errorf("role = %q, want operator", claims.Role)
	}
	if claims.Email != user.Email {
		t.Errorf("email = %q, want %q", claims.Email, user.Email)
	}
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	refresh, _, err := GenerateRefreshToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := VerifyAccessToken(refresh); err == nil {
		t.Fatal("a refresh token must not verify as an access token")
	}
	if _, err := VerifyRefreshToken(refresh); err != nil {
		t.Fatalf("refresh token must verify as refresh: %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := VerifyAccessToken(""); err == nil {
		t.Fatal("empty token must be rejected")
	}
	if _, err := VerifyAccessToken("not-a-token"); err == nil {
		t.Fatal("malformed token must be rejected")
	}
}
