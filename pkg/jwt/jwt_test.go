package jwt

import (
	"testing"
	"time"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "segredo-de-teste-com-32-caracteres",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("secretaria@escola.com", "secretaria")
	if err != nil {
		t.Fatalf("GenerateAccessToken falhou: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falhou: %v", err)
	}
	if claims.Email != "secretaria@escola.com" {
		t.Errorf("esperava email=secretaria@escola.com, obteve %s", claims.Email)
	}
	if claims.Role != "secretaria" {
		t.Errorf("esperava role=secretaria, obteve %s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("esperava token_type=access, obteve %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("esperava jti preenchido")
	}
}

func TestManager_RefreshTokenType(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("admin@escola.com", "admin")
	if err != nil {
		t.Fatalf("GenerateRefreshToken falhou: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falhou: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("esperava token_type=refresh, obteve %s", claims.TokenType)
	}
}

func TestManager_InvalidToken(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("nao-e-um-token"); err == nil {
		t.Fatal("esperava erro para token malformado")
	}
}

func TestManager_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:       "outro-segredo-igualmente-longo!!",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("a@b.com", "aluno")
	if err != nil {
		t.Fatalf("GenerateAccessToken falhou: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("esperava erro ao validar token com segredo diferente")
	}
}
