package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/jwt"
)

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	mgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "segredo-de-teste",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	return NewAuthService(fixtureRepos(), mgr, nil, zap.NewNop())
}

func TestRegisterELoginFluxoCompleto(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Carla Dias",
		Email:    "carla@escola.com",
		Password: "senha-forte",
		Role:     "secretaria",
	})
	if err != nil {
		t.Fatalf("Register falhou: %v", err)
	}
	if user.ID == 0 {
		t.Error("usuário deve receber id")
	}
	if user.Role != "secretaria" {
		t.Errorf("papel: esperado secretaria, veio %q", user.Role)
	}

	pair, err := svc.Login(ctx, &dto.LoginRequest{Email: "carla@escola.com", Password: "senha-forte"})
	if err != nil {
		t.Fatalf("Login falhou: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("login deve emitir o par de tokens")
	}
	if pair.User.Email != "carla@escola.com" {
		t.Errorf("usuário do par errado: %q", pair.User.Email)
	}
}

func TestRegisterSemPapelAssumeAluno(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Daniel Prado",
		Email:    "daniel@escola.com",
		Password: "senha-forte",
	})
	if err != nil {
		t.Fatalf("Register falhou: %v", err)
	}
	if user.Role != "aluno" {
		t.Errorf("papel padrão deve ser aluno, veio %q", user.Role)
	}
}

func TestRegisterRejeitaEmailDuplicado(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "Carla", Email: "carla@escola.com", Password: "senha-forte"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("esperado ErrEmailTaken, veio %v", err)
	}
}

func TestLoginSenhaErrada(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Carla", Email: "carla@escola.com", Password: "senha-forte",
	}); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "carla@escola.com", Password: "senha-errada"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("esperado ErrInvalidCredentials, veio %v", err)
	}
}

func TestLoginUsuarioInexistente(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ninguem@escola.com", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("esperado ErrInvalidCredentials, veio %v", err)
	}
}

func TestRefreshEmiteNovoPar(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Carla", Email: "carla@escola.com", Password: "senha-forte",
	}); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}
	pair, err := svc.Login(ctx, &dto.LoginRequest{Email: "carla@escola.com", Password: "senha-forte"})
	if err != nil {
		t.Fatalf("Login falhou: %v", err)
	}

	renewed, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: pair.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh falhou: %v", err)
	}
	if renewed.AccessToken == "" || renewed.RefreshToken == "" {
		t.Fatal("refresh deve emitir um novo par de tokens")
	}
}

func TestRefreshRejeitaAccessToken(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Carla", Email: "carla@escola.com", Password: "senha-forte",
	}); err != nil {
		t.Fatalf("Register falhou: %v", err)
	}
	pair, err := svc.Login(ctx, &dto.LoginRequest{Email: "carla@escola.com", Password: "senha-forte"})
	if err != nil {
		t.Fatalf("Login falhou: %v", err)
	}

	// o endpoint de refresh só aceita tokens do tipo refresh
	_, err = svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: pair.AccessToken})
	if !errors.Is(err, jwt.ErrTokenInvalid) {
		t.Fatalf("esperado ErrTokenInvalid, veio %v", err)
	}
}

func TestSeedDefaultUsersIdempotente(t *testing.T) {
	repo := fixtureRepos()
	mgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "segredo-de-teste",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	svc := NewAuthService(repo, mgr, nil, zap.NewNop())
	ctx := context.Background()

	if err := svc.SeedDefaultUsers(ctx); err != nil {
		t.Fatalf("SeedDefaultUsers falhou: %v", err)
	}
	mock := repo.User.(*mockUserRepo)
	if len(mock.users) != 2 {
		t.Fatalf("esperado 2 usuários padrão, veio %d", len(mock.users))
	}

	// segunda execução não duplica
	if err := svc.SeedDefaultUsers(ctx); err != nil {
		t.Fatalf("SeedDefaultUsers falhou na repetição: %v", err)
	}
	if len(mock.users) != 2 {
		t.Fatalf("seed repetido duplicou usuários: %d", len(mock.users))
	}

	// o administrador padrão consegue logar
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@escola.com", Password: "admin123"}); err != nil {
		t.Fatalf("login do admin padrão falhou: %v", err)
	}
}

func TestLogoutSemRedisNaoFalha(t *testing.T) {
	svc := newAuthFixture(t)

	claims := &jwt.Claims{}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("logout sem Redis deve degradar sem erro: %v", err)
	}
}
