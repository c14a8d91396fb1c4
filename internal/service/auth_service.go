package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/jwt"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/redis"
)

// ── Erros de negócio de autenticação ──

var (
	ErrInvalidCredentials = errors.New("e-mail ou senha incorretos")
	ErrEmailTaken         = errors.New("e-mail já cadastrado")
	ErrTokenRevoked       = errors.New("token revogado")
)

// AuthService autenticação de usuários do backoffice
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenPairResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	// SeedDefaultUsers garante os usuários padrão do backoffice; idempotente
	SeedDefaultUsers(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	cache  *redis.Client
	logger *zap.Logger
}

// NewAuthService cria o serviço de autenticação
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, cache *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, cache: cache, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("falha ao buscar usuário no login", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(user)
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("falha ao verificar e-mail no cadastro", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "aluno"
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("falha ao criar usuário", zap.Error(err))
		return nil, err
	}

	return &dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

// Refresh emite um novo par de tokens a partir de um refresh token válido.
// O refresh token usado entra na blacklist, de modo que cada um vale por
// uma única renovação.
func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenPairResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, jwt.ErrTokenInvalid
	}

	if s.cache != nil {
		revoked, err := s.cache.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("falha ao consultar blacklist", zap.Error(err))
		} else if revoked {
			return nil, ErrTokenRevoked
		}
	}

	user, err := s.repo.User.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("falha ao buscar usuário no refresh", zap.Error(err))
		return nil, err
	}

	if s.cache != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := s.cache.BlacklistToken(ctx, claims.ID, ttl); err != nil {
			s.logger.Warn("falha ao revogar refresh token usado", zap.Error(err))
		}
	}

	return s.tokenPair(user)
}

// Logout revoga o token de acesso corrente. Sem Redis a revogação não é
// possível e o token segue válido até expirar.
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.cache == nil {
		s.logger.Warn("logout sem Redis: token permanece válido até expirar")
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.cache.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("falha ao revogar token no logout", zap.Error(err))
		return err
	}
	return nil
}

// Usuários padrão criados na primeira subida. As senhas devem ser trocadas
// em qualquer ambiente que não seja de demonstração.
var defaultUsers = []struct {
	name     string
	email    string
	password string
	role     string
}{
	{"Administrador", "admin@escola.com", "admin123", "admin"},
	{"Secretaria", "secretaria@escola.com", "secretaria123", "secretaria"},
}

func (s *authService) SeedDefaultUsers(ctx context.Context) error {
	for _, def := range defaultUsers {
		_, err := s.repo.User.GetByEmail(ctx, def.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(def.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &model.User{
			Name:         def.name,
			Email:        def.email,
			PasswordHash: string(hash),
			Role:         def.role,
		}
		if err := s.repo.User.Create(ctx, user); err != nil {
			return err
		}
		s.logger.Warn("usuário padrão criado, troque a senha",
			zap.String("email", def.email), zap.String("role", def.role))
	}
	return nil
}

func (s *authService) tokenPair(user *model.User) (*dto.TokenPairResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	}, nil
}
