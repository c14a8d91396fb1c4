package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/jwt"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// AuthHandler autenticação do backoffice
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler cria o AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login autentica e emite o par de tokens
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	pair, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 20201, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, pair)
}

// Register cadastra um usuário do backoffice (somente admin)
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, 20202, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// Refresh troca o refresh token por um novo par
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	pair, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired),
			errors.Is(err, jwt.ErrTokenInvalid),
			errors.Is(err, service.ErrTokenRevoked),
			errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, 10002, "refresh token inválido")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, pair)
}

// Logout revoga o token de acesso corrente
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me retorna a identidade do usuário autenticado
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	response.OK(c, gin.H{"email": claims.Email, "role": claims.Role})
}
