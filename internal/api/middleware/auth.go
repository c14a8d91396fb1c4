package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/jwt"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/redis"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// JWTAuth extrai e valida o access token de Authorization: Bearer <token>.
// Com Redis disponível, tokens revogados por logout são rejeitados; falha de
// consulta à blacklist não bloqueia a requisição.
func JWTAuth(jwtMgr *jwt.Manager, cache *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "cabeçalho de autenticação ausente")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "cabeçalho de autenticação inválido")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido ou expirado")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "tipo de token inválido")
			c.Abort()
			return
		}

		if cache != nil {
			revoked, err := cache.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("falha ao consultar blacklist de tokens", zap.Error(err))
			} else if revoked {
				response.Unauthorized(c, 10002, "token revogado")
				c.Abort()
				return
			}
		}

		c.Set("claims", claims)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleAuth permite a requisição apenas para os papéis informados
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "não autenticado")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "acesso não autorizado para este papel")
		c.Abort()
	}
}
