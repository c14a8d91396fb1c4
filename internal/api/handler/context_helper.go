package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/jwt"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// MustGetClaims extrai as claims injetadas pelo middleware JWT.
// Em ok=false a resposta 401 já foi escrita; o chamador deve retornar.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "não autenticado")
		return nil, false
	}
	return claims, true
}

// ParamInt interpreta um parâmetro de rota como inteiro positivo.
// Em ok=false a resposta 400 já foi escrita.
func ParamInt(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "parâmetro "+name+" inválido")
		return 0, false
	}
	return id, true
}

// QueryInt interpreta um parâmetro de query como inteiro positivo
func QueryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "parâmetro "+name+" inválido")
		return 0, false
	}
	return id, true
}
