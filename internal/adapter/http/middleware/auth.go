package middleware

import (
	"net/http"
	"strings"

	"controle_faturas/internal/domain/entities"
	"controle_faturas/internal/usecase"
	"controle_faturas/pkg"

	"github.com/gin-gonic/gin"
)

const identidadeKey = "identidade"

var (
	errNaoAutenticado = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Token ausente, inválido ou expirado", http.StatusUnauthorized)
	errAcessoNegado   = pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso restrito a administradores", http.StatusForbidden)
)

// RequireAuth validates the bearer token on every request and stores the
// resulting identity in the gin context for handlers downstream.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := auth.Validate(BearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(errNaoAutenticado.HTTPStatus, errNaoAutenticado.ToHTTPError())
			return
		}
		c.Set(identidadeKey, id)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := Identidade(c)
		if !ok || !id.IsAdmin {
			c.AbortWithStatusJSON(errAcessoNegado.HTTPStatus, errAcessoNegado.ToHTTPError())
			return
		}
		c.Next()
	}
}

// Identidade returns the authenticated identity stored by RequireAuth.
func Identidade(c *gin.Context) (entities.Identidade, bool) {
	v, ok := c.Get(identidadeKey)
	if !ok {
		return entities.Identidade{}, false
	}
	id, ok := v.(entities.Identidade)
	return id, ok
}

// BearerToken extracts the token from the Authorization header, empty when
// missing or malformed.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
