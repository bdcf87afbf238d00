package routes

import (
	"controle_faturas/internal/adapter/http/handlers"
	"controle_faturas/internal/adapter/http/middleware"
	"controle_faturas/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathFaturas    = "/faturas"
	PathUsuarios   = "/usuarios"
	PathOperadoras = "/operadoras"
)

func addAPIRoutes(
	rg *gin.RouterGroup,
	auth usecase.IAuthUseCase,
	authHandler *handlers.AuthHandler,
	faturaHandler *handlers.FaturaHandler,
	usuarioHandler *handlers.UsuarioHandler,
	operadoraHandler *handlers.OperadoraHandler,
) {
	// Public
	rg.POST("/login", authHandler.Login)

	// Any valid token
	autenticado := rg.Group("", middleware.RequireAuth(auth))
	{
		autenticado.POST("/refresh-token", authHandler.RefreshToken)
		autenticado.GET("/validate-token", authHandler.ValidateToken)

		autenticado.GET(PathOperadoras, operadoraHandler.List)

		faturas := autenticado.Group(PathFaturas)
		{
			faturas.GET("", faturaHandler.List)
			faturas.POST("", faturaHandler.Create)
			faturas.GET("/:id", faturaHandler.Get)
			faturas.PUT("/:id", faturaHandler.Update)
			faturas.PUT("/:id/enviar", faturaHandler.Enviar)
		}

		autenticado.GET("/notificacoes", faturaHandler.Notificacoes)
	}

	// Admin only
	admin := rg.Group("", middleware.RequireAuth(auth), middleware.RequireAdmin())
	{
		admin.GET(PathUsuarios, usuarioHandler.List)
		admin.POST(PathUsuarios, usuarioHandler.Create)
		admin.DELETE(PathUsuarios+"/:id", usuarioHandler.Delete)
		admin.DELETE(PathFaturas+"/:id", faturaHandler.Delete)
	}
}
