package handlers

import (
	"errors"
	"net/http"

	request "controle_faturas/internal/adapter/http/dto/request"
	response "controle_faturas/internal/adapter/http/dto/response"
	"controle_faturas/internal/adapter/http/middleware"
	"controle_faturas/internal/usecase"
	"controle_faturas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Usuário e senha são obrigatórios", http.StatusBadRequest)
)

// AuthHandler handles login and session token lifecycle.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login issues a session token for valid credentials. The error body is the
// same for an unknown username and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errLoginPayload.HTTPStatus, errLoginPayload.ToHTTPError())
		return
	}

	token, id, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token, User: response.FromIdentidade(id)})
}

// RefreshToken reissues the bearer token with a fresh expiry window.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, _, err := h.usecase.Refresh(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

// ValidateToken echoes the identity behind a valid token.
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	id, ok := middleware.Identidade(c)
	if !ok {
		appErr := mapAuthError(usecase.ErrNaoAutenticado)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ValidateTokenResponse{Valid: true, User: response.FromIdentidade(id)})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCredenciaisInvalidas):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Credenciais inválidas", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNaoAutenticado):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Token ausente, inválido ou expirado", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno ao processar autenticação", err, http.StatusInternalServerError)
	}
}
