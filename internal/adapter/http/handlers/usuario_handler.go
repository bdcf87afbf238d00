package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "controle_faturas/internal/adapter/http/dto/request"
	response "controle_faturas/internal/adapter/http/dto/response"
	"controle_faturas/internal/adapter/http/middleware"
	"controle_faturas/internal/usecase"
	"controle_faturas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errUsuarioPayload = pkg.NewDomainErrorSimple("INVALID_USUARIO_INPUT", "Payload de usuário inválido", http.StatusBadRequest)
	errUsuarioID      = pkg.NewDomainErrorSimple("INVALID_USUARIO_ID", "Identificador de usuário inválido", http.StatusBadRequest)
)

// UsuarioHandler handles the admin-gated account management routes.

type UsuarioHandler struct {
	usecase usecase.IUsuarioUseCase
}

func NewUsuarioHandler(uc usecase.IUsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{usecase: uc}
}

func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsuarios(usuarios))
}

func (h *UsuarioHandler) Create(c *gin.Context) {
	var payload request.UsuarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errUsuarioPayload.HTTPStatus, errUsuarioPayload.ToHTTPError())
		return
	}

	usuario, err := h.usecase.Create(c.Request.Context(), usecase.CriarUsuarioInput{
		Username: payload.Username,
		Password: payload.Password,
		Nome:     payload.Nome,
		IsAdmin:  payload.ResolveIsAdmin(),
	})
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUsuario(usuario))
}

// Delete removes an account. Deleting the authenticated account itself is
// rejected even for admins.
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errUsuarioID.HTTPStatus, errUsuarioID.ToHTTPError())
		return
	}

	solicitante, _ := middleware.Identidade(c)
	if err := h.usecase.Delete(c.Request.Context(), id, solicitante); err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapUsuarioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCredenciaisFaltando):
		return pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Usuário e senha são obrigatórios", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameEmUso):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Nome de usuário já existe", http.StatusConflict)
	case errors.Is(err, usecase.ErrAutoExclusao):
		return pkg.NewDomainErrorSimple("SELF_DELETE", "Você não pode excluir a si mesmo", http.StatusConflict)
	case errors.Is(err, usecase.ErrUsuarioNaoEncontrado):
		return pkg.NewDomainErrorSimple("USUARIO_NOT_FOUND", "Usuário não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno ao processar usuário", err, http.StatusInternalServerError)
	}
}
