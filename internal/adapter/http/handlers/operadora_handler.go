package handlers

import (
	"net/http"

	response "controle_faturas/internal/adapter/http/dto/response"
	"controle_faturas/internal/usecase"
	"controle_faturas/pkg"

	"github.com/gin-gonic/gin"
)

// OperadoraHandler serves the carrier registry.

type OperadoraHandler struct {
	usecase usecase.IOperadoraUseCase
}

func NewOperadoraHandler(uc usecase.IOperadoraUseCase) *OperadoraHandler {
	return &OperadoraHandler{usecase: uc}
}

func (h *OperadoraHandler) List(c *gin.Context) {
	operadoras, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro ao buscar operadoras", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperadoras(operadoras))
}
