package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "controle_faturas/internal/adapter/http/dto/request"
	response "controle_faturas/internal/adapter/http/dto/response"
	"controle_faturas/internal/adapter/http/middleware"
	"controle_faturas/internal/usecase"
	"controle_faturas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errFaturaPayload = pkg.NewDomainErrorSimple("INVALID_FATURA_INPUT", "Payload de fatura inválido", http.StatusBadRequest)
	errFaturaID      = pkg.NewDomainErrorSimple("INVALID_FATURA_ID", "Identificador de fatura inválido", http.StatusBadRequest)
)

// FaturaHandler handles invoice CRUD, the send transition and the
// notifications feed.

type FaturaHandler struct {
	usecase usecase.IFaturaUseCase
}

func NewFaturaHandler(uc usecase.IFaturaUseCase) *FaturaHandler {
	return &FaturaHandler{usecase: uc}
}

// List returns invoices ordered by due date, optionally filtered by the
// derived status (?status=enviado|vencido|proximo|pendente).
func (h *FaturaHandler) List(c *gin.Context) {
	faturas, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapFaturaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFaturas(faturas))
}

func (h *FaturaHandler) Create(c *gin.Context) {
	var payload request.FaturaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errFaturaPayload.HTTPStatus, errFaturaPayload.ToHTTPError())
		return
	}

	vencimento, err := payload.ResolveVencimento()
	if err != nil {
		c.JSON(errFaturaPayload.HTTPStatus, errFaturaPayload.ToHTTPError())
		return
	}

	id, _ := middleware.Identidade(c)
	fatura, err := h.usecase.Create(c.Request.Context(), usecase.CriarFaturaInput{
		OperadoraID: payload.OperadoraID,
		Referencia:  payload.Referencia,
		Valor:       payload.Valor,
		Vencimento:  vencimento,
		UsuarioID:   id.ID,
	})
	if err != nil {
		appErr := mapFaturaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFatura(fatura))
}

func (h *FaturaHandler) Get(c *gin.Context) {
	id, ok := faturaID(c)
	if !ok {
		return
	}
	fatura, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapFaturaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFatura(fatura))
}

func (h *FaturaHandler) Update(c *gin.Context) {
	id, ok := faturaID(c)
	if !ok {
		return
	}

	var payload request.FaturaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errFaturaPayload.HTTPStatus, errFaturaPayload.ToHTTPError())
		return
	}
	vencimento, err := payload.ResolveVencimento()
	if err != nil {
		c.JSON(errFaturaPayload.HTTPStatus, errFaturaPayload.ToHTTPError())
		return
	}

	fatura, err := h.usecase.Update(c.Request.Context(), id, usecase.AtualizarFaturaInput{
		OperadoraID: payload.OperadoraID,
		Referencia:  payload.Referencia,
		Valor:       payload.Valor,
		Vencimento:  vencimento,
	})
	if err != nil {
		appErr := mapFaturaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFatura(fatura))
}

// Enviar marks the invoice as sent. Accepts multipart/form-data with an
// optional "comprovante" file plus "enviado_para", or a plain JSON body when
// no file is attached.
func (h *FaturaHandler) Enviar(c *gin.Context) {
	id, ok := faturaID(c)
	if !ok {
		return
	}

	var enviadoPara string
	var arquivo *usecase.ComprovanteUpload

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		enviadoPara = c.PostForm("enviado_para")
		header, err := c.FormFile("comprovante")
		if err == nil && header != nil {
			f, err := header.Open()
			if err != nil {
				appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro ao ler comprovante", err, http.StatusInternalServerError)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			defer f.Close()
			arquivo = &usecase.ComprovanteUpload{
				NomeOriginal: header.Filename,
				MimeType:     header.Header.Get("Content-Type"),
				Tamanho:      header.Size,
				Conteudo:     f,
			}
		}
	} else {
		var payload struct {
			EnviadoPara string `json:"enviado_para"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errFaturaPayload.HTTPStatus, errFaturaPayload.ToHTTPError())
			return
		}
		enviadoPara = payload.EnviadoPara
	}

	fatura, err := h.usecase.Enviar(c.Request.Context(), id, enviadoPara, arquivo)
	if err != nil {
		log.Printf("[fatura][handler] enviar failed id=%d err=%v", id, err)
		appErr := mapFaturaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFatura(fatura))
}

func (h *FaturaHandler) Delete(c *gin.Context) {
	id, ok := faturaID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[fatura][handler] delete failed id=%d err=%v", id, err)
		appErr := mapFaturaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Notificacoes returns unsent invoices due inside the next 7 days.
func (h *FaturaHandler) Notificacoes(c *gin.Context) {
	faturas, err := h.usecase.Upcoming(c.Request.Context())
	if err != nil {
		appErr := mapFaturaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFaturasNotificacao(faturas))
}

func faturaID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errFaturaID.HTTPStatus, errFaturaID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapFaturaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCamposObrigatorios):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", "Todos os campos são obrigatórios", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValorInvalido):
		return pkg.NewDomainErrorSimple("INVALID_VALOR", "Valor deve ser maior que zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFiltroInvalido):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Filtro de status inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEnviadoParaObrigatorio):
		return pkg.NewDomainErrorSimple("MISSING_ENVIADO_PARA", "Campo \"enviado_para\" é obrigatório", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrArquivoInvalido):
		return pkg.NewDomainErrorSimple("INVALID_FILE", "Apenas arquivos PDF, JPG, JPEG ou PNG de até 5 MiB são permitidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOperadoraNaoEncontrada):
		return pkg.NewDomainErrorSimple("OPERADORA_NOT_FOUND", "Operadora não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFaturaNaoEncontrada):
		return pkg.NewDomainErrorSimple("FATURA_NOT_FOUND", "Fatura não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno ao processar fatura", err, http.StatusInternalServerError)
	}
}
