package response

import (
	"time"

	"controle_faturas/internal/domain/entities"
)

// FaturaResponse is the invoice wire shape. Vencimento is a civil date string
// so the client's badge arithmetic never has to strip a time component.
type FaturaResponse struct {
	ID               int64      `json:"id"`
	OperadoraID      int64      `json:"operadora_id"`
	OperadoraNome    string     `json:"operadora_nome"`
	OperadoraContato *string    `json:"operadora_contato,omitempty"`
	OperadoraPortal  *string    `json:"operadora_portal,omitempty"`
	Referencia       string     `json:"referencia"`
	Valor            float64    `json:"valor"`
	Vencimento       string     `json:"vencimento"`
	Status           string     `json:"status"`
	StatusFatura     string     `json:"status_fatura"`
	DataEnvio        *time.Time `json:"data_envio,omitempty"`
	EnviadoPara      *string    `json:"enviado_para,omitempty"`
	ComprovantePath  *string    `json:"comprovante_path,omitempty"`
	UsuarioID        *int64     `json:"usuario_id,omitempty"`
	CriadoEm         time.Time  `json:"criado_em"`
}

func FromFatura(f entities.Fatura) FaturaResponse {
	return FaturaResponse{
		ID:               f.ID,
		OperadoraID:      f.OperadoraID,
		OperadoraNome:    f.OperadoraNome,
		OperadoraContato: f.OperadoraContato,
		OperadoraPortal:  f.OperadoraPortal,
		Referencia:       f.Referencia,
		Valor:            f.Valor,
		Vencimento:       f.Vencimento.Format("2006-01-02"),
		Status:           string(f.Status),
		StatusFatura:     string(f.StatusFatura),
		DataEnvio:        f.DataEnvio,
		EnviadoPara:      f.EnviadoPara,
		ComprovantePath:  f.ComprovantePath,
		UsuarioID:        f.UsuarioID,
		CriadoEm:         f.CriadoEm,
	}
}

func FromFaturas(faturas []entities.Fatura) []FaturaResponse {
	out := make([]FaturaResponse, 0, len(faturas))
	for _, f := range faturas {
		out = append(out, FromFatura(f))
	}
	return out
}

// NotificacaoResponse is the trimmed shape the notifications badge consumes.
type NotificacaoResponse struct {
	ID            int64   `json:"id"`
	Referencia    string  `json:"referencia"`
	Valor         float64 `json:"valor"`
	Vencimento    string  `json:"vencimento"`
	OperadoraNome string  `json:"operadora_nome"`
}

func FromFaturaNotificacao(f entities.Fatura) NotificacaoResponse {
	return NotificacaoResponse{
		ID:            f.ID,
		Referencia:    f.Referencia,
		Valor:         f.Valor,
		Vencimento:    f.Vencimento.Format("2006-01-02"),
		OperadoraNome: f.OperadoraNome,
	}
}

func FromFaturasNotificacao(faturas []entities.Fatura) []NotificacaoResponse {
	out := make([]NotificacaoResponse, 0, len(faturas))
	for _, f := range faturas {
		out = append(out, FromFaturaNotificacao(f))
	}
	return out
}
