package response

import "controle_faturas/internal/domain/entities"

type OperadoraResponse struct {
	ID             int64   `json:"id"`
	Nome           string  `json:"nome"`
	Contato        *string `json:"contato,omitempty"`
	Portal         *string `json:"portal,omitempty"`
	DiaFaturamento *int    `json:"dia_faturamento,omitempty"`
}

func FromOperadora(o entities.Operadora) OperadoraResponse {
	return OperadoraResponse{ID: o.ID, Nome: o.Nome, Contato: o.Contato, Portal: o.Portal, DiaFaturamento: o.DiaFaturamento}
}

func FromOperadoras(operadoras []entities.Operadora) []OperadoraResponse {
	out := make([]OperadoraResponse, 0, len(operadoras))
	for _, o := range operadoras {
		out = append(out, FromOperadora(o))
	}
	return out
}
