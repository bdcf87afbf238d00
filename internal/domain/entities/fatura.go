package entities

import "time"

// FaturaStatus is the persisted lifecycle of an invoice (fatura).
//
// Only two states are ever stored: an invoice starts "pendente" and the send
// transition moves it to "enviado". Everything else the UI shows (vencido,
// proximo) is derived from the due date at read time and never written back.

type FaturaStatus string

const (
	FaturaStatusPendente FaturaStatus = "pendente"
	FaturaStatusEnviado  FaturaStatus = "enviado"
)

// StatusDerivado is the four-way classification computed per read.
type StatusDerivado string

const (
	StatusDerivadoEnviado  StatusDerivado = "enviado"
	StatusDerivadoVencido  StatusDerivado = "vencido"
	StatusDerivadoProximo  StatusDerivado = "proximo"
	StatusDerivadoPendente StatusDerivado = "pendente"
)

// JanelaProximoDias is the forward window (in days, inclusive) inside which an
// unsent invoice counts as "proximo". Shared by the SQL filter predicates, the
// notification query and the client-side badge arithmetic.
const JanelaProximoDias = 7

// Fatura is a telecom invoice owed to a carrier.
//
// Storage model (sqlite):
//   - PK: id (autoincrement)
//   - FK: operadora_id -> operadoras(id), usuario_id -> usuarios(id)
//
// OperadoraNome/OperadoraContato/OperadoraPortal are joined from the carrier
// row on every read; StatusFatura carries the derived classification.
type Fatura struct {
	ID              int64        `db:"id" json:"id"`
	OperadoraID     int64        `db:"operadora_id" json:"operadora_id"`
	Referencia      string       `db:"referencia" json:"referencia"`
	Valor           float64      `db:"valor" json:"valor"`
	Vencimento      time.Time    `db:"vencimento" json:"vencimento"`
	Status          FaturaStatus `db:"status" json:"status"`
	DataEnvio       *time.Time   `db:"data_envio" json:"data_envio,omitempty"`
	EnviadoPara     *string      `db:"enviado_para" json:"enviado_para,omitempty"`
	ComprovantePath *string      `db:"comprovante_path" json:"comprovante_path,omitempty"`
	UsuarioID       *int64       `db:"usuario_id" json:"usuario_id,omitempty"`
	CriadoEm        time.Time    `db:"criado_em" json:"criado_em"`

	OperadoraNome    string  `db:"operadora_nome" json:"operadora_nome"`
	OperadoraContato *string `db:"operadora_contato" json:"operadora_contato,omitempty"`
	OperadoraPortal  *string `db:"operadora_portal" json:"operadora_portal,omitempty"`

	StatusFatura StatusDerivado `db:"status_fatura" json:"status_fatura"`
}

// DeriveStatus classifies an invoice from its stored status and due date.
//
// hoje must be sampled once per evaluation pass and reused for every invoice
// in that pass, otherwise a batch rendered across midnight could classify
// inconsistently. Boundaries are inclusive: due today and due in exactly
// JanelaProximoDias days are both "proximo".
func DeriveStatus(status FaturaStatus, vencimento time.Time, hoje time.Time) StatusDerivado {
	if status == FaturaStatusEnviado {
		return StatusDerivadoEnviado
	}
	dias := DiasAteVencimento(vencimento, hoje)
	switch {
	case dias < 0:
		return StatusDerivadoVencido
	case dias <= JanelaProximoDias:
		return StatusDerivadoProximo
	default:
		return StatusDerivadoPendente
	}
}

// DiasAteVencimento returns whole calendar days from hoje until the due date,
// negative when already past. Both instants are truncated to their civil date
// so time-of-day never shifts the classification.
func DiasAteVencimento(vencimento, hoje time.Time) int {
	return int(civilDate(vencimento).Sub(civilDate(hoje)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseStatusDerivado validates a list-filter token from the API.
func ParseStatusDerivado(s string) (StatusDerivado, bool) {
	switch StatusDerivado(s) {
	case StatusDerivadoEnviado, StatusDerivadoVencido, StatusDerivadoProximo, StatusDerivadoPendente:
		return StatusDerivado(s), true
	}
	return "", false
}
