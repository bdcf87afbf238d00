package request

import (
	"errors"
	"strings"
	"time"
)

var ErrVencimentoInvalido = errors.New("invalid vencimento date")

// FaturaRequest is the create/update payload. The older client sent the due
// date under data_vencimento as well, so both names are accepted with
// vencimento winning.
type FaturaRequest struct {
	OperadoraID    int64   `json:"operadora_id"`
	Referencia     string  `json:"referencia"`
	Valor          float64 `json:"valor"`
	Vencimento     string  `json:"vencimento"`
	DataVencimento string  `json:"data_vencimento"`
}

// ResolveVencimento parses the due date as a civil date (YYYY-MM-DD).
func (r FaturaRequest) ResolveVencimento() (time.Time, error) {
	raw := strings.TrimSpace(r.Vencimento)
	if raw == "" {
		raw = strings.TrimSpace(r.DataVencimento)
	}
	if raw == "" {
		return time.Time{}, nil
	}
	// Tolerate an ISO timestamp by keeping only the date part.
	if i := strings.IndexByte(raw, 'T'); i > 0 {
		raw = raw[:i]
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, ErrVencimentoInvalido
	}
	return t, nil
}
