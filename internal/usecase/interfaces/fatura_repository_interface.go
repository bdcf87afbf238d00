package interfaces

import (
	"context"
	"time"

	"controle_faturas/internal/domain/entities"
)

//go:generate mockgen -source=fatura_repository_interface.go -destination=mocks/fatura_repository_mock.go -package=mock_interfaces

// IFaturaRepository abstracts relational persistence for Fatura.
//
// Reads always join the carrier row and carry the derived status computed
// against hoje, which the caller samples once per request so every invoice in
// a response classifies against the same reference date. A zero-ID return
// means the row does not exist.
type IFaturaRepository interface {
	Create(ctx context.Context, f entities.Fatura) (entities.Fatura, error)
	GetByID(ctx context.Context, id int64, hoje time.Time) (entities.Fatura, error)
	// List filters on the derived status when filtro is non-empty.
	List(ctx context.Context, filtro entities.StatusDerivado, hoje time.Time) ([]entities.Fatura, error)
	// Update rewrites the editable fields (operadora_id, referencia, valor,
	// vencimento). Status, data_envio and comprovante_path only change
	// through MarkEnviada.
	Update(ctx context.Context, f entities.Fatura, hoje time.Time) (entities.Fatura, error)
	MarkEnviada(ctx context.Context, id int64, enviadoPara string, comprovantePath *string, quando time.Time) (entities.Fatura, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// Upcoming returns unsent invoices due inside [hoje, hoje+7d], inclusive.
	Upcoming(ctx context.Context, hoje time.Time) ([]entities.Fatura, error)
}
