package interfaces

import (
	"context"

	"controle_faturas/internal/domain/entities"
)

//go:generate mockgen -source=operadora_repository_interface.go -destination=mocks/operadora_repository_mock.go -package=mock_interfaces

// IOperadoraRepository abstracts the carrier registry. Carriers are seeded at
// bootstrap and never deleted through the API, so the surface is read-only.
// A zero-ID return from GetByID means the carrier does not exist.
type IOperadoraRepository interface {
	List(ctx context.Context) ([]entities.Operadora, error)
	GetByID(ctx context.Context, id int64) (entities.Operadora, error)
}
