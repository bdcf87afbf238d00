package usecase

import (
	"context"

	"controle_faturas/internal/domain/entities"
	"controle_faturas/internal/usecase/interfaces"
)

// IOperadoraUseCase exposes the carrier registry (read-only through the API).

type IOperadoraUseCase interface {
	List(ctx context.Context) ([]entities.Operadora, error)
}

type OperadoraUseCase struct {
	operadoras interfaces.IOperadoraRepository
}

var _ IOperadoraUseCase = (*OperadoraUseCase)(nil)

func NewOperadoraUseCase(operadoras interfaces.IOperadoraRepository) *OperadoraUseCase {
	return &OperadoraUseCase{operadoras: operadoras}
}

func (u *OperadoraUseCase) List(ctx context.Context) ([]entities.Operadora, error) {
	return u.operadoras.List(ctx)
}
