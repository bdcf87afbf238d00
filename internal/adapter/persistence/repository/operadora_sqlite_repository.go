package repository

import (
	"context"
	"database/sql"
	"errors"

	"controle_faturas/internal/domain/entities"
	"controle_faturas/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

// OperadoraSQLiteRepository reads the carrier registry.

type OperadoraSQLiteRepository struct {
	db *sqlx.DB
}

var _ interfaces.IOperadoraRepository = (*OperadoraSQLiteRepository)(nil)

func NewOperadoraSQLiteRepository(db *sqlx.DB) *OperadoraSQLiteRepository {
	return &OperadoraSQLiteRepository{db: db}
}

func (r *OperadoraSQLiteRepository) List(ctx context.Context) ([]entities.Operadora, error) {
	operadoras := []entities.Operadora{}
	err := r.db.SelectContext(ctx, &operadoras,
		`SELECT id, nome, contato, portal, dia_faturamento FROM operadoras ORDER BY nome`)
	if err != nil {
		return nil, err
	}
	return operadoras, nil
}

func (r *OperadoraSQLiteRepository) GetByID(ctx context.Context, id int64) (entities.Operadora, error) {
	var o entities.Operadora
	err := r.db.GetContext(ctx, &o,
		`SELECT id, nome, contato, portal, dia_faturamento FROM operadoras WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Operadora{}, nil
	}
	if err != nil {
		return entities.Operadora{}, err
	}
	return o, nil
}
