package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"controle_faturas/internal/domain/entities"
	"controle_faturas/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

// faturaSelect is the one read shape: carrier columns joined in, derived
// status computed in SQL from the same reference day the Go side uses. The
// two leading bind parameters are always hoje and hoje+7d.
const faturaSelect = `
SELECT
    f.id,
    f.operadora_id,
    f.referencia,
    f.valor,
    f.vencimento,
    f.status,
    f.data_envio,
    f.enviado_para,
    f.comprovante_path,
    f.usuario_id,
    f.criado_em,
    o.nome    AS operadora_nome,
    o.contato AS operadora_contato,
    o.portal  AS operadora_portal,
    CASE
        WHEN f.status = 'enviado' THEN 'enviado'
        WHEN f.vencimento < ?   THEN 'vencido'
        WHEN f.vencimento <= ?  THEN 'proximo'
        ELSE 'pendente'
    END AS status_fatura
FROM faturas f
JOIN operadoras o ON o.id = f.operadora_id`

// FaturaSQLiteRepository persists Fatura rows in sqlite via sqlx.

type FaturaSQLiteRepository struct {
	db *sqlx.DB
}

var _ interfaces.IFaturaRepository = (*FaturaSQLiteRepository)(nil)

func NewFaturaSQLiteRepository(db *sqlx.DB) *FaturaSQLiteRepository {
	return &FaturaSQLiteRepository{db: db}
}

func (r *FaturaSQLiteRepository) Create(ctx context.Context, f entities.Fatura) (entities.Fatura, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO faturas (operadora_id, referencia, valor, vencimento, status, usuario_id, criado_em)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.OperadoraID, f.Referencia, f.Valor, dia(f.Vencimento), f.Status, f.UsuarioID, momento(time.Now()))
	if err != nil {
		return entities.Fatura{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.Fatura{}, err
	}
	return r.GetByID(ctx, id, time.Now())
}

func (r *FaturaSQLiteRepository) GetByID(ctx context.Context, id int64, hoje time.Time) (entities.Fatura, error) {
	var f entities.Fatura
	err := r.db.GetContext(ctx, &f, faturaSelect+` WHERE f.id = ?`, dia(hoje), horizonte(hoje), id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Fatura{}, nil
	}
	if err != nil {
		return entities.Fatura{}, err
	}
	return f, nil
}

func (r *FaturaSQLiteRepository) List(ctx context.Context, filtro entities.StatusDerivado, hoje time.Time) ([]entities.Fatura, error) {
	q := faturaSelect
	args := []interface{}{dia(hoje), horizonte(hoje)}

	// The filter predicates re-derive the status from vencimento instead of
	// trusting a stored column, with the same boundaries as the CASE above.
	switch filtro {
	case entities.StatusDerivadoEnviado:
		q += ` WHERE f.status = 'enviado'`
	case entities.StatusDerivadoVencido:
		q += ` WHERE f.status != 'enviado' AND f.vencimento < ?`
		args = append(args, dia(hoje))
	case entities.StatusDerivadoProximo:
		q += ` WHERE f.status != 'enviado' AND f.vencimento >= ? AND f.vencimento <= ?`
		args = append(args, dia(hoje), horizonte(hoje))
	case entities.StatusDerivadoPendente:
		q += ` WHERE f.status != 'enviado' AND f.vencimento > ?`
		args = append(args, horizonte(hoje))
	}

	q += ` ORDER BY f.vencimento ASC`

	faturas := []entities.Fatura{}
	if err := r.db.SelectContext(ctx, &faturas, q, args...); err != nil {
		return nil, err
	}
	return faturas, nil
}

func (r *FaturaSQLiteRepository) Update(ctx context.Context, f entities.Fatura, hoje time.Time) (entities.Fatura, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE faturas SET operadora_id = ?, referencia = ?, valor = ?, vencimento = ? WHERE id = ?`,
		f.OperadoraID, f.Referencia, f.Valor, dia(f.Vencimento), f.ID)
	if err != nil {
		return entities.Fatura{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Fatura{}, err
	}
	if n == 0 {
		return entities.Fatura{}, nil
	}
	return r.GetByID(ctx, f.ID, hoje)
}

func (r *FaturaSQLiteRepository) MarkEnviada(ctx context.Context, id int64, enviadoPara string, comprovantePath *string, quando time.Time) (entities.Fatura, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE faturas SET status = 'enviado', data_envio = ?, enviado_para = ?, comprovante_path = ? WHERE id = ?`,
		momento(quando), enviadoPara, comprovantePath, id)
	if err != nil {
		return entities.Fatura{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Fatura{}, err
	}
	if n == 0 {
		return entities.Fatura{}, nil
	}
	return r.GetByID(ctx, id, quando)
}

func (r *FaturaSQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM faturas WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *FaturaSQLiteRepository) Upcoming(ctx context.Context, hoje time.Time) ([]entities.Fatura, error) {
	q := faturaSelect + ` WHERE f.status != 'enviado' AND f.vencimento BETWEEN ? AND ? ORDER BY f.vencimento ASC`

	faturas := []entities.Fatura{}
	err := r.db.SelectContext(ctx, &faturas, q, dia(hoje), horizonte(hoje), dia(hoje), horizonte(hoje))
	if err != nil {
		return nil, err
	}
	return faturas, nil
}
