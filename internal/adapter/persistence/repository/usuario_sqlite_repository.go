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

// UsuarioSQLiteRepository persists accounts. List never returns senha_hash;
// only the username lookup used for login does.

type UsuarioSQLiteRepository struct {
	db *sqlx.DB
}

var _ interfaces.IUsuarioRepository = (*UsuarioSQLiteRepository)(nil)

func NewUsuarioSQLiteRepository(db *sqlx.DB) *UsuarioSQLiteRepository {
	return &UsuarioSQLiteRepository{db: db}
}

func (r *UsuarioSQLiteRepository) GetByUsername(ctx context.Context, username string) (entities.Usuario, error) {
	var u entities.Usuario
	err := r.db.GetContext(ctx, &u,
		`SELECT id, username, nome, senha_hash, is_admin, criado_em FROM usuarios WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Usuario{}, nil
	}
	if err != nil {
		return entities.Usuario{}, err
	}
	return u, nil
}

func (r *UsuarioSQLiteRepository) GetByID(ctx context.Context, id int64) (entities.Usuario, error) {
	var u entities.Usuario
	err := r.db.GetContext(ctx, &u,
		`SELECT id, username, nome, senha_hash, is_admin, criado_em FROM usuarios WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Usuario{}, nil
	}
	if err != nil {
		return entities.Usuario{}, err
	}
	return u, nil
}

func (r *UsuarioSQLiteRepository) List(ctx context.Context) ([]entities.Usuario, error) {
	usuarios := []entities.Usuario{}
	err := r.db.SelectContext(ctx, &usuarios,
		`SELECT id, username, nome, is_admin, criado_em FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *UsuarioSQLiteRepository) Create(ctx context.Context, u entities.Usuario) (entities.Usuario, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO usuarios (username, nome, senha_hash, is_admin, criado_em) VALUES (?, ?, ?, ?, ?)`,
		u.Username, u.Nome, u.SenhaHash, u.IsAdmin, momento(time.Now()))
	if err != nil {
		return entities.Usuario{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return entities.Usuario{}, err
	}
	created, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Usuario{}, err
	}
	// Callers never need the hash back.
	created.SenhaHash = ""
	return created, nil
}

func (r *UsuarioSQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
