package usecase

import (
	"context"
	"errors"
	"strings"

	"controle_faturas/internal/domain/entities"
	"controle_faturas/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsuarioNaoEncontrado = errors.New("usuario not found")
	ErrUsernameEmUso        = errors.New("username already taken")
	ErrAutoExclusao         = errors.New("cannot delete own account")
	ErrCredenciaisFaltando  = errors.New("username and password are required")
)

const bcryptCost = 10

type CriarUsuarioInput struct {
	Username string
	Password string
	Nome     string
	IsAdmin  bool
}

// IUsuarioUseCase exposes the admin-gated account operations. There is no
// update: accounts are created and deleted, never edited.

type IUsuarioUseCase interface {
	List(ctx context.Context) ([]entities.Usuario, error)
	Create(ctx context.Context, in CriarUsuarioInput) (entities.Usuario, error)
	Delete(ctx context.Context, id int64, solicitante entities.Identidade) error
}

type UsuarioUseCase struct {
	usuarios interfaces.IUsuarioRepository
}

var _ IUsuarioUseCase = (*UsuarioUseCase)(nil)

func NewUsuarioUseCase(usuarios interfaces.IUsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarios: usuarios}
}

func (u *UsuarioUseCase) List(ctx context.Context) ([]entities.Usuario, error) {
	return u.usuarios.List(ctx)
}

func (u *UsuarioUseCase) Create(ctx context.Context, in CriarUsuarioInput) (entities.Usuario, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return entities.Usuario{}, ErrCredenciaisFaltando
	}

	existing, err := u.usuarios.GetByUsername(ctx, in.Username)
	if err != nil {
		return entities.Usuario{}, err
	}
	if existing.ID != 0 {
		return entities.Usuario{}, ErrUsernameEmUso
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return entities.Usuario{}, err
	}

	created, err := u.usuarios.Create(ctx, entities.Usuario{
		Username:  in.Username,
		Nome:      strings.TrimSpace(in.Nome),
		SenhaHash: string(hash),
		IsAdmin:   in.IsAdmin,
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	return created, nil
}

// Delete refuses self-deletion even for admins: the acting identity always
// keeps at least its own account.
func (u *UsuarioUseCase) Delete(ctx context.Context, id int64, solicitante entities.Identidade) error {
	if id == solicitante.ID {
		return ErrAutoExclusao
	}
	deleted, err := u.usuarios.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUsuarioNaoEncontrado
	}
	return nil
}
