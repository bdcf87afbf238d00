package interfaces

import (
	"context"

	"controle_faturas/internal/domain/entities"
)

//go:generate mockgen -source=usuario_repository_interface.go -destination=mocks/usuario_repository_mock.go -package=mock_interfaces

// IUsuarioRepository abstracts the credential store. Zero-ID returns mean the
// row does not exist; Create must fail when the username is already taken
// (unique constraint) so the usecase can surface a conflict.
type IUsuarioRepository interface {
	GetByUsername(ctx context.Context, username string) (entities.Usuario, error)
	GetByID(ctx context.Context, id int64) (entities.Usuario, error)
	List(ctx context.Context) ([]entities.Usuario, error)
	Create(ctx context.Context, u entities.Usuario) (entities.Usuario, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
