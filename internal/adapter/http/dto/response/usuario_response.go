package response

import (
	"time"

	"controle_faturas/internal/domain/entities"
)

type UsuarioResponse struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Nome     string    `json:"nome"`
	IsAdmin  bool      `json:"is_admin"`
	CriadoEm time.Time `json:"criado_em"`
}

func FromUsuario(u entities.Usuario) UsuarioResponse {
	return UsuarioResponse{ID: u.ID, Username: u.Username, Nome: u.Nome, IsAdmin: u.IsAdmin, CriadoEm: u.CriadoEm}
}

func FromUsuarios(usuarios []entities.Usuario) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, FromUsuario(u))
	}
	return out
}
