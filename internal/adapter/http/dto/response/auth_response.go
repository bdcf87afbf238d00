package response

import "controle_faturas/internal/domain/entities"

type IdentidadeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

func FromIdentidade(id entities.Identidade) IdentidadeResponse {
	return IdentidadeResponse{ID: id.ID, Username: id.Username, IsAdmin: id.IsAdmin}
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  IdentidadeResponse `json:"user"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ValidateTokenResponse struct {
	Valid bool               `json:"valid"`
	User  IdentidadeResponse `json:"user"`
}
