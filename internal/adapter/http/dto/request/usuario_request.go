package request

// UsuarioRequest is the admin user-creation payload. The client historically
// sent the admin flag camel-cased, so both spellings are accepted.
type UsuarioRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Nome         string `json:"nome"`
	IsAdmin      bool   `json:"isAdmin"`
	IsAdminSnake bool   `json:"is_admin"`
}

func (r UsuarioRequest) ResolveIsAdmin() bool {
	return r.IsAdmin || r.IsAdminSnake
}
