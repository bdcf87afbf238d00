package entities

import "time"

// Usuario is an account that can sign in. SenhaHash is a bcrypt hash and never
// leaves the persistence/usecase boundary.
type Usuario struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Nome      string    `db:"nome" json:"nome"`
	SenhaHash string    `db:"senha_hash" json:"-"`
	IsAdmin   bool      `db:"is_admin" json:"is_admin"`
	CriadoEm  time.Time `db:"criado_em" json:"criado_em"`
}

// Identidade is the claim set carried by a session token: just enough to
// display who is signed in and gate admin routes.
type Identidade struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
