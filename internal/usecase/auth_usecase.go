package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"controle_faturas/internal/domain/entities"
	"controle_faturas/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCredenciaisInvalidas = errors.New("invalid credentials")
	ErrNaoAutenticado       = errors.New("not authenticated")
)

// TokenTTLPadrao is the session token lifetime. The client refreshes shortly
// before this elapses.
const TokenTTLPadrao = 8 * time.Hour

// IAuthUseCase exposes the session issuer operations.

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (string, entities.Identidade, error)
	Validate(tokenString string) (entities.Identidade, error)
	Refresh(ctx context.Context, tokenString string) (string, entities.Identidade, error)
}

type AuthUseCase struct {
	usuarios interfaces.IUsuarioRepository
	secret   []byte
	ttl      time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(usuarios interfaces.IUsuarioRepository, secret string, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = TokenTTLPadrao
	}
	return &AuthUseCase{usuarios: usuarios, secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// dummyHash keeps the bcrypt comparison on the unknown-username path so both
// failure modes return the same error without revealing which one happened.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Login authenticates username/password and issues a session token. Unknown
// username and wrong password collapse into ErrCredenciaisInvalidas.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, entities.Identidade, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", entities.Identidade{}, ErrCredenciaisInvalidas
	}

	user, err := u.usuarios.GetByUsername(ctx, username)
	if err != nil {
		return "", entities.Identidade{}, err
	}
	if user.ID == 0 {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", entities.Identidade{}, ErrCredenciaisInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(password)) != nil {
		return "", entities.Identidade{}, ErrCredenciaisInvalidas
	}

	id := entities.Identidade{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}
	token, err := u.sign(id)
	if err != nil {
		return "", entities.Identidade{}, err
	}
	return token, id, nil
}

// Validate checks signature and expiry and returns the embedded identity.
func (u *AuthUseCase) Validate(tokenString string) (entities.Identidade, error) {
	if tokenString == "" {
		return entities.Identidade{}, ErrNaoAutenticado
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrNaoAutenticado
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.Identidade{}, ErrNaoAutenticado
	}
	return entities.Identidade{ID: claims.UserID, Username: claims.Username, IsAdmin: claims.IsAdmin}, nil
}

// Refresh re-issues a token with a fresh window. The identity is re-read from
// the store so a since-revoked admin flag (or a deleted account) is honored.
// There is no grace period: an expired input token cannot be refreshed.
func (u *AuthUseCase) Refresh(ctx context.Context, tokenString string) (string, entities.Identidade, error) {
	id, err := u.Validate(tokenString)
	if err != nil {
		return "", entities.Identidade{}, err
	}

	user, err := u.usuarios.GetByID(ctx, id.ID)
	if err != nil {
		return "", entities.Identidade{}, err
	}
	if user.ID == 0 {
		return "", entities.Identidade{}, ErrNaoAutenticado
	}

	fresh := entities.Identidade{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}
	token, err := u.sign(fresh)
	if err != nil {
		return "", entities.Identidade{}, err
	}
	return token, fresh, nil
}

func (u *AuthUseCase) sign(id entities.Identidade) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID:   id.ID,
		Username: id.Username,
		IsAdmin:  id.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}
